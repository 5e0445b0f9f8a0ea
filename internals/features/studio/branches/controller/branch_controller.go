// file: internals/features/studio/branches/controller/branch_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dancestudio_backend/internals/features/studio/branches/dto"
	"dancestudio_backend/internals/features/studio/branches/service"
	helper "dancestudio_backend/internals/helpers"
	authMiddleware "dancestudio_backend/internals/middlewares/auth"
)

const msgNotFound = "Branch not found"

type BranchController struct {
	Svc *service.BranchService
}

func NewBranchController(svc *service.BranchService) *BranchController {
	return &BranchController{Svc: svc}
}

func (ctl *BranchController) List(c *fiber.Ctx) error {
	rows, err := ctl.Svc.List(helper.ReqCtx(c), service.ListFilter{})
	if err != nil {
		log.Printf("[ERROR] list branches: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching branches")
	}
	return helper.JsonList(c, dto.ToBranchPublicResponses(rows), len(rows))
}

func (ctl *BranchController) ListAdmin(c *fiber.Ctx) error {
	rows, err := ctl.Svc.List(helper.ReqCtx(c), service.ListFilter{IncludeInactive: true})
	if err != nil {
		log.Printf("[ERROR] list branches (admin): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching branches")
	}
	return helper.JsonList(c, dto.ToBranchResponses(rows), len(rows))
}

func (ctl *BranchController) GetByID(c *fiber.Ctx) error      { return ctl.get(c, false) }
func (ctl *BranchController) GetByIDAdmin(c *fiber.Ctx) error { return ctl.get(c, true) }

func (ctl *BranchController) get(c *fiber.Ctx, includeInactive bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	m, err := ctl.Svc.Get(helper.ReqCtx(c), id, includeInactive)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] get branch %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching branch")
	}
	return helper.JsonOK(c, "", dto.ToBranchResponse(*m))
}

func (ctl *BranchController) Create(c *fiber.Ctx) error {
	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m, err := ctl.Svc.Create(helper.ReqCtx(c), req)
	if err != nil {
		var ve *helper.ValidationError
		if errors.As(err, &ve) {
			return helper.JsonValidationError(c, ve.Errors)
		}
		log.Printf("[ERROR] create branch: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating branch")
	}
	return helper.JsonCreated(c, "Branch created successfully", dto.ToBranchResponse(*m))
}

func (ctl *BranchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	var req dto.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Svc.Update(helper.ReqCtx(c), id, req)
	if err != nil {
		var ve *helper.ValidationError
		switch {
		case errors.As(err, &ve):
			return helper.JsonValidationError(c, ve.Errors)
		case errors.Is(err, service.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] update branch %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating branch")
	}
	return helper.JsonUpdated(c, "Branch updated successfully", dto.ToBranchResponse(*m))
}

func (ctl *BranchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	m, err := ctl.Svc.SoftDelete(helper.ReqCtx(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] delete branch %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting branch")
	}
	if admin := authMiddleware.AdminFromLocals(c); admin != nil {
		log.Printf("[INFO] branch %s dinonaktifkan oleh %s", id, admin.Username)
	}
	return helper.JsonDeleted(c, "Branch deactivated successfully", dto.ToBranchResponse(*m))
}
