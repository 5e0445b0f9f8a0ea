// file: internals/features/studio/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dancestudio_backend/internals/features/studio/teachers/dto"
	"dancestudio_backend/internals/features/studio/teachers/service"
	helper "dancestudio_backend/internals/helpers"
	authMiddleware "dancestudio_backend/internals/middlewares/auth"
)

const msgNotFound = "Teacher not found"

type TeacherController struct {
	Svc *service.TeacherService
}

func NewTeacherController(svc *service.TeacherService) *TeacherController {
	return &TeacherController{Svc: svc}
}

// GET /teachers (publik: name + specialties)
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	rows, err := ctl.Svc.List(helper.ReqCtx(c), service.ListFilter{})
	if err != nil {
		log.Printf("[ERROR] list teachers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teachers")
	}
	return helper.JsonList(c, dto.ToTeacherPublicResponses(rows), len(rows))
}

// GET /teachers/admin
func (ctl *TeacherController) ListAdmin(c *fiber.Ctx) error {
	rows, err := ctl.Svc.List(helper.ReqCtx(c), service.ListFilter{IncludeInactive: true})
	if err != nil {
		log.Printf("[ERROR] list teachers (admin): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teachers")
	}
	return helper.JsonList(c, dto.ToTeacherResponses(rows), len(rows))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error      { return ctl.get(c, false) }
func (ctl *TeacherController) GetByIDAdmin(c *fiber.Ctx) error { return ctl.get(c, true) }

func (ctl *TeacherController) get(c *fiber.Ctx, includeInactive bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	m, err := ctl.Svc.Get(helper.ReqCtx(c), id, includeInactive)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] get teacher %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teacher")
	}
	return helper.JsonOK(c, "", dto.ToTeacherResponse(*m))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Svc.Create(helper.ReqCtx(c), req)
	if err != nil {
		var ve *helper.ValidationError
		switch {
		case errors.As(err, &ve):
			return helper.JsonValidationError(c, ve.Errors)
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusBadRequest, "Teacher with this email already exists")
		}
		log.Printf("[ERROR] create teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating teacher")
	}
	return helper.JsonCreated(c, "Teacher created successfully", dto.ToTeacherResponse(*m))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	var req dto.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Svc.Update(helper.ReqCtx(c), id, req)
	if err != nil {
		var ve *helper.ValidationError
		switch {
		case errors.As(err, &ve):
			return helper.JsonValidationError(c, ve.Errors)
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusBadRequest, "Another teacher with this email already exists")
		case errors.Is(err, service.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] update teacher %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated successfully", dto.ToTeacherResponse(*m))
}

// DELETE /teachers/:id (soft delete)
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	m, err := ctl.Svc.SoftDelete(helper.ReqCtx(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] delete teacher %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting teacher")
	}
	if admin := authMiddleware.AdminFromLocals(c); admin != nil {
		log.Printf("[INFO] teacher %s dinonaktifkan oleh %s", id, admin.Username)
	}
	return helper.JsonDeleted(c, "Teacher deactivated successfully", dto.ToTeacherResponse(*m))
}
