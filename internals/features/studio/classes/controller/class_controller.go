// file: internals/features/studio/classes/controller/class_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dancestudio_backend/internals/features/studio/classes/dto"
	"dancestudio_backend/internals/features/studio/classes/service"
	helper "dancestudio_backend/internals/helpers"
	authMiddleware "dancestudio_backend/internals/middlewares/auth"
)

const (
	msgNotFound        = "Class not found"
	msgSlotTaken       = "A class is already scheduled at this time and branch"
	msgSlotTakenUpdate = "Another class is already scheduled at this time and branch"
)

type ClassController struct {
	Svc *service.ClassService
}

func NewClassController(svc *service.ClassService) *ClassController {
	return &ClassController{Svc: svc}
}

// GET /classes?branch=&day= (publik, aktif saja)
func (ctl *ClassController) List(c *fiber.Ctx) error {
	return ctl.list(c, false)
}

// GET /classes/admin (semua baris, filter sama)
func (ctl *ClassController) ListAdmin(c *fiber.Ctx) error {
	return ctl.list(c, true)
}

func (ctl *ClassController) list(c *fiber.Ctx, includeInactive bool) error {
	f := service.ListFilter{
		IncludeInactive: includeInactive,
		Day:             strings.TrimSpace(c.Query("day")),
	}
	branchID, ok, err := parseBranchQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}
	if ok {
		f.BranchID = &branchID
	}

	rows, err := ctl.Svc.List(helper.ReqCtx(c), f, service.WithRefs())
	if err != nil {
		log.Printf("[ERROR] list classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching classes")
	}
	return helper.JsonList(c, dto.ToClassResponses(rows), len(rows))
}

// GET /classes/schedule?branch=
func (ctl *ClassController) Schedule(c *fiber.Ctx) error {
	var branch *uuid.UUID
	branchID, ok, err := parseBranchQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}
	if ok {
		branch = &branchID
	}

	sched, err := ctl.Svc.Schedule(helper.ReqCtx(c), branch, service.WithRefs())
	if err != nil {
		log.Printf("[ERROR] schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching schedule")
	}
	return helper.JsonOK(c, "", sched)
}

// GET /classes/admin/stats
func (ctl *ClassController) Stats(c *fiber.Ctx) error {
	stats, err := ctl.Svc.Stats(helper.ReqCtx(c))
	if err != nil {
		log.Printf("[ERROR] class stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching statistics")
	}
	return helper.JsonOK(c, "", stats)
}

// GET /classes/:id (publik)
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	return ctl.get(c, false)
}

// GET /classes/admin/:id
func (ctl *ClassController) GetByIDAdmin(c *fiber.Ctx) error {
	return ctl.get(c, true)
}

func (ctl *ClassController) get(c *fiber.Ctx, includeInactive bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	m, err := ctl.Svc.Get(helper.ReqCtx(c), id, includeInactive, service.WithRefs())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] get class %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching class")
	}
	return helper.JsonOK(c, "", dto.ToClassResponse(*m))
}

// POST /classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Svc.Create(helper.ReqCtx(c), req, service.WithRefs())
	if err != nil {
		return writeError(c, err, msgSlotTaken, "Error creating class")
	}
	return helper.JsonCreated(c, "Class created successfully", dto.ToClassResponse(*m))
}

// PUT /classes/:id (full replace)
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctl.Svc.Update(helper.ReqCtx(c), id, req, service.WithRefs())
	if err != nil {
		return writeError(c, err, msgSlotTakenUpdate, "Error updating class")
	}
	return helper.JsonUpdated(c, "Class updated successfully", dto.ToClassResponse(*m))
}

// DELETE /classes/:id (soft delete)
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	m, err := ctl.Svc.SoftDelete(helper.ReqCtx(c), id, service.WithRefs())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] delete class %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting class")
	}
	if admin := authMiddleware.AdminFromLocals(c); admin != nil {
		log.Printf("[INFO] class %s dinonaktifkan oleh %s", id, admin.Username)
	}
	return helper.JsonDeleted(c, "Class deactivated successfully", dto.ToClassResponse(*m))
}

func writeError(c *fiber.Ctx, err error, slotMsg, fallback string) error {
	var ve *helper.ValidationError
	switch {
	case errors.As(err, &ve):
		return helper.JsonValidationError(c, ve.Errors)
	case errors.Is(err, service.ErrSlotTaken):
		return helper.JsonError(c, fiber.StatusBadRequest, slotMsg)
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	log.Printf("[ERROR] %s: %v", strings.ToLower(fallback), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

// parseBranchQuery: ok=false bila ?branch kosong.
func parseBranchQuery(c *fiber.Ctx) (uuid.UUID, bool, error) {
	raw := strings.TrimSpace(c.Query("branch"))
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}
