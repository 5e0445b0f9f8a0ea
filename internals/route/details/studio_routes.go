package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchRoute "dancestudio_backend/internals/features/studio/branches/route"
	branchService "dancestudio_backend/internals/features/studio/branches/service"
	classRoute "dancestudio_backend/internals/features/studio/classes/route"
	classService "dancestudio_backend/internals/features/studio/classes/service"
	teacherRoute "dancestudio_backend/internals/features/studio/teachers/route"
	teacherService "dancestudio_backend/internals/features/studio/teachers/service"
)

// StudioRoutes: branches, teachers, classes. Satu validator dipakai bersama.
func StudioRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, adminOnly fiber.Handler) {
	branchRoute.BranchRoutes(api, branchService.NewBranchService(db, v), adminOnly)
	teacherRoute.TeacherRoutes(api, teacherService.NewTeacherService(db, v), adminOnly)
	classRoute.ClassRoutes(api, classService.NewClassService(db, v), adminOnly)
}
