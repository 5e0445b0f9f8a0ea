// file: internals/features/studio/teachers/route/teacher_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"dancestudio_backend/internals/features/studio/teachers/controller"
	"dancestudio_backend/internals/features/studio/teachers/service"
)

func TeacherRoutes(api fiber.Router, svc *service.TeacherService, adminOnly fiber.Handler) {
	ctl := controller.NewTeacherController(svc)
	g := api.Group("/teachers")

	g.Get("/", ctl.List)
	g.Get("/admin", adminOnly, ctl.ListAdmin)
	g.Get("/admin/:id", adminOnly, ctl.GetByIDAdmin)
	g.Get("/:id", ctl.GetByID)

	g.Post("/", adminOnly, ctl.Create)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
}
