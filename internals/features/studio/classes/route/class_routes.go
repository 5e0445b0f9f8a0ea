// file: internals/features/studio/classes/route/class_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"dancestudio_backend/internals/features/studio/classes/controller"
	"dancestudio_backend/internals/features/studio/classes/service"
)

// ClassRoutes mounts /classes. Path statis (/schedule, /admin/...) harus
// didaftarkan sebelum /:id.
func ClassRoutes(api fiber.Router, svc *service.ClassService, adminOnly fiber.Handler) {
	ctl := controller.NewClassController(svc)
	g := api.Group("/classes")

	// Publik
	g.Get("/", ctl.List)
	g.Get("/schedule", ctl.Schedule)

	// Admin (read)
	g.Get("/admin", adminOnly, ctl.ListAdmin)
	g.Get("/admin/stats", adminOnly, ctl.Stats)
	g.Get("/admin/:id", adminOnly, ctl.GetByIDAdmin)

	g.Get("/:id", ctl.GetByID)

	// Admin (write)
	g.Post("/", adminOnly, ctl.Create)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete) // soft delete
}
