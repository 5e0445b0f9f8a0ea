// file: internals/features/studio/branches/route/branch_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"dancestudio_backend/internals/features/studio/branches/controller"
	"dancestudio_backend/internals/features/studio/branches/service"
)

func BranchRoutes(api fiber.Router, svc *service.BranchService, adminOnly fiber.Handler) {
	ctl := controller.NewBranchController(svc)
	g := api.Group("/branches")

	g.Get("/", ctl.List)
	g.Get("/admin", adminOnly, ctl.ListAdmin)
	g.Get("/admin/:id", adminOnly, ctl.GetByIDAdmin)
	g.Get("/:id", ctl.GetByID)

	g.Post("/", adminOnly, ctl.Create)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
}
