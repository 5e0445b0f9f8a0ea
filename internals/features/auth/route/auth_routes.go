// internals/features/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"dancestudio_backend/internals/features/auth/controller"
	"dancestudio_backend/internals/features/auth/service"
)

// AuthRoutes: /login dan /verify, keduanya publik.
func AuthRoutes(r fiber.Router, svc *service.AuthService) {
	ctl := controller.NewAuthController(svc)
	g := r.Group("/auth")
	g.Post("/login", ctl.Login)
	g.Get("/verify", ctl.Verify)
}
