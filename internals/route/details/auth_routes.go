package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "dancestudio_backend/internals/features/auth/route"
	authService "dancestudio_backend/internals/features/auth/service"
)

func AuthRoutes(api fiber.Router, svc *authService.AuthService) {
	authRoute.AuthRoutes(api, svc)
}
