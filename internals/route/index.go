// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancestudio_backend/internals/configs"
	authService "dancestudio_backend/internals/features/auth/service"
	helper "dancestudio_backend/internals/helpers"
	helperAuth "dancestudio_backend/internals/helpers/auth"
	authMiddleware "dancestudio_backend/internals/middlewares/auth"
	routeDetails "dancestudio_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	tokens := helperAuth.NewAdminTokens(cfg.JWTSecret, cfg.AdminUsername)
	adminOnly := authMiddleware.AdminOnly(tokens)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, authService.NewAuthService(authService.Credentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokens))

	log.Println("[INFO] Setting up StudioRoutes...")
	routeDetails.StudioRoutes(api, db, helper.NewValidator(), adminOnly)
}
