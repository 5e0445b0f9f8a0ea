// file: internals/route/app.go
package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"dancestudio_backend/internals/configs"
	helper "dancestudio_backend/internals/helpers"
	middlewares "dancestudio_backend/internals/middlewares"
	"dancestudio_backend/internals/middlewares/logger"
)

// NewApp builds the fully wired Fiber app (middleware + routes) without
// listening; main and the HTTP tests share it.
func NewApp(cfg configs.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.FromFiberError,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestContext(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware(cfg.LogTimezone))
	app.Use(middlewares.Metrics())
	app.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))
	app.Use(middlewares.GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	SetupRoutes(app, db, cfg)
	return app
}
