package routers

import (
	"bankapi/config"
	bankController "bankapi/controllers/bank"
	"bankapi/middleware"
	"bankapi/routers/bankRoutes"
	"bankapi/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp builds the Fiber app with middleware and all routes mounted.
func NewApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Bank API",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: "GET",
		AllowHeaders: "Content-Type",
	}))

	// Log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	bankRoutes.SetupBankRoutes(app, bankController.New(store.New(db)))

	return app
}
