package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"gymku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the ambient middleware stack. Auth and gym-context
// middleware are attached per route group in route setup.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
