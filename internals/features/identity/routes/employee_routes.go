package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	identityCtl "gymku_backend/internals/features/identity/controller"
	middlewares "gymku_backend/internals/middlewares"
)

// Public: employee self-registration (feeds role derivation).
func EmployeePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := identityCtl.NewEmployeeController(db)

	// POST /api/public/employees/register
	r.Post("/employees/register", middlewares.RegisterRateLimiter(), ctl.Register)
}

// Authenticated: identity echo.
func IdentityRoutes(r fiber.Router, db *gorm.DB) {
	ctl := identityCtl.NewEmployeeController(db)

	r.Get("/me", ctl.Me) // GET /api/u/me
}

// Admin-only: roster listing.
func EmployeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := identityCtl.NewEmployeeController(db)

	r.Get("/employees", ctl.List) // GET /api/a/employees
}
