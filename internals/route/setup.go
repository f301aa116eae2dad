package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/constants"
	attendanceRoutes "gymku_backend/internals/features/attendance/routes"
	billingRoutes "gymku_backend/internals/features/billing/routes"
	billingService "gymku_backend/internals/features/billing/service"
	gymRoutes "gymku_backend/internals/features/gyms/routes"
	identityRoutes "gymku_backend/internals/features/identity/routes"
	identityService "gymku_backend/internals/features/identity/service"
	payrollRoutes "gymku_backend/internals/features/payroll/routes"
	authMw "gymku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	verifier := identityService.NewJWTVerifier(configs.JWTSecret)
	gateway := billingService.NewGateway(configs.RazorpayKeyID, configs.RazorpayKeySecret, configs.RazorpayWebhookSecret)

	// Provider webhook: signature-authenticated, outside the bearer groups.
	billingRoutes.BillingWebhookRoutes(app, db, gateway)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	identityRoutes.EmployeePublicRoutes(public, db)

	// ===================== PRIVATE (any authenticated user) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMw.AuthMiddleware(db, verifier),
		authMw.GymContextMiddleware(db),
	)
	identityRoutes.IdentityRoutes(private, db)
	gymRoutes.ApprovalUserRoutes(private, db)
	billingRoutes.BillingUserRoutes(private, db, gateway)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(db, verifier),
		authMw.GymContextMiddleware(db),
		authMw.OnlyRoles("Only gym admins can access this resource",
			constants.RoleAdmin, constants.RoleSuperadmin),
	)
	identityRoutes.EmployeeAdminRoutes(admin, db)
	gymRoutes.ApprovalAdminRoutes(admin, db)
	attendanceRoutes.AttendanceAdminRoutes(admin, db)
	payrollRoutes.PayrollAdminRoutes(admin, db)
	billingRoutes.BillingAdminRoutes(admin, db, gateway)
}
