package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingCtl "gymku_backend/internals/features/billing/controller"
	billingService "gymku_backend/internals/features/billing/service"
)

func BillingUserRoutes(r fiber.Router, db *gorm.DB, gateway *billingService.Gateway) {
	ctl := billingCtl.NewBillingController(db, gateway)

	b := r.Group("/billing")
	b.Post("/orders", ctl.CreateOrder)   // POST /api/u/billing/orders
	b.Post("/verify", ctl.VerifyPayment) // POST /api/u/billing/verify
}

// BillingWebhookRoutes is registered on the app itself: the provider calls
// it server-to-server, authenticated by signature instead of bearer token.
func BillingWebhookRoutes(app *fiber.App, db *gorm.DB, gateway *billingService.Gateway) {
	ctl := billingCtl.NewBillingController(db, gateway)

	app.Post("/api/billing/webhook", ctl.Webhook)
}

func BillingAdminRoutes(r fiber.Router, db *gorm.DB, gateway *billingService.Gateway) {
	ctl := billingCtl.NewBillingController(db, gateway)

	b := r.Group("/billing")
	b.Get("/subscriptions", ctl.ListSubscriptions)    // GET  /api/a/billing/subscriptions
	b.Post("/device-tokens", ctl.RegisterDeviceToken) // POST /api/a/billing/device-tokens
}
