package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gymCtl "gymku_backend/internals/features/gyms/controller"
)

func ApprovalUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gymCtl.NewApprovalController(db)

	g := r.Group("/gym-approvals")
	g.Post("/", ctl.Create)          // POST /api/u/gym-approvals
	g.Get("/status", ctl.MyStatus)   // GET  /api/u/gym-approvals/status
}

func ApprovalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gymCtl.NewApprovalController(db)

	g := r.Group("/gym-approvals")
	g.Get("/", ctl.List)              // GET   /api/a/gym-approvals
	g.Patch("/:id", ctl.UpdateStatus) // PATCH /api/a/gym-approvals/:id
}
