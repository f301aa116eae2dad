package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payrollCtl "gymku_backend/internals/features/payroll/controller"
)

func PayrollAdminRoutes(r fiber.Router, db *gorm.DB) {
	salaries := payrollCtl.NewSalaryController(db)
	payroll := payrollCtl.NewPayrollController(db)

	s := r.Group("/salaries")
	s.Post("/", salaries.Create)                              // POST   /api/a/salaries
	s.Get("/", salaries.List)                                 // GET    /api/a/salaries?role=
	s.Get("/person/:personId", salaries.GetByPerson)          // GET    /api/a/salaries/person/:personId
	s.Delete("/:id/categories/:label", salaries.DeleteCategory) // DELETE /api/a/salaries/:id/categories/:label

	p := r.Group("/payroll")
	p.Get("/", payroll.Monthly)          // GET  /api/a/payroll?role=&month=&year=
	p.Post("/snapshot", payroll.Snapshot) // POST /api/a/payroll/snapshot
}
