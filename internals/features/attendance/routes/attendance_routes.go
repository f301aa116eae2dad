package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "gymku_backend/internals/features/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db)

	a := r.Group("/attendance")
	a.Post("/", ctl.Mark)           // POST /api/a/attendance
	a.Get("/", ctl.GetDay)          // GET  /api/a/attendance?date=
	a.Get("/range", ctl.GetRange)   // GET  /api/a/attendance/range?from=&to=
}
