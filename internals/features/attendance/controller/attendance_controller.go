package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	dto "gymku_backend/internals/features/attendance/dto"
	model "gymku_backend/internals/features/attendance/model"
	service "gymku_backend/internals/features/attendance/service"
	helper "gymku_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.NewAttendanceService(db)}
}

/* ======================= MARK ======================= */
// POST /api/a/attendance : create or overwrite one person's mark for a day.
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidAttendanceStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown attendance status: "+req.Status)
	}

	day, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance_date")
	}

	if err := h.Service.Mark(c.UserContext(), gymCode, day, req.ToEntry()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helper.Success(c, "Attendance marked", fiber.Map{
		"attendance_gym_code": gymCode,
		"attendance_date":     req.AttendanceDate,
		"person_id":           req.PersonID,
		"status":              req.Status,
	})
}

/* ======================= DAY ======================= */
// GET /api/a/attendance?date=2026-08-01
func (h *AttendanceController) GetDay(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or missing ?date=")
	}

	row, err := h.Service.Day(c.UserContext(), gymCode, day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
	}

	entries := []model.AttendanceEntry{}
	if row != nil {
		decoded, err := service.Entries(row)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Corrupt attendance document")
		}
		entries = decoded
	}

	return helper.Success(c, "OK", dto.AttendanceDayResponse{
		AttendanceGymCode: gymCode,
		AttendanceDate:    day.Format("2006-01-02"),
		Entries:           entries,
	})
}

/* ======================= RANGE ======================= */
// GET /api/a/attendance/range?from=2026-08-01&to=2026-08-31
func (h *AttendanceController) GetRange(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or missing ?from=")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or missing ?to=")
	}
	if to.Before(from) {
		return fiber.NewError(fiber.StatusBadRequest, "?to= is before ?from=")
	}

	rows, err := h.Service.Range(c.UserContext(), gymCode, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance range")
	}

	out := make([]dto.AttendanceDayResponse, 0, len(rows))
	for i := range rows {
		entries, err := service.Entries(&rows[i])
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Corrupt attendance document")
		}
		out = append(out, dto.AttendanceDayResponse{
			AttendanceGymCode: gymCode,
			AttendanceDate:    rows[i].AttendanceDate.Format("2006-01-02"),
			Entries:           entries,
		})
	}

	return helper.Success(c, "OK", out)
}
