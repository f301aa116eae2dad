package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/constants"
	dto "gymku_backend/internals/features/payroll/dto"
	service "gymku_backend/internals/features/payroll/service"
	helper "gymku_backend/internals/helpers"
)

type PayrollController struct {
	DB      *gorm.DB
	Service *service.PayrollService
}

func NewPayrollController(db *gorm.DB) *PayrollController {
	return &PayrollController{DB: db, Service: service.NewPayrollService(db)}
}

func (h *PayrollController) policyFromRequest(c *fiber.Ctx) service.DivisorPolicy {
	if p := c.Query("policy"); p != "" {
		return service.ResolvePolicy(p)
	}
	return service.ResolvePolicy(configs.GetEnv("PAYROLL_DIVISOR_POLICY"))
}

func monthYearFromQuery(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid ?month=")
	}
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid ?year=")
	}
	return month, year, nil
}

/* ======================= MONTHLY VIEW ======================= */
// GET /api/a/payroll?role=staff&month=8&year=2026&policy=fixed30
func (h *PayrollController) Monthly(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	role := c.Query("role", constants.RoleStaff)
	if !constants.IsPayrollRole(role) {
		return fiber.NewError(fiber.StatusBadRequest, "?role= must be staff or trainer")
	}
	month, year, err := monthYearFromQuery(c)
	if err != nil {
		return err
	}

	rows, err := h.Service.Aggregate(c.UserContext(), gymCode, role, month, year, h.policyFromRequest(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute payroll")
	}

	out := make([]dto.PayrollRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FromPayrollRow(row))
	}
	return helper.Success(c, "OK", fiber.Map{
		"gym_code": gymCode,
		"role":     role,
		"month":    month,
		"year":     year,
		"rows":     out,
	})
}

/* ======================= SNAPSHOT ======================= */
// POST /api/a/payroll/snapshot : persist the month so later reads are
// authoritative.
func (h *PayrollController) Snapshot(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.SnapshotPayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows, err := h.Service.Snapshot(c.UserContext(), gymCode, req.Role, req.Month, req.Year, h.policyFromRequest(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to snapshot payroll")
	}

	out := make([]dto.PayrollRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FromPayrollRow(row))
	}
	return helper.JsonCreated(c, "Payroll snapshot saved", out)
}
