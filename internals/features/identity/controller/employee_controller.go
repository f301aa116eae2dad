package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "gymku_backend/internals/features/identity/dto"
	model "gymku_backend/internals/features/identity/model"
	"gymku_backend/internals/features/identity/resolver"
	helper "gymku_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

/* ======================= REGISTER (public) ======================= */
// POST /api/employees/register
func (h *EmployeeController) Register(c *fiber.Ctx) error {
	var req dto.RegisterEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.EmployeeEmail = resolver.NormalizeEmail(req.EmployeeEmail)

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "An employee with this email is already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register employee")
	}

	return helper.JsonCreated(c, "Employee registered", dto.FromEmployeeModel(*m))
}

/* ======================= LIST (admin) ======================= */
// GET /api/admin/employees
func (h *EmployeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&model.EmployeeModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count employees")
	}

	var rows []model.EmployeeModel
	if err := h.DB.
		Order("employee_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list employees")
	}

	out := make([]dto.EmployeeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromEmployeeModel(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"employees":  out,
		"pagination": helper.BuildPagination(total, paging, len(out)),
	})
}

/* ======================= ME ======================= */
// GET /api/me : echo of what the auth middleware resolved.
func (h *EmployeeController) Me(c *fiber.Ctx) error {
	subjectID, err := helper.GetSubjectIDFromLocals(c)
	if err != nil {
		return err
	}
	email, err := helper.GetEmailFromLocals(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		return err
	}
	name, _ := c.Locals(helper.LocalsUserName).(string)
	gymCode, _ := c.Locals(helper.LocalsGymCode).(string)

	return helper.Success(c, "OK", fiber.Map{
		"subject_id": subjectID,
		"email":      email,
		"role":       role,
		"full_name":  name,
		"gym_code":   gymCode,
	})
}
