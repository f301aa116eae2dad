package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymku_backend/internals/features/identity/resolver"
	dto "gymku_backend/internals/features/payroll/dto"
	model "gymku_backend/internals/features/payroll/model"
	service "gymku_backend/internals/features/payroll/service"
	helper "gymku_backend/internals/helpers"
)

type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/salaries
func (h *SalaryController) Create(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateSalaryAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	categories := req.Categories()
	encoded, err := service.EncodeCategories(categories)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode categories")
	}

	m := model.SalaryAssignmentModel{
		SalaryAssignmentGymCode:     gymCode,
		SalaryAssignmentPersonID:    req.SalaryAssignmentPersonID,
		SalaryAssignmentPersonEmail: resolver.NormalizeEmail(req.SalaryAssignmentPersonEmail),
		SalaryAssignmentPersonName:  req.SalaryAssignmentPersonName,
		SalaryAssignmentRole:        req.SalaryAssignmentRole,
		SalaryAssignmentCategories:  datatypes.JSON(encoded),
		SalaryAssignmentTotal:       service.SumCategories(categories),
	}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "This person already has a salary assignment")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create salary assignment")
	}

	return helper.JsonCreated(c, "Salary assigned", dto.FromAssignment(m, categories))
}

/* ======================= LIST ======================= */
// GET /api/a/salaries?role=staff
func (h *SalaryController) List(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	q := h.DB.Where("salary_assignment_gym_code = ?", gymCode)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("salary_assignment_role = ?", role)
	}

	var rows []model.SalaryAssignmentModel
	if err := q.Order("salary_assignment_person_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list salary assignments")
	}

	out := make([]dto.SalaryAssignmentResponse, 0, len(rows))
	for i := range rows {
		categories, err := service.Categories(&rows[i])
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Corrupt salary categories")
		}
		out = append(out, dto.FromAssignment(rows[i], categories))
	}
	return helper.Success(c, "OK", out)
}

/* ======================= GET BY PERSON ======================= */
// GET /api/a/salaries/person/:personId
func (h *SalaryController) GetByPerson(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	var row model.SalaryAssignmentModel
	if err := h.DB.
		Where("salary_assignment_gym_code = ? AND salary_assignment_person_id = ?", gymCode, c.Params("personId")).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Salary assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load salary assignment")
	}

	categories, err := service.Categories(&row)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Corrupt salary categories")
	}
	return helper.Success(c, "OK", dto.FromAssignment(row, categories))
}

/* ======================= DELETE CATEGORY ======================= */
// DELETE /api/a/salaries/:id/categories/:label
// Removing the last category deletes the assignment itself; later fetches
// return 404, not an empty list.
func (h *SalaryController) DeleteCategory(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}
	label := strings.TrimSpace(c.Params("label"))
	if label == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing category label")
	}

	var row model.SalaryAssignmentModel
	if err := h.DB.
		Where("salary_assignment_id = ? AND salary_assignment_gym_code = ?", id, gymCode).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Salary assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load salary assignment")
	}

	categories, err := service.Categories(&row)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Corrupt salary categories")
	}

	remaining, removed := service.RemoveCategory(categories, label)
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, "Category not found: "+label)
	}

	if len(remaining) == 0 {
		if err := h.DB.Delete(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete salary assignment")
		}
		return helper.Success(c, "Last category removed, salary assignment deleted", nil)
	}

	encoded, err := service.EncodeCategories(remaining)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode categories")
	}
	row.SalaryAssignmentCategories = datatypes.JSON(encoded)
	row.SalaryAssignmentTotal = service.SumCategories(remaining)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update salary assignment")
	}

	return helper.Success(c, "Category removed", dto.FromAssignment(row, remaining))
}
