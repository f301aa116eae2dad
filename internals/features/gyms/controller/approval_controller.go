package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "gymku_backend/internals/features/gyms/dto"
	model "gymku_backend/internals/features/gyms/model"
	service "gymku_backend/internals/features/gyms/service"
	"gymku_backend/internals/features/identity/resolver"
	helper "gymku_backend/internals/helpers"
)

type ApprovalController struct {
	DB        *gorm.DB
	Directory *service.TenantDirectory
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{DB: db, Directory: service.NewTenantDirectory(db)}
}

/* ======================= CREATE ======================= */
// POST /api/u/gym-approvals : staff/trainer asks to join a gym by code.
func (h *ApprovalController) Create(c *fiber.Ctx) error {
	var req dto.CreateApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.GymApprovalAdminEmail = resolver.NormalizeEmail(req.GymApprovalAdminEmail)
	req.GymApprovalRequesterEmail = resolver.NormalizeEmail(req.GymApprovalRequesterEmail)

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A request for this gym already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create gym request")
	}

	return helper.JsonCreated(c, "Gym request submitted", dto.FromModel(*m))
}

/* ======================= LIST (admin) ======================= */
// GET /api/a/gym-approvals?status=pending
func (h *ApprovalController) List(c *fiber.Ctx) error {
	adminEmail, err := helper.GetEmailFromLocals(c)
	if err != nil {
		return err
	}

	q := h.DB.Model(&model.GymApprovalModel{}).
		Where("LOWER(gym_approval_admin_email) = ?", adminEmail)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("gym_approval_status = ?", status)
	}

	var rows []model.GymApprovalModel
	if err := q.Order("gym_approval_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list gym requests")
	}

	out := make([]dto.ApprovalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r))
	}
	return helper.Success(c, "OK", out)
}

/* ======================= STATUS UPDATE ======================= */
// PATCH /api/a/gym-approvals/:id : approve or reject; approve is idempotent.
func (h *ApprovalController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid approval id")
	}

	var req dto.UpdateApprovalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.GymApprovalModel
	if err := h.DB.First(&row, "gym_approval_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gym request not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load gym request")
	}

	if err := service.Transition(row.GymApprovalStatus, req.GymApprovalStatus); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	if row.GymApprovalStatus != req.GymApprovalStatus {
		row.GymApprovalStatus = req.GymApprovalStatus
		if err := h.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update gym request")
		}
	}

	return helper.Success(c, "Gym request "+row.GymApprovalStatus, dto.FromModel(row))
}

/* ======================= MY STATUS ======================= */
// GET /api/u/gym-approvals/status?gymCode= : requester checks own status.
func (h *ApprovalController) MyStatus(c *fiber.Ctx) error {
	email, err := helper.GetEmailFromLocals(c)
	if err != nil {
		return err
	}

	tc, err := h.Directory.Resolve(c.UserContext(), email, c.Query("gymCode"))
	if err != nil {
		if errors.Is(err, service.ErrNoTenant) {
			return fiber.NewError(fiber.StatusNotFound, "No gym request found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve gym status")
	}

	return helper.Success(c, "OK", tc)
}
