package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "gymku_backend/internals/features/billing/dto"
	model "gymku_backend/internals/features/billing/model"
	service "gymku_backend/internals/features/billing/service"
	helper "gymku_backend/internals/helpers"
)

type BillingController struct {
	DB      *gorm.DB
	Gateway *service.Gateway
}

func NewBillingController(db *gorm.DB, gateway *service.Gateway) *BillingController {
	return &BillingController{DB: db, Gateway: gateway}
}

/* ======================= CREATE ORDER ======================= */
// POST /api/u/billing/orders : member starts a plan purchase.
func (h *BillingController) CreateOrder(c *fiber.Ctx) error {
	email, err := helper.GetEmailFromLocals(c)
	if err != nil {
		return err
	}
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.SubscriptionAmount.IsNegative() || req.SubscriptionAmount.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be positive")
	}

	orderID, err := h.Gateway.CreateOrder(req.SubscriptionAmount, req.SubscriptionPlanName)
	if err != nil {
		log.Printf("[ERROR] provider order create failed: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "Payment provider unavailable")
	}

	sub := model.SubscriptionModel{
		SubscriptionGymCode:     gymCode,
		SubscriptionMemberEmail: email,
		SubscriptionPlanName:    req.SubscriptionPlanName,
		SubscriptionAmount:      req.SubscriptionAmount,
		SubscriptionOrderID:     orderID,
		SubscriptionStatus:      model.SubscriptionStatusCreated,
	}
	if err := h.DB.Create(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record order")
	}

	return helper.JsonCreated(c, "Order created", dto.OrderResponse{
		OrderID: orderID,
		KeyID:   h.Gateway.KeyID,
		Amount:  req.SubscriptionAmount.StringFixed(2),
		Plan:    req.SubscriptionPlanName,
	})
}

/* ======================= VERIFY ======================= */
// POST /api/u/billing/verify : provider redirect hands back
// (order, payment, signature); a valid signature marks the subscription
// Paid and computes its expiry. A signature mismatch persists nothing.
func (h *BillingController) VerifyPayment(c *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sub model.SubscriptionModel
	if err := h.DB.First(&sub, "subscription_order_id = ?", req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown order")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load order")
	}

	if sub.SubscriptionStatus == model.SubscriptionStatusPaid {
		// Paid rows are immutable; re-verification is a no-op.
		return helper.Success(c, "Payment already verified", dto.FromSubscription(sub))
	}

	if err := h.Gateway.VerifySignature(req.OrderID, req.PaymentID, strings.TrimSpace(req.Signature)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment signature")
	}

	now := time.Now()
	expiry := service.PlanExpiry(sub.SubscriptionPlanName, now)
	paymentID := req.PaymentID

	sub.SubscriptionStatus = model.SubscriptionStatusPaid
	sub.SubscriptionPaymentID = &paymentID
	sub.SubscriptionExpiryAt = &expiry
	if err := h.DB.Save(&sub).Error; err != nil {
		// Provider has captured the payment; surface the gap loudly.
		log.Printf("[ERROR] verified payment %s not persisted: %v", req.PaymentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Payment verified but not recorded, contact support")
	}

	return helper.Success(c, "Payment verified", dto.FromSubscription(sub))
}

/* ======================= WEBHOOK ======================= */

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// POST /api/billing/webhook : provider server-to-server capture
// notification. Covers clients that never return from the redirect.
// Idempotent: a subscription already Paid is left untouched.
func (h *BillingController) Webhook(c *fiber.Ctx) error {
	body := c.Body()
	if err := h.Gateway.VerifyWebhook(body, c.Get("X-Razorpay-Signature")); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid webhook signature")
	}

	var event webhookEvent
	if err := sonic.Unmarshal(body, &event); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid webhook payload")
	}
	if event.Event != "payment.captured" {
		log.Printf("[INFO] webhook event ignored: %s", event.Event)
		return helper.Success(c, "Ignored", nil)
	}

	orderID := event.Payload.Payment.Entity.OrderID
	var sub model.SubscriptionModel
	if err := h.DB.First(&sub, "subscription_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown order")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load order")
	}
	if sub.SubscriptionStatus == model.SubscriptionStatusPaid {
		return helper.Success(c, "Already recorded", nil)
	}

	now := time.Now()
	expiry := service.PlanExpiry(sub.SubscriptionPlanName, now)
	paymentID := event.Payload.Payment.Entity.ID

	sub.SubscriptionStatus = model.SubscriptionStatusPaid
	sub.SubscriptionPaymentID = &paymentID
	sub.SubscriptionExpiryAt = &expiry
	if err := h.DB.Save(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.Success(c, "Payment recorded", nil)
}

/* ======================= LIST (admin) ======================= */
// GET /api/a/billing/subscriptions
func (h *BillingController) ListSubscriptions(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.SubscriptionModel{}).
		Where("subscription_gym_code = ?", gymCode)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("subscription_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subscriptions")
	}

	var rows []model.SubscriptionModel
	if err := q.Order("subscription_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subscriptions")
	}

	out := make([]dto.SubscriptionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromSubscription(r))
	}
	return helper.Success(c, "OK", fiber.Map{
		"subscriptions": out,
		"pagination":    helper.BuildPagination(total, paging, len(out)),
	})
}

/* ======================= DEVICE TOKENS ======================= */
// POST /api/a/billing/device-tokens : register an admin device for expiry
// reminders. Upsert keyed on (gym, token).
func (h *BillingController) RegisterDeviceToken(c *fiber.Ctx) error {
	gymCode, err := helper.GetGymCodeFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.RegisterDeviceTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.DeviceTokenModel{
		DeviceTokenGymCode: gymCode,
		DeviceTokenValue:   req.DeviceTokenValue,
	}
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_token_gym_code"}, {Name: "device_token_value"}},
			DoNothing: true,
		}).
		Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register device token")
	}

	return helper.JsonCreated(c, "Device registered", nil)
}
