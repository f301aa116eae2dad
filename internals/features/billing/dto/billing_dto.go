package dto

import (
	"github.com/shopspring/decimal"

	m "gymku_backend/internals/features/billing/model"
)

/* =============== REQUESTS =============== */

type CreateOrderRequest struct {
	SubscriptionPlanName string          `json:"subscription_plan_name" validate:"required,min=1"`
	SubscriptionAmount   decimal.Decimal `json:"subscription_amount"    validate:"required"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"   validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature"  validate:"required,len=64,hexadecimal"`
}

type RegisterDeviceTokenRequest struct {
	DeviceTokenValue string `json:"device_token_value" validate:"required,min=10"`
}

/* =============== RESPONSES =============== */

type OrderResponse struct {
	OrderID string `json:"order_id"`
	KeyID   string `json:"key_id"`
	Amount  string `json:"amount"`
	Plan    string `json:"plan"`
}

type SubscriptionResponse struct {
	SubscriptionID          string  `json:"subscription_id"`
	SubscriptionGymCode     string  `json:"subscription_gym_code"`
	SubscriptionMemberEmail string  `json:"subscription_member_email"`
	SubscriptionPlanName    string  `json:"subscription_plan_name"`
	SubscriptionAmount      string  `json:"subscription_amount"`
	SubscriptionOrderID     string  `json:"subscription_order_id"`
	SubscriptionPaymentID   *string `json:"subscription_payment_id,omitempty"`
	SubscriptionStatus      string  `json:"subscription_status"`
	SubscriptionExpiryAt    *string `json:"subscription_expiry_at,omitempty"`
}

func FromSubscription(mo m.SubscriptionModel) SubscriptionResponse {
	out := SubscriptionResponse{
		SubscriptionID:          mo.SubscriptionID.String(),
		SubscriptionGymCode:     mo.SubscriptionGymCode,
		SubscriptionMemberEmail: mo.SubscriptionMemberEmail,
		SubscriptionPlanName:    mo.SubscriptionPlanName,
		SubscriptionAmount:      mo.SubscriptionAmount.StringFixed(2),
		SubscriptionOrderID:     mo.SubscriptionOrderID,
		SubscriptionPaymentID:   mo.SubscriptionPaymentID,
		SubscriptionStatus:      mo.SubscriptionStatus,
	}
	if mo.SubscriptionExpiryAt != nil {
		s := mo.SubscriptionExpiryAt.Format("2006-01-02T15:04:05Z07:00")
		out.SubscriptionExpiryAt = &s
	}
	return out
}
