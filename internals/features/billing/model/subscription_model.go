package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SubscriptionStatusCreated = "Created"
	SubscriptionStatusPaid    = "Paid"
	SubscriptionStatusFailed  = "Failed"
)

// SubscriptionModel records one membership payment. Immutable once Paid.
type SubscriptionModel struct {
	SubscriptionID uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`

	SubscriptionGymCode     string `gorm:"column:subscription_gym_code;type:varchar(40);not null;index" json:"subscription_gym_code"`
	SubscriptionMemberEmail string `gorm:"column:subscription_member_email;type:text;not null;index"    json:"subscription_member_email"`

	SubscriptionPlanName string          `gorm:"column:subscription_plan_name;type:text;not null"        json:"subscription_plan_name"`
	SubscriptionAmount   decimal.Decimal `gorm:"column:subscription_amount;type:numeric(12,2);not null"  json:"subscription_amount"`

	SubscriptionOrderID   string  `gorm:"column:subscription_order_id;type:text;not null;uniqueIndex" json:"subscription_order_id"`
	SubscriptionPaymentID *string `gorm:"column:subscription_payment_id;type:text"                    json:"subscription_payment_id,omitempty"`

	SubscriptionStatus   string     `gorm:"column:subscription_status;type:varchar(12);not null;default:Created" json:"subscription_status"`
	SubscriptionExpiryAt *time.Time `gorm:"column:subscription_expiry_at;type:timestamptz;index"                 json:"subscription_expiry_at,omitempty"`

	// Stamped by the reminder scheduler so overlapping runs do not re-send.
	SubscriptionNotifiedForExpiryAt *time.Time `gorm:"column:subscription_notified_for_expiry_at;type:timestamptz" json:"subscription_notified_for_expiry_at,omitempty"`

	SubscriptionCreatedAt time.Time  `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at,omitempty"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }
