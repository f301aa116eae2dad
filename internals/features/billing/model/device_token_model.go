package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is an FCM registration token for a gym's admin devices.
type DeviceTokenModel struct {
	DeviceTokenID uuid.UUID `gorm:"column:device_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"device_token_id"`

	DeviceTokenGymCode string `gorm:"column:device_token_gym_code;type:varchar(40);not null;uniqueIndex:uq_device_token,priority:1" json:"device_token_gym_code"`
	DeviceTokenValue   string `gorm:"column:device_token_value;type:text;not null;uniqueIndex:uq_device_token,priority:2"           json:"device_token_value"`

	DeviceTokenCreatedAt time.Time `gorm:"column:device_token_created_at;autoCreateTime" json:"device_token_created_at"`
}

func (DeviceTokenModel) TableName() string { return "device_tokens" }
