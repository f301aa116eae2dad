package model

import (
	"time"

	"github.com/google/uuid"
)

// ClerkUserModel mirrors the identity provider's user locally. One row per
// provider subject id; role/name are re-resolved on every request and
// written through here (last resolution wins).
type ClerkUserModel struct {
	ClerkUserID uuid.UUID `gorm:"column:clerk_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"clerk_user_id"`

	// Provider subject id; the upsert conflict target.
	ClerkUserSubjectID string `gorm:"column:clerk_user_subject_id;type:text;not null;uniqueIndex" json:"clerk_user_subject_id"`

	ClerkUserEmail    string `gorm:"column:clerk_user_email;type:text;not null;index" json:"clerk_user_email"`
	ClerkUserFullName string `gorm:"column:clerk_user_full_name;type:text;not null"   json:"clerk_user_full_name"`
	ClerkUserRole     string `gorm:"column:clerk_user_role;type:varchar(20);not null;default:member" json:"clerk_user_role"`

	ClerkUserCreatedAt time.Time  `gorm:"column:clerk_user_created_at;autoCreateTime" json:"clerk_user_created_at"`
	ClerkUserUpdatedAt *time.Time `gorm:"column:clerk_user_updated_at;autoUpdateTime" json:"clerk_user_updated_at,omitempty"`
}

func (ClerkUserModel) TableName() string { return "clerk_users" }
