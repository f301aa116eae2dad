package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// GymApprovalModel ties a requester email to a gym code with a requested
// role. At most one row per (gym code, admin email, requester email).
type GymApprovalModel struct {
	GymApprovalID uuid.UUID `gorm:"column:gym_approval_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gym_approval_id"`

	GymApprovalGymCode        string `gorm:"column:gym_approval_gym_code;type:varchar(40);not null;uniqueIndex:uq_gym_approval,priority:1" json:"gym_approval_gym_code"`
	GymApprovalAdminEmail     string `gorm:"column:gym_approval_admin_email;type:text;not null;uniqueIndex:uq_gym_approval,priority:2"     json:"gym_approval_admin_email"`
	GymApprovalRequesterEmail string `gorm:"column:gym_approval_requester_email;type:text;not null;uniqueIndex:uq_gym_approval,priority:3;index" json:"gym_approval_requester_email"`

	GymApprovalRole   string `gorm:"column:gym_approval_role;type:varchar(20);not null"                    json:"gym_approval_role"`
	GymApprovalStatus string `gorm:"column:gym_approval_status;type:varchar(12);not null;default:pending" json:"gym_approval_status"`

	GymApprovalCreatedAt time.Time      `gorm:"column:gym_approval_created_at;autoCreateTime" json:"gym_approval_created_at"`
	GymApprovalUpdatedAt *time.Time     `gorm:"column:gym_approval_updated_at;autoUpdateTime" json:"gym_approval_updated_at,omitempty"`
	GymApprovalDeletedAt gorm.DeletedAt `gorm:"column:gym_approval_deleted_at;index"          json:"gym_approval_deleted_at,omitempty"`
}

func (GymApprovalModel) TableName() string { return "gym_approvals" }
