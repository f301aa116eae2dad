package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"gymku_backend/internals/features/gyms/model"
)

// ErrNoTenant is returned when no approval exists for the email (and
// optional gym code).
var ErrNoTenant = errors.New("no gym approval for this email")

// TenantContext is the resolved gym membership of a user.
type TenantContext struct {
	GymCode string `json:"gym_code"`
	Role    string `json:"role"`
	Status  string `json:"status"`
}

type TenantDirectory struct {
	DB *gorm.DB
}

func NewTenantDirectory(db *gorm.DB) *TenantDirectory {
	return &TenantDirectory{DB: db}
}

// Resolve looks up the gym membership for an email. With an explicit gymCode
// the lookup is exact; without one it degrades to newest-approval-first,
// which is deterministic but can hide memberships at other gyms.
func (d *TenantDirectory) Resolve(ctx context.Context, email, gymCode string) (*TenantContext, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	q := d.DB.WithContext(ctx).
		Model(&model.GymApprovalModel{}).
		Where("LOWER(gym_approval_requester_email) = ?", email)

	if code := strings.TrimSpace(gymCode); code != "" {
		q = q.Where("gym_approval_gym_code = ?", code)
	}

	var row model.GymApprovalModel
	if err := q.Order("gym_approval_created_at DESC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoTenant
		}
		return nil, err
	}

	return &TenantContext{
		GymCode: row.GymApprovalGymCode,
		Role:    row.GymApprovalRole,
		Status:  row.GymApprovalStatus,
	}, nil
}

// Transition validates a status change on an approval. Approve is
// idempotent; anything else out of a terminal state is rejected.
func Transition(current, next string) error {
	switch next {
	case model.ApprovalStatusApproved, model.ApprovalStatusRejected:
	default:
		return fmt.Errorf("unknown approval status %q", next)
	}

	if current == next {
		return nil // idempotent re-apply
	}
	if current != model.ApprovalStatusPending {
		return fmt.Errorf("approval is already %s", current)
	}
	return nil
}
