package dto

import (
	m "gymku_backend/internals/features/gyms/model"
)

/* =============== REQUESTS =============== */

type CreateApprovalRequest struct {
	GymApprovalGymCode        string `json:"gym_approval_gym_code"         validate:"required,min=2,max=40"`
	GymApprovalAdminEmail     string `json:"gym_approval_admin_email"      validate:"required,email"`
	GymApprovalRequesterEmail string `json:"gym_approval_requester_email"  validate:"required,email"`
	GymApprovalRole           string `json:"gym_approval_role"             validate:"required,oneof=staff trainer"`
}

func (r CreateApprovalRequest) ToModel() *m.GymApprovalModel {
	return &m.GymApprovalModel{
		GymApprovalGymCode:        r.GymApprovalGymCode,
		GymApprovalAdminEmail:     r.GymApprovalAdminEmail,
		GymApprovalRequesterEmail: r.GymApprovalRequesterEmail,
		GymApprovalRole:           r.GymApprovalRole,
		GymApprovalStatus:         m.ApprovalStatusPending,
	}
}

type UpdateApprovalStatusRequest struct {
	GymApprovalStatus string `json:"gym_approval_status" validate:"required,oneof=approved rejected"`
}

/* =============== RESPONSES =============== */

type ApprovalResponse struct {
	GymApprovalID             string `json:"gym_approval_id"`
	GymApprovalGymCode        string `json:"gym_approval_gym_code"`
	GymApprovalAdminEmail     string `json:"gym_approval_admin_email"`
	GymApprovalRequesterEmail string `json:"gym_approval_requester_email"`
	GymApprovalRole           string `json:"gym_approval_role"`
	GymApprovalStatus         string `json:"gym_approval_status"`
}

func FromModel(mo m.GymApprovalModel) ApprovalResponse {
	return ApprovalResponse{
		GymApprovalID:             mo.GymApprovalID.String(),
		GymApprovalGymCode:        mo.GymApprovalGymCode,
		GymApprovalAdminEmail:     mo.GymApprovalAdminEmail,
		GymApprovalRequesterEmail: mo.GymApprovalRequesterEmail,
		GymApprovalRole:           mo.GymApprovalRole,
		GymApprovalStatus:         mo.GymApprovalStatus,
	}
}
