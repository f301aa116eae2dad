package dto

import (
	"github.com/shopspring/decimal"

	m "gymku_backend/internals/features/payroll/model"
	s "gymku_backend/internals/features/payroll/service"
)

/* =============== REQUESTS =============== */

type SalaryCategoryRequest struct {
	Category string          `json:"category" validate:"required,min=1"`
	Amount   decimal.Decimal `json:"amount"   validate:"required"`
}

type CreateSalaryAssignmentRequest struct {
	SalaryAssignmentPersonID    string                  `json:"salary_assignment_person_id"    validate:"required"`
	SalaryAssignmentPersonEmail string                  `json:"salary_assignment_person_email" validate:"required,email"`
	SalaryAssignmentPersonName  string                  `json:"salary_assignment_person_name"  validate:"required,min=2"`
	SalaryAssignmentRole        string                  `json:"salary_assignment_role"         validate:"required,oneof=staff trainer"`
	SalaryAssignmentCategories  []SalaryCategoryRequest `json:"salary_assignment_categories"   validate:"required,min=1,dive"`
}

func (r CreateSalaryAssignmentRequest) Categories() []m.SalaryCategory {
	out := make([]m.SalaryCategory, 0, len(r.SalaryAssignmentCategories))
	for _, c := range r.SalaryAssignmentCategories {
		out = append(out, m.SalaryCategory{Category: c.Category, Amount: c.Amount})
	}
	return out
}

type SnapshotPayrollRequest struct {
	Role  string `json:"role"  validate:"required,oneof=staff trainer"`
	Month int    `json:"month" validate:"required,min=1,max=12"`
	Year  int    `json:"year"  validate:"required,gte=2000,lte=2100"`
}

/* =============== RESPONSES =============== */

type SalaryAssignmentResponse struct {
	SalaryAssignmentID          string             `json:"salary_assignment_id"`
	SalaryAssignmentGymCode     string             `json:"salary_assignment_gym_code"`
	SalaryAssignmentPersonID    string             `json:"salary_assignment_person_id"`
	SalaryAssignmentPersonEmail string             `json:"salary_assignment_person_email"`
	SalaryAssignmentPersonName  string             `json:"salary_assignment_person_name"`
	SalaryAssignmentRole        string             `json:"salary_assignment_role"`
	SalaryAssignmentCategories  []m.SalaryCategory `json:"salary_assignment_categories"`
	SalaryAssignmentTotal       string             `json:"salary_assignment_total"`
}

func FromAssignment(mo m.SalaryAssignmentModel, categories []m.SalaryCategory) SalaryAssignmentResponse {
	return SalaryAssignmentResponse{
		SalaryAssignmentID:          mo.SalaryAssignmentID.String(),
		SalaryAssignmentGymCode:     mo.SalaryAssignmentGymCode,
		SalaryAssignmentPersonID:    mo.SalaryAssignmentPersonID,
		SalaryAssignmentPersonEmail: mo.SalaryAssignmentPersonEmail,
		SalaryAssignmentPersonName:  mo.SalaryAssignmentPersonName,
		SalaryAssignmentRole:        mo.SalaryAssignmentRole,
		SalaryAssignmentCategories:  categories,
		SalaryAssignmentTotal:       mo.SalaryAssignmentTotal.StringFixed(2),
	}
}

// PayrollRowResponse rounds money to two fraction digits; internal
// computation keeps full precision.
type PayrollRowResponse struct {
	PersonID     string                 `json:"person_id"`
	PersonName   string                 `json:"person_name"`
	PersonEmail  string                 `json:"person_email"`
	Gross        string                 `json:"gross"`
	Deducted     string                 `json:"deducted"`
	Net          string                 `json:"net"`
	Days         []string               `json:"days"`
	Counts       s.ClassificationCounts `json:"counts"`
	FromSnapshot bool                   `json:"from_snapshot"`
}

func FromPayrollRow(row s.PayrollRow) PayrollRowResponse {
	return PayrollRowResponse{
		PersonID:     row.PersonID,
		PersonName:   row.PersonName,
		PersonEmail:  row.PersonEmail,
		Gross:        row.Gross.StringFixed(2),
		Deducted:     row.Deducted.StringFixed(2),
		Net:          row.Net.StringFixed(2),
		Days:         row.Days,
		Counts:       row.Counts,
		FromSnapshot: row.FromSnapshot,
	}
}
