package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SalaryCategory is one line item of an assignment ("Base", "HRA", ...).
type SalaryCategory struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SalaryAssignmentModel holds the salary line items of one staff/trainer at
// one gym. The stored total is always the sum of the categories; deleting
// the last category deletes the row itself.
type SalaryAssignmentModel struct {
	SalaryAssignmentID uuid.UUID `gorm:"column:salary_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"salary_assignment_id"`

	SalaryAssignmentGymCode  string `gorm:"column:salary_assignment_gym_code;type:varchar(40);not null;uniqueIndex:uq_salary_person,priority:1" json:"salary_assignment_gym_code"`
	SalaryAssignmentPersonID string `gorm:"column:salary_assignment_person_id;type:text;not null;uniqueIndex:uq_salary_person,priority:2"       json:"salary_assignment_person_id"`

	SalaryAssignmentPersonEmail string `gorm:"column:salary_assignment_person_email;type:text;not null;index" json:"salary_assignment_person_email"`
	SalaryAssignmentPersonName  string `gorm:"column:salary_assignment_person_name;type:text;not null"        json:"salary_assignment_person_name"`
	SalaryAssignmentRole        string `gorm:"column:salary_assignment_role;type:varchar(20);not null;index"  json:"salary_assignment_role"`

	SalaryAssignmentCategories datatypes.JSON  `gorm:"column:salary_assignment_categories;type:jsonb;not null;default:'[]'" json:"salary_assignment_categories"`
	SalaryAssignmentTotal      decimal.Decimal `gorm:"column:salary_assignment_total;type:numeric(12,2);not null"           json:"salary_assignment_total"`

	SalaryAssignmentCreatedAt time.Time      `gorm:"column:salary_assignment_created_at;autoCreateTime" json:"salary_assignment_created_at"`
	SalaryAssignmentUpdatedAt *time.Time     `gorm:"column:salary_assignment_updated_at;autoUpdateTime" json:"salary_assignment_updated_at,omitempty"`
	SalaryAssignmentDeletedAt gorm.DeletedAt `gorm:"column:salary_assignment_deleted_at;index"          json:"salary_assignment_deleted_at,omitempty"`
}

func (SalaryAssignmentModel) TableName() string { return "salary_assignments" }
