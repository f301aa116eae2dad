package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel is the self-registration record. Existence of a row (and its
// admin-access flag) influences the role the identity resolver derives.
type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"employee_id"`

	EmployeeEmail      string `gorm:"column:employee_email;type:text;not null;uniqueIndex" json:"employee_email"`
	EmployeeFullName   string `gorm:"column:employee_full_name;type:text;not null"         json:"employee_full_name"`
	EmployeeDepartment string `gorm:"column:employee_department;type:text;not null"        json:"employee_department"`
	EmployeePosition   string `gorm:"column:employee_position;type:text;not null"          json:"employee_position"`

	// Asked-for admin access at registration time; grants admin (vs staff)
	// when no provider metadata role is present.
	EmployeeWantsAdminAccess bool `gorm:"column:employee_wants_admin_access;not null;default:false" json:"employee_wants_admin_access"`

	EmployeeCreatedBy *string `gorm:"column:employee_created_by;type:text" json:"employee_created_by,omitempty"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time     `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at,omitempty"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index"          json:"employee_deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }
