package dto

import (
	m "gymku_backend/internals/features/identity/model"
)

/* =============== REQUESTS =============== */

type RegisterEmployeeRequest struct {
	EmployeeEmail            string  `json:"employee_email"              validate:"required,email"`
	EmployeeFullName         string  `json:"employee_full_name"          validate:"required,min=2"`
	EmployeeDepartment       string  `json:"employee_department"         validate:"required,min=2"`
	EmployeePosition         string  `json:"employee_position"           validate:"required,min=2"`
	EmployeeWantsAdminAccess bool    `json:"employee_wants_admin_access"`
	EmployeeCreatedBy        *string `json:"employee_created_by"         validate:"omitempty,email"`
}

func (r RegisterEmployeeRequest) ToModel() *m.EmployeeModel {
	return &m.EmployeeModel{
		EmployeeEmail:            r.EmployeeEmail,
		EmployeeFullName:         r.EmployeeFullName,
		EmployeeDepartment:       r.EmployeeDepartment,
		EmployeePosition:         r.EmployeePosition,
		EmployeeWantsAdminAccess: r.EmployeeWantsAdminAccess,
		EmployeeCreatedBy:        r.EmployeeCreatedBy,
	}
}

/* =============== RESPONSES =============== */

type EmployeeResponse struct {
	EmployeeID               string `json:"employee_id"`
	EmployeeEmail            string `json:"employee_email"`
	EmployeeFullName         string `json:"employee_full_name"`
	EmployeeDepartment       string `json:"employee_department"`
	EmployeePosition         string `json:"employee_position"`
	EmployeeWantsAdminAccess bool   `json:"employee_wants_admin_access"`
}

func FromEmployeeModel(mo m.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:               mo.EmployeeID.String(),
		EmployeeEmail:            mo.EmployeeEmail,
		EmployeeFullName:         mo.EmployeeFullName,
		EmployeeDepartment:       mo.EmployeeDepartment,
		EmployeePosition:         mo.EmployeePosition,
		EmployeeWantsAdminAccess: mo.EmployeeWantsAdminAccess,
	}
}
