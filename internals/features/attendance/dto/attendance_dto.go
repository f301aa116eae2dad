package dto

import (
	m "gymku_backend/internals/features/attendance/model"
)

/* =============== REQUESTS =============== */

type MarkAttendanceRequest struct {
	AttendanceDate string `json:"attendance_date" validate:"required,datetime=2006-01-02"`

	PersonID string `json:"person_id" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Name     string `json:"name"      validate:"omitempty"`
	Status   string `json:"status"    validate:"required"` // checked against the status list in the controller
}

func (r MarkAttendanceRequest) ToEntry() m.AttendanceEntry {
	return m.AttendanceEntry{
		PersonID: r.PersonID,
		Email:    r.Email,
		Name:     r.Name,
		Status:   r.Status,
	}
}

/* =============== RESPONSES =============== */

type AttendanceDayResponse struct {
	AttendanceGymCode string              `json:"attendance_gym_code"`
	AttendanceDate    string              `json:"attendance_date"`
	Entries           []m.AttendanceEntry `json:"entries"`
}
