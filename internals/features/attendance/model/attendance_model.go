package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceEntry is one person's mark inside a day document.
type AttendanceEntry struct {
	PersonID string `json:"person_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Status   string `json:"status"`
}

// AttendanceModel holds one row per (gym code, calendar day); the entry list
// lives in JSONB and is replaced per person id by a single upsert statement.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceGymCode string    `gorm:"column:attendance_gym_code;type:varchar(40);not null;uniqueIndex:uq_attendance_day,priority:1" json:"attendance_gym_code"`
	AttendanceDate    time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_day,priority:2"            json:"attendance_date"`

	AttendanceEntries datatypes.JSON `gorm:"column:attendance_entries;type:jsonb;not null;default:'[]'" json:"attendance_entries"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;not null;default:now();autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
