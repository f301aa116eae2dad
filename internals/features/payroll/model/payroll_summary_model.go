package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollSummaryModel is the persisted monthly snapshot for one person.
// When a snapshot exists its figures win over recomputation.
type PayrollSummaryModel struct {
	PayrollSummaryID uuid.UUID `gorm:"column:payroll_summary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payroll_summary_id"`

	PayrollSummaryGymCode  string `gorm:"column:payroll_summary_gym_code;type:varchar(40);not null;uniqueIndex:uq_payroll_month,priority:1" json:"payroll_summary_gym_code"`
	PayrollSummaryPersonID string `gorm:"column:payroll_summary_person_id;type:text;not null;uniqueIndex:uq_payroll_month,priority:2"       json:"payroll_summary_person_id"`
	PayrollSummaryMonth    int    `gorm:"column:payroll_summary_month;type:smallint;not null;uniqueIndex:uq_payroll_month,priority:3"       json:"payroll_summary_month"`
	PayrollSummaryYear     int    `gorm:"column:payroll_summary_year;type:smallint;not null;uniqueIndex:uq_payroll_month,priority:4"        json:"payroll_summary_year"`

	PayrollSummaryGross    decimal.Decimal `gorm:"column:payroll_summary_gross;type:numeric(12,2);not null"    json:"payroll_summary_gross"`
	PayrollSummaryDeducted decimal.Decimal `gorm:"column:payroll_summary_deducted;type:numeric(12,2);not null" json:"payroll_summary_deducted"`
	PayrollSummaryNet      decimal.Decimal `gorm:"column:payroll_summary_net;type:numeric(12,2);not null"      json:"payroll_summary_net"`

	PayrollSummaryPresentDays     int `gorm:"column:payroll_summary_present_days;not null;default:0"      json:"payroll_summary_present_days"`
	PayrollSummaryAbsentDays      int `gorm:"column:payroll_summary_absent_days;not null;default:0"       json:"payroll_summary_absent_days"`
	PayrollSummaryLeaveDays       int `gorm:"column:payroll_summary_leave_days;not null;default:0"        json:"payroll_summary_leave_days"`
	PayrollSummaryHalfDays        int `gorm:"column:payroll_summary_half_days;not null;default:0"         json:"payroll_summary_half_days"`
	PayrollSummaryCasualLeaveDays int `gorm:"column:payroll_summary_casual_leave_days;not null;default:0" json:"payroll_summary_casual_leave_days"`
	PayrollSummarySickLeaveDays   int `gorm:"column:payroll_summary_sick_leave_days;not null;default:0"   json:"payroll_summary_sick_leave_days"`
	PayrollSummaryNotMarkedDays   int `gorm:"column:payroll_summary_not_marked_days;not null;default:0"   json:"payroll_summary_not_marked_days"`

	PayrollSummaryCreatedAt time.Time  `gorm:"column:payroll_summary_created_at;autoCreateTime" json:"payroll_summary_created_at"`
	PayrollSummaryUpdatedAt *time.Time `gorm:"column:payroll_summary_updated_at;autoUpdateTime" json:"payroll_summary_updated_at,omitempty"`
}

func (PayrollSummaryModel) TableName() string { return "payroll_summaries" }
