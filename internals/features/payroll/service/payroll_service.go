package service

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymku_backend/internals/constants"
	attendanceModel "gymku_backend/internals/features/attendance/model"
	attendanceService "gymku_backend/internals/features/attendance/service"
	"gymku_backend/internals/features/payroll/model"
)

/* ===============================
   Divisor policy
=================================*/

// DivisorPolicy decides what a month's gross is divided by to get the
// per-day rate.
type DivisorPolicy string

const (
	// PolicyFixed30 divides by 30 regardless of the month length. This is
	// the historical behavior of the back office.
	PolicyFixed30 DivisorPolicy = "fixed30"
	// PolicyCalendar divides by the actual number of days in the month.
	PolicyCalendar DivisorPolicy = "calendar"
)

func ResolvePolicy(s string) DivisorPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PolicyCalendar):
		return PolicyCalendar
	default:
		return PolicyFixed30
	}
}

func (p DivisorPolicy) Divisor(daysInMonth int) decimal.Decimal {
	if p == PolicyCalendar {
		return decimal.NewFromInt(int64(daysInMonth))
	}
	return decimal.NewFromInt(30)
}

/* ===============================
   Row types
=================================*/

// DayStatuses is the per-day classification for a month, index 0 = day 1.
type DayStatuses []string

type ClassificationCounts struct {
	Present     int `json:"present"`
	Absent      int `json:"absent"`
	Leave       int `json:"leave"`
	HalfDay     int `json:"half_day"`
	CasualLeave int `json:"casual_leave"`
	SickLeave   int `json:"sick_leave"`
	NotMarked   int `json:"not_marked"`
}

// PayrollRow is one person's computed month.
type PayrollRow struct {
	PersonID    string               `json:"person_id"`
	PersonName  string               `json:"person_name"`
	PersonEmail string               `json:"person_email"`
	Gross       decimal.Decimal      `json:"gross"`
	Deducted    decimal.Decimal      `json:"deducted"`
	Net         decimal.Decimal      `json:"net"`
	Days        DayStatuses          `json:"days"`
	Counts      ClassificationCounts `json:"counts"`
	FromSnapshot bool                `json:"from_snapshot"`
}

/* ===============================
   Pure aggregation core
=================================*/

// PersonInput is a decoded salary assignment.
type PersonInput struct {
	PersonID string
	Name     string
	Email    string
	Gross    decimal.Decimal
}

// ClassifyMonth walks day 1..daysInMonth and classifies each day from the
// attendance documents (keyed by day of month). Days without a matching
// entry are Not Marked.
func ClassifyMonth(p PersonInput, byDay map[int][]attendanceModel.AttendanceEntry, daysInMonth int) (DayStatuses, ClassificationCounts) {
	days := make(DayStatuses, daysInMonth)
	var counts ClassificationCounts

	for d := 1; d <= daysInMonth; d++ {
		status := constants.AttendanceNotMarked
		if entry := attendanceService.MatchEntry(byDay[d], p.PersonID, p.Email); entry != nil {
			status = entry.Status
		}
		days[d-1] = status

		switch status {
		case constants.AttendancePresent:
			counts.Present++
		case constants.AttendanceAbsent:
			counts.Absent++
		case constants.AttendanceLeave:
			counts.Leave++
		case constants.AttendanceHalfDay:
			counts.HalfDay++
		case constants.AttendanceCasualLeave:
			counts.CasualLeave++
		case constants.AttendanceSickLeave:
			counts.SickLeave++
		default:
			counts.NotMarked++
		}
	}
	return days, counts
}

// ComputeRow derives the money figures: perDayRate = gross / divisor,
// deducted = perDayRate * absent days, net = gross - deducted. Rounding
// happens at the DTO boundary, not here.
func ComputeRow(p PersonInput, days DayStatuses, counts ClassificationCounts, policy DivisorPolicy) PayrollRow {
	divisor := policy.Divisor(len(days))
	perDay := decimal.Zero
	if !divisor.IsZero() {
		perDay = p.Gross.Div(divisor)
	}
	deducted := perDay.Mul(decimal.NewFromInt(int64(counts.Absent)))

	return PayrollRow{
		PersonID:    p.PersonID,
		PersonName:  p.Name,
		PersonEmail: p.Email,
		Gross:       p.Gross,
		Deducted:    deducted,
		Net:         p.Gross.Sub(deducted),
		Days:        days,
		Counts:      counts,
	}
}

/* ===============================
   DB-facing aggregator
=================================*/

type PayrollService struct {
	DB         *gorm.DB
	Attendance *attendanceService.AttendanceService
}

func NewPayrollService(db *gorm.DB) *PayrollService {
	return &PayrollService{DB: db, Attendance: attendanceService.NewAttendanceService(db)}
}

// Aggregate produces one row per salaried person of the role for the month.
// People without a salary assignment do not appear. Stored snapshots win
// over recomputation for the money figures and counts.
func (s *PayrollService) Aggregate(ctx context.Context, gymCode, role string, month, year int, policy DivisorPolicy) ([]PayrollRow, error) {
	var assignments []model.SalaryAssignmentModel
	if err := s.DB.WithContext(ctx).
		Where("salary_assignment_gym_code = ? AND salary_assignment_role = ?", gymCode, role).
		Order("salary_assignment_person_name ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	docs, err := s.Attendance.Range(ctx, gymCode, first, last)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int][]attendanceModel.AttendanceEntry, len(docs))
	for i := range docs {
		entries, err := attendanceService.Entries(&docs[i])
		if err != nil {
			return nil, err
		}
		byDay[docs[i].AttendanceDate.Day()] = entries
	}

	var snapshots []model.PayrollSummaryModel
	if err := s.DB.WithContext(ctx).
		Where("payroll_summary_gym_code = ? AND payroll_summary_month = ? AND payroll_summary_year = ?",
			gymCode, month, year).
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	snapByPerson := make(map[string]model.PayrollSummaryModel, len(snapshots))
	for _, sn := range snapshots {
		snapByPerson[sn.PayrollSummaryPersonID] = sn
	}

	rows := make([]PayrollRow, 0, len(assignments))
	for _, a := range assignments {
		person := PersonInput{
			PersonID: a.SalaryAssignmentPersonID,
			Name:     a.SalaryAssignmentPersonName,
			Email:    a.SalaryAssignmentPersonEmail,
			Gross:    a.SalaryAssignmentTotal,
		}

		days, counts := ClassifyMonth(person, byDay, daysInMonth)
		row := ComputeRow(person, days, counts, policy)

		if sn, ok := snapByPerson[person.PersonID]; ok {
			row.Gross = sn.PayrollSummaryGross
			row.Deducted = sn.PayrollSummaryDeducted
			row.Net = sn.PayrollSummaryNet
			row.Counts = ClassificationCounts{
				Present:     sn.PayrollSummaryPresentDays,
				Absent:      sn.PayrollSummaryAbsentDays,
				Leave:       sn.PayrollSummaryLeaveDays,
				HalfDay:     sn.PayrollSummaryHalfDays,
				CasualLeave: sn.PayrollSummaryCasualLeaveDays,
				SickLeave:   sn.PayrollSummarySickLeaveDays,
				NotMarked:   sn.PayrollSummaryNotMarkedDays,
			}
			row.FromSnapshot = true
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// Snapshot computes the month and persists one summary per person,
// upserting on (gym, person, month, year) so a re-run overwrites instead of
// duplicating.
func (s *PayrollService) Snapshot(ctx context.Context, gymCode, role string, month, year int, policy DivisorPolicy) ([]PayrollRow, error) {
	rows, err := s.Aggregate(ctx, gymCode, role, month, year, policy)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sn := model.PayrollSummaryModel{
			PayrollSummaryGymCode:         gymCode,
			PayrollSummaryPersonID:        row.PersonID,
			PayrollSummaryMonth:           month,
			PayrollSummaryYear:            year,
			PayrollSummaryGross:           row.Gross,
			PayrollSummaryDeducted:        row.Deducted,
			PayrollSummaryNet:             row.Net,
			PayrollSummaryPresentDays:     row.Counts.Present,
			PayrollSummaryAbsentDays:      row.Counts.Absent,
			PayrollSummaryLeaveDays:       row.Counts.Leave,
			PayrollSummaryHalfDays:        row.Counts.HalfDay,
			PayrollSummaryCasualLeaveDays: row.Counts.CasualLeave,
			PayrollSummarySickLeaveDays:   row.Counts.SickLeave,
			PayrollSummaryNotMarkedDays:   row.Counts.NotMarked,
		}
		if err := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "payroll_summary_gym_code"},
					{Name: "payroll_summary_person_id"},
					{Name: "payroll_summary_month"},
					{Name: "payroll_summary_year"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"payroll_summary_gross", "payroll_summary_deducted", "payroll_summary_net",
					"payroll_summary_present_days", "payroll_summary_absent_days",
					"payroll_summary_leave_days", "payroll_summary_half_days",
					"payroll_summary_casual_leave_days", "payroll_summary_sick_leave_days",
					"payroll_summary_not_marked_days",
				}),
			}).
			Create(&sn).Error; err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Categories decodes the JSONB line items of an assignment.
func Categories(a *model.SalaryAssignmentModel) ([]model.SalaryCategory, error) {
	if a == nil || len(a.SalaryAssignmentCategories) == 0 {
		return nil, nil
	}
	var out []model.SalaryCategory
	if err := sonic.Unmarshal(a.SalaryAssignmentCategories, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeCategories is the inverse of Categories.
func EncodeCategories(categories []model.SalaryCategory) ([]byte, error) {
	return sonic.Marshal(categories)
}
