package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymku_backend/internals/constants"
	attendanceModel "gymku_backend/internals/features/attendance/model"
)

func person(gross int64) PersonInput {
	return PersonInput{
		PersonID: "p1",
		Name:     "Asha Rao",
		Email:    "asha@gym.io",
		Gross:    decimal.NewFromInt(gross),
	}
}

func absentDays(days ...int) map[int][]attendanceModel.AttendanceEntry {
	byDay := make(map[int][]attendanceModel.AttendanceEntry)
	for _, d := range days {
		byDay[d] = []attendanceModel.AttendanceEntry{
			{PersonID: "p1", Email: "asha@gym.io", Status: constants.AttendanceAbsent},
		}
	}
	return byDay
}

func TestComputeRow_DeductionArithmetic(t *testing.T) {
	// gross 3000, 3 absents, fixed 30 divisor: perDayRate 100,
	// deducted 300.00, net 2700.00.
	p := person(3000)
	days, counts := ClassifyMonth(p, absentDays(3, 10, 17), 31)
	require.Equal(t, 3, counts.Absent)

	row := ComputeRow(p, days, counts, PolicyFixed30)
	assert.Equal(t, "300.00", row.Deducted.StringFixed(2))
	assert.Equal(t, "2700.00", row.Net.StringFixed(2))
}

func TestComputeRow_CalendarPolicy(t *testing.T) {
	p := person(3100)
	days, counts := ClassifyMonth(p, absentDays(1), 31)

	row := ComputeRow(p, days, counts, PolicyCalendar)
	assert.Equal(t, "100.00", row.Deducted.StringFixed(2), "3100/31 per day")
	assert.Equal(t, "3000.00", row.Net.StringFixed(2))
}

func TestClassifyMonth_NoRecordsMeansAllNotMarked(t *testing.T) {
	p := person(3000)
	days, counts := ClassifyMonth(p, nil, 30)

	require.Len(t, days, 30)
	for _, s := range days {
		assert.Equal(t, constants.AttendanceNotMarked, s)
	}
	assert.Equal(t, 30, counts.NotMarked)

	row := ComputeRow(p, days, counts, PolicyFixed30)
	assert.True(t, row.Deducted.IsZero(), "no absents, no deduction")
	assert.Equal(t, "3000.00", row.Net.StringFixed(2))
}

func TestClassifyMonth_CountsEveryStatus(t *testing.T) {
	p := person(3000)
	byDay := map[int][]attendanceModel.AttendanceEntry{
		1: {{PersonID: "p1", Status: constants.AttendancePresent}},
		2: {{PersonID: "p1", Status: constants.AttendanceAbsent}},
		3: {{PersonID: "p1", Status: constants.AttendanceLeave}},
		4: {{PersonID: "p1", Status: constants.AttendanceHalfDay}},
		5: {{PersonID: "p1", Status: constants.AttendanceCasualLeave}},
		6: {{PersonID: "p1", Status: constants.AttendanceSickLeave}},
	}

	days, counts := ClassifyMonth(p, byDay, 28)
	assert.Equal(t, constants.AttendancePresent, days[0])
	assert.Equal(t, ClassificationCounts{
		Present: 1, Absent: 1, Leave: 1, HalfDay: 1, CasualLeave: 1, SickLeave: 1,
		NotMarked: 22,
	}, counts)
}

func TestClassifyMonth_IDPrecedenceInsideDay(t *testing.T) {
	p := person(3000)
	byDay := map[int][]attendanceModel.AttendanceEntry{
		// email-only entry says Absent, id entry says Present
		1: {
			{PersonID: "someone-else", Email: "asha@gym.io", Status: constants.AttendanceAbsent},
			{PersonID: "p1", Email: "stale@gym.io", Status: constants.AttendancePresent},
		},
	}

	days, counts := ClassifyMonth(p, byDay, 30)
	assert.Equal(t, constants.AttendancePresent, days[0])
	assert.Equal(t, 0, counts.Absent)
}

func TestResolvePolicy(t *testing.T) {
	assert.Equal(t, PolicyFixed30, ResolvePolicy(""))
	assert.Equal(t, PolicyFixed30, ResolvePolicy("fixed30"))
	assert.Equal(t, PolicyFixed30, ResolvePolicy("nonsense"))
	assert.Equal(t, PolicyCalendar, ResolvePolicy("calendar"))
	assert.Equal(t, PolicyCalendar, ResolvePolicy(" Calendar "))
}

func TestDivisorPolicy_Divisor(t *testing.T) {
	assert.Equal(t, "30", PolicyFixed30.Divisor(28).String())
	assert.Equal(t, "28", PolicyCalendar.Divisor(28).String())
}
