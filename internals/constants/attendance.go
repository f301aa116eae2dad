package constants

// Attendance day statuses as entered by the admin panel.
const (
	AttendancePresent     = "Present"
	AttendanceAbsent      = "Absent"
	AttendanceLeave       = "Leave"
	AttendanceHalfDay     = "Half Day"
	AttendanceCasualLeave = "Casual Leave"
	AttendanceSickLeave   = "Sick Leave"

	// Synthetic status used in payroll rows for days without any mark.
	AttendanceNotMarked = "Not Marked"
)

var AttendanceStatuses = []string{
	AttendancePresent,
	AttendanceAbsent,
	AttendanceLeave,
	AttendanceHalfDay,
	AttendanceCasualLeave,
	AttendanceSickLeave,
}

func IsValidAttendanceStatus(s string) bool {
	for _, v := range AttendanceStatuses {
		if v == s {
			return true
		}
	}
	return false
}
