package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"gymku_backend/internals/features/attendance/model"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// Timestamps are set in SQL because the raw statement bypasses GORM's
// autoCreateTime hooks; without them the first insert would leave
// attendance_created_at NULL and break later scans into time.Time.
const markUpsertSQL = `
	INSERT INTO attendances
		(attendance_gym_code, attendance_date, attendance_entries,
		 attendance_created_at, attendance_updated_at)
	VALUES (?, ?, ?::jsonb, now(), now())
	ON CONFLICT (attendance_gym_code, attendance_date) DO UPDATE
	SET attendance_entries = (
			SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
			FROM jsonb_array_elements(attendances.attendance_entries) AS e
			WHERE e->>'person_id' <> ?
		) || EXCLUDED.attendance_entries,
		attendance_updated_at = now()
`

// Mark writes one person's status for a day. A single INSERT ... ON CONFLICT
// statement creates the day document or replaces the person's entry inside
// it, so two concurrent marks for the same day cannot lose each other.
func (s *AttendanceService) Mark(ctx context.Context, gymCode string, day time.Time, entry model.AttendanceEntry) error {
	entry.Email = strings.ToLower(strings.TrimSpace(entry.Email))

	payload, err := sonic.Marshal([]model.AttendanceEntry{entry})
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).
		Exec(markUpsertSQL, gymCode, day.Format("2006-01-02"), string(payload), entry.PersonID).
		Error
}

// Day returns the document for one (gym, day), or nil when nothing was
// marked that day.
func (s *AttendanceService) Day(ctx context.Context, gymCode string, day time.Time) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_gym_code = ? AND attendance_date = ?", gymCode, day.Format("2006-01-02")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Range returns all day documents for a gym within [from, to] inclusive,
// oldest first.
func (s *AttendanceService) Range(ctx context.Context, gymCode string, from, to time.Time) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_gym_code = ? AND attendance_date BETWEEN ? AND ?",
			gymCode, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

// Entries decodes the JSONB list of a day document.
func Entries(row *model.AttendanceModel) ([]model.AttendanceEntry, error) {
	if row == nil || len(row.AttendanceEntries) == 0 {
		return nil, nil
	}
	var out []model.AttendanceEntry
	if err := sonic.Unmarshal(row.AttendanceEntries, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MatchEntry finds a person's entry in a day. Person-id match wins over the
// case-insensitive email match; email only applies when no id entry exists.
func MatchEntry(entries []model.AttendanceEntry, personID, email string) *model.AttendanceEntry {
	email = strings.ToLower(strings.TrimSpace(email))

	for i := range entries {
		if personID != "" && entries[i].PersonID == personID {
			return &entries[i]
		}
	}
	if email == "" {
		return nil
	}
	for i := range entries {
		if strings.ToLower(strings.TrimSpace(entries[i].Email)) == email {
			return &entries[i]
		}
	}
	return nil
}
