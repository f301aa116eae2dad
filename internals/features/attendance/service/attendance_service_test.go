package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymku_backend/internals/features/attendance/model"
)

func TestMatchEntry_IDWinsOverEmail(t *testing.T) {
	// Deliberately conflicting fixtures: the id-entry carries somebody
	// else's email, the email-entry carries somebody else's id.
	entries := []model.AttendanceEntry{
		{PersonID: "other", Email: "asha@gym.io", Status: "Absent"},
		{PersonID: "p1", Email: "other@gym.io", Status: "Present"},
	}

	got := MatchEntry(entries, "p1", "asha@gym.io")
	require.NotNil(t, got)
	assert.Equal(t, "Present", got.Status, "person-id match must win over email match")
}

func TestMatchEntry_EmailFallback(t *testing.T) {
	entries := []model.AttendanceEntry{
		{PersonID: "someone", Email: "Asha@Gym.IO", Status: "Leave"},
	}

	got := MatchEntry(entries, "p1", "asha@gym.io")
	require.NotNil(t, got)
	assert.Equal(t, "Leave", got.Status, "email match is case-insensitive")
}

func TestMatchEntry_NoMatch(t *testing.T) {
	entries := []model.AttendanceEntry{
		{PersonID: "someone", Email: "other@gym.io", Status: "Present"},
	}

	assert.Nil(t, MatchEntry(entries, "p1", "asha@gym.io"))
	assert.Nil(t, MatchEntry(nil, "p1", "asha@gym.io"))
	assert.Nil(t, MatchEntry(entries, "", ""))
}

func TestEntries_Decode(t *testing.T) {
	row := &model.AttendanceModel{
		AttendanceEntries: []byte(`[{"person_id":"p1","email":"a@b.c","status":"Half Day"}]`),
	}
	entries, err := Entries(row)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Half Day", entries[0].Status)

	empty, err := Entries(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestMarkUpsert_SetsTimestampsOnInsert(t *testing.T) {
	// The raw statement bypasses GORM's autoCreateTime hook, so the SQL
	// itself has to populate both timestamps or the first insert leaves
	// created_at NULL and the Day/Range scan fails.
	require.Contains(t, markUpsertSQL, "attendance_created_at")
	require.Contains(t, markUpsertSQL, "attendance_updated_at")
	assert.Contains(t, markUpsertSQL, "VALUES (?, ?, ?::jsonb, now(), now())")
}
