package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidate_Valid(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	p := &Project{
		ID:        "p1",
		Name:      "Customer Portal Redesign",
		Status:    ProjectPlanning,
		Priority:  PriorityHigh,
		StartDate: &start,
		EndDate:   &end,
	}
	require.NoError(t, p.Validate())
}

func TestProjectValidate_EndBeforeStart(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	p := &Project{ID: "p1", Name: "X", Status: ProjectPlanning, StartDate: &start, EndDate: &end}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestProjectValidate_BadStatus(t *testing.T) {
	p := &Project{ID: "p1", Name: "X", Status: "launched"}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestProjectValidate_CompletionOutOfRange(t *testing.T) {
	p := &Project{ID: "p1", Name: "X", Status: ProjectExecution, CompletionPercentage: 130}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion_percentage")
}

func TestProjectStatusIsActive(t *testing.T) {
	assert.True(t, ProjectInitiation.IsActive())
	assert.True(t, ProjectPlanning.IsActive())
	assert.True(t, ProjectExecution.IsActive())
	assert.True(t, ProjectMonitoring.IsActive())
	assert.True(t, ProjectClosure.IsActive())
	assert.False(t, ProjectCompleted.IsActive())
	assert.False(t, ProjectCancelled.IsActive())
}

func TestDisplayID_Truncates(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", DisplayID("a1b2c3d4-e5f6-7890"))
	assert.Equal(t, "short", DisplayID("short"))
}

func TestMilestoneEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	past := Milestone{DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, MilestoneOverdue, past.EffectiveStatus(now))

	future := Milestone{DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, MilestoneUpcoming, future.EffectiveStatus(now))

	// Stored status wins over the derived one.
	done := Milestone{
		DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:  MilestoneCompleted,
	}
	assert.Equal(t, MilestoneCompleted, done.EffectiveStatus(now))
}

func TestDerivePortfolioStats(t *testing.T) {
	projects := []Project{
		{Status: ProjectExecution},
		{Status: ProjectPlanning},
		{Status: ProjectCompleted},
	}

	stats := DerivePortfolioStats(projects)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 2, stats.ActiveProjects)
	assert.Equal(t, 1, stats.CompletedProjects)
	// 1/3 * 100 rounded to one decimal
	assert.InDelta(t, 33.3, stats.CompletionRate, 0.001)
}

func TestDerivePortfolioStats_EmptyAvoidsDivisionByZero(t *testing.T) {
	stats := DerivePortfolioStats(nil)

	assert.Zero(t, stats.TotalProjects)
	assert.Zero(t, stats.CompletionRate)
}

func TestParseDate_DateOnly(t *testing.T) {
	got, err := ParseDate("2025-03-15", "start_date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_RFC3339TruncatesToDay(t *testing.T) {
	got, err := ParseDate("2024-11-01T14:30:00Z", "start_date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_ZonelessTimestampTruncatesToDay(t *testing.T) {
	// The backend serializes naive datetimes without an offset.
	got, err := ParseDate("2024-01-15T00:00:00", "start_date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("01/02/2025", "end_date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestParseTimestamp_KeepsTimeOfDay(t *testing.T) {
	got, err := ParseTimestamp("2024-11-01T14:30:00Z", "created_at")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 1, 14, 30, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2024-11-01T14:30:00", "created_at")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 1, 14, 30, 0, 0, time.UTC), got)

	_, err = ParseTimestamp("yesterday", "created_at")
	require.Error(t, err)
}

func TestParseOptionalDate_NilAndEmpty(t *testing.T) {
	got, err := ParseOptionalDate(nil, "due_date")
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseOptionalDate(&empty, "due_date")
	require.NoError(t, err)
	assert.Nil(t, got)
}
