package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolveWindow_EmptyCollectionDefaultsToThreeMonths(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	w := ResolveWindow(WindowInput{Now: now})

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveWindow_PadsWeekAroundExtremes(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{StartDate: datePtr(2025, 3, 15), EndDate: datePtr(2025, 4, 20)},
		{StartDate: datePtr(2025, 4, 1), EndDate: datePtr(2025, 5, 2)},
	}

	w := ResolveWindow(WindowInput{Now: now, Tasks: tasks})

	// Earliest Mar 15 - 7d, latest May 2 + 7d.
	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveWindow_MilestoneDatesExtendTheWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{StartDate: datePtr(2025, 4, 1), EndDate: datePtr(2025, 4, 10)},
	}
	milestones := []domain.Milestone{
		{DueDate: time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)},
	}

	w := ResolveWindow(WindowInput{Now: now, Tasks: tasks, Milestones: milestones})

	assert.Equal(t, time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveWindow_TasksWithoutDatesIgnored(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{Name: "undated"},
		{StartDate: datePtr(2025, 6, 1)}, // start only still counts
	}

	w := ResolveWindow(WindowInput{Now: now, Tasks: tasks})

	assert.Equal(t, time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveWindow_TimeOfDayNoiseDoesNotShiftTheWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 4, 1, 23, 59, 59, 0, time.UTC)
	tasks := []domain.Task{{StartDate: &late, EndDate: &late}}

	w := ResolveWindow(WindowInput{Now: now, Tasks: tasks})

	assert.Equal(t, time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC), w.End)
}

func TestWindowDays_Inclusive(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 10, w.Days())
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysBetween(a, b))
	assert.Equal(t, -7, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// Hours are discarded before dividing.
	noisy := time.Date(2025, 1, 8, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysBetween(a, noisy))
}
