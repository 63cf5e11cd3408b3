package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() Window {
	return Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), // 40 days inclusive
	}
}

func TestPositionInterval_InsideWindow(t *testing.T) {
	w := testWindow()
	total := w.Days() // 40

	span, ok := PositionInterval(datePtr(2025, 3, 11), datePtr(2025, 3, 20), w, total)

	require.True(t, ok)
	// 10 days offset, 10 days duration inclusive: 25% each.
	assert.InDelta(t, 25.0, span.OffsetPercent, 0.001)
	assert.InDelta(t, 25.0, span.WidthPercent, 0.001)
}

func TestPositionInterval_MissingDateHasNoPosition(t *testing.T) {
	w := testWindow()

	_, ok := PositionInterval(nil, datePtr(2025, 3, 20), w, w.Days())
	assert.False(t, ok)

	_, ok = PositionInterval(datePtr(2025, 3, 11), nil, w, w.Days())
	assert.False(t, ok)
}

func TestPositionInterval_SingleDayGetsMinimumWidth(t *testing.T) {
	w := testWindow()

	span, ok := PositionInterval(datePtr(2025, 3, 5), datePtr(2025, 3, 5), w, w.Days())

	require.True(t, ok)
	assert.Greater(t, span.WidthPercent, 0.0)
	assert.InDelta(t, 2.5, span.WidthPercent, 0.001) // 1/40
}

func TestPositionInterval_ClampsAtRightEdge(t *testing.T) {
	w := testWindow()

	// Runs past the window end: width is cut at 100 - offset.
	span, ok := PositionInterval(datePtr(2025, 4, 5), datePtr(2025, 5, 20), w, w.Days())

	require.True(t, ok)
	assert.InDelta(t, 87.5, span.OffsetPercent, 0.001) // 35/40
	assert.InDelta(t, 12.5, span.WidthPercent, 0.001)
	assert.LessOrEqual(t, span.OffsetPercent+span.WidthPercent, 100.0)
}

func TestPositionInterval_EntirelyAfterWindowCollapsesAtBoundary(t *testing.T) {
	w := testWindow()

	span, ok := PositionInterval(datePtr(2025, 6, 1), datePtr(2025, 6, 10), w, w.Days())

	require.True(t, ok)
	assert.Equal(t, 100.0, span.OffsetPercent)
	assert.Equal(t, 0.0, span.WidthPercent)
}

func TestPositionInterval_EntirelyBeforeWindowCollapsesAtBoundary(t *testing.T) {
	w := testWindow()

	span, ok := PositionInterval(datePtr(2025, 1, 1), datePtr(2025, 1, 10), w, w.Days())

	require.True(t, ok)
	assert.Equal(t, 0.0, span.OffsetPercent)
	assert.Equal(t, 0.0, span.WidthPercent)
}

func TestPositionInterval_StartBeforeWindowClampsToLeftEdge(t *testing.T) {
	w := testWindow()

	span, ok := PositionInterval(datePtr(2025, 2, 20), datePtr(2025, 3, 10), w, w.Days())

	require.True(t, ok)
	assert.Equal(t, 0.0, span.OffsetPercent)
	assert.Greater(t, span.WidthPercent, 0.0)
}

// Offsets must strictly increase with start dates across a 40-day span.
func TestPositionInterval_OffsetsIncreaseWithStartDates(t *testing.T) {
	w := testWindow()
	total := w.Days()

	starts := []time.Time{
		time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
	}

	prev := -1.0
	for _, start := range starts {
		end := start.AddDate(0, 0, 5)
		span, ok := PositionInterval(&start, &end, w, total)
		require.True(t, ok)
		assert.Greater(t, span.OffsetPercent, prev)
		assert.Greater(t, span.WidthPercent, 0.0)
		assert.LessOrEqual(t, span.OffsetPercent+span.WidthPercent, 100.0)
		prev = span.OffsetPercent
	}
}

func TestPositionPoint_InsideWindow(t *testing.T) {
	w := testWindow()

	pt, ok := PositionPoint(time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), w, w.Days())

	require.True(t, ok)
	assert.InDelta(t, 50.0, pt.OffsetPercent, 0.001) // 20/40
}

func TestPositionPoint_NoneExactlyWhenAfterWindowEnd(t *testing.T) {
	w := testWindow()

	// On the last day: still visible.
	_, ok := PositionPoint(w.End, w, w.Days())
	assert.True(t, ok)

	// One day past the end: excluded.
	_, ok = PositionPoint(w.End.AddDate(0, 0, 1), w, w.Days())
	assert.False(t, ok)
}

func TestPositionPoint_BeforeWindowClampsToZero(t *testing.T) {
	w := testWindow()

	pt, ok := PositionPoint(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), w, w.Days())

	require.True(t, ok)
	assert.Equal(t, 0.0, pt.OffsetPercent)
}
