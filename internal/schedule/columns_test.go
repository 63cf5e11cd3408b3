package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColumns_DayGranularityInclusiveOfBothEnds(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	cols := BuildColumns(w, GranularityDay)

	require.Len(t, cols, 10)
	assert.Equal(t, "Jan 1", cols[0].Label)
	assert.Equal(t, "Jan 10", cols[9].Label)
	assert.Equal(t, w.Start, cols[0].Date)
	assert.Equal(t, w.End, cols[9].Date)
}

func TestBuildColumns_DayLabelsCrossMonthBoundary(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
	}

	cols := BuildColumns(w, GranularityDay)

	require.Len(t, cols, 4)
	assert.Equal(t, []string{"Jan 30", "Jan 31", "Feb 1", "Feb 2"},
		[]string{cols[0].Label, cols[1].Label, cols[2].Label, cols[3].Label})
}

func TestBuildColumns_MonthGranularity(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	cols := BuildColumns(w, GranularityMonth)

	require.Len(t, cols, 5)
	assert.Equal(t, []string{"Feb", "Mar", "Apr", "May", "Jun"},
		[]string{cols[0].Label, cols[1].Label, cols[2].Label, cols[3].Label, cols[4].Label})
}

func TestBuildColumns_MonthStepClampsShortMonths(t *testing.T) {
	// A Jan 31 start must not skip February.
	w := Window{
		Start: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
	}

	cols := BuildColumns(w, GranularityMonth)

	require.Len(t, cols, 3)
	assert.Equal(t, "Jan", cols[0].Label)
	assert.Equal(t, "Feb", cols[1].Label)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), cols[1].Date)
	// The clamp is per-step, not cumulative: March recovers the 31st.
	assert.Equal(t, "Mar", cols[2].Label)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), cols[2].Date)
}

func TestBuildColumns_SingleDayWindow(t *testing.T) {
	day := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	w := Window{Start: day, End: day}

	assert.Len(t, BuildColumns(w, GranularityDay), 1)
	assert.Len(t, BuildColumns(w, GranularityMonth), 1)
}
