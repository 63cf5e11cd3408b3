package schedule

import "time"

// Granularity selects the timeline bucket size. Day buckets back the
// monthly zoom; month buckets back the quarterly and yearly zooms.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// DayFloor truncates a time to its calendar day in UTC. All engine date
// arithmetic runs on floored values so time-of-day and zone noise cannot
// shift positions.
func DayFloor(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from a to b, negative when b
// precedes a. Both ends are floored first, so the division is exact.
func DaysBetween(a, b time.Time) int {
	return int(DayFloor(b).Sub(DayFloor(a)).Hours() / 24)
}

// addMonthsClamped advances t by the given number of calendar months,
// clamping the day to the target month's last day. Stepping from Jan 31
// yields Feb 28 rather than rolling over into March and skipping a label.
func addMonthsClamped(t time.Time, months int) time.Time {
	t = DayFloor(t)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
