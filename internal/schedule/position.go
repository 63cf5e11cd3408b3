package schedule

import "time"

// Span places an interval item on the timeline as percentages of the
// window width.
type Span struct {
	OffsetPercent float64
	WidthPercent  float64
}

// Point places a single-date item on the timeline.
type Point struct {
	OffsetPercent float64
}

// PositionInterval maps [start, end] onto the window. The second return
// is false when either date is missing; the item then has no position.
// Bars are clamped so they never overflow the window: an interval ending
// before the window collapses to zero width at the left edge, one
// starting after it to zero width at the right edge.
func PositionInterval(start, end *time.Time, w Window, total int) (Span, bool) {
	if start == nil || end == nil {
		return Span{}, false
	}
	if total < 1 {
		total = 1
	}
	if DayFloor(*end).Before(DayFloor(w.Start)) {
		return Span{OffsetPercent: 0, WidthPercent: 0}, true
	}

	offsetDays := DaysBetween(w.Start, *start)
	if offsetDays < 0 {
		offsetDays = 0
	}
	durationDays := DaysBetween(*start, *end) + 1
	if durationDays < 1 {
		// Inclusive single-day minimum.
		durationDays = 1
	}

	offset := clampPct(float64(offsetDays) / float64(total) * 100)
	width := float64(durationDays) / float64(total) * 100
	if width > 100-offset {
		width = 100 - offset
	}
	if width < 0 {
		width = 0
	}

	return Span{OffsetPercent: offset, WidthPercent: width}, true
}

// PositionPoint maps a single date onto the window. The second return is
// false when the date falls strictly after the window end; the item is
// then excluded from the layout, which is not an error. Dates before the
// window clamp to the left edge.
func PositionPoint(date time.Time, w Window, total int) (Point, bool) {
	if DayFloor(date).After(DayFloor(w.End)) {
		return Point{}, false
	}
	if total < 1 {
		total = 1
	}

	offsetDays := DaysBetween(w.Start, date)
	if offsetDays < 0 {
		offsetDays = 0
	}
	return Point{OffsetPercent: clampPct(float64(offsetDays) / float64(total) * 100)}, true
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
