package schedule

import (
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Padding applied around the earliest and latest item dates.
const windowPadDays = 7

// Months covered by the fallback window when no item carries a date.
const defaultWindowMonths = 3

type WindowInput struct {
	Now        time.Time
	Tasks      []domain.Task
	Milestones []domain.Milestone
}

// Window is the resolved visible time range. Start and End are inclusive
// calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow computes the visible window from every date present across
// the input collections. An empty collection yields a default window of
// three months starting today; otherwise the [earliest, latest] span is
// padded by a week on each side. There is no error case.
func ResolveWindow(input WindowInput) Window {
	var dates []time.Time
	for _, t := range input.Tasks {
		if t.StartDate != nil {
			dates = append(dates, DayFloor(*t.StartDate))
		}
		if t.EndDate != nil {
			dates = append(dates, DayFloor(*t.EndDate))
		}
	}
	for _, m := range input.Milestones {
		dates = append(dates, DayFloor(m.DueDate))
	}

	today := DayFloor(input.Now)
	if len(dates) == 0 {
		return Window{
			Start: today,
			End:   today.AddDate(0, defaultWindowMonths, 0),
		}
	}

	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}

	return Window{
		Start: earliest.AddDate(0, 0, -windowPadDays),
		End:   latest.AddDate(0, 0, windowPadDays),
	}
}

// Days returns the inclusive day count of the window.
func (w Window) Days() int {
	return DaysBetween(w.Start, w.End) + 1
}
