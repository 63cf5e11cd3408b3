package schedule

import "time"

// Column is one labeled time bucket of the rendered timeline header.
type Column struct {
	Date  time.Time
	Label string
}

// BuildColumns expands a window into ordered buckets at the requested
// granularity, inclusive of both ends. Day buckets are labeled "Jan 2",
// month buckets "Jan". For day buckets the returned length equals
// Window.Days, the denominator the positioners divide by.
func BuildColumns(w Window, g Granularity) []Column {
	start := DayFloor(w.Start)
	end := DayFloor(w.End)

	var cols []Column
	if g == GranularityMonth {
		// Each step is measured from the window start so the day-of-month
		// clamp cannot accumulate drift across short months.
		for i := 0; ; i++ {
			cursor := addMonthsClamped(start, i)
			if cursor.After(end) {
				break
			}
			cols = append(cols, Column{Date: cursor, Label: cursor.Format("Jan")})
		}
		return cols
	}

	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		cols = append(cols, Column{Date: cursor, Label: cursor.Format("Jan 2")})
	}
	return cols
}
