package view

import (
	"fmt"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/schedule"
)

// ViewMode is the timeline zoom level. Monthly renders day buckets;
// quarterly and yearly both render month buckets and differ only in
// name, kept for parity with the web console's zoom control.
type ViewMode string

const (
	ViewMonthly   ViewMode = "monthly"
	ViewQuarterly ViewMode = "quarterly"
	ViewYearly    ViewMode = "yearly"
)

// ParseViewMode validates a mode string from a flag.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewMonthly, ViewQuarterly, ViewYearly:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("invalid view %q (expected monthly, quarterly or yearly)", s)
	}
}

// Granularity maps the zoom level onto the engine's bucket size.
func (m ViewMode) Granularity() schedule.Granularity {
	if m == ViewMonthly {
		return schedule.GranularityDay
	}
	return schedule.GranularityMonth
}

type TimelineRequest struct {
	ProjectID string
	View      ViewMode
	// Now anchors the default window; nil means the current time.
	Now *time.Time
}

func NewTimelineRequest(projectID string) TimelineRequest {
	return TimelineRequest{
		ProjectID: projectID,
		View:      ViewMonthly,
	}
}

// TimelineBar is one task row. HasSpan is false when the task lacks a
// date; the row still renders, without a bar.
type TimelineBar struct {
	Task           domain.Task
	Span           schedule.Span
	HasSpan        bool
	OnCriticalPath bool
}

// TimelineMarker is one positioned milestone. Milestones past the
// window end are excluded from the response entirely.
type TimelineMarker struct {
	Milestone domain.Milestone
	Point     schedule.Point
}

type TimelineResponse struct {
	Project domain.Project
	View    ViewMode
	Window  schedule.Window
	Columns []schedule.Column
	Bars    []TimelineBar
	Markers []TimelineMarker
}
