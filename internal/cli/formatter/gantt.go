package formatter

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/schedule"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

const (
	ganttNameWidth = 22
	ganttGutter    = "  "
	ganttTrackDot  = "·"
	ganttMarker    = "◆"
)

// RenderGantt renders timeline bars and milestone markers onto a shared
// track. Percent offsets from the schedule engine map onto trackWidth
// cells; every task keeps its row even without a bar.
func RenderGantt(resp *view.TimelineResponse, trackWidth int) string {
	if trackWidth < 10 {
		trackWidth = 10
	}

	var b strings.Builder

	if axis := renderGanttAxis(resp.Columns, trackWidth); axis != "" {
		b.WriteString(strings.Repeat(" ", ganttNameWidth) + ganttGutter + Dim(axis) + "\n")
	}

	for _, bar := range resp.Bars {
		b.WriteString(padCell(bar.Task.Name, ganttNameWidth))
		b.WriteString(ganttGutter)
		b.WriteString(renderSpanTrack(bar, trackWidth))
		b.WriteString("\n")
	}

	for _, m := range resp.Markers {
		cell := pointCell(m.Point, trackWidth)
		glyph := MilestoneGlyph(m.Milestone.EffectiveStatus(time.Now()))
		b.WriteString(Dim(padCell(m.Milestone.Name, ganttNameWidth)))
		b.WriteString(ganttGutter)
		b.WriteString(Dim(strings.Repeat(ganttTrackDot, cell)))
		b.WriteString(glyph)
		b.WriteString(Dim(strings.Repeat(ganttTrackDot, trackWidth-cell-1)))
		b.WriteString(Dim(" " + m.Milestone.DueDate.Format("Jan 2")))
		b.WriteString("\n")
	}

	return b.String()
}

// renderGanttAxis places column labels proportionally along the track,
// dropping any label that would collide with the previous one.
func renderGanttAxis(cols []schedule.Column, trackWidth int) string {
	if len(cols) == 0 {
		return ""
	}
	cells := []rune(strings.Repeat(" ", trackWidth))
	lastEnd := -1
	for i, c := range cols {
		pos := i * trackWidth / len(cols)
		label := []rune(c.Label)
		if pos <= lastEnd || pos+len(label) > trackWidth {
			continue
		}
		copy(cells[pos:pos+len(label)], label)
		lastEnd = pos + len(label)
	}
	return string(cells)
}

func renderSpanTrack(bar view.TimelineBar, trackWidth int) string {
	if !bar.HasSpan {
		return Dim(strings.Repeat(ganttTrackDot, trackWidth) + " no dates")
	}

	start, width := spanCells(bar.Span, trackWidth)
	style := barStyle(bar)

	var b strings.Builder
	b.WriteString(Dim(strings.Repeat(ganttTrackDot, start)))
	b.WriteString(style.Render(strings.Repeat(filledBlock, width)))
	b.WriteString(Dim(strings.Repeat(ganttTrackDot, trackWidth-start-width)))

	if bar.Task.StartDate != nil && bar.Task.EndDate != nil {
		b.WriteString(Dim(" " + bar.Task.StartDate.Format("Jan 2") + " to " + bar.Task.EndDate.Format("Jan 2")))
	}
	return b.String()
}

func barStyle(bar view.TimelineBar) lipgloss.Style {
	if bar.OnCriticalPath {
		return StyleHeader
	}
	switch bar.Task.Status {
	case domain.TaskCompleted:
		return StyleGreen
	case domain.TaskInProgress:
		return StyleYellow
	case domain.TaskBlocked:
		return StyleRed
	case domain.TaskOnHold, domain.TaskCancelled:
		return StyleDim
	default:
		return StyleBlue
	}
}

// spanCells maps a percent span onto track cells. Bars occupy at least
// one cell so short tasks stay visible.
func spanCells(sp schedule.Span, trackWidth int) (start, width int) {
	start = int(math.Floor(sp.OffsetPercent / 100 * float64(trackWidth)))
	if start < 0 {
		start = 0
	}
	if start > trackWidth-1 {
		start = trackWidth - 1
	}
	width = int(math.Round(sp.WidthPercent / 100 * float64(trackWidth)))
	if width < 1 {
		width = 1
	}
	if start+width > trackWidth {
		width = trackWidth - start
	}
	return start, width
}

func pointCell(pt schedule.Point, trackWidth int) int {
	c := int(math.Floor(pt.OffsetPercent / 100 * float64(trackWidth)))
	if c < 0 {
		c = 0
	}
	if c > trackWidth-1 {
		c = trackWidth - 1
	}
	return c
}

// padCell pads or truncates a label to a fixed rune width.
func padCell(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
