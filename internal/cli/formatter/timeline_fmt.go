package formatter

import (
	"fmt"
	"strings"

	"github.com/vijaykmarupuudi/planhub/internal/view"
)

// ganttDefaultTrack is the track width the one-shot timeline command uses.
const ganttDefaultTrack = 60

// FormatTimeline formats a project timeline as a gantt track with a
// window summary line and a legend.
func FormatTimeline(resp *view.TimelineResponse) string {
	var b strings.Builder

	b.WriteString(Header("Timeline: " + resp.Project.Name))
	b.WriteString("\n\n")

	sep := Dim("  |  ")
	b.WriteString(StylePurple.Render(string(resp.View)))
	b.WriteString(sep)
	b.WriteString(StyleFg.Render(fmt.Sprintf("%s to %s",
		resp.Window.Start.Format("Jan 2, 2006"),
		resp.Window.End.Format("Jan 2, 2006"))))
	b.WriteString(sep)
	b.WriteString(Dim(fmt.Sprintf("%d days", resp.Window.Days())))
	b.WriteString("\n\n")

	if len(resp.Bars) == 0 && len(resp.Markers) == 0 {
		b.WriteString(Dim("No dated items to draw."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(RenderGantt(resp, ganttDefaultTrack))

	legend := timelineLegend(resp)
	if legend != "" {
		b.WriteString("\n")
		b.WriteString(legend)
		b.WriteString("\n")
	}

	return b.String()
}

func timelineLegend(resp *view.TimelineResponse) string {
	var parts []string
	for _, bar := range resp.Bars {
		if bar.OnCriticalPath {
			parts = append(parts, StyleHeader.Render(strings.Repeat(filledBlock, 2))+Dim(" critical path"))
			break
		}
	}
	if len(resp.Markers) > 0 {
		parts = append(parts, StyleBlue.Render(ganttMarker)+Dim(" milestone"))
	}
	return strings.Join(parts, Dim("   "))
}
