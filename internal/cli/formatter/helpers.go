package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDateStyled returns RelativeDate with urgency coloring applied.
func RelativeDateStyled(t time.Time) string {
	return RelativeDateStyledFrom(t, time.Now())
}

// RelativeDateStyledFrom is RelativeDateStyled against an explicit reference,
// so derived views render the same for a fixed generation time.
func RelativeDateStyledFrom(t time.Time, now time.Time) string {
	text := RelativeDateFrom(t, now)
	days := int(math.Round(t.Sub(now).Hours() / 24))

	if days <= 2 {
		return StyleRed.Render(text)
	}
	if days <= 7 {
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// StatusPill returns a colored status indicator for the project lifecycle.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectInitiation:
		return StyleBlue.Render("○ Initiation")
	case domain.ProjectPlanning:
		return StylePurple.Render("◐ Planning")
	case domain.ProjectExecution:
		return StyleGreen.Render("● Execution")
	case domain.ProjectMonitoring:
		return StyleYellow.Render("◎ Monitoring")
	case domain.ProjectClosure:
		return StyleBlue.Render("◑ Closure")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskStatusPill returns a colored status indicator for schedule items.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskNotStarted:
		return StyleBlue.Render("○ Not started")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In progress")
	case domain.TaskCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.TaskOnHold:
		return StyleYellow.Render("⊘ On hold")
	case domain.TaskBlocked:
		return StyleRed.Render("▲ Blocked")
	case domain.TaskCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityBadge returns an uppercase, color-coded priority label.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render("CRITICAL")
	case domain.PriorityHigh:
		return StyleYellow.Render("HIGH")
	case domain.PriorityMedium:
		return StyleBlue.Render("MEDIUM")
	case domain.PriorityLow:
		return StyleDim.Render("LOW")
	default:
		return StyleDim.Render(strings.ToUpper(string(p)))
	}
}

// MilestoneGlyph returns the diamond marker colored by milestone state.
func MilestoneGlyph(status domain.MilestoneStatus) string {
	switch status {
	case domain.MilestoneCompleted:
		return StyleGreen.Render("◆")
	case domain.MilestoneOverdue:
		return StyleRed.Render("◆")
	default:
		return StyleBlue.Render("◆")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	return StyleDim.Render(domain.DisplayID(id))
}

// FormatMoney renders a dollar amount with thousands separators. Amounts
// round to whole dollars; budget lines never carry meaningful cents.
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := groupThousands(int64(math.Round(amount)))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatHours renders an hour figure, dropping the fraction when whole.
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.1fh", h)
}

// FormatPercent renders a percentage with at most one decimal place.
func FormatPercent(pct float64) string {
	rounded := math.Round(pct*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
