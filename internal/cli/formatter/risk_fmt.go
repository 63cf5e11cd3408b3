package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

// FormatRisks formats a project risk register as a severity-ranked table
// with a count summary.
func FormatRisks(resp *view.RiskResponse) string {
	var b strings.Builder

	b.WriteString(Header("Risk Register: " + resp.Project.Name))
	b.WriteString("\n\n")

	if len(resp.Register) == 0 {
		b.WriteString(Dim("No risks recorded."))
		b.WriteString("\n")
		return b.String()
	}

	sep := Dim("  |  ")
	b.WriteString(severityCount(StyleRed, resp.CriticalCount, "critical"))
	b.WriteString(sep)
	b.WriteString(severityCount(StyleYellow, resp.HighCount, "high"))
	b.WriteString(sep)
	b.WriteString(severityCount(StyleBlue, resp.MediumCount, "medium"))
	b.WriteString(sep)
	b.WriteString(severityCount(StyleGreen, resp.LowCount, "low"))
	b.WriteString(sep)
	b.WriteString(Bold(fmt.Sprintf("%d open", resp.OpenCount)))
	b.WriteString("\n\n")

	headers := []string{"SEVERITY", "SCORE", "TITLE", "CATEGORY", "STATUS", "TARGET"}
	rows := make([][]string, 0, len(resp.Register))
	for _, a := range resp.Register {
		r := a.Record
		title := r.Title
		if !r.IsOpen() {
			title = Dim(title)
		}
		category := r.Category
		if category == "" {
			category = Dim("--")
		}
		target := Dim("--")
		if r.TargetDate != nil {
			target = RelativeDateStyled(*r.TargetDate)
		}
		rows = append(rows, []string{
			SeverityIndicator(a.Severity),
			strconv.Itoa(a.Score),
			title,
			category,
			riskStatusPill(r.Status),
			target,
		})
	}
	b.WriteString(RenderAlignedTable(headers, rows, []bool{false, true, false, false, false, false}))

	return b.String()
}

func severityCount(style lipgloss.Style, n int, label string) string {
	text := fmt.Sprintf("%d %s", n, label)
	if n == 0 {
		return Dim(text)
	}
	return style.Render(text)
}

func riskStatusPill(status domain.RiskStatus) string {
	switch status {
	case domain.RiskIdentified:
		return StyleBlue.Render("identified")
	case domain.RiskAssessed:
		return StylePurple.Render("assessed")
	case domain.RiskMitigated:
		return StyleGreen.Render("mitigated")
	case domain.RiskClosed:
		return StyleDim.Render("closed")
	case domain.RiskOccurred:
		return StyleRed.Render("occurred")
	default:
		return StyleDim.Render(string(status))
	}
}
