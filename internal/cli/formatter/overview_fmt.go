package formatter

import (
	"fmt"
	"strings"

	"github.com/vijaykmarupuudi/planhub/internal/view"
)

// FormatOverview formats the portfolio overview as a stats summary plus
// one health row per project.
func FormatOverview(resp *view.OverviewResponse) string {
	var b strings.Builder

	b.WriteString(Header("Portfolio Overview"))
	b.WriteString("\n\n")

	sep := Dim("  |  ")
	stats := resp.Stats
	b.WriteString(Bold(fmt.Sprintf("%d projects", stats.TotalProjects)))
	b.WriteString(sep)
	b.WriteString(StyleGreen.Render(fmt.Sprintf("%d active", stats.ActiveProjects)))
	b.WriteString(sep)
	b.WriteString(StyleBlue.Render(fmt.Sprintf("%d completed", stats.CompletedProjects)))
	b.WriteString(sep)
	b.WriteString(StyleFg.Render(FormatPercent(stats.CompletionRate) + " done"))
	b.WriteString("\n\n")

	if len(resp.Projects) == 0 {
		b.WriteString(Dim("No projects in the portfolio."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"PROJECT", "STATUS", "PROGRESS", "TASKS", "RISKS", "NEXT MILESTONE", "BUDGET"}
	rows := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		rows = append(rows, []string{
			p.Project.Name,
			StatusPill(p.Project.Status),
			RenderProgress(p.Project.CompletionPercentage, 10),
			taskCell(p),
			riskCell(p),
			milestoneCell(p, resp),
			moneyDelta(p.BudgetVariance),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Dim("as of " + resp.GeneratedAt.Format("Jan 2, 2006 15:04")))
	b.WriteString("\n")

	return b.String()
}

func taskCell(p view.ProjectHealth) string {
	if p.TaskCount == 0 {
		return Dim("--")
	}
	return fmt.Sprintf("%d/%d", p.CompletedTasks, p.TaskCount)
}

func riskCell(p view.ProjectHealth) string {
	if p.OpenRisks == 0 {
		return Dim("0")
	}
	return SeverityColor(p.TopSeverity).Render(fmt.Sprintf("● %d", p.OpenRisks))
}

func milestoneCell(p view.ProjectHealth, resp *view.OverviewResponse) string {
	m := p.NextMilestone
	if m == nil {
		return Dim("--")
	}
	name := m.Name
	if r := []rune(name); len(r) > 20 {
		name = string(r[:19]) + "…"
	}
	return name + " " + RelativeDateStyledFrom(m.DueDate, resp.GeneratedAt)
}

// moneyDelta renders a signed variance: green when under, red when over.
func moneyDelta(v float64) string {
	switch {
	case v > 0:
		return StyleGreen.Render("+" + FormatMoney(v))
	case v < 0:
		return StyleRed.Render(FormatMoney(v))
	default:
		return Dim("$0")
	}
}
