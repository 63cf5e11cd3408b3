package formatter

import (
	"fmt"
	"strings"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/view"
	"github.com/vijaykmarupuudi/planhub/internal/wbs"
)

// FormatBreakdown formats a work breakdown structure as an indented tree
// with hour badges and a rollup footer.
func FormatBreakdown(resp *view.BreakdownResponse) string {
	var b strings.Builder

	b.WriteString(Header("Work Breakdown: " + resp.Project.Name))
	b.WriteString("\n\n")

	if len(resp.Forest.Roots) == 0 {
		b.WriteString(Dim("No breakdown items."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(RenderTree(BreakdownTreeItems(resp.Forest.Roots)))
	b.WriteString("\n")

	sep := Dim("  |  ")
	total := resp.Total
	b.WriteString(Bold(fmt.Sprintf("%d items", total.NodeCount)))
	b.WriteString(sep)
	b.WriteString(StyleGreen.Render(fmt.Sprintf("%d completed", total.CompletedCount)))
	b.WriteString(sep)
	b.WriteString(StyleFg.Render(FormatHours(total.EstimatedHours) + " estimated"))
	b.WriteString(sep)
	b.WriteString(StyleFg.Render(FormatHours(total.ActualHours) + " actual"))
	b.WriteString("\n")

	if resp.Forest.OrphanCount > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d items with missing parents", resp.Forest.OrphanCount)))
		b.WriteString("\n")
	}
	if resp.Forest.DuplicateCount > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d duplicate ids ignored", resp.Forest.DuplicateCount)))
		b.WriteString("\n")
	}

	if len(resp.CriticalPath) > 0 {
		short := make([]string, len(resp.CriticalPath))
		for i, id := range resp.CriticalPath {
			short[i] = domain.DisplayID(id)
		}
		b.WriteString(Dim("critical path: " + strings.Join(short, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

// BreakdownTreeItems flattens a breakdown forest into renderable rows.
func BreakdownTreeItems(roots []*wbs.TreeNode) []TreeItem {
	var items []TreeItem
	wbs.Walk(roots, func(n *wbs.TreeNode, depth int, isLast bool) {
		items = append(items, TreeItem{
			Title:  n.Name,
			Code:   n.WBSCode,
			Level:  depth,
			IsLast: isLast,
			Status: n.Status,
			Detail: hoursBadge(n),
		})
	})
	return items
}

func hoursBadge(n *wbs.TreeNode) string {
	if n.EstimatedHours == 0 && n.ActualHours == 0 {
		return ""
	}
	if n.ActualHours == 0 {
		return FormatHours(n.EstimatedHours)
	}
	return FormatHours(n.ActualHours) + "/" + FormatHours(n.EstimatedHours)
}
