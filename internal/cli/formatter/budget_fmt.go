package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

// FormatBudget formats a project budget as a per-category table with
// grand totals and a variance verdict.
func FormatBudget(resp *view.BudgetResponse) string {
	var b strings.Builder

	b.WriteString(Header("Budget: " + resp.Project.Name))
	b.WriteString("\n\n")

	summary := resp.Summary
	if summary.ItemCount == 0 {
		b.WriteString(Dim("No budget items."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"CATEGORY", "ITEMS", "ESTIMATED", "ACTUAL", "VARIANCE"}
	rows := make([][]string, 0, len(summary.Categories)+1)
	for _, c := range summary.Categories {
		rows = append(rows, []string{
			categoryLabel(c.Category),
			strconv.Itoa(c.Count),
			FormatMoney(c.Estimated),
			FormatMoney(c.Actual),
			moneyDelta(c.Variance()),
		})
	}
	rows = append(rows, []string{
		Bold("TOTAL"),
		Bold(strconv.Itoa(summary.ItemCount)),
		Bold(FormatMoney(summary.TotalEstimated)),
		Bold(FormatMoney(summary.TotalActual)),
		moneyDelta(summary.Variance),
	})
	b.WriteString(RenderAlignedTable(headers, rows, []bool{false, true, true, true, true}))

	b.WriteString("\n")
	b.WriteString(varianceVerdict(summary.Variance, summary.VariancePercent))
	b.WriteString("\n")

	if resp.Project.Budget > 0 {
		b.WriteString(Dim("planned budget: " + FormatMoney(resp.Project.Budget)))
		b.WriteString("\n")
	}

	return b.String()
}

func varianceVerdict(variance, pct float64) string {
	abs := math.Abs(variance)
	switch {
	case variance > 0:
		return StyleGreen.Render(fmt.Sprintf("Under budget by %s (%s)", FormatMoney(abs), FormatPercent(math.Abs(pct))))
	case variance < 0:
		return StyleRed.Render(fmt.Sprintf("Over budget by %s (%s)", FormatMoney(abs), FormatPercent(math.Abs(pct))))
	default:
		return Dim("On budget")
	}
}

// categoryLabel renders canonical categories with a capital; free-form
// ones pass through untouched.
func categoryLabel(c domain.BudgetCategory) string {
	s := string(c)
	if !domain.ValidBudgetCategories[s] || s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
