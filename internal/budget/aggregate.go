package budget

import (
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// CategoryTotal accumulates the items of one budget category.
type CategoryTotal struct {
	Category  domain.BudgetCategory
	Estimated float64
	Actual    float64
	Count     int
}

// Variance is the category's estimated minus actual cost.
func (c CategoryTotal) Variance() float64 {
	return c.Estimated - c.Actual
}

// Summary aggregates a budget item collection.
type Summary struct {
	Categories      []CategoryTotal
	TotalEstimated  float64
	TotalActual     float64
	Variance        float64
	VariancePercent float64
	ItemCount       int
}

// Aggregate sums estimated and actual cost per category and overall.
// Category rows come out in canonical order with empty categories
// omitted; categories outside the canonical set follow in first-seen
// order so no item is silently dropped. Variance is estimated minus
// actual; the percentage guards against a zero estimated total.
func Aggregate(items []domain.BudgetItem) Summary {
	totals := make(map[domain.BudgetCategory]*CategoryTotal)
	var extraOrder []domain.BudgetCategory

	summary := Summary{ItemCount: len(items)}
	for _, item := range items {
		t, ok := totals[item.Category]
		if !ok {
			t = &CategoryTotal{Category: item.Category}
			totals[item.Category] = t
			if !domain.ValidBudgetCategories[string(item.Category)] {
				extraOrder = append(extraOrder, item.Category)
			}
		}
		t.Estimated += item.EstimatedCost
		t.Actual += item.ActualCost
		t.Count++

		summary.TotalEstimated += item.EstimatedCost
		summary.TotalActual += item.ActualCost
	}

	for _, cat := range domain.BudgetCategories {
		if t, ok := totals[cat]; ok {
			summary.Categories = append(summary.Categories, *t)
		}
	}
	for _, cat := range extraOrder {
		summary.Categories = append(summary.Categories, *totals[cat])
	}

	summary.Variance = summary.TotalEstimated - summary.TotalActual
	if summary.TotalEstimated != 0 {
		summary.VariancePercent = summary.Variance / summary.TotalEstimated * 100
	}

	return summary
}
