package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vijaykmarupuudi/planhub/internal/budget"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func budgetResp() *view.BudgetResponse {
	items := []domain.BudgetItem{
		{ID: "b1", Category: domain.CategoryLabor, ItemName: "Engineering", EstimatedCost: 90000, ActualCost: 97000},
		{ID: "b2", Category: domain.CategoryLabor, ItemName: "Design", EstimatedCost: 30000, ActualCost: 28000},
		{ID: "b3", Category: domain.CategorySoftware, ItemName: "Licences", EstimatedCost: 12000, ActualCost: 11500},
		{ID: "b4", Category: domain.BudgetCategory("misc"), ItemName: "Celebration", EstimatedCost: 5000, ActualCost: 4200},
	}
	return &view.BudgetResponse{
		Project: domain.Project{ID: "p1", Name: "Portal Redesign", Budget: 150000},
		Summary: budget.Aggregate(items),
	}
}

func TestFormatBudget_RendersCategoryTable(t *testing.T) {
	out := stripANSI(FormatBudget(budgetResp()))

	assert.Contains(t, out, "BUDGET: PORTAL REDESIGN")
	assert.Contains(t, out, "Labor")
	assert.Contains(t, out, "Software")
	assert.Contains(t, out, "misc")

	assert.Contains(t, out, "$120,000")
	assert.Contains(t, out, "$125,000")
	assert.Contains(t, out, "-$5,000")

	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "$137,000")
	assert.Contains(t, out, "$140,700")

	// Canonical order puts labor first; free-form categories trail.
	assert.Less(t, strings.Index(out, "Labor"), strings.Index(out, "Software"))
	assert.Less(t, strings.Index(out, "Software"), strings.Index(out, "misc"))
}

func TestFormatBudget_OverBudgetVerdict(t *testing.T) {
	out := stripANSI(FormatBudget(budgetResp()))
	assert.Contains(t, out, "Over budget by $3,700 (2.7%)")
	assert.Contains(t, out, "planned budget: $150,000")
}

func TestFormatBudget_UnderBudgetVerdict(t *testing.T) {
	items := []domain.BudgetItem{
		{ID: "b1", Category: domain.CategoryTravel, EstimatedCost: 10000, ActualCost: 8000},
	}
	resp := &view.BudgetResponse{
		Project: domain.Project{Name: "Lean"},
		Summary: budget.Aggregate(items),
	}
	out := stripANSI(FormatBudget(resp))
	assert.Contains(t, out, "Under budget by $2,000 (20%)")
}

func TestFormatBudget_Empty(t *testing.T) {
	resp := &view.BudgetResponse{Project: domain.Project{Name: "Bare"}}
	out := stripANSI(FormatBudget(resp))
	assert.Contains(t, out, "No budget items.")
	assert.NotContains(t, out, "TOTAL")
}
