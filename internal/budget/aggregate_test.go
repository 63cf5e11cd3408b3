package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

func item(cat domain.BudgetCategory, estimated, actual float64) domain.BudgetItem {
	return domain.BudgetItem{Category: cat, EstimatedCost: estimated, ActualCost: actual}
}

func TestAggregate_TotalsAndVariance(t *testing.T) {
	summary := Aggregate([]domain.BudgetItem{
		item(domain.CategoryLabor, 100, 80),
		item(domain.CategorySoftware, 50, 60),
	})

	assert.InDelta(t, 150.0, summary.TotalEstimated, 0.001)
	assert.InDelta(t, 140.0, summary.TotalActual, 0.001)
	assert.InDelta(t, 10.0, summary.Variance, 0.001)
	// 10 / 150 * 100
	assert.InDelta(t, 6.6667, summary.VariancePercent, 0.001)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestAggregate_ZeroEstimatedTotalYieldsZeroPercent(t *testing.T) {
	summary := Aggregate([]domain.BudgetItem{
		item(domain.CategoryOther, 0, 500),
	})

	assert.InDelta(t, -500.0, summary.Variance, 0.001)
	assert.Zero(t, summary.VariancePercent)
}

func TestAggregate_GroupsPerCategoryInCanonicalOrder(t *testing.T) {
	summary := Aggregate([]domain.BudgetItem{
		item(domain.CategorySoftware, 10, 5),
		item(domain.CategoryLabor, 200, 150),
		item(domain.CategorySoftware, 30, 25),
		item(domain.CategoryEquipment, 75, 0),
	})

	require.Len(t, summary.Categories, 3)
	assert.Equal(t, domain.CategoryLabor, summary.Categories[0].Category)
	assert.Equal(t, domain.CategoryEquipment, summary.Categories[1].Category)
	assert.Equal(t, domain.CategorySoftware, summary.Categories[2].Category)

	software := summary.Categories[2]
	assert.InDelta(t, 40.0, software.Estimated, 0.001)
	assert.InDelta(t, 30.0, software.Actual, 0.001)
	assert.Equal(t, 2, software.Count)
	assert.InDelta(t, 10.0, software.Variance(), 0.001)
}

func TestAggregate_OmitsEmptyCategories(t *testing.T) {
	summary := Aggregate([]domain.BudgetItem{
		item(domain.CategoryTravel, 20, 20),
	})

	require.Len(t, summary.Categories, 1)
	assert.Equal(t, domain.CategoryTravel, summary.Categories[0].Category)
}

func TestAggregate_UnknownCategoryKept(t *testing.T) {
	summary := Aggregate([]domain.BudgetItem{
		item(domain.CategoryLabor, 10, 10),
		item("misc", 5, 5),
	})

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, domain.BudgetCategory("misc"), summary.Categories[1].Category)
	assert.InDelta(t, 15.0, summary.TotalEstimated, 0.001)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)

	assert.Empty(t, summary.Categories)
	assert.Zero(t, summary.TotalEstimated)
	assert.Zero(t, summary.VariancePercent)
	assert.Zero(t, summary.ItemCount)
}
