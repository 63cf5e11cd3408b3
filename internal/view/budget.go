package view

import (
	"github.com/vijaykmarupuudi/planhub/internal/budget"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

type BudgetRequest struct {
	ProjectID string
}

func NewBudgetRequest(projectID string) BudgetRequest {
	return BudgetRequest{ProjectID: projectID}
}

type BudgetResponse struct {
	Project domain.Project

	// Summary holds per-category totals in canonical order plus grand
	// totals and variance.
	Summary budget.Summary
}
