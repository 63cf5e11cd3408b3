package view

import (
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/risk"
)

type OverviewRequest struct {
	// Now anchors milestone status resolution; nil means the current time.
	Now *time.Time
}

func NewOverviewRequest() OverviewRequest {
	return OverviewRequest{}
}

// ProjectHealth is one portfolio row: the project plus the figures
// derived from its collections.
type ProjectHealth struct {
	Project domain.Project

	OpenRisks   int
	TopSeverity risk.Severity // empty when the register is empty

	// BudgetVariance is TotalEstimated - TotalActual across the
	// project's budget lines.
	BudgetVariance float64

	TaskCount      int
	CompletedTasks int

	// NextMilestone is the earliest milestone not yet completed,
	// overdue ones included. Nil when none remain.
	NextMilestone *domain.Milestone
}

type OverviewResponse struct {
	GeneratedAt time.Time
	Stats       domain.PortfolioStats
	Projects    []ProjectHealth
}
