package domain

import (
	"math"
	"time"
)

// BudgetItem is one line of a project budget.
type BudgetItem struct {
	ID            string
	ProjectID     string
	Category      BudgetCategory
	ItemName      string
	Description   string
	EstimatedCost float64
	ActualCost    float64
	Vendor        string
	PurchaseDate  *time.Time
}

// PortfolioStats is the backend's dashboard payload, consumed as-is.
type PortfolioStats struct {
	TotalProjects     int
	ActiveProjects    int
	CompletedProjects int
	CompletionRate    float64 // percent, one decimal
}

// DerivePortfolioStats computes the dashboard numbers from a project
// collection the way the backend does: completed over max(total, 1),
// rounded to one decimal.
func DerivePortfolioStats(projects []Project) PortfolioStats {
	stats := PortfolioStats{TotalProjects: len(projects)}
	for _, p := range projects {
		if p.Status.IsActive() {
			stats.ActiveProjects++
		}
		if p.Status == ProjectCompleted {
			stats.CompletedProjects++
		}
	}
	total := stats.TotalProjects
	if total < 1 {
		total = 1
	}
	stats.CompletionRate = math.Round(float64(stats.CompletedProjects)/float64(total)*1000) / 10
	return stats
}
