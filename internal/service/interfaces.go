package service

import (
	"context"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Source provides the flat record collections the use cases derive
// from. The live api.Client satisfies it, as do the snapshot and demo
// sources. Missing records surface as api.ErrNotFound regardless of
// the backing source.
type Source interface {
	Health(ctx context.Context) error
	Projects(ctx context.Context) ([]domain.Project, error)
	Project(ctx context.Context, id string) (domain.Project, error)
	Breakdown(ctx context.Context, projectID string) (domain.Breakdown, error)
	Milestones(ctx context.Context, projectID string) ([]domain.Milestone, error)
	Risks(ctx context.Context, projectID string) ([]domain.RiskRecord, error)
	BudgetItems(ctx context.Context, projectID string) ([]domain.BudgetItem, error)
	Stats(ctx context.Context) (domain.PortfolioStats, error)
}
