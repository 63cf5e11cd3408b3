package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/budget"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/risk"
	"github.com/vijaykmarupuudi/planhub/internal/view"
	"golang.org/x/sync/errgroup"
)

type overviewService struct {
	src      Source
	observer UseCaseObserver
}

func NewOverviewService(src Source, observers ...UseCaseObserver) view.OverviewUseCase {
	return &overviewService{
		src:      src,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *overviewService) Overview(ctx context.Context, req view.OverviewRequest) (resp *view.OverviewResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "overview",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	projects, err := s.src.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	fields["projects"] = len(projects)

	stats, err := s.src.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading portfolio stats: %w", err)
	}

	// Each project needs four collection fetches; run the per-project
	// derivations concurrently and write into pre-sized slots so the
	// response keeps the backend's project order.
	health := make([]view.ProjectHealth, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range projects {
		i, p := i, p
		g.Go(func() error {
			h, err := s.projectHealth(gctx, p)
			if err != nil {
				return err
			}
			health[i] = h
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &view.OverviewResponse{
		GeneratedAt: now,
		Stats:       stats,
		Projects:    health,
	}, nil
}

func (s *overviewService) projectHealth(ctx context.Context, p domain.Project) (view.ProjectHealth, error) {
	h := view.ProjectHealth{Project: p}

	breakdown, err := s.src.Breakdown(ctx, p.ID)
	if err != nil {
		return h, fmt.Errorf("loading schedule items for project %s: %w", p.ID, err)
	}
	h.TaskCount = len(breakdown.Tasks)
	for _, task := range breakdown.Tasks {
		if task.Status == domain.TaskCompleted {
			h.CompletedTasks++
		}
	}

	records, err := s.src.Risks(ctx, p.ID)
	if err != nil {
		return h, fmt.Errorf("loading risk register for project %s: %w", p.ID, err)
	}
	for _, a := range risk.AssessAll(records) {
		if a.Record.IsOpen() {
			h.OpenRisks++
		}
		if h.TopSeverity == "" || risk.SeverityPriority(a.Severity) < risk.SeverityPriority(h.TopSeverity) {
			h.TopSeverity = a.Severity
		}
	}

	items, err := s.src.BudgetItems(ctx, p.ID)
	if err != nil {
		return h, fmt.Errorf("loading budget items for project %s: %w", p.ID, err)
	}
	h.BudgetVariance = budget.Aggregate(items).Variance

	milestones, err := milestonesOrEmpty(ctx, s.src, p.ID)
	if err != nil {
		return h, fmt.Errorf("loading milestones for project %s: %w", p.ID, err)
	}
	h.NextMilestone = nextMilestone(milestones)

	return h, nil
}
