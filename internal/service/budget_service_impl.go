package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/budget"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

type budgetService struct {
	src      Source
	observer UseCaseObserver
}

func NewBudgetService(src Source, observers ...UseCaseObserver) view.BudgetUseCase {
	return &budgetService{
		src:      src,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *budgetService) Budget(ctx context.Context, req view.BudgetRequest) (resp *view.BudgetResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": req.ProjectID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "budget",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	project, err := s.src.Project(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}

	items, err := s.src.BudgetItems(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading budget items: %w", err)
	}

	summary := budget.Aggregate(items)
	fields["items"] = summary.ItemCount

	return &view.BudgetResponse{
		Project: project,
		Summary: summary,
	}, nil
}
