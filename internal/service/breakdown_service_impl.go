package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/view"
	"github.com/vijaykmarupuudi/planhub/internal/wbs"
)

type breakdownService struct {
	src      Source
	observer UseCaseObserver
}

func NewBreakdownService(src Source, observers ...UseCaseObserver) view.BreakdownUseCase {
	return &breakdownService{
		src:      src,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *breakdownService) Breakdown(ctx context.Context, req view.BreakdownRequest) (resp *view.BreakdownResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": req.ProjectID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "breakdown",
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

	breakdown, err := s.src.Breakdown(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading breakdown: %w", err)
	}

	forest := wbs.Build(wbs.BuildInput{
		Nodes:   breakdown.Nodes,
		Orphans: req.Orphans,
	})

	var total wbs.Rollup
	for _, root := range forest.Roots {
		r := root.Rollup()
		total.EstimatedHours += r.EstimatedHours
		total.ActualHours += r.ActualHours
		total.NodeCount += r.NodeCount
		total.CompletedCount += r.CompletedCount
	}
	fields["nodes"] = forest.NodeCount
	fields["orphans"] = forest.OrphanCount

	return &view.BreakdownResponse{
		Project:      project,
		Forest:       forest,
		Total:        total,
		CriticalPath: breakdown.CriticalPath,
	}, nil
}
