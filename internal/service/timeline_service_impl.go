package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/schedule"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

type timelineService struct {
	src      Source
	observer UseCaseObserver
}

func NewTimelineService(src Source, observers ...UseCaseObserver) view.TimelineUseCase {
	return &timelineService{
		src:      src,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timelineService) Timeline(ctx context.Context, req view.TimelineRequest) (resp *view.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": req.ProjectID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	mode := req.View
	if mode == "" {
		mode = view.ViewMonthly
	}
	if _, err = view.ParseViewMode(string(mode)); err != nil {
		return nil, err
	}
	fields["view"] = string(mode)

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	project, err := s.src.Project(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}

	breakdown, err := s.src.Breakdown(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule items: %w", err)
	}

	milestones, err := milestonesOrEmpty(ctx, s.src, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}

	window := schedule.ResolveWindow(schedule.WindowInput{
		Now:        now,
		Tasks:      breakdown.Tasks,
		Milestones: milestones,
	})
	columns := schedule.BuildColumns(window, mode.Granularity())
	// Positions always scale against days; coarser views only relabel
	// the header, they cannot move bars.
	total := window.Days()

	critical := idSet(breakdown.CriticalPath)

	bars := make([]view.TimelineBar, 0, len(breakdown.Tasks))
	for _, task := range breakdown.Tasks {
		span, ok := schedule.PositionInterval(task.StartDate, task.EndDate, window, total)
		bars = append(bars, view.TimelineBar{
			Task:           task,
			Span:           span,
			HasSpan:        ok,
			OnCriticalPath: critical[task.ID],
		})
	}

	var markers []view.TimelineMarker
	for _, milestone := range milestones {
		point, ok := schedule.PositionPoint(milestone.DueDate, window, total)
		if !ok {
			continue
		}
		markers = append(markers, view.TimelineMarker{
			Milestone: milestone,
			Point:     point,
		})
	}
	fields["bars"] = len(bars)
	fields["markers"] = len(markers)

	return &view.TimelineResponse{
		Project: project,
		View:    mode,
		Window:  window,
		Columns: columns,
		Bars:    bars,
		Markers: markers,
	}, nil
}
