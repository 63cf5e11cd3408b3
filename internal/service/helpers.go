package service

import (
	"context"
	"errors"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// milestonesOrEmpty loads a project's milestones, treating a missing
// milestone collection as empty. Some backends do not expose the
// milestone route; once the project itself has resolved, a not-found
// from this call means the route is absent, not the project.
func milestonesOrEmpty(ctx context.Context, src Source, projectID string) ([]domain.Milestone, error) {
	milestones, err := src.Milestones(ctx, projectID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return milestones, nil
}

// nextMilestone returns the earliest-due milestone that is not yet
// completed, or nil when every milestone is done. Overdue milestones
// still count: they are the most urgent thing on the list.
func nextMilestone(milestones []domain.Milestone) *domain.Milestone {
	var next *domain.Milestone
	for i := range milestones {
		m := milestones[i]
		if m.Status == domain.MilestoneCompleted {
			continue
		}
		if next == nil || m.DueDate.Before(next.DueDate) {
			next = &milestones[i]
		}
	}
	if next == nil {
		return nil
	}
	out := *next
	return &out
}

// idSet builds a membership set from a list of identifiers.
func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
