// Package demo provides a built-in portfolio so the console can be
// explored without a backend or a snapshot file.
package demo

import (
	"context"
	"fmt"
	"slices"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Source serves the built-in demo portfolio. It satisfies api.Client.
// All ids are stable across runs so walkthroughs stay reproducible.
type Source struct {
	projects   []domain.Project
	byID       map[string]domain.Project
	breakdowns map[string]domain.Breakdown
	milestones map[string][]domain.Milestone
	risks      map[string][]domain.RiskRecord
	budget     map[string][]domain.BudgetItem
}

// New builds the demo portfolio.
func New() *Source {
	s := &Source{
		byID:       make(map[string]domain.Project),
		breakdowns: make(map[string]domain.Breakdown),
		milestones: make(map[string][]domain.Milestone),
		risks:      make(map[string][]domain.RiskRecord),
		budget:     make(map[string][]domain.BudgetItem),
	}
	for _, p := range seedProjects() {
		s.projects = append(s.projects, p.project)
		s.byID[p.project.ID] = p.project
		s.breakdowns[p.project.ID] = domain.Breakdown{
			Nodes:        p.nodes,
			Tasks:        tasksFromNodes(p.nodes),
			CriticalPath: p.criticalPath,
		}
		s.milestones[p.project.ID] = p.milestones
		s.risks[p.project.ID] = p.risks
		s.budget[p.project.ID] = p.budget
	}
	return s
}

func (s *Source) Health(ctx context.Context) error {
	return ctx.Err()
}

func (s *Source) Projects(ctx context.Context) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.projects), nil
}

func (s *Source) Project(ctx context.Context, id string) (domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return domain.Project{}, err
	}
	p, ok := s.byID[id]
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: project %q", api.ErrNotFound, id)
	}
	return p, nil
}

func (s *Source) Breakdown(ctx context.Context, projectID string) (domain.Breakdown, error) {
	if err := s.check(ctx, projectID); err != nil {
		return domain.Breakdown{}, err
	}
	b := s.breakdowns[projectID]
	return domain.Breakdown{
		Nodes:        slices.Clone(b.Nodes),
		Tasks:        slices.Clone(b.Tasks),
		CriticalPath: slices.Clone(b.CriticalPath),
	}, nil
}

func (s *Source) Milestones(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	if err := s.check(ctx, projectID); err != nil {
		return nil, err
	}
	return slices.Clone(s.milestones[projectID]), nil
}

func (s *Source) Risks(ctx context.Context, projectID string) ([]domain.RiskRecord, error) {
	if err := s.check(ctx, projectID); err != nil {
		return nil, err
	}
	return slices.Clone(s.risks[projectID]), nil
}

func (s *Source) BudgetItems(ctx context.Context, projectID string) ([]domain.BudgetItem, error) {
	if err := s.check(ctx, projectID); err != nil {
		return nil, err
	}
	return slices.Clone(s.budget[projectID]), nil
}

func (s *Source) Stats(ctx context.Context) (domain.PortfolioStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.PortfolioStats{}, err
	}
	return domain.DerivePortfolioStats(s.projects), nil
}

func (s *Source) check(ctx context.Context, projectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := s.byID[projectID]; !ok {
		return fmt.Errorf("%w: project %q", api.ErrNotFound, projectID)
	}
	return nil
}

func tasksFromNodes(nodes []domain.WBSNode) []domain.Task {
	tasks := make([]domain.Task, 0, len(nodes))
	for _, n := range nodes {
		tasks = append(tasks, domain.Task{
			ID:             n.ID,
			ProjectID:      n.ProjectID,
			Name:           n.Name,
			StartDate:      n.StartDate,
			EndDate:        n.EndDate,
			Status:         n.Status,
			Progress:       n.CompletionPercentage,
			EstimatedHours: n.EstimatedHours,
			AssignedTo:     n.AssignedTo,
			Dependencies:   n.Dependencies,
		})
	}
	return tasks
}
