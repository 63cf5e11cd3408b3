package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Source serves portfolio data from an exported snapshot file. It
// satisfies api.Client so callers cannot tell a file from a live
// backend. The file is re-read whenever its size or modification time
// changes on disk.
type Source struct {
	path string

	mu      sync.Mutex
	cache   *portfolio
	modTime time.Time
	size    int64
}

// portfolio holds the converted snapshot contents indexed by project.
type portfolio struct {
	projects   []domain.Project
	byID       map[string]domain.Project
	breakdowns map[string]domain.Breakdown
	milestones map[string][]domain.Milestone
	risks      map[string][]domain.RiskRecord
	budget     map[string][]domain.BudgetItem
}

// New creates a Source backed by the given snapshot file. The file is
// not touched until the first read.
func New(path string) *Source {
	return &Source{path: path}
}

// Path returns the snapshot file location this source reads from.
func (s *Source) Path() string {
	return s.path
}

func (s *Source) Health(ctx context.Context) error {
	_, err := s.current(ctx)
	return err
}

func (s *Source) Projects(ctx context.Context) ([]domain.Project, error) {
	p, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.projects), nil
}

func (s *Source) Project(ctx context.Context, id string) (domain.Project, error) {
	p, err := s.current(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	project, ok := p.byID[id]
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: project %q", api.ErrNotFound, id)
	}
	return project, nil
}

func (s *Source) Breakdown(ctx context.Context, projectID string) (domain.Breakdown, error) {
	p, err := s.current(ctx)
	if err != nil {
		return domain.Breakdown{}, err
	}
	if _, ok := p.byID[projectID]; !ok {
		return domain.Breakdown{}, fmt.Errorf("%w: project %q", api.ErrNotFound, projectID)
	}
	b := p.breakdowns[projectID]
	return domain.Breakdown{
		Nodes:        slices.Clone(b.Nodes),
		Tasks:        slices.Clone(b.Tasks),
		CriticalPath: slices.Clone(b.CriticalPath),
	}, nil
}

func (s *Source) Milestones(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	p, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := p.byID[projectID]; !ok {
		return nil, fmt.Errorf("%w: project %q", api.ErrNotFound, projectID)
	}
	return slices.Clone(p.milestones[projectID]), nil
}

func (s *Source) Risks(ctx context.Context, projectID string) ([]domain.RiskRecord, error) {
	p, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := p.byID[projectID]; !ok {
		return nil, fmt.Errorf("%w: project %q", api.ErrNotFound, projectID)
	}
	return slices.Clone(p.risks[projectID]), nil
}

func (s *Source) BudgetItems(ctx context.Context, projectID string) ([]domain.BudgetItem, error) {
	p, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := p.byID[projectID]; !ok {
		return nil, fmt.Errorf("%w: project %q", api.ErrNotFound, projectID)
	}
	return slices.Clone(p.budget[projectID]), nil
}

// Stats derives portfolio statistics from the project list. Snapshot
// files carry no precomputed stats.
func (s *Source) Stats(ctx context.Context) (domain.PortfolioStats, error) {
	p, err := s.current(ctx)
	if err != nil {
		return domain.PortfolioStats{}, err
	}
	return domain.DerivePortfolioStats(p.projects), nil
}

// current returns the cached portfolio, reloading when the file has
// changed since the last read.
func (s *Source) current(ctx context.Context) (*portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if s.cache != nil && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return s.cache, nil
	}

	snap, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(snap); len(errs) > 0 {
		return nil, formatErrors(errs)
	}

	p, err := buildPortfolio(snap)
	if err != nil {
		return nil, err
	}

	s.cache = p
	s.modTime = info.ModTime()
	s.size = info.Size()
	return p, nil
}

func buildPortfolio(snap *Snapshot) (*portfolio, error) {
	p := &portfolio{
		byID:       make(map[string]domain.Project, len(snap.Projects)),
		breakdowns: make(map[string]domain.Breakdown),
		milestones: make(map[string][]domain.Milestone),
		risks:      make(map[string][]domain.RiskRecord),
		budget:     make(map[string][]domain.BudgetItem),
	}

	for _, record := range snap.Projects {
		project, err := record.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("converting project %q: %w", record.ID, err)
		}
		p.projects = append(p.projects, project)
		p.byID[project.ID] = project
	}

	for pid, records := range snap.WBS {
		b, err := api.BreakdownFromRecords(records, nil)
		if err != nil {
			return nil, fmt.Errorf("converting wbs for project %q: %w", pid, err)
		}
		p.breakdowns[pid] = b
	}

	// An explicit tasks collection overrides the schedule items derived
	// from the breakdown records.
	for pid, records := range snap.Tasks {
		tasks := make([]domain.Task, 0, len(records))
		for _, r := range records {
			task, err := r.ToTask()
			if err != nil {
				return nil, fmt.Errorf("converting tasks for project %q: %w", pid, err)
			}
			tasks = append(tasks, task)
		}
		b := p.breakdowns[pid]
		b.Tasks = tasks
		p.breakdowns[pid] = b
	}

	for pid, records := range snap.Milestones {
		milestones := make([]domain.Milestone, 0, len(records))
		for _, r := range records {
			m, err := r.ToDomain()
			if err != nil {
				return nil, fmt.Errorf("converting milestones for project %q: %w", pid, err)
			}
			milestones = append(milestones, m)
		}
		p.milestones[pid] = milestones
	}

	for pid, records := range snap.Risks {
		risks := make([]domain.RiskRecord, 0, len(records))
		for _, r := range records {
			risk, err := r.ToDomain()
			if err != nil {
				return nil, fmt.Errorf("converting risks for project %q: %w", pid, err)
			}
			risks = append(risks, risk)
		}
		p.risks[pid] = risks
	}

	for pid, records := range snap.Budget {
		items := make([]domain.BudgetItem, 0, len(records))
		for _, r := range records {
			item, err := r.ToDomain()
			if err != nil {
				return nil, fmt.Errorf("converting budget for project %q: %w", pid, err)
			}
			items = append(items, item)
		}
		p.budget[pid] = items
	}

	return p, nil
}

func formatErrors(errs []error) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "snapshot validation failed (%d errors):", len(errs))
	for _, err := range errs {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return errors.New(sb.String())
}
