package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithBudget(amount float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = amount
	}
}

func WithCompletion(pct float64) ProjectOption {
	return func(p *domain.Project) {
		p.CompletionPercentage = pct
	}
}

func NewProject(name string, opts ...ProjectOption) domain.Project {
	now := time.Now().UTC()
	start := now.AddDate(0, -1, 0)
	end := now.AddDate(0, 2, 0)
	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectExecution,
		Priority:  domain.PriorityMedium,
		StartDate: &start,
		EndDate:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = &start
		t.EndDate = &end
	}
}

// NewTask builds an undated task so schedule behavior stays under the
// test's control. Pass WithTaskDates to place it on the timeline.
func NewTask(projectID, name string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		Name:           name,
		Status:         domain.TaskNotStarted,
		Priority:       domain.PriorityMedium,
		EstimatedHours: 8,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithMilestoneStatus(s domain.MilestoneStatus) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Status = s
	}
}

func NewMilestone(projectID, name string, due time.Time, opts ...MilestoneOption) domain.Milestone {
	m := domain.Milestone{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		DueDate:   due,
		Type:      domain.MilestoneDeliverable,
		Status:    domain.MilestoneUpcoming,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Risk options
type RiskOption func(*domain.RiskRecord)

func WithRiskStatus(s domain.RiskStatus) RiskOption {
	return func(r *domain.RiskRecord) {
		r.Status = s
	}
}

func NewRiskRecord(projectID, title string, probability, impact domain.RiskRating, opts ...RiskOption) domain.RiskRecord {
	r := domain.RiskRecord{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Title:       title,
		Category:    "Technical",
		Probability: probability,
		Impact:      impact,
		Status:      domain.RiskIdentified,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func NewBudgetItem(projectID, itemName string, category domain.BudgetCategory, estimated, actual float64) domain.BudgetItem {
	return domain.BudgetItem{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		Category:      category,
		ItemName:      itemName,
		EstimatedCost: estimated,
		ActualCost:    actual,
	}
}
