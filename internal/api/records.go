package api

import (
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Wire records carry the backend payload fields the console consumes.
// Snapshot files hold exported payloads of the same shape, so every
// record has both JSON and YAML tags and converts to its domain type
// in exactly one place. Conversion fills absent enum and level fields
// with the backend model defaults.

type ProjectRecord struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	Description          string   `json:"description" yaml:"description"`
	Status               string   `json:"status" yaml:"status"`
	Priority             string   `json:"priority" yaml:"priority"`
	StartDate            *string  `json:"start_date" yaml:"start_date"`
	EndDate              *string  `json:"end_date" yaml:"end_date"`
	Budget               *float64 `json:"budget" yaml:"budget"`
	CompletionPercentage float64  `json:"completion_percentage" yaml:"completion_percentage"`
	Tags                 []string `json:"tags" yaml:"tags"`
	CreatedAt            string   `json:"created_at" yaml:"created_at"`
	UpdatedAt            string   `json:"updated_at" yaml:"updated_at"`
}

func (r ProjectRecord) ToDomain() (domain.Project, error) {
	start, err := domain.ParseOptionalDate(r.StartDate, "project.start_date")
	if err != nil {
		return domain.Project{}, err
	}
	end, err := domain.ParseOptionalDate(r.EndDate, "project.end_date")
	if err != nil {
		return domain.Project{}, err
	}
	created, err := parseMetaTime(r.CreatedAt, "project.created_at")
	if err != nil {
		return domain.Project{}, err
	}
	updated, err := parseMetaTime(r.UpdatedAt, "project.updated_at")
	if err != nil {
		return domain.Project{}, err
	}
	return domain.Project{
		ID:                   r.ID,
		Name:                 r.Name,
		Description:          r.Description,
		Status:               domain.ProjectStatus(domain.CoalesceStr(r.Status, string(domain.ProjectInitiation))),
		Priority:             domain.Priority(domain.CoalesceStr(r.Priority, string(domain.PriorityMedium))),
		StartDate:            start,
		EndDate:              end,
		Budget:               domain.Float64FromPtrWithDefault(0, r.Budget),
		CompletionPercentage: r.CompletionPercentage,
		Tags:                 r.Tags,
		CreatedAt:            created,
		UpdatedAt:            updated,
	}, nil
}

type WBSTaskRecord struct {
	ID                   string             `json:"id" yaml:"id"`
	ProjectID            string             `json:"project_id" yaml:"project_id"`
	Name                 string             `json:"name" yaml:"name"`
	Description          string             `json:"description" yaml:"description"`
	ParentID             *string            `json:"parent_id" yaml:"parent_id"`
	Level                *int               `json:"level" yaml:"level"`
	WBSCode              string             `json:"wbs_code" yaml:"wbs_code"`
	Status               string             `json:"status" yaml:"status"`
	AssignedTo           *string            `json:"assigned_to" yaml:"assigned_to"`
	EstimatedHours       *float64           `json:"estimated_hours" yaml:"estimated_hours"`
	ActualHours          *float64           `json:"actual_hours" yaml:"actual_hours"`
	StartDate            *string            `json:"start_date" yaml:"start_date"`
	EndDate              *string            `json:"end_date" yaml:"end_date"`
	Dependencies         []string           `json:"dependencies" yaml:"dependencies"`
	CompletionPercentage float64            `json:"completion_percentage" yaml:"completion_percentage"`
	Allocations          map[string]float64 `json:"allocations,omitempty" yaml:"allocations,omitempty"`
}

func (r WBSTaskRecord) ToDomain() (domain.WBSNode, error) {
	start, err := domain.ParseOptionalDate(r.StartDate, "wbs.start_date")
	if err != nil {
		return domain.WBSNode{}, err
	}
	end, err := domain.ParseOptionalDate(r.EndDate, "wbs.end_date")
	if err != nil {
		return domain.WBSNode{}, err
	}
	var assignee string
	if r.AssignedTo != nil {
		assignee = *r.AssignedTo
	}
	return domain.WBSNode{
		ID:                   r.ID,
		ProjectID:            r.ProjectID,
		Name:                 r.Name,
		Description:          r.Description,
		ParentID:             r.ParentID,
		Level:                domain.IntFromPtrWithDefault(1, r.Level),
		WBSCode:              r.WBSCode,
		Status:               domain.TaskStatus(domain.CoalesceStr(r.Status, string(domain.TaskNotStarted))),
		AssignedTo:           assignee,
		EstimatedHours:       domain.Float64FromPtrWithDefault(0, r.EstimatedHours),
		ActualHours:          domain.Float64FromPtrWithDefault(0, r.ActualHours),
		StartDate:            start,
		EndDate:              end,
		Dependencies:         r.Dependencies,
		CompletionPercentage: r.CompletionPercentage,
	}, nil
}

// ToTask re-shapes a breakdown record into the schedule item the
// timeline renders. The backend has no separate task collection.
func (r WBSTaskRecord) ToTask() (domain.Task, error) {
	start, err := domain.ParseOptionalDate(r.StartDate, "task.start_date")
	if err != nil {
		return domain.Task{}, err
	}
	end, err := domain.ParseOptionalDate(r.EndDate, "task.end_date")
	if err != nil {
		return domain.Task{}, err
	}
	var assignee string
	if r.AssignedTo != nil {
		assignee = *r.AssignedTo
	}
	return domain.Task{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		Name:           r.Name,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.TaskStatus(domain.CoalesceStr(r.Status, string(domain.TaskNotStarted))),
		Progress:       r.CompletionPercentage,
		EstimatedHours: domain.Float64FromPtrWithDefault(0, r.EstimatedHours),
		AssignedTo:     assignee,
		Dependencies:   r.Dependencies,
		Allocations:    r.Allocations,
	}, nil
}

type MilestoneRecord struct {
	ID        string `json:"id" yaml:"id"`
	ProjectID string `json:"project_id" yaml:"project_id"`
	Name      string `json:"name" yaml:"name"`
	DueDate   string `json:"due_date" yaml:"due_date"`
	Type      string `json:"type" yaml:"type"`
	Status    string `json:"status" yaml:"status"`
}

func (r MilestoneRecord) ToDomain() (domain.Milestone, error) {
	due, err := domain.ParseDate(r.DueDate, "milestone.due_date")
	if err != nil {
		return domain.Milestone{}, err
	}
	return domain.Milestone{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		Name:      r.Name,
		DueDate:   due,
		Type:      domain.MilestoneType(r.Type),
		Status:    domain.MilestoneStatus(r.Status),
	}, nil
}

type RiskRecord struct {
	ID                 string  `json:"id" yaml:"id"`
	ProjectID          string  `json:"project_id" yaml:"project_id"`
	Title              string  `json:"title" yaml:"title"`
	Description        string  `json:"description" yaml:"description"`
	Category           string  `json:"category" yaml:"category"`
	Probability        string  `json:"probability" yaml:"probability"`
	Impact             string  `json:"impact" yaml:"impact"`
	Status             string  `json:"status" yaml:"status"`
	Owner              *string `json:"owner" yaml:"owner"`
	MitigationStrategy *string `json:"mitigation_strategy" yaml:"mitigation_strategy"`
	TargetDate         *string `json:"target_date" yaml:"target_date"`
}

func (r RiskRecord) ToDomain() (domain.RiskRecord, error) {
	target, err := domain.ParseOptionalDate(r.TargetDate, "risk.target_date")
	if err != nil {
		return domain.RiskRecord{}, err
	}
	var owner, mitigation string
	if r.Owner != nil {
		owner = *r.Owner
	}
	if r.MitigationStrategy != nil {
		mitigation = *r.MitigationStrategy
	}
	return domain.RiskRecord{
		ID:                 r.ID,
		ProjectID:          r.ProjectID,
		Title:              r.Title,
		Description:        r.Description,
		Category:           r.Category,
		Probability:        domain.RiskRating(r.Probability),
		Impact:             domain.RiskRating(r.Impact),
		Status:             domain.RiskStatus(domain.CoalesceStr(r.Status, string(domain.RiskIdentified))),
		Owner:              owner,
		MitigationStrategy: mitigation,
		TargetDate:         target,
	}, nil
}

type BudgetItemRecord struct {
	ID            string   `json:"id" yaml:"id"`
	ProjectID     string   `json:"project_id" yaml:"project_id"`
	Category      string   `json:"category" yaml:"category"`
	ItemName      string   `json:"item_name" yaml:"item_name"`
	Description   *string  `json:"description" yaml:"description"`
	EstimatedCost float64  `json:"estimated_cost" yaml:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost" yaml:"actual_cost"`
	Vendor        *string  `json:"vendor" yaml:"vendor"`
	PurchaseDate  *string  `json:"purchase_date" yaml:"purchase_date"`
}

func (r BudgetItemRecord) ToDomain() (domain.BudgetItem, error) {
	purchased, err := domain.ParseOptionalDate(r.PurchaseDate, "budget.purchase_date")
	if err != nil {
		return domain.BudgetItem{}, err
	}
	var description, vendor string
	if r.Description != nil {
		description = *r.Description
	}
	if r.Vendor != nil {
		vendor = *r.Vendor
	}
	return domain.BudgetItem{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		Category:      domain.BudgetCategory(r.Category),
		ItemName:      r.ItemName,
		Description:   description,
		EstimatedCost: r.EstimatedCost,
		ActualCost:    domain.Float64FromPtrWithDefault(0, r.ActualCost),
		Vendor:        vendor,
		PurchaseDate:  purchased,
	}, nil
}

type StatsRecord struct {
	TotalProjects     int     `json:"total_projects" yaml:"total_projects"`
	ActiveProjects    int     `json:"active_projects" yaml:"active_projects"`
	CompletedProjects int     `json:"completed_projects" yaml:"completed_projects"`
	CompletionRate    float64 `json:"completion_rate" yaml:"completion_rate"`
}

func (r StatsRecord) ToDomain() domain.PortfolioStats {
	return domain.PortfolioStats{
		TotalProjects:     r.TotalProjects,
		ActiveProjects:    r.ActiveProjects,
		CompletedProjects: r.CompletedProjects,
		CompletionRate:    r.CompletionRate,
	}
}

type healthRecord struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func parseMetaTime(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return domain.ParseTimestamp(value, field)
}
