package domain

import "time"

// Task is a dated schedule item rendered as a bar on the timeline.
type Task struct {
	ID             string
	ProjectID      string
	Name           string
	StartDate      *time.Time
	EndDate        *time.Time
	Status         TaskStatus
	Progress       float64 // 0-100
	Priority       Priority
	EstimatedHours float64
	AssignedTo     string
	Dependencies   []string
	// Allocations maps resource names to allocated hours. Utilization
	// derived from it is backend-computed and passed through untouched.
	Allocations map[string]float64
}

// HasSchedule reports whether both dates needed for positioning are present.
func (t *Task) HasSchedule() bool {
	return t.StartDate != nil && t.EndDate != nil
}

// Milestone is a zero-duration dated event rendered as a point marker.
type Milestone struct {
	ID        string
	ProjectID string
	Name      string
	DueDate   time.Time
	Type      MilestoneType
	Status    MilestoneStatus
}

// EffectiveStatus resolves an unset milestone status from the due date:
// overdue when past due, upcoming otherwise. A stored status wins.
func (m *Milestone) EffectiveStatus(now time.Time) MilestoneStatus {
	if m.Status != "" {
		return m.Status
	}
	if m.DueDate.Before(now) {
		return MilestoneOverdue
	}
	return MilestoneUpcoming
}
