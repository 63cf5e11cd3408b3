package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID                   string
	Name                 string
	Description          string
	Status               ProjectStatus
	Priority             Priority
	StartDate            *time.Time
	EndDate              *time.Time
	Budget               float64
	CompletionPercentage float64
	Tags                 []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate checks the record-level constraints the console relies on.
func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if !ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("project %s: invalid status %q", p.ID, p.Status)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("project %s: end_date %s before start_date %s",
			p.ID, p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	if p.CompletionPercentage < 0 || p.CompletionPercentage > 100 {
		return fmt.Errorf("project %s: completion_percentage %.1f outside [0,100]", p.ID, p.CompletionPercentage)
	}
	return nil
}

// DisplayID returns a short identifier for display: the first 8
// characters of the record id.
func (p *Project) DisplayID() string {
	return DisplayID(p.ID)
}

// DisplayID truncates a record id to 8 characters for display.
func DisplayID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
