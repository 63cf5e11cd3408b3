package domain

import "time"

// RiskRecord is one entry of a project risk register. Score and severity
// are derived from the two ordinal ratings, never stored authoritatively.
type RiskRecord struct {
	ID                 string
	ProjectID          string
	Title              string
	Description        string
	Category           string // free-form: Technical, Schedule, Budget, ...
	Probability        RiskRating
	Impact             RiskRating
	Status             RiskStatus
	Owner              string
	MitigationStrategy string
	TargetDate         *time.Time
}

// IsOpen reports whether the risk still needs attention.
func (r *RiskRecord) IsOpen() bool {
	return r.Status != RiskClosed && r.Status != RiskMitigated
}
