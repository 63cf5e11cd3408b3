package view

import (
	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/risk"
)

type RiskRequest struct {
	ProjectID string
}

func NewRiskRequest(projectID string) RiskRequest {
	return RiskRequest{ProjectID: projectID}
}

type RiskResponse struct {
	Project domain.Project

	// Register holds every risk assessed and sorted in canonical
	// order: severity, then score, open before resolved, then title.
	Register []risk.Assessment

	CriticalCount int
	HighCount     int
	MediumCount   int
	LowCount      int
	OpenCount     int
}
