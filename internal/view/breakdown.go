package view

import (
	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/wbs"
)

type BreakdownRequest struct {
	ProjectID string
	// Orphans selects the unresolved-parent policy; empty means
	// promote-to-root.
	Orphans wbs.OrphanPolicy
}

func NewBreakdownRequest(projectID string) BreakdownRequest {
	return BreakdownRequest{
		ProjectID: projectID,
		Orphans:   wbs.OrphanPromoteToRoot,
	}
}

type BreakdownResponse struct {
	Project domain.Project
	Forest  wbs.BuildResult

	// Total aggregates hours and completion across every root.
	Total wbs.Rollup

	// CriticalPath carries the backend's opaque id list when present.
	CriticalPath []string
}
