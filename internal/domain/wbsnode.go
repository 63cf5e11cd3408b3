package domain

import (
	"fmt"
	"time"
)

// WBSNode is one entry of a work breakdown structure. The flat collection
// fetched from the backend references parents by id; the tree shape is
// derived client-side.
type WBSNode struct {
	ID                   string
	ProjectID            string
	Name                 string
	Description          string
	ParentID             *string
	Level                int
	WBSCode              string // e.g. "1.2.3"
	Status               TaskStatus
	AssignedTo           string
	EstimatedHours       float64
	ActualHours          float64
	StartDate            *time.Time
	EndDate              *time.Time
	Dependencies         []string
	CompletionPercentage float64
}

// Breakdown is a project's flat WBS collection plus the schedule items
// derived from it. CriticalPath carries the backend's optional id list
// untouched; it is never computed here.
type Breakdown struct {
	Nodes        []WBSNode
	Tasks        []Task
	CriticalPath []string
}

// Validate checks the record-level constraints the console relies on.
func (n *WBSNode) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("wbs node id is required")
	}
	if n.Name == "" {
		return fmt.Errorf("wbs node %s: name is required", n.ID)
	}
	if n.Status != "" && !ValidWBSStatuses[string(n.Status)] {
		return fmt.Errorf("wbs node %s: invalid status %q", n.ID, n.Status)
	}
	if n.Level < 0 {
		return fmt.Errorf("wbs node %s: negative level %d", n.ID, n.Level)
	}
	return nil
}
