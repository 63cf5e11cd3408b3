package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"gopkg.in/yaml.v3"
)

// CurrentSchemaVersion is the newest snapshot layout this reader handles.
const CurrentSchemaVersion = 1

// Snapshot is the top-level structure of an exported portfolio file.
// Collections are keyed by project id and hold the records the backend
// would serve live. The tasks map is optional; when absent, schedule
// items are derived from the breakdown records.
type Snapshot struct {
	SchemaVersion int    `json:"schema_version" yaml:"schema_version"`
	ExportedAt    string `json:"exported_at" yaml:"exported_at"`

	Projects   []api.ProjectRecord               `json:"projects" yaml:"projects"`
	Tasks      map[string][]api.WBSTaskRecord    `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Milestones map[string][]api.MilestoneRecord  `json:"milestones,omitempty" yaml:"milestones,omitempty"`
	WBS        map[string][]api.WBSTaskRecord    `json:"wbs,omitempty" yaml:"wbs,omitempty"`
	Risks      map[string][]api.RiskRecord       `json:"risks,omitempty" yaml:"risks,omitempty"`
	Budget     map[string][]api.BudgetItemRecord `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// Load reads and parses a snapshot file. The format follows the
// extension: .json, or .yaml/.yml.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}

	return &snap, nil
}
