package snapshot

import (
	"fmt"
	"sort"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Validate checks a snapshot for errors before conversion. It returns
// every problem found, not just the first.
func Validate(snap *Snapshot) []error {
	var errs []error

	if snap.SchemaVersion < 1 {
		errs = append(errs, fmt.Errorf("invalid schema_version %d (must be >= 1)", snap.SchemaVersion))
	} else if snap.SchemaVersion > CurrentSchemaVersion {
		errs = append(errs, fmt.Errorf("unsupported schema_version %d (max supported: %d)", snap.SchemaVersion, CurrentSchemaVersion))
	}

	known := make(map[string]bool)
	errs = append(errs, validateProjects(snap.Projects, known)...)

	errs = append(errs, validateTaskMap("tasks", snap.Tasks, known, domain.ValidTaskStatuses)...)
	errs = append(errs, validateTaskMap("wbs", snap.WBS, known, domain.ValidWBSStatuses)...)
	errs = append(errs, validateMilestones(snap.Milestones, known)...)
	errs = append(errs, validateRisks(snap.Risks, known)...)
	errs = append(errs, validateBudget(snap.Budget, known)...)

	return errs
}

func validateProjects(projects []api.ProjectRecord, known map[string]bool) []error {
	var errs []error

	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if known[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate project id %q", prefix, p.ID))
		} else {
			known[p.ID] = true
		}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}
		if p.Priority != "" && !domain.ValidPriorities[p.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, p.Priority))
		}
		if p.CompletionPercentage < 0 || p.CompletionPercentage > 100 {
			errs = append(errs, fmt.Errorf("%s.completion_percentage: %.1f outside [0,100]", prefix, p.CompletionPercentage))
		}

		errs = append(errs, checkOptionalDate(prefix+".start_date", p.StartDate)...)
		errs = append(errs, checkOptionalDate(prefix+".end_date", p.EndDate)...)
	}

	return errs
}

func validateTaskMap(name string, byProject map[string][]api.WBSTaskRecord, known map[string]bool, validStatuses map[string]bool) []error {
	var errs []error

	for _, pid := range sortedKeys(byProject) {
		if !known[pid] {
			errs = append(errs, fmt.Errorf("%s: unknown project id %q", name, pid))
		}
		for i, r := range byProject[pid] {
			prefix := fmt.Sprintf("%s[%s][%d]", name, pid, i)

			if r.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			}
			if r.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", prefix))
			}
			if r.Status != "" && !validStatuses[r.Status] {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, r.Status))
			}
			if r.Level != nil && *r.Level < 0 {
				errs = append(errs, fmt.Errorf("%s.level: negative level %d", prefix, *r.Level))
			}

			errs = append(errs, checkOptionalDate(prefix+".start_date", r.StartDate)...)
			errs = append(errs, checkOptionalDate(prefix+".end_date", r.EndDate)...)
		}
	}

	return errs
}

func validateMilestones(byProject map[string][]api.MilestoneRecord, known map[string]bool) []error {
	var errs []error

	for _, pid := range sortedKeys(byProject) {
		if !known[pid] {
			errs = append(errs, fmt.Errorf("milestones: unknown project id %q", pid))
		}
		for i, m := range byProject[pid] {
			prefix := fmt.Sprintf("milestones[%s][%d]", pid, i)

			if m.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			}
			if m.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", prefix))
			}
			if m.DueDate == "" {
				errs = append(errs, fmt.Errorf("%s.due_date is required", prefix))
			} else if _, err := domain.ParseDate(m.DueDate, prefix+".due_date"); err != nil {
				errs = append(errs, err)
			}
			if m.Type != "" && !domain.ValidMilestoneTypes[m.Type] {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, m.Type))
			}
			if m.Status != "" && !domain.ValidMilestoneStatuses[m.Status] {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, m.Status))
			}
		}
	}

	return errs
}

func validateRisks(byProject map[string][]api.RiskRecord, known map[string]bool) []error {
	var errs []error

	for _, pid := range sortedKeys(byProject) {
		if !known[pid] {
			errs = append(errs, fmt.Errorf("risks: unknown project id %q", pid))
		}
		for i, r := range byProject[pid] {
			prefix := fmt.Sprintf("risks[%s][%d]", pid, i)

			if r.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			}
			if r.Title == "" {
				errs = append(errs, fmt.Errorf("%s.title is required", prefix))
			}
			if r.Probability != "" && !domain.ValidRiskRatings[r.Probability] {
				errs = append(errs, fmt.Errorf("%s.probability: invalid value %q", prefix, r.Probability))
			}
			if r.Impact != "" && !domain.ValidRiskRatings[r.Impact] {
				errs = append(errs, fmt.Errorf("%s.impact: invalid value %q", prefix, r.Impact))
			}
			if r.Status != "" && !domain.ValidRiskStatuses[r.Status] {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, r.Status))
			}

			errs = append(errs, checkOptionalDate(prefix+".target_date", r.TargetDate)...)
		}
	}

	return errs
}

func validateBudget(byProject map[string][]api.BudgetItemRecord, known map[string]bool) []error {
	var errs []error

	for _, pid := range sortedKeys(byProject) {
		if !known[pid] {
			errs = append(errs, fmt.Errorf("budget: unknown project id %q", pid))
		}
		for i, b := range byProject[pid] {
			prefix := fmt.Sprintf("budget[%s][%d]", pid, i)

			if b.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			}
			if b.ItemName == "" {
				errs = append(errs, fmt.Errorf("%s.item_name is required", prefix))
			}
			if b.Category != "" && !domain.ValidBudgetCategories[b.Category] {
				errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, b.Category))
			}

			errs = append(errs, checkOptionalDate(prefix+".purchase_date", b.PurchaseDate)...)
		}
	}

	return errs
}

func checkOptionalDate(field string, value *string) []error {
	if _, err := domain.ParseOptionalDate(value, field); err != nil {
		return []error{err}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
