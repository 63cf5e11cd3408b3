package domain

type ProjectStatus string

const (
	ProjectInitiation ProjectStatus = "initiation"
	ProjectPlanning   ProjectStatus = "planning"
	ProjectExecution  ProjectStatus = "execution"
	ProjectMonitoring ProjectStatus = "monitoring"
	ProjectClosure    ProjectStatus = "closure"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// IsActive reports whether the project counts toward the active total.
// The backend defines active as any status other than completed/cancelled.
func (s ProjectStatus) IsActive() bool {
	return s != ProjectCompleted && s != ProjectCancelled
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOnHold     TaskStatus = "on_hold"
	TaskBlocked    TaskStatus = "blocked"
	TaskCancelled  TaskStatus = "cancelled"
)

type MilestoneType string

const (
	MilestoneDeliverable MilestoneType = "deliverable"
	MilestoneCheckpoint  MilestoneType = "checkpoint"
	MilestoneDeadline    MilestoneType = "deadline"
	MilestonePhaseGate   MilestoneType = "phase_gate"
)

type MilestoneStatus string

const (
	MilestoneUpcoming  MilestoneStatus = "upcoming"
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneOverdue   MilestoneStatus = "overdue"
)

// RiskRating is the 5-level ordinal scale shared by probability and impact.
type RiskRating string

const (
	RatingVeryLow  RiskRating = "very_low"
	RatingLow      RiskRating = "low"
	RatingMedium   RiskRating = "medium"
	RatingHigh     RiskRating = "high"
	RatingVeryHigh RiskRating = "very_high"
)

type RiskStatus string

const (
	RiskIdentified RiskStatus = "identified"
	RiskAssessed   RiskStatus = "assessed"
	RiskMitigated  RiskStatus = "mitigated"
	RiskClosed     RiskStatus = "closed"
	RiskOccurred   RiskStatus = "occurred"
)

type BudgetCategory string

const (
	CategoryLabor       BudgetCategory = "labor"
	CategoryEquipment   BudgetCategory = "equipment"
	CategoryMaterials   BudgetCategory = "materials"
	CategoryTravel      BudgetCategory = "travel"
	CategoryTraining    BudgetCategory = "training"
	CategorySoftware    BudgetCategory = "software"
	CategoryContingency BudgetCategory = "contingency"
	CategoryOther       BudgetCategory = "other"
)

// BudgetCategories lists all categories in canonical display order.
var BudgetCategories = []BudgetCategory{
	CategoryLabor, CategoryEquipment, CategoryMaterials, CategoryTravel,
	CategoryTraining, CategorySoftware, CategoryContingency, CategoryOther,
}

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"initiation": true, "planning": true, "execution": true,
	"monitoring": true, "closure": true, "completed": true, "cancelled": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "completed": true,
	"on_hold": true, "blocked": true, "cancelled": true,
}

// ValidWBSStatuses is the set accepted for breakdown nodes. The backend's
// WBS records never carry "blocked".
var ValidWBSStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "completed": true,
	"on_hold": true, "cancelled": true,
}

// ValidRiskRatings is the canonical set of accepted probability/impact strings.
var ValidRiskRatings = map[string]bool{
	"very_low": true, "low": true, "medium": true, "high": true, "very_high": true,
}

// ValidRiskStatuses is the canonical set of accepted risk status strings.
var ValidRiskStatuses = map[string]bool{
	"identified": true, "assessed": true, "mitigated": true,
	"closed": true, "occurred": true,
}

// ValidBudgetCategories is the canonical set of accepted budget category strings.
var ValidBudgetCategories = map[string]bool{
	"labor": true, "equipment": true, "materials": true, "travel": true,
	"training": true, "software": true, "contingency": true, "other": true,
}

// ValidMilestoneTypes is the canonical set of accepted milestone type strings.
var ValidMilestoneTypes = map[string]bool{
	"deliverable": true, "checkpoint": true, "deadline": true, "phase_gate": true,
}

// ValidMilestoneStatuses is the canonical set of accepted milestone status strings.
var ValidMilestoneStatuses = map[string]bool{
	"upcoming": true, "completed": true, "overdue": true,
}
