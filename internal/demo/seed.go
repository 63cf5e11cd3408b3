package demo

import (
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// seedProject bundles one demo project with its collections.
type seedProject struct {
	project      domain.Project
	nodes        []domain.WBSNode
	criticalPath []string
	milestones   []domain.Milestone
	risks        []domain.RiskRecord
	budget       []domain.BudgetItem
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateP(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func strP(s string) *string { return &s }

// seedProjects mirrors the sample portfolio the ProjectHub backend
// creates on first start, extended with breakdowns, milestones, risks
// and budget lines for each project.
func seedProjects() []seedProject {
	return []seedProject{
		portalRedesign(),
		erpIntegration(),
		officeRenovation(),
		mobileApp(),
		dataMigration(),
	}
}

func portalRedesign() seedProject {
	const pid = "portal-redesign"
	return seedProject{
		project: domain.Project{
			ID:                   pid,
			Name:                 "Customer Portal Redesign",
			Description:          "Modernize the customer portal with improved UX/UI, mobile responsiveness, and enhanced security features",
			Status:               domain.ProjectPlanning,
			Priority:             domain.PriorityHigh,
			StartDate:            dateP(2025, 2, 1),
			EndDate:              dateP(2025, 8, 31),
			Budget:               250000,
			CompletionPercentage: 25,
			Tags:                 []string{"web_development", "ux_design", "security", "mobile"},
			CreatedAt:            date(2025, 1, 10),
			UpdatedAt:            date(2025, 3, 1),
		},
		nodes: []domain.WBSNode{
			{ID: "portal-discovery", ProjectID: pid, Name: "Discovery", Level: 0, WBSCode: "1",
				Status: domain.TaskCompleted, StartDate: dateP(2025, 2, 1), EndDate: dateP(2025, 2, 28), CompletionPercentage: 100},
			{ID: "portal-interviews", ProjectID: pid, Name: "Stakeholder interviews", ParentID: strP("portal-discovery"), Level: 1, WBSCode: "1.1",
				Status: domain.TaskCompleted, AssignedTo: "Priya", EstimatedHours: 40, ActualHours: 36,
				StartDate: dateP(2025, 2, 1), EndDate: dateP(2025, 2, 14), CompletionPercentage: 100},
			{ID: "portal-ux-audit", ProjectID: pid, Name: "UX audit of current portal", ParentID: strP("portal-discovery"), Level: 1, WBSCode: "1.2",
				Status: domain.TaskCompleted, AssignedTo: "Marcus", EstimatedHours: 60, ActualHours: 72,
				StartDate: dateP(2025, 2, 10), EndDate: dateP(2025, 2, 28), CompletionPercentage: 100},
			{ID: "portal-design", ProjectID: pid, Name: "Design", Level: 0, WBSCode: "2",
				Status: domain.TaskInProgress, StartDate: dateP(2025, 3, 1), EndDate: dateP(2025, 4, 30), CompletionPercentage: 40},
			{ID: "portal-wireframes", ProjectID: pid, Name: "Wireframes", ParentID: strP("portal-design"), Level: 1, WBSCode: "2.1",
				Status: domain.TaskInProgress, AssignedTo: "Marcus", EstimatedHours: 80, ActualHours: 45,
				StartDate: dateP(2025, 3, 1), EndDate: dateP(2025, 3, 31), CompletionPercentage: 60, Dependencies: []string{"portal-ux-audit"}},
			{ID: "portal-design-system", ProjectID: pid, Name: "Design system components", ParentID: strP("portal-design"), Level: 1, WBSCode: "2.2",
				Status: domain.TaskNotStarted, AssignedTo: "Elena", EstimatedHours: 120,
				StartDate: dateP(2025, 4, 1), EndDate: dateP(2025, 4, 30), Dependencies: []string{"portal-wireframes"}},
			{ID: "portal-build", ProjectID: pid, Name: "Implementation", Level: 0, WBSCode: "3",
				Status: domain.TaskNotStarted, StartDate: dateP(2025, 5, 1), EndDate: dateP(2025, 8, 15)},
		},
		milestones: []domain.Milestone{
			{ID: "portal-m-design", ProjectID: pid, Name: "Design sign-off", DueDate: date(2025, 4, 15),
				Type: domain.MilestoneDeliverable, Status: domain.MilestoneUpcoming},
			{ID: "portal-m-beta", ProjectID: pid, Name: "Public beta", DueDate: date(2025, 7, 1),
				Type: domain.MilestonePhaseGate, Status: domain.MilestoneUpcoming},
		},
		risks: []domain.RiskRecord{
			{ID: "portal-r-sso", ProjectID: pid, Title: "Legacy SSO integration unclear",
				Description: "The portal must keep the legacy SSO flow alive during migration and its owner has left.",
				Category:    "Technical", Probability: domain.RatingHigh, Impact: domain.RatingHigh,
				Status: domain.RiskIdentified, Owner: "Priya", TargetDate: dateP(2025, 4, 1)},
			{ID: "portal-r-design", ProjectID: pid, Title: "Design team double-booked in Q2",
				Category: "Resource", Probability: domain.RatingMedium, Impact: domain.RatingMedium,
				Status: domain.RiskMitigated, Owner: "Marcus",
				MitigationStrategy: "Contract designer secured for April and May."},
		},
		budget: []domain.BudgetItem{
			{ID: "portal-b-labor", ProjectID: pid, Category: domain.CategoryLabor, ItemName: "Design and engineering",
				EstimatedCost: 180000, ActualCost: 42000},
			{ID: "portal-b-sw", ProjectID: pid, Category: domain.CategorySoftware, ItemName: "Design tooling licences",
				EstimatedCost: 25000, ActualCost: 18000, Vendor: "Figma", PurchaseDate: dateP(2025, 2, 5)},
			{ID: "portal-b-cont", ProjectID: pid, Category: domain.CategoryContingency, ItemName: "Scope reserve",
				EstimatedCost: 20000},
		},
	}
}

func erpIntegration() seedProject {
	const pid = "erp-integration"
	return seedProject{
		project: domain.Project{
			ID:                   pid,
			Name:                 "ERP System Integration",
			Description:          "Integrate new ERP system with existing CRM and financial systems to streamline operations",
			Status:               domain.ProjectExecution,
			Priority:             domain.PriorityCritical,
			StartDate:            dateP(2024, 11, 1),
			EndDate:              dateP(2025, 5, 30),
			Budget:               450000,
			CompletionPercentage: 65,
			Tags:                 []string{"erp", "integration", "systems", "automation"},
			CreatedAt:            date(2024, 10, 15),
			UpdatedAt:            date(2025, 3, 5),
		},
		nodes: []domain.WBSNode{
			{ID: "erp-reqs", ProjectID: pid, Name: "Requirements and vendor workshops", Level: 0, WBSCode: "1",
				Status: domain.TaskCompleted, AssignedTo: "Tomas", EstimatedHours: 160, ActualHours: 180,
				StartDate: dateP(2024, 11, 1), EndDate: dateP(2024, 12, 15), CompletionPercentage: 100},
			{ID: "erp-mapping", ProjectID: pid, Name: "Data mapping CRM to ERP", Level: 0, WBSCode: "2",
				Status: domain.TaskCompleted, AssignedTo: "Aisha", EstimatedHours: 200, ActualHours: 240,
				StartDate: dateP(2024, 12, 1), EndDate: dateP(2025, 1, 31), CompletionPercentage: 100, Dependencies: []string{"erp-reqs"}},
			{ID: "erp-interfaces", ProjectID: pid, Name: "Interface build", Level: 0, WBSCode: "3",
				Status: domain.TaskInProgress, AssignedTo: "Aisha", EstimatedHours: 400, ActualHours: 310,
				StartDate: dateP(2025, 1, 15), EndDate: dateP(2025, 3, 31), CompletionPercentage: 70, Dependencies: []string{"erp-mapping"}},
			{ID: "erp-parallel", ProjectID: pid, Name: "Parallel run with finance", Level: 0, WBSCode: "4",
				Status: domain.TaskNotStarted, AssignedTo: "Tomas", EstimatedHours: 240,
				StartDate: dateP(2025, 4, 1), EndDate: dateP(2025, 5, 9), Dependencies: []string{"erp-interfaces"}},
			{ID: "erp-cutover", ProjectID: pid, Name: "Cutover and stabilization", Level: 0, WBSCode: "5",
				Status: domain.TaskNotStarted, EstimatedHours: 120,
				StartDate: dateP(2025, 5, 12), EndDate: dateP(2025, 5, 30), Dependencies: []string{"erp-parallel"}},
		},
		criticalPath: []string{"erp-interfaces", "erp-parallel", "erp-cutover"},
		milestones: []domain.Milestone{
			{ID: "erp-m-freeze", ProjectID: pid, Name: "Interface freeze", DueDate: date(2025, 3, 1),
				Type: domain.MilestoneCheckpoint, Status: domain.MilestoneCompleted},
			{ID: "erp-m-golive", ProjectID: pid, Name: "Go-live", DueDate: date(2025, 5, 15),
				Type: domain.MilestoneDeadline, Status: domain.MilestoneUpcoming},
		},
		risks: []domain.RiskRecord{
			{ID: "erp-r-vendor", ProjectID: pid, Title: "Vendor API instability",
				Description: "Sandbox endpoints drop sessions under load; production limits unknown.",
				Category:    "Technical", Probability: domain.RatingHigh, Impact: domain.RatingVeryHigh,
				Status: domain.RiskIdentified, Owner: "Aisha", TargetDate: dateP(2025, 3, 15)},
			{ID: "erp-r-finance", ProjectID: pid, Title: "Finance team unavailable during close",
				Category: "Resource", Probability: domain.RatingMedium, Impact: domain.RatingHigh,
				Status: domain.RiskAssessed, Owner: "Tomas",
				MitigationStrategy: "Parallel run scheduled outside month-end close windows."},
			{ID: "erp-r-data", ProjectID: pid, Title: "Data quality in legacy CRM",
				Category: "Technical", Probability: domain.RatingVeryHigh, Impact: domain.RatingHigh,
				Status: domain.RiskMitigated, Owner: "Aisha",
				MitigationStrategy: "Cleansing pass completed during mapping; exceptions report in place."},
		},
		budget: []domain.BudgetItem{
			{ID: "erp-b-labor", ProjectID: pid, Category: domain.CategoryLabor, ItemName: "Integration team",
				EstimatedCost: 200000, ActualCost: 150000},
			{ID: "erp-b-lic", ProjectID: pid, Category: domain.CategorySoftware, ItemName: "ERP licences year one",
				EstimatedCost: 120000, ActualCost: 110000, Vendor: "SAP", PurchaseDate: dateP(2024, 11, 20)},
			{ID: "erp-b-hw", ProjectID: pid, Category: domain.CategoryEquipment, ItemName: "Integration servers",
				EstimatedCost: 50000, ActualCost: 42000, Vendor: "Dell"},
			{ID: "erp-b-training", ProjectID: pid, Category: domain.CategoryTraining, ItemName: "Finance team training",
				EstimatedCost: 30000, ActualCost: 8000},
		},
	}
}

func officeRenovation() seedProject {
	const pid = "office-renovation"
	return seedProject{
		project: domain.Project{
			ID:                   pid,
			Name:                 "Office Space Renovation",
			Description:          "Renovate headquarters office space to support hybrid work model with collaborative spaces and updated technology",
			Status:               domain.ProjectInitiation,
			Priority:             domain.PriorityMedium,
			StartDate:            dateP(2025, 3, 15),
			EndDate:              dateP(2025, 7, 15),
			Budget:               150000,
			CompletionPercentage: 5,
			Tags:                 []string{"renovation", "facilities", "hybrid_work", "collaboration"},
			CreatedAt:            date(2025, 2, 20),
			UpdatedAt:            date(2025, 3, 10),
		},
		nodes: []domain.WBSNode{
			{ID: "office-brief", ProjectID: pid, Name: "Design brief and floor plan", Level: 0, WBSCode: "1",
				Status: domain.TaskInProgress, AssignedTo: "Sofia", EstimatedHours: 60, ActualHours: 12,
				StartDate: dateP(2025, 3, 15), EndDate: dateP(2025, 4, 4), CompletionPercentage: 20},
			{ID: "office-permits", ProjectID: pid, Name: "Permits and landlord approval", Level: 0, WBSCode: "2",
				Status: domain.TaskNotStarted, AssignedTo: "Sofia", EstimatedHours: 30,
				StartDate: dateP(2025, 4, 1), EndDate: dateP(2025, 4, 30), Dependencies: []string{"office-brief"}},
			{ID: "office-construction", ProjectID: pid, Name: "Construction", Level: 0, WBSCode: "3",
				Status: domain.TaskNotStarted, EstimatedHours: 500,
				StartDate: dateP(2025, 5, 5), EndDate: dateP(2025, 6, 27), Dependencies: []string{"office-permits"}},
			{ID: "office-fitout", ProjectID: pid, Name: "Furniture and AV fit-out", Level: 0, WBSCode: "4",
				Status: domain.TaskNotStarted, EstimatedHours: 120,
				StartDate: dateP(2025, 6, 30), EndDate: dateP(2025, 7, 15), Dependencies: []string{"office-construction"}},
		},
		milestones: []domain.Milestone{
			{ID: "office-m-permit", ProjectID: pid, Name: "Permit approval", DueDate: date(2025, 4, 30),
				Type: domain.MilestoneDeadline, Status: domain.MilestoneUpcoming},
		},
		risks: []domain.RiskRecord{
			{ID: "office-r-permit", ProjectID: pid, Title: "Permit approval delays",
				Category: "External", Probability: domain.RatingMedium, Impact: domain.RatingHigh,
				Status: domain.RiskIdentified, Owner: "Sofia", TargetDate: dateP(2025, 4, 15)},
			{ID: "office-r-contractor", ProjectID: pid, Title: "Contractor availability in summer",
				Category: "Schedule", Probability: domain.RatingLow, Impact: domain.RatingMedium,
				Status: domain.RiskIdentified, Owner: "Sofia"},
		},
		budget: []domain.BudgetItem{
			{ID: "office-b-materials", ProjectID: pid, Category: domain.CategoryMaterials, ItemName: "Construction materials",
				EstimatedCost: 60000},
			{ID: "office-b-labor", ProjectID: pid, Category: domain.CategoryLabor, ItemName: "Contractor crew",
				EstimatedCost: 70000, ActualCost: 5000},
			{ID: "office-b-cont", ProjectID: pid, Category: domain.CategoryContingency, ItemName: "Structural surprises reserve",
				EstimatedCost: 20000},
		},
	}
}

func mobileApp() seedProject {
	const pid = "mobile-app"
	return seedProject{
		project: domain.Project{
			ID:                   pid,
			Name:                 "Mobile App Development",
			Description:          "Develop native mobile applications for iOS and Android to extend our services to mobile users",
			Status:               domain.ProjectCompleted,
			Priority:             domain.PriorityHigh,
			StartDate:            dateP(2024, 6, 1),
			EndDate:              dateP(2024, 12, 31),
			Budget:               320000,
			CompletionPercentage: 100,
			Tags:                 []string{"mobile", "ios", "android", "app_development"},
			CreatedAt:            date(2024, 5, 10),
			UpdatedAt:            date(2025, 1, 6),
		},
		nodes: []domain.WBSNode{
			{ID: "mobile-discovery", ProjectID: pid, Name: "Product discovery", Level: 0, WBSCode: "1",
				Status: domain.TaskCompleted, AssignedTo: "Elena", EstimatedHours: 80, ActualHours: 75,
				StartDate: dateP(2024, 6, 1), EndDate: dateP(2024, 6, 30), CompletionPercentage: 100},
			{ID: "mobile-ios", ProjectID: pid, Name: "iOS build", Level: 0, WBSCode: "2",
				Status: domain.TaskCompleted, AssignedTo: "Kenji", EstimatedHours: 600, ActualHours: 640,
				StartDate: dateP(2024, 7, 1), EndDate: dateP(2024, 10, 31), CompletionPercentage: 100, Dependencies: []string{"mobile-discovery"}},
			{ID: "mobile-android", ProjectID: pid, Name: "Android build", Level: 0, WBSCode: "3",
				Status: domain.TaskCompleted, AssignedTo: "Priya", EstimatedHours: 600, ActualHours: 580,
				StartDate: dateP(2024, 7, 1), EndDate: dateP(2024, 10, 31), CompletionPercentage: 100, Dependencies: []string{"mobile-discovery"}},
			{ID: "mobile-beta", ProjectID: pid, Name: "Beta program", Level: 0, WBSCode: "4",
				Status: domain.TaskCompleted, EstimatedHours: 160, ActualHours: 150,
				StartDate: dateP(2024, 11, 1), EndDate: dateP(2024, 11, 30), CompletionPercentage: 100, Dependencies: []string{"mobile-ios", "mobile-android"}},
			{ID: "mobile-launch", ProjectID: pid, Name: "Store launch", Level: 0, WBSCode: "5",
				Status: domain.TaskCompleted, EstimatedHours: 60, ActualHours: 66,
				StartDate: dateP(2024, 12, 1), EndDate: dateP(2024, 12, 20), CompletionPercentage: 100, Dependencies: []string{"mobile-beta"}},
		},
		milestones: []domain.Milestone{
			{ID: "mobile-m-launch", ProjectID: pid, Name: "App store launch", DueDate: date(2024, 12, 15),
				Type: domain.MilestoneDeliverable, Status: domain.MilestoneCompleted},
		},
		risks: []domain.RiskRecord{
			{ID: "mobile-r-review", ProjectID: pid, Title: "App store review delays",
				Category: "External", Probability: domain.RatingMedium, Impact: domain.RatingMedium,
				Status: domain.RiskClosed, Owner: "Kenji",
				MitigationStrategy: "Submitted two weeks ahead of launch date."},
		},
		budget: []domain.BudgetItem{
			{ID: "mobile-b-labor", ProjectID: pid, Category: domain.CategoryLabor, ItemName: "Mobile engineering",
				EstimatedCost: 250000, ActualCost: 260000},
			{ID: "mobile-b-sw", ProjectID: pid, Category: domain.CategorySoftware, ItemName: "Device farm and CI",
				EstimatedCost: 40000, ActualCost: 38000, Vendor: "BrowserStack"},
			{ID: "mobile-b-travel", ProjectID: pid, Category: domain.CategoryTravel, ItemName: "Beta site visits",
				EstimatedCost: 10000, ActualCost: 6000},
		},
	}
}

func dataMigration() seedProject {
	const pid = "data-migration"
	return seedProject{
		project: domain.Project{
			ID:                   pid,
			Name:                 "Data Migration Project",
			Description:          "Migrate legacy data from multiple systems to new cloud-based data warehouse with improved analytics capabilities",
			Status:               domain.ProjectMonitoring,
			Priority:             domain.PriorityHigh,
			StartDate:            dateP(2024, 9, 1),
			EndDate:              dateP(2025, 3, 31),
			Budget:               280000,
			CompletionPercentage: 80,
			Tags:                 []string{"data_migration", "cloud", "analytics", "warehouse"},
			CreatedAt:            date(2024, 8, 12),
			UpdatedAt:            date(2025, 3, 2),
		},
		nodes: []domain.WBSNode{
			{ID: "data-schema", ProjectID: pid, Name: "Warehouse schema design", Level: 0, WBSCode: "1",
				Status: domain.TaskCompleted, AssignedTo: "Noor", EstimatedHours: 120, ActualHours: 110,
				StartDate: dateP(2024, 9, 1), EndDate: dateP(2024, 10, 15), CompletionPercentage: 100},
			{ID: "data-etl", ProjectID: pid, Name: "ETL pipelines", Level: 0, WBSCode: "2",
				Status: domain.TaskCompleted, AssignedTo: "Noor", EstimatedHours: 400, ActualHours: 420,
				StartDate: dateP(2024, 10, 1), EndDate: dateP(2025, 1, 15), CompletionPercentage: 100, Dependencies: []string{"data-schema"}},
			{ID: "data-validation", ProjectID: pid, Name: "Validation runs", Level: 0, WBSCode: "3",
				Status: domain.TaskInProgress, AssignedTo: "Tomas", EstimatedHours: 200, ActualHours: 140,
				StartDate: dateP(2025, 1, 16), EndDate: dateP(2025, 3, 7), CompletionPercentage: 70, Dependencies: []string{"data-etl"}},
			{ID: "data-rehearsal", ProjectID: pid, Name: "Cutover rehearsal", Level: 0, WBSCode: "4",
				Status: domain.TaskNotStarted, EstimatedHours: 80,
				StartDate: dateP(2025, 3, 10), EndDate: dateP(2025, 3, 28), Dependencies: []string{"data-validation"}},
		},
		milestones: []domain.Milestone{
			{ID: "data-m-validation", ProjectID: pid, Name: "Validation complete", DueDate: date(2025, 2, 15),
				Type: domain.MilestoneCheckpoint, Status: domain.MilestoneOverdue},
			{ID: "data-m-cutover", ProjectID: pid, Name: "Final cutover", DueDate: date(2025, 3, 20),
				Type: domain.MilestoneDeadline, Status: domain.MilestoneUpcoming},
		},
		risks: []domain.RiskRecord{
			{ID: "data-r-fields", ProjectID: pid, Title: "Unmapped legacy fields",
				Description: "Two source systems carry free-text fields with no warehouse target.",
				Category:    "Technical", Probability: domain.RatingHigh, Impact: domain.RatingMedium,
				Status: domain.RiskAssessed, Owner: "Noor", TargetDate: dateP(2025, 3, 10)},
			{ID: "data-r-cost", ProjectID: pid, Title: "Cloud cost overrun during backfill",
				Category: "Budget", Probability: domain.RatingMedium, Impact: domain.RatingMedium,
				Status: domain.RiskIdentified, Owner: "Tomas"},
		},
		budget: []domain.BudgetItem{
			{ID: "data-b-labor", ProjectID: pid, Category: domain.CategoryLabor, ItemName: "Data engineering",
				EstimatedCost: 150000, ActualCost: 130000},
			{ID: "data-b-cloud", ProjectID: pid, Category: domain.CategorySoftware, ItemName: "Warehouse compute and storage",
				EstimatedCost: 80000, ActualCost: 75000, Vendor: "Snowflake"},
			{ID: "data-b-cont", ProjectID: pid, Category: domain.CategoryContingency, ItemName: "Backfill reserve",
				EstimatedCost: 30000, ActualCost: 10000},
		},
	}
}
