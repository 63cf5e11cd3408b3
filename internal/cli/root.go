package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/demo"
	"github.com/vijaykmarupuudi/planhub/internal/service"
	"github.com/vijaykmarupuudi/planhub/internal/snapshot"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// App carries the configuration commands run against. main fills the
// environment-derived fields; the root command wires the data source
// and use cases once flags are parsed, so flags win over environment.
type App struct {
	Config       api.Config
	SnapshotPath string // PLANHUB_SNAPSHOT; the --snapshot flag overrides
	Observers    []service.UseCaseObserver
	CallObserver api.Observer
	Interactive  func() bool

	// Wired during PersistentPreRunE.
	Source     service.Source
	SourceName string
	WatchPath  string // set when reading a snapshot; dash watches it
	JSON       bool

	Overview  view.OverviewUseCase
	Timeline  view.TimelineUseCase
	Breakdown view.BreakdownUseCase
	Risks     view.RiskUseCase
	Budget    view.BudgetUseCase
}

// NewRootCmd creates the top-level "planhub" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		snapshotPath string
		apiURL       string
		demoMode     bool
		jsonOut      bool
	)

	root := &cobra.Command{
		Use:           "planhub",
		Short:         "Portfolio console for the ProjectHub backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.JSON = jsonOut
			app.wire(snapshotPath, apiURL, demoMode)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Read from an exported snapshot file instead of the API")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "Backend base URL (overrides PLANHUB_API_URL)")
	root.PersistentFlags().BoolVar(&demoMode, "demo", false, "Use the built-in demo portfolio")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print the raw response as JSON")

	root.AddCommand(
		newOverviewCmd(app),
		newTimelineCmd(app),
		newWBSCmd(app),
		newRisksCmd(app),
		newBudgetCmd(app),
		newDashCmd(app),
		newVersionCmd(),
	)

	return root
}

// wire selects the data source and builds the use cases. Construction
// only; nothing here touches the network or the disk.
func (app *App) wire(snapshotPath, apiURL string, demoMode bool) {
	cfg := app.Config
	if cfg.BaseURL == "" {
		cfg = api.DefaultConfig()
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}

	app.WatchPath = ""
	switch {
	case demoMode:
		app.Source = demo.New()
		app.SourceName = "demo"
	case snapshotPath != "":
		app.Source = snapshot.New(snapshotPath)
		app.SourceName = "snapshot " + snapshotPath
		app.WatchPath = snapshotPath
	case app.SnapshotPath != "":
		app.Source = snapshot.New(app.SnapshotPath)
		app.SourceName = "snapshot " + app.SnapshotPath
		app.WatchPath = app.SnapshotPath
	default:
		app.Source = api.NewClient(cfg, app.CallObserver)
		app.SourceName = cfg.BaseURL
	}

	app.Overview = service.NewOverviewService(app.Source, app.Observers...)
	app.Timeline = service.NewTimelineService(app.Source, app.Observers...)
	app.Breakdown = service.NewBreakdownService(app.Source, app.Observers...)
	app.Risks = service.NewRiskService(app.Source, app.Observers...)
	app.Budget = service.NewBudgetService(app.Source, app.Observers...)
}

func (app *App) interactive() bool {
	return app.Interactive != nil && app.Interactive()
}

// fetchSpinner shows a spinner while a fetch is in flight on an
// interactive run. The returned stop function is safe to call twice.
func (app *App) fetchSpinner(message string) func() {
	if app.interactive() && !app.JSON {
		return formatter.StartSpinner(message)
	}
	return func() {}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
