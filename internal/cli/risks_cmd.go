package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func newRisksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "risks [project]",
		Short: "Show a project's assessed risk register",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID, err := resolveProject(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}

			stop := app.fetchSpinner("Loading risk register...")
			resp, err := app.Risks.Risks(ctx, view.NewRiskRequest(projectID))
			stop()
			if err != nil {
				return err
			}

			if app.JSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatRisks(resp))
			return nil
		},
	}
}
