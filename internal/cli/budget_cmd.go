package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func newBudgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "budget [project]",
		Short: "Show a project's budget by category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID, err := resolveProject(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}

			stop := app.fetchSpinner("Loading budget...")
			resp, err := app.Budget.Budget(ctx, view.NewBudgetRequest(projectID))
			stop()
			if err != nil {
				return err
			}

			if app.JSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatBudget(resp))
			return nil
		},
	}
}
