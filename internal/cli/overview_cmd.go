package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show portfolio health across all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stop := app.fetchSpinner("Loading portfolio...")
			resp, err := app.Overview.Overview(ctx, view.NewOverviewRequest())
			stop()
			if err != nil {
				return err
			}

			if app.JSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatOverview(resp))
			return nil
		},
	}
}
