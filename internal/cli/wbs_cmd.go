package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/view"
	"github.com/vijaykmarupuudi/planhub/internal/wbs"
)

func newWBSCmd(app *App) *cobra.Command {
	var orphans string

	cmd := &cobra.Command{
		Use:   "wbs [project]",
		Short: "Show a project's work breakdown structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID, err := resolveProject(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}

			req := view.NewBreakdownRequest(projectID)
			switch orphans {
			case "", "promote":
				req.Orphans = wbs.OrphanPromoteToRoot
			case "drop":
				req.Orphans = wbs.OrphanDrop
			default:
				return fmt.Errorf("invalid orphan policy %q (expected promote or drop)", orphans)
			}

			stop := app.fetchSpinner("Loading breakdown...")
			resp, err := app.Breakdown.Breakdown(ctx, req)
			stop()
			if err != nil {
				return err
			}

			if app.JSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatBreakdown(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&orphans, "orphans", "promote", "Treatment of nodes with missing parents: promote or drop")

	return cmd
}
