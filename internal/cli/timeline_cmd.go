package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func newTimelineCmd(app *App) *cobra.Command {
	var viewMode string

	cmd := &cobra.Command{
		Use:   "timeline [project]",
		Short: "Render a project's schedule as a gantt track",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projectID, err := resolveProject(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}

			req := view.NewTimelineRequest(projectID)
			if viewMode != "" {
				mode, err := view.ParseViewMode(viewMode)
				if err != nil {
					return err
				}
				req.View = mode
			}

			stop := app.fetchSpinner("Loading timeline...")
			resp, err := app.Timeline.Timeline(ctx, req)
			stop()
			if err != nil {
				return err
			}

			if app.JSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatTimeline(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&viewMode, "view", "", "Zoom level: monthly, quarterly or yearly")

	return cmd
}
