package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Live full-screen portfolio dashboard",
		Long: `Open a full-screen dashboard with the portfolio on the left and the
selected project's timeline, breakdown, risks and budget on the right.
When reading from a snapshot file the dashboard reloads automatically
whenever the file is rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dash requires an interactive terminal")
			}
			p := tea.NewProgram(newDashModel(app), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
}
