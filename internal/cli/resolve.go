package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// resolveProject turns a positional project argument into a record id.
// Accepts an exact id, a case-insensitive name (exact, then substring),
// or an id prefix. With no argument it prompts with a picker on a TTY
// and errors otherwise.
func resolveProject(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Source.Projects(ctx)
	if err != nil {
		return "", fmt.Errorf("loading projects: %w", err)
	}
	if len(projects) == 0 {
		return "", fmt.Errorf("no projects available")
	}

	if input == "" {
		if !app.interactive() {
			return "", fmt.Errorf("project argument is required when not running interactively")
		}
		return pickProject(projects)
	}

	// 1. Exact id match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. Exact name match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	// 3. Id prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	// 4. Name substring match (case-insensitive)
	lower := strings.ToLower(input)
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	default:
		return "", fmt.Errorf("project name %q is ambiguous (%d matches)", input, len(matches))
	}
}

// pickProject prompts for a project with a select form.
func pickProject(projects []domain.Project) (string, error) {
	options := make([]huh.Option[string], len(projects))
	for i, p := range projects {
		label := fmt.Sprintf("%s (%s)", p.Name, p.Status)
		options[i] = huh.NewOption(label, p.ID)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a project").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(planhubHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selecting project: %w", err)
	}
	return selected, nil
}

// planhubHuhTheme returns a custom huh theme using the Gruvbox palette.
func planhubHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
