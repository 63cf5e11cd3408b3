package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vijaykmarupuudi/planhub/internal/risk"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor forces plain output for every style in the package.
// Honors PLANHUB_NO_COLOR and non-TTY stdout; call before rendering.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// SeverityColor returns the lipgloss style for a derived risk severity.
func SeverityColor(severity risk.Severity) lipgloss.Style {
	switch severity {
	case risk.SeverityCritical:
		return StyleRed
	case risk.SeverityHigh:
		return StyleYellow
	case risk.SeverityMedium:
		return StyleBlue
	case risk.SeverityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored severity marker such as "● CRITICAL".
func SeverityIndicator(severity risk.Severity) string {
	if severity == "" {
		return StyleDim.Render("● NONE")
	}
	label := strings.ToUpper(string(severity))
	return SeverityColor(severity).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
