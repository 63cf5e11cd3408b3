package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a completion bar like [████░░░░]  45%.
// pct is the 0-100 completion percentage the backend stores; the bar
// colors red below 33, yellow below 66 and green above.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// RenderCompactBar renders a bare block bar without brackets or a label,
// for dense list rows. Dim renders the whole bar muted regardless of pct.
func RenderCompactBar(pct float64, width int, dim bool) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	if pct < 33 {
		return StyleRed.Render(bar)
	}
	if pct < 66 {
		return StyleYellow.Render(bar)
	}
	return StyleGreen.Render(bar)
}
