package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return RenderAlignedTable(headers, rows, nil)
}

// RenderAlignedTable renders an aligned table with a header separator
// line. Headers use the Header style; columns pad to the widest visible
// cell. rightAlign marks columns whose cells (and header) align right,
// which money and count columns want; nil leaves everything left-aligned.
func RenderAlignedTable(headers []string, rows [][]string, rightAlign []bool) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	right := func(i int) bool {
		return rightAlign != nil && i < len(rightAlign) && rightAlign[i]
	}

	// Measure visible widths; lipgloss.Width ignores ANSI sequences.
	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	writeCell := func(b *strings.Builder, styled string, visible, col int) {
		pad := widths[col] - visible
		if pad < 0 {
			pad = 0
		}
		if right(col) {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(styled)
			if col < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			return
		}
		b.WriteString(styled)
		if col < cols-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	var b strings.Builder

	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), i)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(&b, cell, lipgloss.Width(cell), i)
		}
		b.WriteString("\n")
	}

	return b.String()
}
