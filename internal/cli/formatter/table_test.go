package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "STATUS"},
		[][]string{
			{"Portal Redesign", "execution"},
			{"ERP", "planning"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "STATUS")
	assert.Contains(t, lines[1], "─")

	// Both status cells start at the same column.
	assert.Equal(t, strings.Index(lines[2], "execution"), strings.Index(lines[3], "planning"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPadOut(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only"}},
	))
	assert.Contains(t, out, "only")
}

func TestRenderAlignedTable_RightAlignsNumbers(t *testing.T) {
	out := stripANSI(RenderAlignedTable(
		[]string{"CATEGORY", "COST"},
		[][]string{
			{"labor", "5"},
			{"software", "12345"},
		},
		[]bool{false, true},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// The short number lines up with the wide one's right edge.
	assert.True(t, strings.HasSuffix(lines[2], "    5"), "got %q", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "12345"), "got %q", lines[3])
}
