package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// TreeItem is one row of a breakdown tree display.
type TreeItem struct {
	Title  string
	Code   string // WBS code like "1.2.3"; empty means don't display
	Level  int
	IsLast bool
	Status domain.TaskStatus
	Detail string // right-aligned badge, usually hours
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders breakdown rows as an indented tree using box-drawing
// connectors. Completed nodes get a green ✔ prefix and a dimmed title,
// in-progress nodes an amber ▶, and detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.Code != "" {
			title = StyleDim.Render(item.Code+" ") + title
		}
		statusPrefix := ""

		switch item.Status {
		case domain.TaskCompleted:
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(title)
		case domain.TaskInProgress:
			statusPrefix = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		case domain.TaskBlocked:
			statusPrefix = StyleRed.Render("▲ ")
		case domain.TaskOnHold:
			statusPrefix = StyleYellow.Render("⊘ ")
		case domain.TaskCancelled:
			statusPrefix = StyleDim.Render("✖ ")
			title = Dim(title)
		}

		content := prefix + statusPrefix + title
		lines[idx].content = content

		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
