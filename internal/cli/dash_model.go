package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/refresh"
	"github.com/vijaykmarupuudi/planhub/internal/snapshot"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

// detailTab selects which derived view fills the right pane.
type detailTab int

const (
	tabTimeline detailTab = iota
	tabWBS
	tabRisks
	tabBudget
)

var tabTitles = []string{"Timeline", "WBS", "Risks", "Budget"}

// dashLoadedMsg carries the portfolio overview. Messages from
// superseded loads arrive with a stale generation and are dropped.
type dashLoadedMsg struct {
	gen  uint64
	resp *view.OverviewResponse
	err  error
}

// dashDetailMsg carries one tab's detail for the selected project.
type dashDetailMsg struct {
	gen       uint64
	projectID string
	tab       detailTab

	timeline  *view.TimelineResponse
	breakdown *view.BreakdownResponse
	risks     *view.RiskResponse
	budget    *view.BudgetResponse
	err       error
}

// snapshotChangedMsg signals that the watched snapshot file was rewritten.
type snapshotChangedMsg struct{}

// dashDetail is the loaded right-pane content. projectID and tab record
// what it belongs to so a moved cursor never shows stale data.
type dashDetail struct {
	projectID string
	tab       detailTab

	timeline  *view.TimelineResponse
	breakdown *view.BreakdownResponse
	risks     *view.RiskResponse
	budget    *view.BudgetResponse
}

// dashModel is the live dashboard: a selectable project list on the
// left and a tabbed derived view on the right. All loads run through a
// refresh guard so a newer load cancels and supersedes older ones.
type dashModel struct {
	app   *App
	guard *refresh.Guard

	width  int
	height int

	cursor int
	tab    detailTab

	overview *view.OverviewResponse
	loading  bool
	err      error

	detail        *dashDetail
	detailLoading bool
	detailErr     error

	watch    <-chan struct{}
	watchCtx context.Context
	stop     context.CancelFunc
}

func newDashModel(app *App) dashModel {
	ctx, cancel := context.WithCancel(context.Background())
	m := dashModel{
		app:      app,
		guard:    &refresh.Guard{},
		loading:  true,
		watchCtx: ctx,
		stop:     cancel,
	}
	if app.WatchPath != "" {
		// The dashboard still works without live reload.
		if ch, err := snapshot.Watch(ctx, app.WatchPath); err == nil {
			m.watch = ch
		}
	}
	return m
}

func (m dashModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadOverview()}
	if m.watch != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

func (m dashModel) loadOverview() tea.Cmd {
	ctx, gen := m.guard.Begin(m.watchCtx)
	app := m.app
	return func() tea.Msg {
		resp, err := app.Overview.Overview(ctx, view.NewOverviewRequest())
		return dashLoadedMsg{gen: gen, resp: resp, err: err}
	}
}

func (m dashModel) loadDetail() tea.Cmd {
	if m.overview == nil || len(m.overview.Projects) == 0 {
		return nil
	}
	project := m.overview.Projects[m.cursor].Project
	ctx, gen := m.guard.Begin(m.watchCtx)
	app := m.app
	tab := m.tab
	return func() tea.Msg {
		msg := dashDetailMsg{gen: gen, projectID: project.ID, tab: tab}
		switch tab {
		case tabTimeline:
			msg.timeline, msg.err = app.Timeline.Timeline(ctx, view.NewTimelineRequest(project.ID))
		case tabWBS:
			msg.breakdown, msg.err = app.Breakdown.Breakdown(ctx, view.NewBreakdownRequest(project.ID))
		case tabRisks:
			msg.risks, msg.err = app.Risks.Risks(ctx, view.NewRiskRequest(project.ID))
		case tabBudget:
			msg.budget, msg.err = app.Budget.Budget(ctx, view.NewBudgetRequest(project.ID))
		}
		return msg
	}
}

func (m dashModel) waitForChange() tea.Cmd {
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return snapshotChangedMsg{}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashLoadedMsg:
		if !m.guard.Accept(msg.gen) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.overview = msg.resp
		if m.cursor > len(m.overview.Projects)-1 {
			m.cursor = 0
		}
		if len(m.overview.Projects) > 0 {
			m.detailLoading = true
			return m, m.loadDetail()
		}
		m.detail = nil
		return m, nil

	case dashDetailMsg:
		if !m.guard.Accept(msg.gen) {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.detail = nil
			m.detailErr = msg.err
			return m, nil
		}
		m.detailErr = nil
		m.detail = &dashDetail{
			projectID: msg.projectID,
			tab:       msg.tab,
			timeline:  msg.timeline,
			breakdown: msg.breakdown,
			risks:     msg.risks,
			budget:    msg.budget,
		}
		return m, nil

	case snapshotChangedMsg:
		m.loading = true
		cmds := []tea.Cmd{m.loadOverview()}
		if m.watch != nil {
			cmds = append(cmds, m.waitForChange())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.stop()
		m.guard.Stop()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.detailLoading = true
			return m, m.loadDetail()
		}

	case "down", "j":
		if m.overview != nil && m.cursor < len(m.overview.Projects)-1 {
			m.cursor++
			m.detailLoading = true
			return m, m.loadDetail()
		}

	case "tab", "right", "l":
		m.tab = (m.tab + 1) % detailTab(len(tabTitles))
		m.detailLoading = true
		return m, m.loadDetail()

	case "shift+tab", "left", "h":
		m.tab = (m.tab + detailTab(len(tabTitles)) - 1) % detailTab(len(tabTitles))
		m.detailLoading = true
		return m, m.loadDetail()

	case "r":
		m.loading = true
		m.err = nil
		return m, m.loadOverview()
	}

	return m, nil
}

const dashLeftPaneWidth = 38

func (m dashModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.StyleHeader.Render("PLANHUB"))
	b.WriteString("  " + formatter.Dim(m.sourceLabel()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + formatter.Dim("Loading..."))
	case m.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+m.err.Error()))
	case m.overview == nil || len(m.overview.Projects) == 0:
		b.WriteString("  " + formatter.Dim("No projects in the portfolio."))
	default:
		b.WriteString(m.renderPanes())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelpBar())
	b.WriteString("\n")

	return padToHeight(b.String(), m.height)
}

func dashShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "select project")),
		key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch view")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m dashModel) renderHelpBar() string {
	hints := make([]string, 0, len(dashShortHelp()))
	for _, b := range dashShortHelp() {
		h := b.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}
	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n  " + strings.Join(hints, "  ")
}

func (m dashModel) sourceLabel() string {
	label := m.app.SourceName
	if m.watch != nil {
		label += " (live)"
	}
	return label
}

func (m dashModel) renderPanes() string {
	left := m.renderProjectList()
	right := m.renderDetail()

	if m.width < 80 {
		return left + "\n" + right
	}

	rightWidth := m.width - dashLeftPaneWidth - 3
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(left)
	divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func (m dashModel) renderProjectList() string {
	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render("PROJECTS") + "\n\n")

	for i, p := range m.overview.Projects {
		cursor := "  "
		nameStyle := formatter.StyleFg
		selected := i == m.cursor
		if selected {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
			cursor,
			nameStyle.Render(padName(p.Project.Name, 18)),
			formatter.RenderCompactBar(p.Project.CompletionPercentage, 6, !selected),
			riskDot(p),
		))
	}

	stats := m.overview.Stats
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d total, %d active, %s done",
		stats.TotalProjects, stats.ActiveProjects, formatter.FormatPercent(stats.CompletionRate))))
	b.WriteString("\n")

	return b.String()
}

func riskDot(p view.ProjectHealth) string {
	if p.OpenRisks == 0 {
		return formatter.Dim("·")
	}
	return formatter.SeverityColor(p.TopSeverity).Render("●")
}

func (m dashModel) renderDetail() string {
	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	project := m.overview.Projects[m.cursor].Project

	switch {
	case m.detailLoading:
		b.WriteString(formatter.Dim("Loading details..."))
	case m.detailErr != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.detailErr.Error()))
	case m.detail == nil || m.detail.projectID != project.ID || m.detail.tab != m.tab:
		b.WriteString(formatter.Dim("Loading details..."))
	default:
		b.WriteString(m.renderDetailBody())
	}

	b.WriteString("\n")
	return b.String()
}

func (m dashModel) renderTabBar() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if detailTab(i) == m.tab {
			parts[i] = formatter.StyleHeader.Render(title)
		} else {
			parts[i] = formatter.Dim(title)
		}
	}
	return strings.Join(parts, formatter.Dim("  /  "))
}

func (m dashModel) renderDetailBody() string {
	switch m.tab {
	case tabTimeline:
		return m.renderTimelineTab()
	case tabWBS:
		return m.renderWBSTab()
	case tabRisks:
		return m.renderRisksTab()
	case tabBudget:
		return m.renderBudgetTab()
	}
	return ""
}

// detailTrackWidth sizes the gantt track to what remains of the right
// pane after the name column and date annotations.
func (m dashModel) detailTrackWidth() int {
	track := m.width - dashLeftPaneWidth - 44
	if track < 16 {
		track = 16
	}
	return track
}

func (m dashModel) renderTimelineTab() string {
	resp := m.detail.timeline
	var b strings.Builder

	b.WriteString(formatter.StyleBold.Render(resp.Project.Name))
	b.WriteString("  " + formatter.StatusPill(resp.Project.Status) + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%s to %s",
		resp.Window.Start.Format("Jan 2"),
		resp.Window.End.Format("Jan 2, 2006"))))
	b.WriteString("\n\n")

	if len(resp.Bars) == 0 && len(resp.Markers) == 0 {
		b.WriteString(formatter.Dim("No dated items to draw."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(formatter.RenderGantt(resp, m.detailTrackWidth()))
	return b.String()
}

func (m dashModel) renderWBSTab() string {
	resp := m.detail.breakdown
	var b strings.Builder

	b.WriteString(formatter.StyleBold.Render(resp.Project.Name) + "\n\n")

	if len(resp.Forest.Roots) == 0 {
		b.WriteString(formatter.Dim("No breakdown items."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(formatter.RenderTree(formatter.BreakdownTreeItems(resp.Forest.Roots)))
	b.WriteString("\n" + formatter.Dim(fmt.Sprintf("%d items, %d completed, %s estimated",
		resp.Total.NodeCount, resp.Total.CompletedCount, formatter.FormatHours(resp.Total.EstimatedHours))))
	b.WriteString("\n")
	return b.String()
}

func (m dashModel) renderRisksTab() string {
	resp := m.detail.risks
	var b strings.Builder

	b.WriteString(formatter.StyleBold.Render(resp.Project.Name) + "\n\n")

	if len(resp.Register) == 0 {
		b.WriteString(formatter.Dim("No risks recorded."))
		b.WriteString("\n")
		return b.String()
	}

	for _, a := range resp.Register {
		title := a.Record.Title
		if !a.Record.IsOpen() {
			title = formatter.Dim(title)
		}
		b.WriteString(fmt.Sprintf("%s %2d  %s\n",
			formatter.SeverityColor(a.Severity).Render("●"), a.Score, title))
	}

	b.WriteString("\n" + formatter.Dim(fmt.Sprintf("%d open of %d", resp.OpenCount, len(resp.Register))))
	b.WriteString("\n")
	return b.String()
}

func (m dashModel) renderBudgetTab() string {
	resp := m.detail.budget
	var b strings.Builder

	b.WriteString(formatter.StyleBold.Render(resp.Project.Name) + "\n\n")

	if resp.Summary.ItemCount == 0 {
		b.WriteString(formatter.Dim("No budget items."))
		b.WriteString("\n")
		return b.String()
	}

	for _, c := range resp.Summary.Categories {
		b.WriteString(fmt.Sprintf("%s %s of %s\n",
			padName(string(c.Category), 12),
			formatter.FormatMoney(c.Actual),
			formatter.Dim(formatter.FormatMoney(c.Estimated))))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s of %s\n",
		padName("total", 12),
		formatter.Bold(formatter.FormatMoney(resp.Summary.TotalActual)),
		formatter.Dim(formatter.FormatMoney(resp.Summary.TotalEstimated))))
	return b.String()
}

// padName pads or truncates a plain string to width runes.
func padName(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// padToHeight pads output with blank lines so the alternate screen is
// fully repainted between frames.
func padToHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Count(s, "\n")
	for i := lines; i < height-1; i++ {
		s += "\n"
	}
	return s
}
