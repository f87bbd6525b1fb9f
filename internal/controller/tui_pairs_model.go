package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// Row colours by pair state, dimmed variants for disabled rows.
var (
	pairedColor           = lipgloss.Color("#204080")
	unpairedColor         = lipgloss.Color("#801008")
	multiPairColor        = lipgloss.Color("#916428")
	disabledPairedColor   = lipgloss.Color("#293244")
	disabledUnpairedColor = lipgloss.Color("#381B19")
	disabledMultiColor    = lipgloss.Color("#4F3B21")
)

const defaultColumnWidth = 40

func stateColor(row m.DisplayRow) lipgloss.Color {
	switch row.State() {
	case m.StatePaired:
		if row.Disabled {
			return disabledPairedColor
		}

		return pairedColor
	case m.StateMultiPaired:
		if row.Disabled {
			return disabledMultiColor
		}

		return multiPairColor
	default:
		if row.Disabled {
			return disabledUnpairedColor
		}

		return unpairedColor
	}
}

func renderRow(row m.DisplayRow, width int, cursor bool) string {
	fg := lipgloss.Color("15")
	if row.Disabled {
		fg = lipgloss.Color("8")
	}

	marker := " "
	if row.Selected {
		marker = "*"
	}

	if cursor {
		marker = ">"
	}

	suffix := fmt.Sprintf(" %2d %-2s", row.ConnectionCount, overrideMark(row))
	name := truncateToWidth(row.DisplayName, width-lipgloss.Width(suffix)-2)

	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(stateColor(row)).
		Width(width)

	if cursor {
		style = style.Bold(true).Underline(true)
	}

	return style.Render(marker + " " + name + strings.Repeat(" ", max(0, width-2-lipgloss.Width(name)-lipgloss.Width(suffix))) + suffix)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// rowDelegate renders session rows inside a bubbles list.
type rowDelegate struct {
	focused bool
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(rowItem)
	if !ok {
		return
	}

	_, _ = fmt.Fprint(w, renderRow(row.row, lm.Width(), d.focused && index == lm.Index()))
}

func newRowList(focused bool) list.Model {
	l := list.New([]list.Item{}, rowDelegate{focused: focused}, defaultColumnWidth, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)

	return l
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 2)
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Margin(0, 1)
	focusedColumnStyle = columnStyle.BorderForeground(lipgloss.Color("6"))
	gateOpenStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	gateClosedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func renderGate(canConnect bool) string {
	if canConnect {
		return gateOpenStyle.Render(connectLabel(true))
	}

	return gateClosedStyle.Render(connectLabel(false))
}

func columnWidth(width int) int {
	if width <= 0 {
		return defaultColumnWidth
	}

	// Two columns, each with border (2) and margin (2).
	return max(20, width/2-4)
}

func renderHeader(view PairsView) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Pair Connector"),
		summaryStyle.Render(configSummary(view.Config)+"\n"+renderGate(view.CanConnect)),
	)
}

// renderPairsView renders a static snapshot of both role lists.
func renderPairsView(view PairsView, width int) string {
	colWidth := columnWidth(width)
	columns := make([]string, 0, len(m.Roles))

	for _, role := range m.Roles {
		lines := []string{lipgloss.NewStyle().Bold(true).Render(role.String())}
		for _, row := range view.Rows(role) {
			lines = append(lines, renderRow(row, colWidth, false))
		}

		columns = append(columns, columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(view),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

func renderConnectSummary(results []m.ConnectResult) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return fmt.Sprintf("Connected: %s  •  Skipped: %s  •  Conflicts: %s  •  Errors: %s",
		accent.Render(fmt.Sprintf("%d", countStatus(results, m.StatusApplied))),
		accent.Render(fmt.Sprintf("%d", countStatus(results, m.StatusSkipped))),
		accent.Render(fmt.Sprintf("%d", countStatus(results, m.StatusConflict))),
		accent.Render(fmt.Sprintf("%d", countStatus(results, m.StatusError))),
	)
}

const pairsHelp = "tab switch • ↑/↓ move • enter edit • space toggle pair • esc clear • r reset • x remove • " +
	"s load selection • p select pairs • m/M modes • v/t/a toggles • c connect • q quit"

// pairsModel is the interactive pair editor.
type pairsModel struct {
	ctx     context.Context
	conn    domain.Connector
	lists   map[m.Role]list.Model
	focus   m.Role
	width   int
	height  int
	status  string
	busy    bool
	results []m.ConnectResult
}

func newPairsModel(ctx context.Context, conn domain.Connector) pairsModel {
	pm := pairsModel{
		ctx:  ctx,
		conn: conn,
		lists: map[m.Role]list.Model{
			m.RoleSource:      newRowList(true),
			m.RoleDestination: newRowList(false),
		},
		focus: m.RoleSource,
	}

	return pm.refresh()
}

func (pm pairsModel) Init() tea.Cmd {
	return nil
}

func (pm pairsModel) session() *domain.Session {
	return pm.conn.Session()
}

// refresh reloads both lists from the session keeping cursor positions.
func (pm pairsModel) refresh() pairsModel {
	lists := make(map[m.Role]list.Model, len(pm.lists))

	for _, role := range m.Roles {
		l := pm.lists[role]
		rows := pm.session().DisplayRows(role)
		items := make([]list.Item, 0, len(rows))

		for _, row := range rows {
			items = append(items, rowItem{row: row})
		}

		index := l.Index()
		l.SetItems(items)
		l.SetDelegate(rowDelegate{focused: role == pm.focus})

		if index >= len(items) {
			index = len(items) - 1
		}

		if index >= 0 {
			l.Select(index)
		}

		lists[role] = l
	}

	pm.lists = lists

	return pm
}

func (pm pairsModel) cursor(role m.Role) (m.DisplayRow, bool) {
	l := pm.lists[role]

	row, ok := l.SelectedItem().(rowItem)
	if !ok {
		return m.DisplayRow{}, false
	}

	return row.row, true
}

func (pm pairsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height

		for _, role := range m.Roles {
			l := pm.lists[role]
			l.SetWidth(columnWidth(pm.width))
			l.SetHeight(max(5, pm.height-10))
			pm.lists[role] = l
		}

		return pm, nil

	case connectDoneMsg:
		pm.busy = false
		pm.results = msg.results
		pm.status = renderConnectSummary(msg.results)

		if msg.err != nil {
			pm.status = "connect failed: " + msg.err.Error()
		}

		return pm.refresh(), nil

	case loadDoneMsg:
		pm.busy = false

		if msg.err != nil {
			pm.status = "load failed: " + msg.err.Error()
		} else {
			pm.status = fmt.Sprintf("%d %s item(s) loaded", msg.added, msg.role)
		}

		return pm.refresh(), nil

	case tea.KeyMsg:
		return pm.handleKey(msg)
	}

	return pm, nil
}

func (pm pairsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return pm, tea.Quit
	case "tab", "left", "right", "h", "l":
		pm.focus = pm.focus.Opposite()

		return pm.refresh(), nil
	}

	if pm.busy {
		pm.status = "busy…"

		return pm, nil
	}

	if handled, next, cmd := pm.handleAction(key); handled {
		return next.refresh(), cmd
	}

	l, cmd := pm.lists[pm.focus].Update(msg)
	pm.lists[pm.focus] = l

	return pm, cmd
}

//nolint:cyclop,gocyclo // One case per key binding.
func (pm pairsModel) handleAction(key string) (bool, pairsModel, tea.Cmd) {
	session := pm.session()
	row, hasRow := pm.cursor(pm.focus)

	switch key {
	case "enter":
		if !hasRow {
			return true, pm, nil
		}

		item, _, err := pm.conn.EditPair(pm.focus, row.DisplayName)
		if err != nil {
			pm.status = err.Error()

			return true, pm, nil
		}

		session.Select(item)
		pm.status = "editing " + item.DisplayName
		pm.setErr(pm.conn.SelectItem(pm.ctx, pm.focus, row.DisplayName))

	case " ":
		pm.toggleCursor(row, hasRow)

	case "esc":
		session.ClearSelection(pm.focus)
		session.ClearSelection(pm.focus.Opposite())
		session.CloseEditor()
		pm.status = ""

	case "r":
		if hasRow {
			pm.setErr(pm.conn.ResetPairs(pm.focus, row.DisplayName))
		}

	case "x":
		if hasRow {
			pm.setErr(pm.conn.RemoveItem(pm.focus, row.DisplayName))
		}

	case "X":
		pm.conn.ClearItems(pm.focus)

	case "p":
		if hasRow {
			pm.setErr(pm.conn.SelectPaired(pm.ctx, pm.focus, row.DisplayName))
		}

	case "s":
		pm.busy = true

		return true, pm, pm.loadCmd(pm.focus)

	case "m":
		pm.setErr(session.SetDetectionMode(session.Config().DetectionMode.Next()))

	case "M":
		pm.setErr(session.SetConnectionMode(session.Config().ConnectionMode.Next()))

	case "v":
		session.SetInheritVisibility(!session.Config().InheritVisibility)

	case "t":
		session.SetInheritTransform(!session.Config().InheritTransform)

	case "a":
		session.SetAllowMultiPairs(!session.Config().AllowMultiPairs)

	case "c":
		if !session.CanConnect() {
			pm.status = connectLabel(false)

			return true, pm, nil
		}

		pm.busy = true
		pm.status = "connecting…"

		return true, pm, pm.connectCmd()

	default:
		return false, pm, nil
	}

	return true, pm, nil
}

func (pm *pairsModel) setErr(err error) {
	if err != nil {
		pm.status = err.Error()
	}
}

func (pm *pairsModel) toggleCursor(row m.DisplayRow, hasRow bool) {
	session := pm.session()
	edited := session.Edited()

	switch {
	case edited == nil:
		pm.status = "press enter on an item to edit its pairs"
	case !hasRow || edited.Role == pm.focus:
		pm.status = "move to the " + edited.Role.Opposite().String() + " list to toggle a pair"
	default:
		other, ok := session.Item(pm.focus, row.DisplayName)
		if !ok {
			return
		}

		pm.setErr(session.ToggleOverride(edited, other))
	}
}

func (pm pairsModel) connectCmd() tea.Cmd {
	ctx, conn := pm.ctx, pm.conn

	return func() tea.Msg {
		results, err := conn.Connect(ctx)

		return connectDoneMsg{results: results, err: err}
	}
}

func (pm pairsModel) loadCmd(role m.Role) tea.Cmd {
	ctx, conn := pm.ctx, pm.conn

	return func() tea.Msg {
		added, err := conn.LoadSelection(ctx, role)

		return loadDoneMsg{role: role, added: added, err: err}
	}
}

func (pm pairsModel) View() string {
	view := NewPairsView(pm.session())
	columns := make([]string, 0, len(m.Roles))

	for _, role := range m.Roles {
		style := columnStyle
		if role == pm.focus {
			style = focusedColumnStyle
		}

		l := pm.lists[role]
		heading := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s (%d)", role, len(l.Items())))
		columns = append(columns, style.Render(lipgloss.JoinVertical(lipgloss.Left, heading, l.View())))
	}

	parts := []string{
		renderHeader(view),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	}

	if pm.status != "" {
		parts = append(parts, summaryStyle.Render(pm.status))
	}

	parts = append(parts, footerStyle.Render(pairsHelp))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
