package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/services"
	"github.com/callscripts/guion/internal/theme"
)

type uiState int

const (
	stateBrowse uiState = iota
	stateAgentDialog
	stateHelp
	stateManualCopy
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusList
	focusForm
)

// Layout overhead: header (2) + search (1) + gap (1) + status (2) + footer (1) + gaps (2)
const layoutOverhead = 9

// ModelConfig holds the settings the TUI needs
type ModelConfig struct {
	ClockInterval   time.Duration
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	SearchDebounce  time.Duration
	TimestampFormat string
}

// Model is the root Bubble Tea model. It owns one lookup session and at most one live clock.
type Model struct {
	agentDialog     *Dialog
	agentID         string
	agentName       string
	cancel          context.CancelFunc
	catalog         *services.CatalogService
	clock           *services.LiveClockSlot
	clockGen        int
	ctx             context.Context
	detail          viewport.Model
	devMode         bool
	errorManager    *ErrorManager
	exporter        *services.ExportService
	focus           focusArea
	form            *DetailForm
	height          int
	help            help.Model
	helpScreen      *Dialog
	keys            KeyMap
	list            *RecordList
	loading         bool
	manualCopy      *Dialog
	prefs           *services.PreferenceService
	search          *SearchBox
	session         *domain.LookupSession
	state           uiState
	timestampFormat string
	width           int
}

// NewModel creates the TUI model. Records and preferences load in Init.
func NewModel(
	cfg ModelConfig,
	catalog *services.CatalogService,
	prefs *services.PreferenceService,
	exporter *services.ExportService,
) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	h := help.New()
	h.Styles.ShortKey = theme.HelpShortcutStyle
	h.Styles.ShortDesc = theme.HelpLabelStyle
	h.Styles.ShortSeparator = theme.MutedStyle

	return &Model{
		cancel:          cancel,
		catalog:         catalog,
		clock:           services.NewLiveClockSlot(cfg.ClockInterval),
		ctx:             ctx,
		detail:          viewport.New(0, 0),
		devMode:         cfg.DevMode,
		errorManager:    NewErrorManager(cfg.ErrorClearDelay),
		exporter:        exporter,
		focus:           focusSearch,
		help:            h,
		keys:            NewKeyMap(cfg.Keys),
		list:            NewRecordList(),
		loading:         true,
		prefs:           prefs,
		search:          NewSearchBox(cfg.SearchDebounce),
		session:         domain.NewLookupSession(),
		state:           stateBrowse,
		timestampFormat: cfg.TimestampFormat,
	}
}

// Init starts the concurrent startup load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.search.Focus(), m.loadStartupCmd())
}

// Close stops the live clock and cancels pending I/O. Safe to call repeatedly.
func (m *Model) Close() {
	m.clock.Stop()
	m.cancel()
}

func (m *Model) loadStartupCmd() tea.Cmd {
	ctx, catalog, prefs := m.ctx, m.catalog, m.prefs
	return func() tea.Msg {
		return startupLoadedMsg{state: services.LoadStartup(ctx, catalog, prefs)}
	}
}

func (m *Model) reloadCmd() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		records, err := catalog.Load(ctx)
		return recordsReloadedMsg{err: err, records: records}
	}
}

func (m *Model) saveAgentCmd(input string) tea.Cmd {
	ctx, prefs := m.ctx, m.prefs
	return func() tea.Msg {
		name, err := prefs.SetAgent(ctx, input)
		return agentSavedMsg{err: err, displayName: name}
	}
}

func (m *Model) saveThemeCmd(t domain.Theme) tea.Cmd {
	ctx, prefs := m.ctx, m.prefs
	return func() tea.Msg {
		prefs.SetTheme(ctx, t)
		return themeToggledMsg{theme: t}
	}
}

func (m *Model) copyCmd() tea.Cmd {
	if m.form == nil {
		m.errorManager.SetError(domain.ErrNoSelection)
		return m.errorManager.ClearAfterDelay()
	}

	snapshot := *m.session
	fields := m.form.Values()
	exporter := m.exporter
	return func() tea.Msg {
		result, err := exporter.Copy(&snapshot, fields)
		return copyDoneMsg{err: err, result: result}
	}
}

// waitForClockTick delivers the next tick of clock tagged with generation.
// It yields no message once the clock stops.
func waitForClockTick(clock *services.LiveClock, generation int) tea.Cmd {
	if clock == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-clock.Ticks()
		if !ok {
			return nil
		}
		return clockTickMsg{generation: generation, t: t}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, m.forwardToDialog(msg)

	case clearStatusMsg:
		m.errorManager.handleClear(msg)
		return m, nil

	case clockTickMsg:
		if m.form == nil || msg.generation != m.clockGen || m.form.Generation() != msg.generation {
			return m, nil
		}
		m.form.SetTimestamp(msg.t)
		return m, waitForClockTick(m.clock.Current(), msg.generation)

	case startupLoadedMsg:
		return m, m.handleStartup(msg.state)

	case recordsReloadedMsg:
		return m, m.handleReload(msg)

	case searchDebounceMsg:
		if m.search.Apply(msg) {
			return m, m.refreshList()
		}
		return m, nil

	case agentSavedMsg:
		return m, m.handleAgentSaved(msg)

	case themeToggledMsg:
		m.errorManager.SetNotice(fmt.Sprintf("Theme: %s", msg.theme))
		return m, m.errorManager.ClearAfterDelay()

	case copyDoneMsg:
		return m, m.handleCopyDone(msg)
	}

	switch m.state {
	case stateAgentDialog:
		return m.updateAgentDialog(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateManualCopy:
		return m.updateManualCopy(msg)
	}
	return m.updateBrowse(msg)
}

func (m *Model) forwardToDialog(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state {
	case stateHelp:
		_, cmd = m.helpScreen.Update(msg)
	case stateManualCopy:
		_, cmd = m.manualCopy.Update(msg)
	case stateAgentDialog:
		_, cmd = m.agentDialog.Update(msg)
	}
	return cmd
}

func (m *Model) handleStartup(state services.StartupState) tea.Cmd {
	m.loading = false
	theme.Apply(state.Theme)
	m.agentID = state.AgentID
	m.agentName = state.AgentName
	m.session.Replace(state.Records)

	cmd := m.refreshList()
	if state.RecordsErr != nil {
		m.errorManager.SetError(state.RecordsErr)
		return tea.Batch(cmd, m.errorManager.ClearAfterDelay())
	}
	return cmd
}

func (m *Model) handleReload(msg recordsReloadedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Logger.Warn("Reload failed", "error", msg.err)
	}

	m.session.Replace(msg.records)
	if !m.session.HasSelection() {
		m.closeForm()
	}
	cmd := m.refreshList()

	if msg.err != nil {
		m.errorManager.SetError(msg.err)
	} else {
		m.errorManager.SetNotice(fmt.Sprintf("Loaded %d scripts", m.session.Records().Len()))
	}
	return tea.Batch(cmd, m.errorManager.ClearAfterDelay())
}

func (m *Model) handleAgentSaved(msg agentSavedMsg) tea.Cmd {
	m.agentName = msg.displayName
	if msg.err != nil {
		m.errorManager.SetError(msg.err)
		return m.errorManager.ClearAfterDelay()
	}

	if msg.displayName == "" {
		m.agentID = ""
		m.errorManager.SetNotice("Agent removed")
	} else {
		m.errorManager.SetNotice("Agent: " + msg.displayName)
	}
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) handleCopyDone(msg copyDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.errorManager.SetError(msg.err)
		return m.errorManager.ClearAfterDelay()
	}

	if !msg.result.Copied {
		content := NewManualCopyView(msg.result.Text, msg.result.ClipboardErr, &m.keys)
		m.manualCopy = NewDialog("Copy manually", content, m.devMode)
		m.state = stateManualCopy
		initCmd := m.manualCopy.Init()
		_, sizeCmd := m.manualCopy.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return tea.Batch(initCmd, sizeCmd)
	}

	m.errorManager.SetNotice("Copied to clipboard")
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.forwardToFocus(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit.Binding):
		m.Close()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help.Binding):
		return m, m.openHelp()

	case key.Matches(keyMsg, m.keys.Application.SetAgent.Binding):
		return m, m.openAgentDialog()

	case key.Matches(keyMsg, m.keys.Application.ToggleTheme.Binding):
		next := theme.Current().Toggle()
		theme.Apply(next)
		return m, m.saveThemeCmd(next)

	case key.Matches(keyMsg, m.keys.Application.Reload.Binding):
		m.errorManager.SetNotice("Reloading scripts...")
		return m, m.reloadCmd()

	case key.Matches(keyMsg, m.keys.Navigation.Back.Binding, m.keys.Navigation.Search.Binding):
		return m, m.focusSearch()

	case key.Matches(keyMsg, m.keys.Form.Copy.Binding):
		return m, m.copyCmd()
	}

	switch m.focus {
	case focusSearch:
		return m, m.updateSearchFocus(keyMsg)
	case focusList:
		return m, m.updateListFocus(keyMsg)
	default:
		return m, m.form.Update(keyMsg)
	}
}

func (m *Model) updateSearchFocus(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Navigation.Select.Binding):
		cmd := m.refreshListIf(m.search.ApplyNow())
		if m.list.Len() > 0 {
			m.setFocus(focusList)
		}
		return cmd
	case msg.Type == tea.KeyDown:
		if m.list.Len() > 0 {
			m.setFocus(focusList)
		}
		return nil
	case key.Matches(msg, m.keys.Form.NextField.Binding) && m.form != nil:
		return m.focusForm()
	}
	return m.search.Update(msg)
}

func (m *Model) updateListFocus(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Navigation.Select.Binding):
		record, ok := m.list.Highlighted()
		if !ok {
			return nil
		}
		return m.openRecord(record.SourceRow)
	case key.Matches(msg, m.keys.Form.NextField.Binding) && m.form != nil:
		return m.focusForm()
	case msg.Type == tea.KeyUp && m.list.list.Index() == 0:
		m.setFocus(focusSearch)
		return nil
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace:
		// Typing in the list goes to the search box
		m.setFocus(focusSearch)
		return m.search.Update(msg)
	}
	return m.list.Update(msg)
}

func (m *Model) forwardToFocus(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case focusSearch:
		return m.search.Update(msg)
	case focusForm:
		if m.form != nil {
			return m.form.Update(msg)
		}
	}
	return nil
}

func (m *Model) setFocus(area focusArea) {
	m.focus = area
	if area != focusSearch {
		m.search.Blur()
	}
	if area != focusForm && m.form != nil {
		m.form.Blur()
	}
}

func (m *Model) focusSearch() tea.Cmd {
	m.setFocus(focusSearch)
	return m.search.FocusAndSelectAll()
}

func (m *Model) focusForm() tea.Cmd {
	m.setFocus(focusForm)
	return m.form.FocusFirstEditable()
}

// openRecord selects the record at row, builds its form and restarts the live clock
func (m *Model) openRecord(row int) tea.Cmd {
	record, err := m.session.Select(row)
	if err != nil {
		m.errorManager.SetError(err)
		return m.errorManager.ClearAfterDelay()
	}

	m.clockGen++
	descriptors := domain.BuildDetailForm(&record, time.Now(), m.timestampFormat)
	m.form = NewDetailForm(descriptors, m.timestampFormat, m.clockGen, &m.keys)
	m.list.SetSelectedRow(row)
	m.detail.GotoTop()
	m.layout()

	clock := m.clock.Start(m.ctx)
	logging.Logger.Debug("Record opened", "row", row, "fields", len(descriptors))

	return tea.Batch(m.focusForm(), waitForClockTick(clock, m.clockGen))
}

// closeForm drops the form after its record disappeared
func (m *Model) closeForm() {
	m.clock.Stop()
	m.clockGen++
	m.form = nil
	m.list.SetSelectedRow(0)
	if m.focus == focusForm {
		m.focus = focusSearch
		m.search.Focus()
	}
}

func (m *Model) refreshListIf(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	return m.refreshList()
}

func (m *Model) refreshList() tea.Cmd {
	return m.list.SetRecords(m.session.Records().Search(m.search.Query()))
}

func (m *Model) openHelp() tea.Cmd {
	content := NewHelpScreen(&m.keys, m.session.HasSelection())
	m.helpScreen = NewDialog("Help", content, m.devMode)
	m.state = stateHelp
	initCmd := m.helpScreen.Init()
	_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) openAgentDialog() tea.Cmd {
	content := NewAgentForm(m.agentID, m.agentName)
	m.agentDialog = NewDialog("Agent", content, m.devMode)
	m.state = stateAgentDialog
	return m.agentDialog.Init()
}

func (m *Model) updateAgentDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.agentDialog.Update(msg)

	if content, ok := m.agentDialog.Content().(*AgentForm); ok && content.Completed {
		result := content.Result()
		m.state = stateBrowse
		m.agentDialog = nil
		if result.Cancelled {
			return m, nil
		}
		m.agentID = strings.TrimSpace(result.Identifier)
		return m, m.saveAgentCmd(result.Identifier)
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateBrowse
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateManualCopy(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.manualCopy.Update(msg)

	if content, ok := m.manualCopy.Content().(*ManualCopyView); ok && content.Completed {
		m.state = stateBrowse
		m.manualCopy = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) bodyHeight() int {
	return max(m.height-layoutOverhead, 3)
}

func (m *Model) columnWidths() (int, int) {
	left := max(m.width*2/5, 24)
	right := max(m.width-left-1, 20)
	return left, right
}

// layout sizes every component to the window
func (m *Model) layout() {
	left, right := m.columnWidths()
	m.search.SetWidth(m.width)
	m.list.SetSize(left, m.bodyHeight())
	m.detail.Width = right
	m.detail.Height = m.bodyHeight()
	if m.form != nil {
		m.form.SetWidth(right - 2)
	}
	m.help.Width = m.width
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateManualCopy:
		if m.manualCopy != nil {
			return m.manualCopy.View()
		}
	case stateAgentDialog:
		if m.agentDialog != nil {
			box := theme.PanelStyle.Render(m.agentDialog.View())
			return compositeOverlay(m.browseView(), box, m.width, m.height)
		}
	}
	return m.browseView()
}

func (m *Model) browseView() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, "", m.agentName))
	b.WriteString(m.search.View() + "\n\n")

	left, _ := m.columnWidths()
	listView := lipgloss.NewStyle().Width(left).Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(m.listView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listView, " ", m.detailView()))
	b.WriteString("\n\n")

	b.WriteString(m.statusView() + "\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) listView() string {
	if m.loading {
		return theme.EmptyStateStyle.Render("Loading scripts...")
	}
	return m.list.View()
}

func (m *Model) detailView() string {
	_, right := m.columnWidths()
	selected := m.session.Selected()
	if selected == nil || m.form == nil {
		return lipgloss.NewStyle().Width(right).Render(theme.EmptyStateStyle.Render("Select a script to see its details."))
	}

	panel := renderInfoPanel(selected, right)
	m.detail.SetContent(panel + "\n" + m.form.View())
	if start, end := m.form.focusedLines(); start >= 0 {
		offset := lipgloss.Height(panel)
		m.scrollIntoView(offset+start, offset+end)
	}
	return m.detail.View()
}

// scrollIntoView moves the detail viewport so lines top..bottom are visible
func (m *Model) scrollIntoView(top, bottom int) {
	switch {
	case top < m.detail.YOffset:
		m.detail.SetYOffset(top)
	case bottom >= m.detail.YOffset+m.detail.Height:
		m.detail.SetYOffset(bottom - m.detail.Height + 1)
	}
}

// statusView renders the two-line status area: error, notice or a hint
func (m *Model) statusView() string {
	if m.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)) + "\n"
	}
	if notice := m.errorManager.Notice(); notice != "" {
		return theme.SuccessStyle.Render(notice) + "\n"
	}

	tip := m.currentTip()
	keys := tip.Binding.Keys()
	if len(keys) == 0 {
		return "\n"
	}
	return renderTip(tip.Tip, keys[0]) + "\n"
}

func (m *Model) currentTip() KeyWithTip {
	switch {
	case m.agentName == "" && !m.loading:
		return m.keys.Application.SetAgent
	case m.focus == focusForm:
		return m.keys.Form.Copy
	case m.focus == focusList:
		return m.keys.Navigation.Select
	case m.form != nil:
		return m.keys.Navigation.Back
	default:
		return m.keys.Application.Help
	}
}
