package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/ports"
	portsmocks "github.com/callscripts/guion/internal/ports/mocks"
	"github.com/callscripts/guion/internal/services"
	"github.com/callscripts/guion/internal/theme"
)

var testRecords = []domain.ScriptRecord{
	{Title: "Venta nueva", SourceRow: 2, Motive: "Upgrade", TagsPrimary: "a, b, c, d", AccentColor: "#ff0000"},
	{Title: "Baja de servicio", SourceRow: 3, Subtitle: "Retención"},
	{Title: "Reclamo técnico", SourceRow: 4, ExtraFieldsSpec: "Equipo: Modelo del equipo"},
}

type testModel struct {
	*Model
	store *portsmocks.MockKeyValueStore
}

func newTestModel(t *testing.T, clipboard ports.Clipboard) testModel {
	t.Helper()

	store := portsmocks.NewMockKeyValueStore(t)
	m := NewModel(
		ModelConfig{
			ClockInterval:   time.Hour,
			ErrorClearDelay: time.Second,
			SearchDebounce:  time.Hour,
		},
		services.NewCatalogService(portsmocks.NewMockSheetSource(t), domain.DefaultLayout),
		services.NewPreferenceService(store, nil),
		services.NewExportService(clipboard),
	)
	t.Cleanup(m.Close)
	t.Cleanup(func() { theme.Apply(domain.DefaultTheme) })

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(startupLoadedMsg{state: services.StartupState{
		AgentID:   "ana",
		AgentName: "Ana",
		Records:   domain.NewRecordSet(testRecords),
		Theme:     domain.ThemeLight,
	}})
	return testModel{Model: m, store: store}
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func typeRunes(m *Model, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return cmd
}

// openFirstMatch searches for query and opens the first result
func openFirstMatch(t *testing.T, m *Model, query string) {
	t.Helper()
	typeRunes(m, query)
	press(m, tea.KeyEnter) // apply search, focus list
	require.Equal(t, focusList, m.focus)
	press(m, tea.KeyEnter) // open highlighted record
	require.NotNil(t, m.form)
}

func TestModel_StartupPopulatesList(t *testing.T) {
	m := newTestModel(t, nil)

	assert.False(t, m.loading)
	assert.Equal(t, 3, m.list.Len())
	assert.Equal(t, focusSearch, m.focus)

	view := m.View()
	assert.Contains(t, view, "Guion")
	assert.Contains(t, view, "Ana")
	assert.Contains(t, view, "Venta nueva")
}

func TestModel_StartupErrorShowsStatus(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(startupLoadedMsg{state: services.StartupState{
		Records:    domain.EmptyRecordSet(),
		RecordsErr: domain.ErrSourceUnavailable,
		Theme:      domain.ThemeDark,
	}})

	assert.True(t, m.errorManager.HasError())
	assert.Equal(t, 0, m.list.Len())
	assert.Equal(t, domain.ThemeDark, theme.Current())
	assert.Contains(t, m.View(), "No scripts match your search.")
}

func TestModel_SearchIsDebounced(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := typeRunes(m.Model, "reclamo")
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, m.list.Len(), "list only changes after the debounce fires")

	m.Update(searchDebounceMsg{seq: m.search.seq - 1})
	assert.Equal(t, 3, m.list.Len(), "stale debounce is ignored")

	m.Update(searchDebounceMsg{seq: m.search.seq})
	assert.Equal(t, 1, m.list.Len())
}

func TestModel_SelectOpensFormAndFocusesFirstField(t *testing.T) {
	m := newTestModel(t, nil)

	openFirstMatch(t, m.Model, "baja")

	assert.Equal(t, focusForm, m.focus)
	assert.Equal(t, domain.LabelID, m.form.FocusedLabel())
	require.NotNil(t, m.session.Selected())
	assert.Equal(t, 3, m.session.Selected().SourceRow)
	assert.NotNil(t, m.clock.Current())
	assert.Contains(t, m.View(), "Retención")
}

func TestModel_ClockTicksOnlyReachCurrentForm(t *testing.T) {
	m := newTestModel(t, nil)
	openFirstMatch(t, m.Model, "venta")
	firstGen := m.clockGen

	press(m.Model, tea.KeyEsc)
	press(m.Model, tea.KeyBackspace) // clears the selected query
	openFirstMatch(t, m.Model, "reclamo")
	require.Greater(t, m.clockGen, firstGen)

	tick := time.Date(2026, 5, 4, 3, 2, 1, 0, time.Local)
	_, cmd := m.Update(clockTickMsg{generation: firstGen, t: tick})
	assert.Nil(t, cmd, "stale tick does not re-subscribe")
	assert.NotEqual(t, domain.FormatTimestamp(tick, ""), m.form.Values()[0].Value)

	_, cmd = m.Update(clockTickMsg{generation: m.clockGen, t: tick})
	assert.NotNil(t, cmd)
	assert.Equal(t, domain.FormatTimestamp(tick, ""), m.form.Values()[0].Value)
}

func TestModel_ReloadClosesForm(t *testing.T) {
	m := newTestModel(t, nil)
	openFirstMatch(t, m.Model, "venta")

	m.Update(recordsReloadedMsg{records: domain.NewRecordSet(testRecords[1:])})

	assert.Nil(t, m.form)
	assert.Nil(t, m.clock.Current())
	assert.False(t, m.session.HasSelection())
	assert.Equal(t, focusSearch, m.focus)
	assert.Equal(t, "Loaded 2 scripts", m.errorManager.Notice())
}

func TestModel_ReloadFailureKeepsEmptyList(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(recordsReloadedMsg{records: domain.EmptyRecordSet(), err: domain.ErrSourceUnavailable})

	assert.Equal(t, 0, m.list.Len())
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrSourceUnavailable)
}

func TestModel_EscReturnsToSearch(t *testing.T) {
	m := newTestModel(t, nil)
	openFirstMatch(t, m.Model, "venta")

	press(m.Model, tea.KeyEsc)

	assert.Equal(t, focusSearch, m.focus)
	assert.True(t, m.search.Focused())
	assert.True(t, m.search.selectAll)
	assert.Empty(t, m.form.FocusedLabel())
	assert.NotNil(t, m.form, "the form stays open")
}

func TestModel_CopyWithoutSelection(t *testing.T) {
	m := newTestModel(t, nil)

	press(m.Model, tea.KeyCtrlY)

	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrNoSelection)
}

func TestModel_CopySucceeds(t *testing.T) {
	clipboard := portsmocks.NewMockClipboard(t)
	clipboard.EXPECT().WriteText(mock.MatchedBy(func(text string) bool {
		return assert.Contains(t, text, "ID: A-17")
	})).Return(nil)

	m := newTestModel(t, clipboard)
	openFirstMatch(t, m.Model, "venta")
	typeRunes(m.Model, "A-17")

	cmd := press(m.Model, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, stateBrowse, m.state)
	assert.Equal(t, "Copied to clipboard", m.errorManager.Notice())
}

func TestModel_CopyFallsBackToManualCopy(t *testing.T) {
	clipboard := portsmocks.NewMockClipboard(t)
	clipboard.EXPECT().WriteText(mock.Anything).Return(domain.ErrClipboardDenied)

	m := newTestModel(t, clipboard)
	openFirstMatch(t, m.Model, "venta")

	cmd := press(m.Model, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Equal(t, stateManualCopy, m.state)
	content, ok := m.manualCopy.Content().(*ManualCopyView)
	require.True(t, ok)
	assert.Contains(t, content.Text(), "CONTACT REASON: Upgrade")

	press(m.Model, tea.KeyEsc)
	assert.Equal(t, stateBrowse, m.state)
}

func TestModel_AgentDialog(t *testing.T) {
	m := newTestModel(t, nil)

	press(m.Model, tea.KeyCtrlG)
	require.Equal(t, stateAgentDialog, m.state)
	assert.Contains(t, m.View(), "Agent identifier")

	press(m.Model, tea.KeyEsc)
	assert.Equal(t, stateBrowse, m.state)
	assert.Equal(t, "Ana", m.agentName)
}

func TestModel_AgentDialogKeepsTypedIdentifier(t *testing.T) {
	m := newTestModel(t, nil)
	m.store.EXPECT().Set(mock.Anything, domain.KeyAgent,
		domain.AgentPreference{Identifier: "12.345.678-K", DisplayName: "12.345.678-K"}).Return(nil)

	press(m.Model, tea.KeyCtrlG)
	form, ok := m.agentDialog.Content().(*AgentForm)
	require.True(t, ok)
	form.result.Identifier = " 12.345.678-K "
	form.Completed = true

	_, cmd := m.Update(struct{}{})

	assert.Equal(t, stateBrowse, m.state)
	assert.Equal(t, "12.345.678-K", m.agentID)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "12.345.678-K", m.agentName)
}

func TestModel_ClearingAgent(t *testing.T) {
	m := newTestModel(t, nil)
	m.store.EXPECT().Delete(mock.Anything, domain.KeyAgent).Return(nil)

	msg := m.saveAgentCmd("  ")()
	m.Update(msg)

	assert.Empty(t, m.agentName)
	assert.Empty(t, m.agentID)
	assert.Equal(t, "Agent removed", m.errorManager.Notice())
}

func TestModel_AgentSaveFailureKeepsName(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(agentSavedMsg{displayName: "Bea", err: errors.New("disk full")})

	assert.Equal(t, "Bea", m.agentName)
	assert.True(t, m.errorManager.HasError())
}

func TestModel_ToggleTheme(t *testing.T) {
	m := newTestModel(t, nil)
	m.store.EXPECT().Set(mock.Anything, domain.KeyTheme, "dark").Return(nil)

	cmd := press(m.Model, tea.KeyCtrlT)
	assert.Equal(t, domain.ThemeDark, theme.Current())

	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "Theme: dark", m.errorManager.Notice())
}

func TestModel_HelpScreen(t *testing.T) {
	m := newTestModel(t, nil)

	press(m.Model, tea.KeyF1)
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "select a script first")

	press(m.Model, tea.KeyEsc)
	assert.Equal(t, stateBrowse, m.state)
}

func TestModel_QuitReleasesClock(t *testing.T) {
	ignoreExisting := goleak.IgnoreCurrent()
	m := newTestModel(t, nil)
	openFirstMatch(t, m.Model, "venta")

	cmd := press(m.Model, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Nil(t, m.clock.Current())
	goleak.VerifyNone(t, ignoreExisting)
}
