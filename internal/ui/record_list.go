package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/theme"
)

const accentBar = "▌"

// RecordItem implements list.Item and list.DefaultItem
type RecordItem struct {
	Record domain.ScriptRecord
}

// FilterValue implements list.Item
func (i RecordItem) FilterValue() string {
	return i.Record.Title
}

// Title implements list.DefaultItem
func (i RecordItem) Title() string {
	return domain.SanitizeText(i.Record.Title)
}

// Description implements list.DefaultItem
func (i RecordItem) Description() string {
	return domain.SanitizeText(i.Record.Subtitle)
}

// RecordDelegate renders a record as a two-line card with an accent bar
type RecordDelegate struct {
	selectedRow int // Source row of the opened record, 0 when none
}

// Height implements list.ItemDelegate
func (d RecordDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate
func (d RecordDelegate) Spacing() int {
	return 1
}

// Update implements list.ItemDelegate
func (d RecordDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d RecordDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(RecordItem)
	if !ok {
		return
	}

	bar := " "
	if item.Record.HasAccent() {
		bar = theme.AccentBarStyle(item.Record.AccentColor).Render(accentBar)
	}

	cursor := " "
	titleStyle := theme.CardTitleStyle
	if index == m.Index() {
		cursor = ">"
		titleStyle = theme.CardSelectedTitleStyle
	}

	textWidth := m.Width() - 4
	if textWidth < 1 {
		textWidth = 1
	}

	title := item.Title()
	if item.Record.SourceRow == d.selectedRow {
		title += " •"
	}
	title = ansi.Truncate(title, textWidth, "…")
	subtitle := ansi.Truncate(item.Description(), textWidth, "…")

	fmt.Fprintf(w, "%s%s %s\n", cursor, bar, titleStyle.Render(title))
	fmt.Fprintf(w, " %s %s", bar, theme.CardSubtitleStyle.Render(subtitle))
}

// RecordList shows the records matching the current search
type RecordList struct {
	list list.Model
}

// NewRecordList creates an empty record list
func NewRecordList() *RecordList {
	l := list.New(nil, RecordDelegate{}, 40, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	return &RecordList{list: l}
}

// SetRecords replaces the visible records and moves the cursor to the top
func (rl *RecordList) SetRecords(records []domain.ScriptRecord) tea.Cmd {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = RecordItem{Record: r}
	}
	cmd := rl.list.SetItems(items)
	rl.list.Select(0)
	return cmd
}

// SetSelectedRow marks the card of the opened record
func (rl *RecordList) SetSelectedRow(row int) {
	rl.list.SetDelegate(RecordDelegate{selectedRow: row})
}

// Highlighted returns the record under the cursor
func (rl *RecordList) Highlighted() (domain.ScriptRecord, bool) {
	item, ok := rl.list.SelectedItem().(RecordItem)
	if !ok {
		return domain.ScriptRecord{}, false
	}
	return item.Record, true
}

// Len returns the number of visible records
func (rl *RecordList) Len() int {
	return len(rl.list.Items())
}

// SetSize sets the list dimensions
func (rl *RecordList) SetSize(width, height int) {
	rl.list.SetSize(width, height)
}

// CursorUp moves the cursor to the previous record
func (rl *RecordList) CursorUp() {
	rl.list.CursorUp()
}

// CursorDown moves the cursor to the next record
func (rl *RecordList) CursorDown() {
	rl.list.CursorDown()
}

// Update forwards navigation input to the list
func (rl *RecordList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	rl.list, cmd = rl.list.Update(msg)
	return cmd
}

// View renders the list or an empty state
func (rl *RecordList) View() string {
	if rl.Len() == 0 {
		return theme.EmptyStateStyle.Render("No scripts match your search.")
	}
	return rl.list.View()
}
