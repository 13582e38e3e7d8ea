package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/callscripts/guion/internal/theme"
)

// ManualCopyView shows exported text when the clipboard refused it
type ManualCopyView struct {
	Completed   bool
	cause       error
	initialized bool
	keys        *KeyMap
	text        string
	viewport    viewport.Model
}

// NewManualCopyView creates the manual copy dialog content
func NewManualCopyView(text string, cause error, keys *KeyMap) *ManualCopyView {
	return &ManualCopyView{
		cause:    cause,
		keys:     keys,
		text:     text,
		viewport: viewport.New(0, 0),
	}
}

// Text returns the exported text
func (v *ManualCopyView) Text() string {
	return v.text
}

// Init implements tea.Model
func (v *ManualCopyView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *ManualCopyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, notice: 2 lines, border: 2 lines, footer: 2 lines
		height := msg.Height - 10
		if height < 3 {
			height = 3
		}
		width := msg.Width - 4
		if width < 10 {
			width = 10
		}
		v.viewport.Width = width
		v.viewport.Height = height
		v.viewport.SetContent(v.text)
		v.initialized = true
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Navigation.Back.Binding, v.keys.Navigation.Select.Binding, v.keys.Application.Quit.Binding) {
			v.Completed = true
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements tea.Model
func (v *ManualCopyView) View() string {
	notice := "The clipboard is not available. Select the text below and copy it manually."
	if v.cause != nil {
		notice = formatErrorForDisplay(v.cause, v.viewport.Width) + "\n" + notice
	}

	body := v.text
	if v.initialized {
		body = v.viewport.View()
	}

	footer := theme.HelpStyle.Render("Press " + v.keys.Navigation.Back.Binding.Help().Key + " to close")
	return theme.MutedStyle.Render(notice) + "\n" + theme.ManualCopyStyle.Render(body) + "\n" + footer
}
