package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent lists every binding. Actions that need a selected script are
// marked when nothing is selected.
func buildHelpContent(keys *KeyMap, hasSelection bool) string {
	available := make(map[string]bool)
	for _, action := range domain.GetActionsForContext(hasSelection) {
		available[action.Name] = true
	}

	binding := func(name string, b key.Binding) string {
		help := b.Help()
		if !available[name] {
			return theme.HelpKeyStyle.Render(help.Key) + theme.MutedStyle.Render(help.Desc+" (select a script first)") + "\n"
		}
		return renderShortcut(help.Key, help.Desc)
	}

	var content string

	content += theme.HelpGroupStyle.Render("Search and list") + "\n"
	content += binding("search", keys.Navigation.Search.Binding)
	content += renderShortcut("↑/↓", "move through the results")
	content += binding("select", keys.Navigation.Select.Binding)
	content += binding("back", keys.Navigation.Back.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Detail form") + "\n"
	content += binding("next_field", keys.Form.NextField.Binding)
	content += binding("prev_field", keys.Form.PrevField.Binding)
	content += binding("copy", keys.Form.Copy.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += binding("set_agent", keys.Application.SetAgent.Binding)
	content += binding("toggle_theme", keys.Application.ToggleTheme.Binding)
	content += binding("reload", keys.Application.Reload.Binding)
	content += binding("help", keys.Application.Help.Binding)
	content += binding("quit", keys.Application.Quit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Badges (read-only)") + "\n"
	content += theme.HelpKeyStyle.Render(theme.BadgePrimaryHighlightStyle.Render("4th")) + theme.HelpDescStyle.Render("highlighted primary tag") + "\n"
	content += theme.HelpKeyStyle.Render(theme.BadgeSecondaryHighlightStyle.Render("4th")) + theme.HelpDescStyle.Render("highlighted secondary tag") + "\n"

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, hasSelection bool) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, hasSelection),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Back.Binding, h.keys.Application.Help.Binding, h.keys.Application.Quit.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	closeKeys := h.keys.Navigation.Back.Binding.Help().Key + " or " + h.keys.Application.Help.Binding.Help().Key
	footer := theme.HelpStyle.Render("Press " + closeKeys + " to close • ↑↓/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
