package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/callscripts/guion/internal/theme"
)

var selectedTextStyle = lipgloss.NewStyle().Reverse(true)

// SearchBox is the title search input. Edits are applied after a quiet period;
// each edit bumps a sequence number so only the last pending debounce applies.
type SearchBox struct {
	applied   string
	debounce  time.Duration
	input     textinput.Model
	selectAll bool // Next edit replaces the whole query
	seq       int
}

// NewSearchBox creates a focused search box
func NewSearchBox(debounce time.Duration) *SearchBox {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.PromptStyle = theme.SearchPromptStyle
	ti.Placeholder = "type a script name"
	ti.CharLimit = 200
	ti.Focus()

	return &SearchBox{
		debounce: debounce,
		input:    ti,
	}
}

// Focus gives the box keyboard focus
func (s *SearchBox) Focus() tea.Cmd {
	return s.input.Focus()
}

// FocusAndSelectAll focuses the box and selects its text so typing starts a new query
func (s *SearchBox) FocusAndSelectAll() tea.Cmd {
	s.selectAll = s.input.Value() != ""
	s.input.CursorEnd()
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchBox) Blur() {
	s.selectAll = false
	s.input.Blur()
}

// Focused reports whether the box has keyboard focus
func (s *SearchBox) Focused() bool {
	return s.input.Focused()
}

// Value returns the text currently typed
func (s *SearchBox) Value() string {
	return s.input.Value()
}

// Query returns the last applied query
func (s *SearchBox) Query() string {
	return s.applied
}

// SetWidth sets the input width
func (s *SearchBox) SetWidth(width int) {
	w := width - lipgloss.Width(s.input.Prompt) - 1
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}

// Update forwards input to the text box. When the text changed it returns a
// command that fires searchDebounceMsg after the debounce delay.
func (s *SearchBox) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && s.selectAll {
		s.selectAll = false
		switch keyMsg.Type {
		case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
			s.input.SetValue("")
			if keyMsg.Type != tea.KeyRunes && keyMsg.Type != tea.KeySpace {
				return s.schedule()
			}
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, s.schedule())
}

func (s *SearchBox) schedule() tea.Cmd {
	s.seq++
	seq := s.seq
	if s.debounce <= 0 {
		return func() tea.Msg { return searchDebounceMsg{seq: seq} }
	}
	return tea.Tick(s.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// Apply accepts a debounce message. It returns true when the query changed.
func (s *SearchBox) Apply(msg searchDebounceMsg) bool {
	if msg.seq != s.seq {
		return false
	}
	return s.commit()
}

// ApplyNow applies the typed text immediately and cancels any pending debounce.
// It returns true when the query changed.
func (s *SearchBox) ApplyNow() bool {
	s.seq++
	return s.commit()
}

func (s *SearchBox) commit() bool {
	if s.input.Value() == s.applied {
		return false
	}
	s.applied = s.input.Value()
	return true
}

// View renders the search box
func (s *SearchBox) View() string {
	if s.selectAll {
		return s.input.PromptStyle.Render(s.input.Prompt) + selectedTextStyle.Render(s.input.Value())
	}
	return s.input.View()
}
