package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/theme"
)

const multilineHeight = 3

// formField is one rendered input. Read-only fields keep their text in value.
type formField struct {
	area  *textarea.Model
	desc  domain.FormFieldDescriptor
	input *textinput.Model
	value string
}

func newFormField(desc domain.FormFieldDescriptor) *formField {
	f := &formField{desc: desc, value: desc.InitialValue}
	if desc.ReadOnly {
		return f
	}

	if desc.Multiline {
		ta := textarea.New()
		ta.Placeholder = desc.Placeholder
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.SetHeight(multilineHeight)
		ta.SetValue(desc.InitialValue)
		ta.Blur()
		f.area = &ta
		return f
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = desc.Placeholder
	ti.SetValue(desc.InitialValue)
	ti.Blur()
	f.input = &ti
	return f
}

func (f *formField) Value() string {
	switch {
	case f.area != nil:
		return f.area.Value()
	case f.input != nil:
		return f.input.Value()
	default:
		return f.value
	}
}

func (f *formField) focus() tea.Cmd {
	switch {
	case f.area != nil:
		return f.area.Focus()
	case f.input != nil:
		return f.input.Focus()
	}
	return nil
}

func (f *formField) blur() {
	switch {
	case f.area != nil:
		f.area.Blur()
	case f.input != nil:
		f.input.Blur()
	}
}

func (f *formField) setWidth(width int) {
	switch {
	case f.area != nil:
		f.area.SetWidth(width)
	case f.input != nil:
		f.input.Width = width
	}
}

// DetailForm is the editable form for the opened record.
// The generation ties live clock ticks to the form that started the clock.
type DetailForm struct {
	fields          []*formField
	focus           int // Index into fields, -1 when nothing is focused
	generation      int
	keys            *KeyMap
	timestampLayout string
	width           int
}

// NewDetailForm builds inputs for descriptors. Nothing is focused until FocusFirstEditable.
func NewDetailForm(descriptors []domain.FormFieldDescriptor, timestampLayout string, generation int, keys *KeyMap) *DetailForm {
	fields := make([]*formField, len(descriptors))
	for i, desc := range descriptors {
		fields[i] = newFormField(desc)
	}
	return &DetailForm{
		fields:          fields,
		focus:           -1,
		generation:      generation,
		keys:            keys,
		timestampLayout: timestampLayout,
	}
}

// Generation returns the clock generation this form listens to
func (f *DetailForm) Generation() int {
	return f.generation
}

// FocusedLabel returns the label of the focused field or ""
func (f *DetailForm) FocusedLabel() string {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return ""
	}
	return f.fields[f.focus].desc.Label
}

// FocusFirstEditable focuses the first field that accepts input
func (f *DetailForm) FocusFirstEditable() tea.Cmd {
	for i, field := range f.fields {
		if !field.desc.ReadOnly {
			return f.focusAt(i)
		}
	}
	return nil
}

// Blur removes focus from every field
func (f *DetailForm) Blur() {
	for _, field := range f.fields {
		field.blur()
	}
	f.focus = -1
}

// Next focuses the next editable field, wrapping around
func (f *DetailForm) Next() tea.Cmd {
	return f.move(1)
}

// Prev focuses the previous editable field, wrapping around
func (f *DetailForm) Prev() tea.Cmd {
	return f.move(-1)
}

func (f *DetailForm) move(step int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	start := f.focus
	if start < 0 {
		start = 0
		if step < 0 {
			start = n - 1
		}
		if !f.fields[start].desc.ReadOnly {
			return f.focusAt(start)
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if !f.fields[idx].desc.ReadOnly {
			return f.focusAt(idx)
		}
	}
	return nil
}

func (f *DetailForm) focusAt(idx int) tea.Cmd {
	if f.focus >= 0 && f.focus < len(f.fields) {
		f.fields[f.focus].blur()
	}
	f.focus = idx
	return f.fields[idx].focus()
}

// SetTimestamp updates every live field with t
func (f *DetailForm) SetTimestamp(t time.Time) {
	for _, field := range f.fields {
		if field.desc.LiveUpdating {
			field.value = domain.FormatTimestamp(t, f.timestampLayout)
		}
	}
}

// Values returns the current value of every field in display order
func (f *DetailForm) Values() []domain.FieldValue {
	values := make([]domain.FieldValue, len(f.fields))
	for i, field := range f.fields {
		values[i] = domain.FieldValue{Label: field.desc.Label, Value: field.Value()}
	}
	return values
}

// SetWidth sets the width of every input
func (f *DetailForm) SetWidth(width int) {
	f.width = width
	inputWidth := width - 2
	if inputWidth < 10 {
		inputWidth = 10
	}
	for _, field := range f.fields {
		field.setWidth(inputWidth)
	}
}

// Update handles field navigation and forwards everything else to the focused input
func (f *DetailForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Form.NextField.Binding):
			return f.Next()
		case key.Matches(keyMsg, f.keys.Form.PrevField.Binding):
			return f.Prev()
		}
	}

	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}

	field := f.fields[f.focus]
	var cmd tea.Cmd
	switch {
	case field.area != nil:
		updated, c := field.area.Update(msg)
		field.area = &updated
		cmd = c
	case field.input != nil:
		updated, c := field.input.Update(msg)
		field.input = &updated
		cmd = c
	}
	return cmd
}

// focusedLines returns the first and last line of the focused field in View output,
// or -1, -1 when nothing is focused
func (f *DetailForm) focusedLines() (int, int) {
	line := 0
	for i, field := range f.fields {
		if field.desc.SeparatorBefore {
			line++
		}
		height := 2
		if field.area != nil {
			height = 1 + field.area.Height()
		}
		if i == f.focus {
			return line, line + height - 1
		}
		line += height
	}
	return -1, -1
}

// View renders the fields with labels and separators
func (f *DetailForm) View() string {
	var b strings.Builder
	separatorWidth := f.width
	if separatorWidth < 10 {
		separatorWidth = 10
	}

	for i, field := range f.fields {
		if field.desc.SeparatorBefore {
			b.WriteString(theme.SeparatorStyle.Render(strings.Repeat("─", separatorWidth)) + "\n")
		}

		labelStyle := theme.FieldLabelStyle
		if i == f.focus {
			labelStyle = theme.FieldFocusedLabelStyle
		}
		b.WriteString(labelStyle.Render(domain.SanitizeText(field.desc.Label)) + "\n")

		switch {
		case field.area != nil:
			b.WriteString(field.area.View())
		case field.input != nil:
			b.WriteString(field.input.View())
		default:
			b.WriteString(theme.ReadOnlyValueStyle.Render(field.value))
		}
		b.WriteString("\n")
	}

	return b.String()
}
