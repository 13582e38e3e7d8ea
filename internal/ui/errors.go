package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minErrorWidth  = 10
)

// clearStatusMsg clears the status line if no newer message replaced it
type clearStatusMsg struct {
	seq int
}

// ErrorManager owns the status line: the last error or notice and its expiry
type ErrorManager struct {
	clearDelay time.Duration
	err        error
	notice     string
	seq        int
}

// NewErrorManager creates a status line that clears itself after clearDelay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError shows err, replacing any notice
func (e *ErrorManager) SetError(err error) {
	e.seq++
	e.err = err
	e.notice = ""
}

// SetNotice shows a confirmation, replacing any error
func (e *ErrorManager) SetNotice(text string) {
	e.seq++
	e.err = nil
	e.notice = text
}

// HasError reports whether an error is displayed
func (e *ErrorManager) HasError() bool {
	return e.err != nil
}

// GetError returns the displayed error
func (e *ErrorManager) GetError() error {
	return e.err
}

// Notice returns the displayed notice
func (e *ErrorManager) Notice() string {
	return e.notice
}

// Clear empties the status line
func (e *ErrorManager) Clear() {
	e.seq++
	e.err = nil
	e.notice = ""
}

// ClearAfterDelay schedules clearing of the current message.
// A zero delay keeps the message until it is replaced.
func (e *ErrorManager) ClearAfterDelay() tea.Cmd {
	if e.clearDelay <= 0 {
		return nil
	}
	seq := e.seq
	return tea.Tick(e.clearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// handleClear clears the status line unless a newer message arrived
func (e *ErrorManager) handleClear(msg clearStatusMsg) {
	if msg.seq == e.seq {
		e.Clear()
	}
}

// formatErrorForDisplay wraps an error to maxWidth and limits it to maxErrorLines,
// ending with "..." when the message had to be cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		return errorPrefix + "unknown error"
	}

	if maxWidth < minErrorWidth {
		maxWidth = minErrorWidth
	}

	wrapped := ansi.Wordwrap(errorPrefix+message, maxWidth, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxErrorLines {
		return wrapped
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	if ansi.StringWidth(last)+len(truncationMark) > maxWidth {
		last = ansi.Truncate(last, maxWidth-len(truncationMark), "")
	}
	lines[maxErrorLines-1] = last + truncationMark
	return strings.Join(lines, "\n")
}
