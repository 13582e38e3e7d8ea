package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/callscripts/guion/internal/theme"
)

// KeyWithTip pairs a key binding with the hint shown in the status line
type KeyWithTip struct {
	Binding key.Binding
	Tip     string // Empty when the key has no hint
}

// renderTip renders a hint, highlighting the key inside it
func renderTip(tip string, keyName string) string {
	if tip == "" {
		return ""
	}
	before, after, found := strings.Cut(tip, keyName)
	if !found {
		return theme.HelpLabelStyle.Render(tip)
	}
	return theme.HelpLabelStyle.Render(before) +
		theme.HelpShortcutStyle.Render(keyName) +
		theme.HelpLabelStyle.Render(after)
}

// newTip formats a hint for the first key of a binding
func newTip(format string, keyName string) string {
	return fmt.Sprintf(format, keyName)
}
