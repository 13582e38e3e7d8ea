package domain

import (
	"fmt"
	"strings"
)

// Preference keys in the key-value store
const (
	KeyAgent = "agent"
	KeyTheme = "theme"
)

// AgentPreference is the operator identity shown in the header
type AgentPreference struct {
	DisplayName string `json:"displayName"`
	Identifier  string `json:"identifier"`
}

// Theme is the persisted color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme applies when nothing valid is stored
const DefaultTheme = ThemeLight

// ParseTheme validates a theme name (case-insensitive)
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("invalid theme '%s' (valid: %s, %s)", s, ThemeLight, ThemeDark)
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// NormalizeIdentifier strips whitespace, dots and dashes and lowercases the result.
// "12.345.678-K" becomes "12345678k".
func NormalizeIdentifier(input string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(input) {
		switch {
		case r == '.' || r == '-':
			continue
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
