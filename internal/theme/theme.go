package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/callscripts/guion/internal/domain"
)

// Apply selects which side of every adaptive color is rendered
func Apply(t domain.Theme) {
	lipgloss.SetHasDarkBackground(t.IsDark())
}

// Current reports the theme the default renderer is using
func Current() domain.Theme {
	if lipgloss.HasDarkBackground() {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

// BadgeStyleFor returns the style for a badge highlight level
func BadgeStyleFor(h domain.BadgeHighlight) lipgloss.Style {
	switch h {
	case domain.HighlightPrimary:
		return BadgePrimaryHighlightStyle
	case domain.HighlightSecondary:
		return BadgeSecondaryHighlightStyle
	default:
		return BadgeStyle
	}
}
