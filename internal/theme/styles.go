package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	AgentStyle = lipgloss.NewStyle().
			Foreground(ColorAgent).
			Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Search and card list styles
var (
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey).
				Bold(true)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	CardSelectedTitleStyle = lipgloss.NewStyle().
				Foreground(ColorFocus).
				Bold(true)

	CardSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(1, 2)
)

// Important info panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InfoTitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	InfoSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	InfoHeadingStyle = lipgloss.NewStyle().
				Foreground(ColorHelpGroup).
				Bold(true).
				MarginTop(1)

	InfoBodyStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	BulletStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBadgeText).
			Background(ColorBadgeBackground).
			Padding(0, 1).
			MarginRight(1)

	BadgePrimaryHighlightStyle = BadgeStyle.
					Foreground(ColorWhite).
					Background(ColorBadgePrimaryHighlight).
					Bold(true)

	BadgeSecondaryHighlightStyle = BadgeStyle.
					Foreground(ColorBlack).
					Background(ColorBadgeSecondaryHighlight).
					Bold(true)
)

// Detail form styles
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	FieldFocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorFocus).
				Bold(true)

	ReadOnlyValueStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Manual copy box shown when the clipboard is unavailable
var ManualCopyStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorHintKey).
	Padding(0, 1)

// DimmedStyle renders the screen behind an overlay dialog
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorDimmed)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// SuccessStyle renders confirmations in the status line
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorSuccess)

// AccentBarStyle returns the left bar of a card in the record's accent color.
// Records without an accent get a blank bar of the same width.
func AccentBarStyle(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
