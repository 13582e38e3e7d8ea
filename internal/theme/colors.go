package theme

import "github.com/charmbracelet/lipgloss"

// Color adapts to the active light/dark theme
type Color = lipgloss.AdaptiveColor

// Brand colors
var (
	ColorPrimary   = Color{Light: "55", Dark: "99"}  // Purple - app name, titles
	ColorSecondary = Color{Light: "30", Dark: "86"}  // Cyan - subtitles
	ColorAgent     = Color{Light: "28", Dark: "114"} // Green - agent name in header
)

// UI semantic colors
var (
	ColorBorder    = Color{Light: "250", Dark: "238"}
	ColorDimmed    = Color{Light: "252", Dark: "240"} // Background behind an overlay
	ColorError     = Color{Light: "160", Dark: "196"} // Red
	ColorFocus     = Color{Light: "55", Dark: "212"}  // Focused field and selected card
	ColorHighlight = Color{Light: "232", Dark: "255"} // Emphasis
	ColorMuted     = Color{Light: "245", Dark: "241"} // Secondary text
	ColorNormal    = Color{Light: "236", Dark: "250"} // Default text
	ColorSubtle    = Color{Light: "243", Dark: "245"} // Labels
	ColorSuccess   = Color{Light: "28", Dark: "42"}
	ColorVersion   = Color{Light: "247", Dark: "240"}
)

// Badge colors. Highlighted badges keep fixed colors in both themes.
var (
	ColorBadgeBackground = Color{Light: "254", Dark: "237"}
	ColorBadgeText       = Color{Light: "236", Dark: "252"}
)

// Highlighted badge colors
const (
	ColorBadgePrimaryHighlight   lipgloss.Color = "#FF5050"
	ColorBadgeSecondaryHighlight lipgloss.Color = "#FFE699"
	ColorBlack                   lipgloss.Color = "#000000"
	ColorWhite                   lipgloss.Color = "#FFFFFF"
)

// Accent colors
var (
	ColorHelpGroup = Color{Light: "91", Dark: "141"}  // Purple
	ColorHintKey   = Color{Light: "130", Dark: "226"} // Yellow
)
