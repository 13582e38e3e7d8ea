package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/theme"
)

// renderInfoPanel renders the important info summary of record.
// It returns "" when no record is selected.
func renderInfoPanel(record *domain.ScriptRecord, width int) string {
	view, ok := domain.ProjectImportantInfo(record)
	if !ok {
		return ""
	}

	contentWidth := width - 4 // border + padding
	if contentWidth < 10 {
		contentWidth = 10
	}
	body := theme.InfoBodyStyle.Width(contentWidth)

	var sections []string
	sections = append(sections, theme.InfoTitleStyle.Width(contentWidth).Render(view.Title))
	if view.Subtitle != "" {
		sections = append(sections, theme.InfoSubtitleStyle.Width(contentWidth).Render(view.Subtitle))
	}

	for _, heading := range view.Headings() {
		sections = append(sections, theme.InfoHeadingStyle.Render(heading))
		switch heading {
		case domain.HeadingClassification:
			if row := renderBadges(view.PrimaryTags, contentWidth); row != "" {
				sections = append(sections, row)
			}
			if row := renderBadges(view.SecondaryTags, contentWidth); row != "" {
				sections = append(sections, row)
			}
		case domain.HeadingReason:
			sections = append(sections, body.Render(view.Reason))
		case domain.HeadingVerification:
			for _, item := range view.Verification {
				sections = append(sections, theme.BulletStyle.Render("• ")+body.Width(contentWidth-2).Render(item))
			}
		case domain.HeadingSuggestions:
			sections = append(sections, body.Render(view.Suggestions))
		}
	}

	panel := theme.PanelStyle.Width(width - 2)
	if view.AccentColor != "" {
		panel = panel.BorderForeground(lipgloss.Color(view.AccentColor))
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderBadges lays badges out left to right, wrapping onto new lines at width
func renderBadges(badges []domain.Badge, width int) string {
	if len(badges) == 0 {
		return ""
	}

	var lines []string
	var line string
	for _, badge := range badges {
		rendered := theme.BadgeStyleFor(badge.Highlight).Render(badge.Label)
		if line != "" && lipgloss.Width(line)+lipgloss.Width(rendered) > width {
			lines = append(lines, line)
			line = ""
		}
		line += rendered
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
