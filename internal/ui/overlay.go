package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/callscripts/guion/internal/theme"
)

// compositeOverlay renders overlay centered on top of a dimmed copy of background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i := range bgLines {
		dimmed := theme.DimmedStyle.Render(ansi.Strip(bgLines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		bgLines[i] = dimmed
	}

	overlayWidth := lipgloss.Width(overlay)
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = theme.DimmedStyle.Render(strings.Repeat(" ", startX)) +
			line +
			theme.DimmedStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}
