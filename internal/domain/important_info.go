package domain

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Important info section headings
const (
	HeadingClassification = "Classification"
	HeadingReason         = "Reason"
	HeadingSuggestions    = "Suggestions"
	HeadingVerification   = "Verification"
)

// highlightedBadgeIndex is the 0-based position of the emphasized badge in a tag row
const highlightedBadgeIndex = 3

// BadgeHighlight selects the emphasis style of a badge
type BadgeHighlight int

const (
	HighlightNone BadgeHighlight = iota
	HighlightPrimary
	HighlightSecondary
)

// Badge is one categorical tag
type Badge struct {
	Highlight BadgeHighlight
	Label     string
}

// ImportantInfoView is the summary panel for a selected record.
// All text fields are sanitized for terminal display.
type ImportantInfoView struct {
	AccentColor   string
	PrimaryTags   []Badge
	Reason        string
	SecondaryTags []Badge
	Subtitle      string
	Suggestions   string
	Title         string
	Verification  []string
}

// HasClassification reports whether the "Classification" heading is emitted
func (v ImportantInfoView) HasClassification() bool {
	return len(v.PrimaryTags) > 0 || len(v.SecondaryTags) > 0
}

// Headings returns the section headings in display order
func (v ImportantInfoView) Headings() []string {
	var headings []string
	if v.HasClassification() {
		headings = append(headings, HeadingClassification)
	}
	if v.Reason != "" {
		headings = append(headings, HeadingReason)
	}
	if len(v.Verification) > 0 {
		headings = append(headings, HeadingVerification)
	}
	if v.Suggestions != "" {
		headings = append(headings, HeadingSuggestions)
	}
	return headings
}

// ProjectImportantInfo builds the summary view for a record.
// It returns false for a nil record, meaning the panel is hidden.
func ProjectImportantInfo(record *ScriptRecord) (ImportantInfoView, bool) {
	if record == nil {
		return ImportantInfoView{}, false
	}

	view := ImportantInfoView{
		AccentColor:   record.AccentColor,
		PrimaryTags:   badges(record.TagsPrimary, HighlightPrimary),
		Reason:        SanitizeText(strings.TrimSpace(record.Motive)),
		SecondaryTags: badges(record.TagsSecondary, HighlightSecondary),
		Subtitle:      SanitizeText(strings.TrimSpace(record.Subtitle)),
		Suggestions:   SanitizeText(strings.TrimSpace(record.SuggestionText)),
		Title:         SanitizeText(record.Title),
	}
	for _, item := range SplitList(record.Verification) {
		view.Verification = append(view.Verification, SanitizeText(item))
	}

	return view, true
}

func badges(list string, highlight BadgeHighlight) []Badge {
	items := SplitList(list)
	if len(items) == 0 {
		return nil
	}
	result := make([]Badge, len(items))
	for i, item := range items {
		result[i] = Badge{Label: SanitizeText(item)}
		if i == highlightedBadgeIndex {
			result[i].Highlight = highlight
		}
	}
	return result
}

// SanitizeText removes ANSI escape sequences and control characters
// (other than newline and tab) from spreadsheet text before it reaches the terminal.
func SanitizeText(s string) string {
	stripped := ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, stripped)
}
