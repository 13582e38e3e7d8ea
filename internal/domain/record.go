package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ScriptRecord is one row of the scripts spreadsheet with a non-empty title
type ScriptRecord struct {
	AccentColor     string // Normalized #rrggbb, empty when the source cell is absent or invalid
	ExtraFieldsSpec string
	Motive          string
	Probe           string
	Process         string
	SourceRow       int // 1-based row in the source spreadsheet
	Subtitle        string
	SuggestionText  string
	TagsPrimary     string
	TagsSecondary   string
	Title           string
	Verification    string
}

// HasAccent reports whether the record carries a valid accent color
func (r ScriptRecord) HasAccent() bool {
	return r.AccentColor != ""
}

// ColumnLayout maps record attributes to spreadsheet column positions (0-based)
type ColumnLayout struct {
	AccentColor     int
	ExtraFieldsSpec int
	Motive          int
	Probe           int
	Process         int
	Subtitle        int
	SuggestionText  int
	TagsPrimary     int
	TagsSecondary   int
	Title           int
	Verification    int
}

// Layout names accepted by LayoutByName
const (
	LayoutClassic = "classic"
	LayoutDefault = "default"
)

// DefaultLayout keeps tags, subtitle and color right after the verification column
// and moves suggestions to the last column.
var DefaultLayout = ColumnLayout{
	Title:           0,
	ExtraFieldsSpec: 1,
	Motive:          2,
	Probe:           3,
	Process:         4,
	Verification:    5,
	TagsPrimary:     6,
	TagsSecondary:   7,
	Subtitle:        8,
	AccentColor:     9,
	SuggestionText:  10,
}

// ClassicLayout is the A-K workbook layout with suggestions in column G.
var ClassicLayout = ColumnLayout{
	Title:           0,
	ExtraFieldsSpec: 1,
	Motive:          2,
	Probe:           3,
	Process:         4,
	Verification:    5,
	SuggestionText:  6,
	TagsPrimary:     7,
	TagsSecondary:   8,
	Subtitle:        9,
	AccentColor:     10,
}

// LayoutByName resolves a configured layout name. Empty selects the default layout.
func LayoutByName(name string) (ColumnLayout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutDefault:
		return DefaultLayout, nil
	case LayoutClassic:
		return ClassicLayout, nil
	default:
		return ColumnLayout{}, fmt.Errorf("unknown column layout '%s' (valid: %s, %s)", name, LayoutDefault, LayoutClassic)
	}
}

var (
	hexColor6 = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	hexColor3 = regexp.MustCompile(`^#[0-9A-Fa-f]{3}$`)
)

// NormalizeHexColor accepts #abc, abc, #aabbcc and AABBCC (whitespace is ignored)
// and returns the lowercase 6-digit form with a leading '#'.
func NormalizeHexColor(input string) (string, bool) {
	cleaned := strings.Join(strings.Fields(input), "")
	if cleaned == "" {
		return "", false
	}
	if !strings.HasPrefix(cleaned, "#") {
		cleaned = "#" + cleaned
	}

	if hexColor6.MatchString(cleaned) {
		return strings.ToLower(cleaned), true
	}
	if hexColor3.MatchString(cleaned) {
		r, g, b := cleaned[1:2], cleaned[2:3], cleaned[3:4]
		return strings.ToLower("#" + r + r + g + g + b + b), true
	}
	return "", false
}

// ParseRecords converts a row matrix into script records.
// Rows whose title cell is blank are skipped but still consume a row number.
func ParseRecords(rows [][]string, layout ColumnLayout) []ScriptRecord {
	records := make([]ScriptRecord, 0, len(rows))
	for i, row := range rows {
		title := cell(row, layout.Title)
		if strings.TrimSpace(title) == "" {
			continue
		}

		accent, _ := NormalizeHexColor(cell(row, layout.AccentColor))
		records = append(records, ScriptRecord{
			AccentColor:     accent,
			ExtraFieldsSpec: cell(row, layout.ExtraFieldsSpec),
			Motive:          cell(row, layout.Motive),
			Probe:           cell(row, layout.Probe),
			Process:         cell(row, layout.Process),
			SourceRow:       i + 1,
			Subtitle:        cell(row, layout.Subtitle),
			SuggestionText:  cell(row, layout.SuggestionText),
			TagsPrimary:     cell(row, layout.TagsPrimary),
			TagsSecondary:   cell(row, layout.TagsSecondary),
			Title:           title,
			Verification:    cell(row, layout.Verification),
		})
	}
	return records
}

// cell returns the value at position i or "" when the row is shorter
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// SplitList splits a comma-separated list, trimming items and dropping empty ones
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
