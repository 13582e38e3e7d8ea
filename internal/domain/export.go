package domain

import "strings"

// FieldValue is the current value of one detail form field, keyed by its label
type FieldValue struct {
	Label string
	Value string
}

// ExportText renders field values as "LABEL: value" lines.
// Notes are rendered as a block: the label line followed by the raw value.
func ExportText(fields []FieldValue) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		label := strings.ToUpper(f.Label)
		if isNotesLabel(f.Label) {
			lines = append(lines, label+":\n"+f.Value)
			continue
		}
		lines = append(lines, label+": "+f.Value)
	}
	return strings.Join(lines, "\n")
}

func isNotesLabel(label string) bool {
	normalized := strings.ToLower(strings.TrimSpace(label))
	return normalized == "notes" || normalized == "note"
}
