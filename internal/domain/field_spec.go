package domain

import "strings"

// FieldSpec describes one extra input field declared in a record's field spec column
type FieldSpec struct {
	Label       string
	Placeholder string
}

// DefaultPlaceholder returns the prompt used when a field has no explicit placeholder
func DefaultPlaceholder(label string) string {
	return "Enter " + label
}

// ParseFieldSpec decodes "Label, Label: placeholder, ..." into field specs.
// Only the first colon of a segment separates label from placeholder.
func ParseFieldSpec(spec string) []FieldSpec {
	if strings.TrimSpace(spec) == "" {
		return nil
	}

	var fields []FieldSpec
	for _, segment := range SplitList(spec) {
		label, placeholder, found := strings.Cut(segment, ":")
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}

		placeholder = strings.TrimSpace(placeholder)
		if !found || placeholder == "" {
			placeholder = DefaultPlaceholder(label)
		}
		fields = append(fields, FieldSpec{Label: label, Placeholder: placeholder})
	}
	return fields
}
