package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []FieldSpec
	}{
		{
			name:  "label and explicit placeholder",
			input: "Nombre, Telefono: 9 dígitos",
			expected: []FieldSpec{
				{Label: "Nombre", Placeholder: "Enter Nombre"},
				{Label: "Telefono", Placeholder: "9 dígitos"},
			},
		},
		{name: "empty", input: "", expected: nil},
		{name: "only separators", input: " , ,", expected: nil},
		{
			name:     "empty placeholder falls back",
			input:    "Plan:   ",
			expected: []FieldSpec{{Label: "Plan", Placeholder: "Enter Plan"}},
		},
		{
			name:     "only first colon splits",
			input:    "Time: hh:mm",
			expected: []FieldSpec{{Label: "Time", Placeholder: "hh:mm"}},
		},
		{name: "empty label dropped", input: ": orphan placeholder", expected: nil},
		{
			name:  "order preserved",
			input: "c,b:x,a",
			expected: []FieldSpec{
				{Label: "c", Placeholder: "Enter c"},
				{Label: "b", Placeholder: "x"},
				{Label: "a", Placeholder: "Enter a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFieldSpec(tt.input))
		})
	}
}
