package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			width:    80,
			expected: "",
		},
		{
			name:     "short error fits on one line",
			err:      errors.New("source unavailable"),
			width:    80,
			expected: "Error: source unavailable",
		},
		{
			name:     "empty message",
			err:      errors.New(""),
			width:    80,
			expected: "Error: unknown error",
		},
		{
			name:     "whitespace collapsed",
			err:      errors.New("bad\n\tvalue"),
			width:    80,
			expected: "Error: bad value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_LimitsLines(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 40))

	result := formatErrorForDisplay(err, 30)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(lines[1], truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestErrorManager(t *testing.T) {
	em := NewErrorManager(time.Second)

	em.SetError(errors.New("boom"))
	assert.True(t, em.HasError())
	staleClear := em.ClearAfterDelay()
	assert.NotNil(t, staleClear)

	em.SetNotice("Copied to clipboard")
	assert.False(t, em.HasError())
	assert.Equal(t, "Copied to clipboard", em.Notice())

	// A clear scheduled for the error must not remove the newer notice
	em.handleClear(clearStatusMsg{seq: em.seq - 1})
	assert.Equal(t, "Copied to clipboard", em.Notice())

	em.handleClear(clearStatusMsg{seq: em.seq})
	assert.Empty(t, em.Notice())
	assert.False(t, em.HasError())
}

func TestErrorManager_ZeroDelayKeepsMessage(t *testing.T) {
	em := NewErrorManager(0)
	em.SetError(errors.New("boom"))

	assert.Nil(t, em.ClearAfterDelay())
	assert.True(t, em.HasError())
}
