package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/domain"
)

func TestParseFieldValues(t *testing.T) {
	values, err := parseFieldValues([]string{"ID=42", "Notes=line one=two", " Equipo =X1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"id":     "42",
		"notes":  "line one=two",
		"equipo": "X1",
	}, values)

	_, err = parseFieldValues([]string{"no separator"})
	assert.Error(t, err)

	_, err = parseFieldValues([]string{"=value"})
	assert.Error(t, err)
}

func TestFillFields(t *testing.T) {
	record := domain.ScriptRecord{
		ExtraFieldsSpec: "Equipo",
		Motive:          "Upgrade",
		SourceRow:       2,
		Title:           "Venta nueva",
	}
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.Local)
	descriptors := domain.BuildDetailForm(&record, now, "")

	tests := []struct {
		name      string
		overrides map[string]string
		wantErr   string
		check     func(t *testing.T, values []domain.FieldValue)
	}{
		{
			name: "initial values are kept",
			check: func(t *testing.T, values []domain.FieldValue) {
				require.Len(t, values, len(descriptors))
				assert.Equal(t, "2026-03-04 10:30:00", values[0].Value)
				assert.Equal(t, domain.FieldValue{Label: domain.LabelContactReason, Value: "Upgrade"}, values[4])
			},
		},
		{
			name:      "overrides match labels case-insensitively",
			overrides: map[string]string{"equipo": "X1", "notes": "called back"},
			check: func(t *testing.T, values []domain.FieldValue) {
				assert.Equal(t, domain.FieldValue{Label: "Equipo", Value: "X1"}, values[len(values)-2])
				assert.Equal(t, domain.FieldValue{Label: domain.LabelNotes, Value: "called back"}, values[len(values)-1])
			},
		},
		{
			name:      "read-only field",
			overrides: map[string]string{"date and time": "yesterday"},
			wantErr:   "read-only",
		},
		{
			name:      "unknown field",
			overrides: map[string]string{"missing": "x"},
			wantErr:   "unknown field 'missing'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := fillFields(descriptors, tt.overrides)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, values)
		})
	}
}

func TestRunCmd_ApplySettings(t *testing.T) {
	delay := 3
	debounce := 500
	settings := &config.Settings{
		ErrorClearDelay:  &delay,
		SearchDebounceMs: &debounce,
		TimestampFormat:  "15:04",
	}

	defaults := RunCmd{
		ErrorClearDelay:  config.DefaultErrorClearDelay,
		SearchDebounceMs: config.DefaultSearchDebounceMs,
		TimestampFormat:  domain.DefaultTimestampLayout,
	}
	defaults.applySettings(settings)
	assert.Equal(t, 3, defaults.ErrorClearDelay)
	assert.Equal(t, 500, defaults.SearchDebounceMs)
	assert.Equal(t, "15:04", defaults.TimestampFormat)

	// Explicit flags win over settings
	explicit := RunCmd{ErrorClearDelay: 7, SearchDebounceMs: 100, TimestampFormat: "02/01"}
	explicit.applySettings(settings)
	assert.Equal(t, 7, explicit.ErrorClearDelay)
	assert.Equal(t, 100, explicit.SearchDebounceMs)
	assert.Equal(t, "02/01", explicit.TimestampFormat)
}

func TestRunCmd_ModelConfig(t *testing.T) {
	run := RunCmd{ErrorClearDelay: 10, SearchDebounceMs: 220, TimestampFormat: "15:04"}

	cfg, err := run.modelConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.ErrorClearDelay)
	assert.Equal(t, 220*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "15:04", cfg.TimestampFormat)

	_, err = run.modelConfig(&config.Settings{
		Keys: config.KeyBindingsConfig{"copy": {"ctrl+r"}, "reload": {"ctrl+r"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key bindings")

	_, err = run.modelConfig(&config.Settings{
		Keys: config.KeyBindingsConfig{"archive": {"a"}},
	})
	assert.Error(t, err)
}
