package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("GUION_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GUION_HOME", home)
	content := `{
		"data_source": "~/scripts.xlsx",
		"column_layout": "classic",
		"search_debounce_ms": 100,
		"keys": {"copy": "ctrl+k", "help": ["?", "f2"]}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	homeDir, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(homeDir, "scripts.xlsx"), settings.DataSource)
	assert.Equal(t, "classic", settings.ColumnLayout)
	require.NotNil(t, settings.SearchDebounceMs)
	assert.Equal(t, 100, *settings.SearchDebounceMs)
	assert.Equal(t, KeyBindingValue{"ctrl+k"}, settings.Keys["copy"])
	assert.Equal(t, KeyBindingValue{"?", "f2"}, settings.Keys["help"])
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GUION_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_CreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("GUION_HOME", home)
	layout := 5

	require.NoError(t, SaveSettings(&Settings{ColumnLayout: "default", ErrorClearDelay: &layout}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "default", loaded.ColumnLayout)
	assert.Equal(t, 5, *loaded.ErrorClearDelay)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"copy", "help", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{name: "nil", config: nil},
		{name: "ok", config: KeyBindingsConfig{"copy": {"ctrl+k"}, "help": {"?"}}},
		{name: "unknown name", config: KeyBindingsConfig{"archive": {"a"}}, wantErr: "unknown key binding 'archive'"},
		{name: "empty value", config: KeyBindingsConfig{"copy": {""}}, wantErr: "contains empty value"},
		{name: "duplicate", config: KeyBindingsConfig{"copy": {"x"}, "quit": {"x"}}, wantErr: "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestStringArray_Unmarshal(t *testing.T) {
	var fromArray, fromString StringArray
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &fromArray))
	require.NoError(t, json.Unmarshal([]byte(`" a , ,b "`), &fromString))

	assert.Equal(t, StringArray{"a", "b"}, fromArray)
	assert.Equal(t, StringArray{"a", "b"}, fromString)
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"agent_source", "column_layout", "data_source", "debug", "error_clear_delay",
		"keys", "max_log_files", "search_debounce_ms", "ssh_authorized_keys", "timestamp_format",
	} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultSearchDebounceMs, example["search_debounce_ms"])
}

func TestGetGuionHome(t *testing.T) {
	t.Setenv("GUION_HOME", "/srv/guion")
	assert.Equal(t, "/srv/guion", GetGuionHome())
	assert.Equal(t, "/srv/guion/state.db", GetDBPath())
	assert.Equal(t, "/srv/guion/prefs.yaml", GetFallbackStorePath())
	assert.Equal(t, "/srv/guion/data.xlsx", GetDefaultDataSource())
}
