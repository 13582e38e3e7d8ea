package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List key bindings grouped by application, navigation and form" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Rebind an action"`
}

// SettingsKeysListCmd lists key bindings per category
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd rebinds one action
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Action name (e.g. copy, set_agent, search)"`
	Value string `arg:"" help:"Keys, comma-separated for several (e.g. ctrl+k,f6)"`
}

// keyBindingRow is one action with its default and custom keys
type keyBindingRow struct {
	Custom   []string `json:"custom,omitempty"`
	Defaults []string `json:"default"`
	Help     string   `json:"help"`
	Name     string   `json:"name"`
}

// effective returns the keys the TUI will actually use
func (r keyBindingRow) effective() []string {
	if len(r.Custom) > 0 {
		return r.Custom
	}
	return r.Defaults
}

// keyBindingRows groups every action by category, merging custom keys from settings
func keyBindingRows(custom config.KeyBindingsConfig) map[ui.KeyCategory][]keyBindingRow {
	grouped := make(map[ui.KeyCategory][]keyBindingRow, len(ui.KeyCategories))
	for _, category := range ui.KeyCategories {
		defs := ui.KeyDefinitionsIn(category)
		rows := make([]keyBindingRow, len(defs))
		for i, def := range defs {
			rows[i] = keyBindingRow{
				Defaults: def.Defaults,
				Help:     def.Help(),
				Name:     def.Name,
			}
			if keys := custom[def.Name]; len(keys) > 0 {
				rows[i].Custom = []string(keys)
			}
		}
		grouped[category] = rows
	}
	return grouped
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	grouped := keyBindingRows(custom)

	if s.Format == "json" {
		data, err := json.MarshalIndent(grouped, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Key bindings (settings file: %s)\n", config.GetSettingsPath())
	heading := color.New(color.FgCyan, color.Bold)
	customMark := color.New(color.FgYellow).Sprint("*")

	for _, category := range ui.KeyCategories {
		fmt.Printf("\n%s\n", heading.Sprint(strings.ToUpper(string(category[:1]))+string(category[1:])))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for _, row := range grouped[category] {
			keys := strings.Join(row.effective(), ", ")
			if len(row.Custom) > 0 {
				keys += " " + customMark
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", row.Name, keys, row.Help)
		}
		w.Flush()
	}

	fmt.Printf("\n%s marks custom bindings. Use 'guion settings keys set <action> <keys>' to rebind.\n", customMark)
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	keys, err := bindKey(settings, s.Key, s.Value)
	if err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Key binding saved", "action", s.Key, "keys", keys)
	fmt.Printf("%s %s: %s\n", color.New(color.FgGreen).Sprint("✓"), s.Key, strings.Join(keys, ", "))
	return nil
}

// bindKey stores the comma-separated keys for an action in settings.
// The settings are left untouched when the name is unknown or the keys clash with another action.
func bindKey(settings *config.Settings, name string, value string) ([]string, error) {
	if ui.GetKeyDefinition(name) == nil {
		return nil, fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	var keys []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys given for '%s'", name)
	}

	updated := make(config.KeyBindingsConfig, len(settings.Keys)+1)
	for k, v := range settings.Keys {
		updated[k] = v
	}
	updated[name] = keys

	if err := updated.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("conflict: %w", err)
	}

	settings.Keys = updated
	return keys, nil
}
