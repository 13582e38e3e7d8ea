package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Data        string           `help:"Scripts spreadsheet (.xlsx path or http(s) URL)" env:"GUION_DATA"`
	Agents      string           `help:"Agents spreadsheet (.xlsx path or http(s) URL)" env:"GUION_AGENTS"`
	Layout      string           `help:"Column layout of the scripts spreadsheet" enum:"default,classic" default:"default" env:"GUION_LAYOUT"`

	Run      RunCmd      `cmd:"" help:"Start the guion TUI (default)" default:"1"`
	Scripts  ScriptsCmd  `cmd:"scripts" help:"Search and export call scripts (list, show, export)"`
	Agent    AgentCmd    `cmd:"agent" help:"Manage the agent identity (show, set, clear)"`
	Theme    ThemeCmd    `cmd:"theme" help:"Manage the color theme (show, set, toggle)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GUION_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GUION_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Data == "" && c.settings.DataSource != "" {
			c.Data = c.settings.DataSource
		}
		if c.Agents == "" && c.settings.AgentSource != "" {
			c.Agents = c.settings.AgentSource
		}
		if c.Layout == domain.LayoutDefault && c.settings.ColumnLayout != "" {
			if _, hasEnv := os.LookupEnv("GUION_LAYOUT"); !hasEnv {
				c.Layout = c.settings.ColumnLayout
			}
		}
	}

	if c.Data == "" {
		c.Data = config.GetDefaultDataSource()
	}
	if c.Agents == "" {
		c.Agents = config.GetDefaultAgentSource()
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Shared with SSH session handlers and any child process
	if c.Debug || c.DebugFile != "" {
		os.Setenv("GUION_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("GUION_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("GUION_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	layout, err := domain.LayoutByName(c.Layout)
	if err != nil {
		return err
	}

	// Container is created after logging so the gorm logger adapter has a live logger
	container, err := NewContainer(ContainerOptions{
		AgentSource: config.ExpandPath(c.Agents),
		DataSource:  config.ExpandPath(c.Data),
		Layout:      layout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev              bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay  int    `help:"Seconds before status messages auto-clear" default:"10"`
	SearchDebounceMs int    `help:"Milliseconds of typing pause before the list is filtered" default:"220"`
	TimestampFormat  string `help:"Go time layout of the live date and time field" default:"2006-01-02 15:04:05"`
}

// applySettings fills RunCmd flags still at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *settings.ErrorClearDelay
	}
	if r.SearchDebounceMs == config.DefaultSearchDebounceMs && settings.SearchDebounceMs != nil {
		r.SearchDebounceMs = *settings.SearchDebounceMs
	}
	if r.TimestampFormat == domain.DefaultTimestampLayout && settings.TimestampFormat != "" {
		r.TimestampFormat = settings.TimestampFormat
	}
}

// modelConfig validates key bindings and builds the TUI configuration
func (r *RunCmd) modelConfig(settings *config.Settings) (ui.ModelConfig, error) {
	var keysConfig config.KeyBindingsConfig
	if settings != nil && settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.ModelConfig{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	return ui.ModelConfig{
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keysConfig,
		SearchDebounce:  time.Duration(r.SearchDebounceMs) * time.Millisecond,
		TimestampFormat: r.TimestampFormat,
	}, nil
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)

	cfg, err := r.modelConfig(cli.settings)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting guion TUI",
		"data_source", cli.Data,
		"agent_source", cli.Agents,
		"layout", cli.Layout)

	model := ui.NewModel(cfg, cli.Container.Catalog, cli.Container.Preferences, cli.Container.Export)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
