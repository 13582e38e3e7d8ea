package cmd

import (
	"github.com/callscripts/guion/internal/adapters/clipboard"
	"github.com/callscripts/guion/internal/adapters/filestore"
	"github.com/callscripts/guion/internal/adapters/spreadsheet"
	adapterstorage "github.com/callscripts/guion/internal/adapters/storage"
	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
	"github.com/callscripts/guion/internal/services"
)

// ContainerOptions selects the spreadsheets and column layout the container wires
type ContainerOptions struct {
	AgentSource string
	DataSource  string
	Layout      domain.ColumnLayout
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	Agents      *services.AgentDirectory
	Catalog     *services.CatalogService
	Export      *services.ExportService
	Preferences *services.PreferenceService

	// Internal - for cleanup only
	sqliteStore *adapterstorage.SQLiteStore
}

// NewContainer creates a new Container with all dependencies wired.
// An unusable SQLite store does not fail construction: preferences fall back to the YAML file.
func NewContainer(opts ContainerOptions) (*Container, error) {
	var primary ports.KeyValueStore
	sqliteStore, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		logging.Logger.Warn("Primary store unavailable, using fallback only",
			"db_path", config.GetDBPath(),
			"error", err)
		primary = adapterstorage.NewUnavailableStore(err)
		sqliteStore = nil
	} else {
		primary = sqliteStore
	}

	secondary := filestore.NewYAMLStore(config.GetFallbackStorePath())
	store := services.NewFallbackStore(primary, secondary)

	agents := services.NewAgentDirectory(spreadsheet.NewSource(opts.AgentSource))

	logging.Logger.Debug("Container wired",
		"data_source", opts.DataSource,
		"agent_source", opts.AgentSource,
		"fallback_store", secondary.Path())

	return &Container{
		Agents:      agents,
		Catalog:     services.NewCatalogService(spreadsheet.NewSource(opts.DataSource), opts.Layout),
		Export:      services.NewExportService(clipboard.NewSystem()),
		Preferences: services.NewPreferenceService(store, agents),
		sqliteStore: sqliteStore,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.sqliteStore != nil {
		return c.sqliteStore.Close()
	}
	return nil
}
