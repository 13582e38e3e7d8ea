package cmd

import (
	"context"
	"fmt"

	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host            string   `help:"Host to bind to" default:"localhost"`
	Port            string   `help:"Port to listen on" default:"23234"`
	AuthorizedKeys  []string `help:"authorized_keys files allowed to connect (default ~/.ssh/authorized_keys)" name:"authorized-keys"`
	ErrorClearDelay int      `help:"Seconds before status messages auto-clear" default:"10"`
	SearchDebounce  int      `help:"Milliseconds of typing pause before the list is filtered" name:"search-debounce-ms" default:"220"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	run := RunCmd{
		ErrorClearDelay:  s.ErrorClearDelay,
		SearchDebounceMs: s.SearchDebounce,
		TimestampFormat:  timestampFormat(cli),
	}
	run.applySettings(cli.settings)

	cfg, err := run.modelConfig(cli.settings)
	if err != nil {
		return err
	}

	authorizedKeys := s.AuthorizedKeys
	if len(authorizedKeys) == 0 && cli.settings != nil {
		authorizedKeys = cli.settings.SSHAuthorizedKeys
	}

	srv, err := server.NewServer(s.Host, s.Port, server.Options{
		AuthorizedKeys: authorizedKeys,
		Catalog:        cli.Container.Catalog,
		HostKeyPath:    config.GetHostKeyPath(),
		ModelConfig:    cfg,
		Preferences:    cli.Container.Preferences,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logging.Logger.Info("Starting guion SSH server", "address", srv.Address(), "data_source", cli.Data)
	fmt.Printf("SSH server listening on %s\n", srv.Address())

	// Blocks until interrupted
	return srv.Start(context.Background())
}
