package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/services"
	"github.com/callscripts/guion/internal/ui"
)

// shutdownTimeout bounds how long open sessions may take to drain
const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	AuthorizedKeys []string // authorized_keys files; empty means ~/.ssh/authorized_keys
	Catalog        *services.CatalogService
	HostKeyPath    string
	ModelConfig    ui.ModelConfig
	Preferences    *services.PreferenceService
}

// Server hosts the guion TUI over SSH
type Server struct {
	address        string
	authorizedKeys []string
	catalog        *services.CatalogService
	modelConfig    ui.ModelConfig
	preferences    *services.PreferenceService
	wishServer     *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(host, port string, opts Options) (*Server, error) {
	s := &Server{
		address:        net.JoinHostPort(host, port),
		authorizedKeys: authorizedKeysPaths(opts.AuthorizedKeys),
		catalog:        opts.Catalog,
		modelConfig:    opts.ModelConfig,
		preferences:    opts.Preferences,
	}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Start serves until an interrupt or ctx is done, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.address, "authorized_keys", s.authorizedKeys)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("SSH server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
