package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/callscripts/guion/internal/adapters/clipboard"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/services"
	"github.com/callscripts/guion/internal/ui"
)

// sessionModel wraps ui.Model to release its clock when the SSH session ends
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.end()
	}

	// ui.Model updates in place, so the embedded pointer never changes
	_, cmd := s.Model.Update(msg)
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// end stops the model's background work. Safe to call more than once.
func (s *sessionModel) end() {
	s.Model.Close()
	logging.Logger.Info("SSH session ended",
		"session_id", s.sessionID,
		"duration", time.Since(s.startTime).String())
}

// teaHandler creates a Bubble Tea model for each SSH session.
// Copy goes to the operator's terminal through OSC52.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	exporter := services.NewExportService(clipboard.NewOSC52(sess, isTmuxTerm(pty.Term)))
	inner := ui.NewModel(s.modelConfig, s.catalog, s.preferences, exporter)
	model := &sessionModel{
		Model:     inner,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	// A dropped connection never delivers QuitMsg
	go func() {
		<-sess.Context().Done()
		inner.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// isTmuxTerm reports whether the client terminal runs inside tmux or screen
func isTmuxTerm(term string) bool {
	switch term {
	case "screen", "screen-256color", "tmux", "tmux-256color":
		return true
	}
	return false
}
