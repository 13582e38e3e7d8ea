package server

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/callscripts/guion/internal/domain"
	portsmocks "github.com/callscripts/guion/internal/ports/mocks"
	"github.com/callscripts/guion/internal/services"
	"github.com/callscripts/guion/internal/ui"
)

func TestIsTmuxTerm(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{term: "tmux-256color", want: true},
		{term: "screen-256color", want: true},
		{term: "xterm-256color", want: false},
		{term: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, isTmuxTerm(tt.term))
		})
	}
}

func newSessionModel(t *testing.T) (*sessionModel, *ui.Model) {
	t.Helper()
	inner := ui.NewModel(
		ui.ModelConfig{
			ClockInterval:   time.Hour,
			ErrorClearDelay: time.Second,
			SearchDebounce:  time.Hour,
		},
		services.NewCatalogService(portsmocks.NewMockSheetSource(t), domain.DefaultLayout),
		services.NewPreferenceService(portsmocks.NewMockKeyValueStore(t), nil),
		services.NewExportService(portsmocks.NewMockClipboard(t)),
	)
	t.Cleanup(inner.Close)
	return &sessionModel{Model: inner, sessionID: "ana@127.0.0.1:2222", startTime: time.Now()}, inner
}

func TestSessionModel_UpdateKeepsInnerModel(t *testing.T) {
	session, inner := newSessionModel(t)

	updated, _ := session.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Same(t, session, updated)
	assert.Same(t, inner, session.Model)
}

func TestSessionModel_CloseWhileUpdating(t *testing.T) {
	session, inner := newSessionModel(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		inner.Close()
	}()

	for i := 0; i < 20; i++ {
		session.Update(tea.WindowSizeMsg{Width: 80 + i, Height: 24})
	}
	wg.Wait()

	// Quitting after a disconnect closes the model a second time
	session.Update(tea.QuitMsg{})
	assert.Same(t, inner, session.Model)
}
