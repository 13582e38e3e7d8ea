package ui

import (
	"time"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/services"
)

// Messages returned by commands. Store, sheet and clipboard I/O run as tea.Cmds
// and report back through these; Model handles them in Update.

// startupLoadedMsg carries records, agent and theme loaded at startup
type startupLoadedMsg struct {
	state services.StartupState
}

// recordsReloadedMsg carries a fresh record set after an explicit reload
type recordsReloadedMsg struct {
	err     error
	records *domain.RecordSet
}

// searchDebounceMsg fires once typing has paused; stale sequence numbers are ignored
type searchDebounceMsg struct {
	seq int
}

// clockTickMsg delivers one live clock tick for the form that started the clock
type clockTickMsg struct {
	generation int
	t          time.Time
}

// agentSavedMsg reports the outcome of setting or clearing the agent
type agentSavedMsg struct {
	err         error
	displayName string
}

// themeToggledMsg reports the theme after a toggle
type themeToggledMsg struct {
	theme domain.Theme
}

// copyDoneMsg reports the outcome of copying the detail form
type copyDoneMsg struct {
	err    error
	result services.ExportResult
}
