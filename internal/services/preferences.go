package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
)

// PreferenceService exposes the agent and theme preferences
type PreferenceService struct {
	agents ports.AgentLookup
	store  ports.KeyValueStore
}

// NewPreferenceService creates a new PreferenceService.
// agents may be nil, in which case the raw input is used as display name.
func NewPreferenceService(store ports.KeyValueStore, agents ports.AgentLookup) *PreferenceService {
	return &PreferenceService{
		agents: agents,
		store:  store,
	}
}

// SetAgent resolves and stores the agent identity and returns its display name.
// The trimmed input is stored as typed; only the lookup uses its normalized form.
// Blank input clears the agent. Lookup failures fall back to the trimmed input.
// A persistence failure is returned together with the resolved name.
func (s *PreferenceService) SetAgent(ctx context.Context, input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", s.ClearAgent(ctx)
	}

	identifier := domain.NormalizeIdentifier(trimmed)
	displayName := trimmed
	if s.agents != nil {
		name, err := s.agents.LookupName(ctx, identifier)
		if err != nil {
			logging.Logger.Info("Agent lookup failed, using input as name", "identifier", identifier, "error", err)
		} else {
			displayName = name
		}
	}

	pref := domain.AgentPreference{Identifier: trimmed, DisplayName: displayName}
	if err := s.store.Set(ctx, domain.KeyAgent, pref); err != nil {
		logging.Logger.Error("Failed to save agent", "error", err)
		return displayName, fmt.Errorf("failed to save agent: %w", err)
	}

	logging.Logger.Info("Agent saved", "identifier", trimmed)
	return displayName, nil
}

// ClearAgent removes the agent preference. Clearing an unset agent is a no-op.
func (s *PreferenceService) ClearAgent(ctx context.Context) error {
	if err := s.store.Delete(ctx, domain.KeyAgent); err != nil {
		logging.Logger.Error("Failed to clear agent", "error", err)
		return fmt.Errorf("failed to clear agent: %w", err)
	}
	logging.Logger.Info("Agent cleared")
	return nil
}

// GetAgent returns the stored agent; read failures report no agent
func (s *PreferenceService) GetAgent(ctx context.Context) (domain.AgentPreference, bool) {
	var pref domain.AgentPreference
	found, err := s.store.Get(ctx, domain.KeyAgent, &pref)
	if err != nil {
		logging.Logger.Warn("Failed to read agent", "error", err)
		return domain.AgentPreference{}, false
	}
	if !found {
		return domain.AgentPreference{}, false
	}
	return pref, true
}

// GetAgentDisplayName returns the stored display name or ""
func (s *PreferenceService) GetAgentDisplayName(ctx context.Context) string {
	pref, ok := s.GetAgent(ctx)
	if !ok {
		return ""
	}
	return pref.DisplayName
}

// GetTheme returns the stored theme, defaulting to light
func (s *PreferenceService) GetTheme(ctx context.Context) domain.Theme {
	var stored string
	found, err := s.store.Get(ctx, domain.KeyTheme, &stored)
	if err != nil {
		logging.Logger.Warn("Failed to read theme, using default", "error", err)
		return domain.DefaultTheme
	}
	if !found {
		return domain.DefaultTheme
	}

	theme, err := domain.ParseTheme(stored)
	if err != nil {
		logging.Logger.Warn("Stored theme is invalid, using default", "value", stored)
		return domain.DefaultTheme
	}
	return theme
}

// SetTheme persists the theme on a best-effort basis
func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) {
	if err := s.store.Set(ctx, domain.KeyTheme, string(theme)); err != nil {
		logging.Logger.Warn("Failed to save theme", "theme", theme, "error", err)
		return
	}
	logging.Logger.Debug("Theme saved", "theme", theme)
}

// ToggleTheme flips the stored theme and returns the new value
func (s *PreferenceService) ToggleTheme(ctx context.Context) domain.Theme {
	next := s.GetTheme(ctx).Toggle()
	s.SetTheme(ctx, next)
	return next
}
