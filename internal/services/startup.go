package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
)

// StartupState is everything the TUI needs before its first frame
type StartupState struct {
	AgentID    string
	AgentName  string
	Records    *domain.RecordSet
	RecordsErr error
	Theme      domain.Theme
}

// LoadStartup loads records, agent and theme concurrently.
// Each part degrades on its own; the returned state is always usable.
func LoadStartup(ctx context.Context, catalog *CatalogService, prefs *PreferenceService) StartupState {
	state := StartupState{
		Records: domain.EmptyRecordSet(),
		Theme:   domain.DefaultTheme,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := catalog.Load(ctx)
		state.Records = records
		state.RecordsErr = err
		return nil
	})

	g.Go(func() error {
		if pref, ok := prefs.GetAgent(ctx); ok {
			state.AgentID = pref.Identifier
			state.AgentName = pref.DisplayName
		}
		return nil
	})

	g.Go(func() error {
		state.Theme = prefs.GetTheme(ctx)
		return nil
	})

	_ = g.Wait()

	logging.Logger.Debug("Startup state loaded",
		"records", state.Records.Len(),
		"recordsErr", state.RecordsErr,
		"theme", state.Theme)
	return state
}
