package ports

import "context"

// AgentLookup resolves a normalized agent identifier to a display name
type AgentLookup interface {
	// LookupName returns domain.ErrLookupNotFound when the identifier is unknown
	LookupName(ctx context.Context, normalizedID string) (string, error)
}
