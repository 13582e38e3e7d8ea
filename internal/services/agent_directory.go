package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
)

// AgentDirectory resolves agent identifiers against the agent spreadsheet.
// Column 0 holds the identifier and column 1 the display name.
type AgentDirectory struct {
	source ports.SheetSource
}

// Verify interface compliance at compile time
var _ ports.AgentLookup = (*AgentDirectory)(nil)

// NewAgentDirectory creates a new AgentDirectory
func NewAgentDirectory(source ports.SheetSource) *AgentDirectory {
	return &AgentDirectory{source: source}
}

// LookupName implements AgentLookup.LookupName. The sheet is read on every call.
func (d *AgentDirectory) LookupName(ctx context.Context, normalizedID string) (string, error) {
	rows, err := d.source.ReadRows(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, d.source.Location(), err)
	}

	for _, row := range rows {
		if len(row) == 0 || domain.NormalizeIdentifier(row[0]) != normalizedID {
			continue
		}
		name := ""
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if name == "" {
			break
		}
		logging.Logger.Debug("Agent resolved", "identifier", normalizedID)
		return name, nil
	}

	return "", fmt.Errorf("%w: %s", domain.ErrLookupNotFound, normalizedID)
}
