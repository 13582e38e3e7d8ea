package services

import (
	"context"
	"fmt"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
)

// CatalogService loads the script record set from the primary spreadsheet
type CatalogService struct {
	layout domain.ColumnLayout
	source ports.SheetSource
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(source ports.SheetSource, layout domain.ColumnLayout) *CatalogService {
	return &CatalogService{
		layout: layout,
		source: source,
	}
}

// Location returns where records are loaded from
func (s *CatalogService) Location() string {
	return s.source.Location()
}

// Load fetches and parses the spreadsheet once.
// On failure it returns an empty set together with an error wrapping ErrSourceUnavailable.
func (s *CatalogService) Load(ctx context.Context) (*domain.RecordSet, error) {
	logging.Logger.Info("Loading scripts", "location", s.source.Location())

	rows, err := s.source.ReadRows(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load scripts", "location", s.source.Location(), "error", err)
		return domain.EmptyRecordSet(), fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, s.source.Location(), err)
	}

	set := domain.NewRecordSet(domain.ParseRecords(rows, s.layout))
	logging.Logger.Info("Scripts loaded", "rows", len(rows), "records", set.Len())
	return set, nil
}
