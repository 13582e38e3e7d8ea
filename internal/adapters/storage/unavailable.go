package storage

import (
	"context"
	"fmt"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/ports"
)

// UnavailableStore stands in for a primary store that failed to open.
// Every call fails with domain.ErrStoreUnavailable so callers fall through to the fallback.
type UnavailableStore struct {
	cause error
}

var _ ports.KeyValueStore = (*UnavailableStore)(nil)

// NewUnavailableStore wraps the open error
func NewUnavailableStore(cause error) *UnavailableStore {
	return &UnavailableStore{cause: cause}
}

func (s *UnavailableStore) err() error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, s.cause)
}

// Get implements KeyValueStore.Get
func (s *UnavailableStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, s.err()
}

// Set implements KeyValueStore.Set
func (s *UnavailableStore) Set(ctx context.Context, key string, value any) error {
	return s.err()
}

// Delete implements KeyValueStore.Delete
func (s *UnavailableStore) Delete(ctx context.Context, key string) error {
	return s.err()
}
