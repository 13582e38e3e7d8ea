package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
)

// FallbackStore tries the primary store first and degrades to the string store.
// Values are kept in the secondary store as JSON text.
type FallbackStore struct {
	primary   ports.KeyValueStore
	secondary ports.StringStore
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*FallbackStore)(nil)

// NewFallbackStore creates a FallbackStore
func NewFallbackStore(primary ports.KeyValueStore, secondary ports.StringStore) *FallbackStore {
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
	}
}

// Get reads from the primary store. A primary error or miss consults the secondary,
// which holds values written while the primary was unavailable.
func (s *FallbackStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	found, primaryErr := s.primary.Get(ctx, key, dest)
	if primaryErr == nil && found {
		return true, nil
	}
	if primaryErr != nil {
		logging.Logger.Warn("Primary store read failed, using fallback", "key", key, "error", primaryErr)
	}

	raw, found, err := s.secondary.GetString(ctx, key)
	if err != nil {
		if primaryErr != nil {
			return false, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, errors.Join(primaryErr, err))
		}
		// Primary answered with a miss; the fallback is only a second chance
		logging.Logger.Debug("Fallback store read failed", "key", key, "error", err)
		return false, nil
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode fallback value for %s: %w", key, err)
	}
	return true, nil
}

// Set writes to the primary store, or to the secondary when the primary fails
func (s *FallbackStore) Set(ctx context.Context, key string, value any) error {
	primaryErr := s.primary.Set(ctx, key, value)
	if primaryErr == nil {
		return nil
	}
	logging.Logger.Warn("Primary store write failed, using fallback", "key", key, "error", primaryErr)

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.secondary.SetString(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, errors.Join(primaryErr, err))
	}
	return nil
}

// Delete removes the key from both stores. It fails only when both fail.
func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	secondaryErr := s.secondary.Delete(ctx, key)

	if primaryErr != nil && secondaryErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, errors.Join(primaryErr, secondaryErr))
	}
	if primaryErr != nil {
		logging.Logger.Warn("Primary store delete failed", "key", key, "error", primaryErr)
	}
	if secondaryErr != nil {
		logging.Logger.Debug("Fallback store delete failed", "key", key, "error", secondaryErr)
	}
	return nil
}
