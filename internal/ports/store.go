package ports

import "context"

// KeyValueStore stores structured values under string keys
type KeyValueStore interface {
	// Get decodes the value stored under key into dest.
	// Returns false when the key is absent.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}

// StringStore is the reduced fallback store holding plain string values
type StringStore interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
