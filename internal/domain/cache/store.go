package cache

import "context"

// Store is a minimal persistent key/value store holding raw bytes.
// Implementations live in the persistence layer (file, postgres, memory).
type Store interface {
	// Get returns found=false with a nil error when the key does not exist
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys
	Delete(ctx context.Context, key string) error
}
