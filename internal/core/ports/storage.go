package ports

import "context"

// KeyValueStore is the persistence layer behind the session store: opaque
// string values under caller-chosen fixed keys.
type KeyValueStore interface {
	// Get returns ok=false when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}
