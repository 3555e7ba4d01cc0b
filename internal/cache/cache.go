// Package cache stores successful extraction responses so that asking twice for the
// same video, subtitle type and format does not hit the backend again.
// Providers register themselves by name; see New.
package cache

// EvictCallback is called when an entry is evicted from the cache.
// The Redis provider passes a nil value since fetching it would cost another roundtrip.
type EvictCallback func(key string, value []byte)

// Logger receives errors that cache operations cannot return to their caller.
type Logger interface {
	Error(msg string, err error)
}

// Cache is a size bounded key-value store with per-entry TTL.
type Cache interface {
	// Get returns the value stored under key, or nil and false on a miss.
	Get(key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)

	// Len returns the number of live entries.
	Len() int

	// Close releases connections held by the provider.
	Close() error
}
