package common

import "time"

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value any, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (any, bool)

	// GetJSON retrieves a value from cache and unmarshals it into dest
	// Returns true if found and decoded successfully
	GetJSON(key string, dest any) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// GetOrSet retrieves a value from cache, or loads it using the loader function if not found
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (any, error)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
