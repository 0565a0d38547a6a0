package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("key not found")

// Store is an asynchronous-in-spirit string-keyed value store. Values are
// opaque JSON documents; each key is owned by exactly one service. All
// application persistence goes through this interface so callers never
// branch on which backend answered.
type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Path returns the backing location (file path or connection target).
	Path() string
}
