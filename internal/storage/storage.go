// Package storage defines the key-value persistence primitive the
// repository writes through. All durable I/O goes through this interface.
// The repository never touches a storage backend directly.
package storage

// KV is a minimal get/set-by-key store over byte blobs.
type KV interface {
	// Get returns the value stored under key, or (nil, nil) if the key
	// has never been written.
	Get(key string) ([]byte, error)

	// Put writes value under key, overwriting any prior value.
	Put(key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}
