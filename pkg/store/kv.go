// Package store provides the durable key-value collaborator consumed by
// the preference store. The core is storage-agnostic: any backend that
// satisfies KV works.
package store

// KV is the minimal durable key-value interface the core consumes.
type KV interface {
	// GetItem returns the value for key and whether it was present.
	GetItem(key string) (string, bool, error)
	// SetItem stores value under key, overwriting any previous value.
	SetItem(key, value string) error
	// Close releases the backend. Safe to call more than once.
	Close() error
}
