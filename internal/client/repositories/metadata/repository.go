package metadata

import "context"

// Repository describes the generic key/value store backing session state.
type Repository interface {
	// Get returns the value for a key; absent keys return ("", false, nil).
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or replaces the value for a key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
