package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set or has
// been deleted.
var ErrNotFound = errors.New("key not found")

// Store is the device-local persisted state: a string-keyed blob store with
// JSON-serialized values. Implementations must tolerate concurrent readers;
// writers are expected to be sequential (single UI-driven process).
type Store interface {
	// Get retrieves the value for a key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value for a key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
