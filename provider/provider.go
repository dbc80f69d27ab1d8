// Package provider defines the byte stores that hold encoded uacodec values.
//
// A Provider must hand back from Get exactly the bytes given to Set for the
// same key. Stores that compress or otherwise transform values must undo it
// before returning them.
//
// Keys under "uacodec:<ns>:" belong to valuestore. Entries there that do not
// decode are treated as corrupt and removed.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by providers that refuse calls after Close.
var ErrClosed = errors.New("provider: closed")

// Provider is a minimal byte store with TTLs. Implementations must be safe
// for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// Transport or server failures come back as (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value for ttl. ttl <= 0 means no expiry where the store
	// supports it. cost may be ignored. ok=false means the store dropped the
	// write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error

	Close(ctx context.Context) error
}
