package valuestore

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/unkn0wn-root/uacodec"
	"github.com/unkn0wn-root/uacodec/codec"
	"github.com/unkn0wn-root/uacodec/provider"
)

// SetCostFunc computes the provider cost of one stored entry. key is the
// full storage key and raw the framed bytes handed to the provider.
type SetCostFunc func(key string, raw []byte) int64

type Options[V any] struct {
	Namespace string            // required; isolates keys as "uacodec:<ns>:<key>"
	Provider  provider.Provider // required
	Codec     codec.Codec[V]    // required

	Logger     uacodec.Logger // nil = NopLogger
	DefaultTTL time.Duration  // 0 = 10m
	Disabled   bool           // all reads miss, all writes are dropped

	// ComputeSetCost defaults to a cost of 1 per entry.
	ComputeSetCost SetCostFunc

	// RedactKey rewrites keys before they reach log fields. nil logs keys
	// verbatim; HashKey is a ready-made choice.
	RedactKey func(string) string
}

// HashKey returns the first 8 bytes of the SHA-256 of k, hex encoded.
func HashKey(k string) string {
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}
