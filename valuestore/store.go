// Package valuestore keeps typed values in a provider.Provider. Each value is
// encoded with a codec.Codec and framed with a small versioned header, so a
// stored entry that fails to decode is detected and removed.
package valuestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/uacodec"
	"github.com/unkn0wn-root/uacodec/codec"
	"github.com/unkn0wn-root/uacodec/internal/wire"
	"github.com/unkn0wn-root/uacodec/provider"
)

const defaultTTL = 10 * time.Minute

var ErrEmptyKey = errors.New("valuestore: empty key")

type Store[V any] struct {
	ns             string
	provider       provider.Provider
	codec          codec.Codec[V]
	log            uacodec.Logger
	enabled        bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
	redact         func(string) string
}

func New[V any](opts Options[V]) (*Store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("valuestore: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("valuestore: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("valuestore: namespace is required")
	}

	s := &Store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		enabled:  !opts.Disabled,
	}
	s.log = coalesce[uacodec.Logger](opts.Logger, uacodec.NopLogger{})
	s.defaultTTL = coalesce(opts.DefaultTTL, defaultTTL)
	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}
	s.redact = opts.RedactKey
	if s.redact == nil {
		s.redact = func(k string) string { return k }
	}
	return s, nil
}

func (s *Store[V]) Enabled() bool { return s.enabled }

func (s *Store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *Store[V]) key(k string) string { return "uacodec:" + s.ns + ":" + k }

// Get returns (value, true, nil) on hit. Entries that fail to unframe or
// decode are deleted and reported as a miss.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	if key == "" {
		return zero, false, ErrEmptyKey
	}
	k := s.key(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	payload, err := wire.DecodeSingle(raw)
	if err != nil {
		s.heal(ctx, k, key, err)
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, key, err)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *Store[V]) heal(ctx context.Context, storageKey, key string, cause error) {
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.log.Warn("dropping corrupt entry failed", uacodec.Fields{"key": s.redact(key), "err": err})
		return
	}
	s.log.Debug("dropped corrupt entry", uacodec.Fields{"key": s.redact(key), "err": cause})
}

// Set stores value under key. ttl == 0 uses Options.DefaultTTL.
func (s *Store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("valuestore: encode %q: %w", key, err)
	}
	return s.setRaw(ctx, key, payload, ttl)
}

func (s *Store[V]) setRaw(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	raw, err := wire.EncodeSingle(payload)
	if err != nil {
		return fmt.Errorf("valuestore: frame %q: %w", key, err)
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	k := s.key(key)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Debug("set rejected by provider (pressure)", uacodec.Fields{"key": s.redact(key)})
	}
	return nil
}

func (s *Store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	return s.provider.Del(ctx, s.key(key))
}

// GetMany returns the values found and the keys that missed, in input order.
// A provider error or an empty key aborts the lookup.
func (s *Store[V]) GetMany(ctx context.Context, keys []string) (map[string]V, []string, error) {
	out := make(map[string]V, len(keys))
	var missing []string
	for _, k := range keys {
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			out[k] = v
		} else {
			missing = append(missing, k)
		}
	}
	return out, missing, nil
}

func (s *Store[V]) SetMany(ctx context.Context, items map[string]V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	for k, v := range items {
		if err := s.Set(ctx, k, v, ttl); err != nil {
			return err
		}
	}
	return nil
}

// Export packs the stored entries for keys into one blob. Keys that miss are
// skipped. The blob carries codec payloads, so Import needs a Store with the
// same codec.
func (s *Store[V]) Export(ctx context.Context, keys []string) ([]byte, error) {
	items := make([]wire.BulkItem, 0, len(keys))
	if s.enabled {
		for _, key := range keys {
			if key == "" {
				return nil, ErrEmptyKey
			}
			k := s.key(key)
			raw, ok, err := s.provider.Get(ctx, k)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			payload, err := wire.DecodeSingle(raw)
			if err != nil {
				s.heal(ctx, k, key, err)
				continue
			}
			items = append(items, wire.BulkItem{Key: key, Payload: payload})
		}
	}
	return wire.EncodeBulk(items)
}

// Import stores every entry of an Export blob and returns how many were
// written. Each payload is decoded first; the whole blob is rejected if any
// entry does not decode.
func (s *Store[V]) Import(ctx context.Context, blob []byte, ttl time.Duration) (int, error) {
	items, err := wire.DecodeBulk(blob)
	if err != nil {
		return 0, err
	}
	for _, it := range items {
		if _, err := s.codec.Decode(it.Payload); err != nil {
			return 0, fmt.Errorf("valuestore: import %q: %w", it.Key, err)
		}
	}
	if !s.enabled {
		return 0, nil
	}
	for i, it := range items {
		if err := s.setRaw(ctx, it.Key, it.Payload, ttl); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
