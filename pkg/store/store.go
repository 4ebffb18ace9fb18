package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt marks a stored value that could not be decoded as JSON.
// Callers generally treat a corrupt collection as empty rather than fatal.
var ErrCorrupt = errors.New("corrupt stored value")

// KV is the boundary to the device key-value store. Each key holds one
// JSON-encoded collection; writes replace the whole value (last write wins).
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ReadCollection decodes the JSON array stored under key.
// A missing key yields an empty slice.
func ReadCollection[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", key, ErrCorrupt)
	}
	return items, nil
}

// WriteCollection encodes items as a JSON array and stores it under key,
// replacing whatever was there.
func WriteCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
