package db

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/store"
)

// DB provides typed access to the collections persisted in the key-value
// store. Every reader returns the whole collection and every writer
// replaces it; there is no per-record update.
type DB struct {
	kv     store.KV
	logger *zap.Logger
}

// NewDB creates a new database instance over the given store engine.
func NewDB(kv store.KV, logger *zap.Logger) *DB {
	return &DB{kv: kv, logger: logger}
}

// read decodes the collection under key. A corrupt payload is logged and
// treated as an empty collection; other storage errors propagate.
func read[T any](ctx context.Context, d *DB, key string) ([]T, error) {
	items, err := store.ReadCollection[T](ctx, d.kv, key)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			d.logger.Warn("discarding corrupt collection", zap.String("key", key), zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

func (d *DB) Events(ctx context.Context) ([]Event, error) {
	return read[Event](ctx, d, KeyEvents)
}

func (d *DB) SetEvents(ctx context.Context, events []Event) error {
	return store.WriteCollection(ctx, d.kv, KeyEvents, events)
}

func (d *DB) Volunteers(ctx context.Context) ([]Volunteer, error) {
	return read[Volunteer](ctx, d, KeyVolunteers)
}

func (d *DB) SetVolunteers(ctx context.Context, volunteers []Volunteer) error {
	return store.WriteCollection(ctx, d.kv, KeyVolunteers, volunteers)
}

func (d *DB) PendingVolunteers(ctx context.Context) ([]PendingVolunteer, error) {
	return read[PendingVolunteer](ctx, d, KeyPending)
}

func (d *DB) SetPendingVolunteers(ctx context.Context, pending []PendingVolunteer) error {
	return store.WriteCollection(ctx, d.kv, KeyPending, pending)
}

func (d *DB) Users(ctx context.Context) ([]User, error) {
	return read[User](ctx, d, KeyUsers)
}

func (d *DB) SetUsers(ctx context.Context, users []User) error {
	return store.WriteCollection(ctx, d.kv, KeyUsers, users)
}

func (d *DB) SavedEvents(ctx context.Context) ([]Event, error) {
	return read[Event](ctx, d, KeySavedEvents)
}

func (d *DB) SetSavedEvents(ctx context.Context, saved []Event) error {
	return store.WriteCollection(ctx, d.kv, KeySavedEvents, saved)
}
