package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

// DefaultPollInterval matches the refresh cadence the screens originally
// polled at.
const DefaultPollInterval = 2 * time.Second

// Snapshot is one full read of the store, with derived volunteer counts
// applied to the catalog.
type Snapshot struct {
	Events      []db.Event            `json:"events"`
	Volunteers  []db.Volunteer        `json:"volunteers"`
	Pending     []db.PendingVolunteer `json:"pendingVolunteers"`
	Users       []db.User             `json:"users"`
	SavedEvents []db.Event            `json:"savedEvents"`
}

// Watch re-reads every collection on a fixed interval and invokes fn with a
// fresh snapshot whenever the encoded state differs from the previous read.
// The first successful read always fires. There is no push mechanism in the
// store, so this dirty-checked poll is the change feed. Watch returns when
// ctx is done.
func Watch(ctx context.Context, database db.Database, logger *zap.Logger, interval time.Duration, fn func(Snapshot)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	logger.Info("Watching store", zap.Duration("interval", interval))

	var last []byte
	poll := func() {
		snap, err := loadSnapshot(ctx, database)
		if err != nil {
			// A failed read is recovered on the next tick.
			logger.Warn("Snapshot read failed", zap.Error(err))
			return
		}
		encoded, err := json.Marshal(snap)
		if err != nil {
			logger.Warn("Snapshot encode failed", zap.Error(err))
			return
		}
		if bytes.Equal(encoded, last) {
			return
		}
		last = encoded
		fn(*snap)
	}

	poll()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return ctx.Err()
		case <-ticker.C:
			poll()
		}
	}
}

func loadSnapshot(ctx context.Context, database db.Database) (*Snapshot, error) {
	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}
	users, err := database.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	saved, err := database.SavedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved events: %w", err)
	}

	snap := &Snapshot{
		Events:      make([]db.Event, 0, len(events)),
		Volunteers:  volunteers,
		Pending:     pending,
		Users:       users,
		SavedEvents: saved,
	}
	for _, e := range events {
		snap.Events = append(snap.Events, withDerived(e, volunteers))
	}
	return snap, nil
}
