package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

func TestWatch_FiresOnFirstReadAndOnChange(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))

	snapshots := make(chan Snapshot, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, database, logger, 10*time.Millisecond, func(s Snapshot) {
			snapshots <- s
		})
	}()

	// First read always fires.
	var first Snapshot
	select {
	case first = <-snapshots:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial snapshot")
	}
	require.Len(t, first.Events, 1)
	assert.Equal(t, "Beach Cleanup", first.Events[0].Title)

	// A write is noticed on a later tick, with derived counts applied.
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E1"},
	})

	var second Snapshot
	select {
	case second = <-snapshots:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the changed snapshot")
	}
	require.Len(t, second.Events, 1)
	assert.Equal(t, 1, second.Events[0].CurrentVolunteers)
	require.Len(t, second.Volunteers, 1)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on cancellation")
	}
}

func TestWatch_QuietWhenNothingChanges(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))

	fires := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, database, logger, 5*time.Millisecond, func(Snapshot) {
			fires <- struct{}{}
		})
	}()

	select {
	case <-fires:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial snapshot")
	}

	// Many ticks pass with identical state; none of them fire.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, fires)

	// An identical rewrite of the collection is also not a change.
	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, fires)

	cancel()
	<-done
}
