package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

func TestSaveEvent(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))

	require.NoError(t, SaveEvent(ctx, database, logger, "ana@example.com", "E1"))

	saved, err := database.SavedEvents(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Beach Cleanup", saved[0].Title)

	assert.ErrorIs(t, SaveEvent(ctx, database, logger, "ana@example.com", "E1"), ErrAlreadySaved)
	assert.ErrorIs(t, SaveEvent(ctx, database, logger, "ana@example.com", "missing"), ErrEventNotFound)
}

func TestSaveEvent_RefusedOnceActedUpon(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database,
		testEvent("E1", "Requested", 10),
		testEvent("E2", "Joined", 10),
	)
	seedPending(t, database, db.PendingVolunteer{
		ID:             "P1",
		EventID:        "E1",
		VolunteerEmail: "ana@example.com",
		Status:         db.PendingStatusPending,
	})
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E2"},
	})

	assert.ErrorIs(t, SaveEvent(ctx, database, logger, "ana@example.com", "E1"), ErrAlreadyRequested)
	assert.ErrorIs(t, SaveEvent(ctx, database, logger, "ana@example.com", "E2"), ErrAlreadyRegistered)
}

func TestUnsaveEvent(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	event := testEvent("E1", "Beach Cleanup", 10)
	seedEvents(t, database, event)
	require.NoError(t, database.SetSavedEvents(ctx, []db.Event{event}))

	require.NoError(t, UnsaveEvent(ctx, database, logger, "E1"))

	saved, err := database.SavedEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.ErrorIs(t, UnsaveEvent(ctx, database, logger, "E1"), ErrNotSaved)
}

func TestListSaved_PrunesActedUpon(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	kept := testEvent("E1", "Still Saved", 10)
	requested := testEvent("E2", "Requested", 10)
	joined := testEvent("E3", "Joined", 10)
	seedEvents(t, database, kept, requested, joined)
	require.NoError(t, database.SetSavedEvents(ctx, []db.Event{kept, requested, joined}))

	seedPending(t, database, db.PendingVolunteer{
		ID:             "P1",
		EventID:        "E2",
		VolunteerEmail: "ana@example.com",
		Status:         db.PendingStatusPending,
	})
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E3"},
	})

	listed, err := ListSaved(ctx, database, logger, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "E1", listed[0].ID)

	// The pruned list is written back.
	saved, err := database.SavedEvents(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "E1", saved[0].ID)
}

func TestListSaved_RejectedRequestKeepsBookmark(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	event := testEvent("E1", "Beach Cleanup", 10)
	seedEvents(t, database, event)
	require.NoError(t, database.SetSavedEvents(ctx, []db.Event{event}))
	seedPending(t, database, db.PendingVolunteer{
		ID:             "P1",
		EventID:        "E1",
		VolunteerEmail: "ana@example.com",
		Status:         db.PendingStatusRejected,
	})

	listed, err := ListSaved(ctx, database, logger, "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
