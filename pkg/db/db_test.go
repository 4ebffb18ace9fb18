package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/store"
)

func TestDB_EventsRoundTrip(t *testing.T) {
	kv := store.NewMemory()
	database := NewDB(kv, zap.NewNop())
	ctx := context.Background()

	events := []Event{
		{
			ID:                  "1747500000000",
			Title:               "Beach Cleanup",
			Date:                "2025-05-18",
			Time:                "08:00",
			Description:         "Join us to clean the local beach.",
			Location:            "Manila Bay",
			VolunteerCategories: []string{"Logistics & Planning"},
			Tags:                []string{"Environmental"},
			MaxVolunteers:       20,
		},
	}
	require.NoError(t, database.SetEvents(ctx, events))

	got, err := database.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestDB_MissingCollectionsAreEmpty(t *testing.T) {
	database := NewDB(store.NewMemory(), zap.NewNop())
	ctx := context.Background()

	events, err := database.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	volunteers, err := database.Volunteers(ctx)
	require.NoError(t, err)
	assert.Empty(t, volunteers)

	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDB_CorruptCollectionIsEmpty(t *testing.T) {
	kv := store.NewMemory()
	database := NewDB(kv, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyVolunteers, []byte("{{{")))

	volunteers, err := database.Volunteers(ctx)
	require.NoError(t, err)
	assert.Empty(t, volunteers)
}

func TestVolunteer_Membership(t *testing.T) {
	v := Volunteer{
		AssignedEvents: []string{"E1", "E2"},
		RemovedEvents:  []string{"E2"},
	}

	assert.True(t, v.IsAssigned("E1"))
	assert.True(t, v.IsAssigned("E2"))
	assert.False(t, v.IsAssigned("E3"))
	assert.False(t, v.IsRemoved("E1"))
	assert.True(t, v.IsRemoved("E2"))
}
