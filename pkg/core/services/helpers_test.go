package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
	"github.com/mdelacruz/volunteerhub/pkg/store"
)

// newTestDB returns a database over a fresh in-memory engine.
func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	return db.NewDB(store.NewMemory(), zap.NewNop())
}

func testEvent(id, title string, max int, categories ...string) db.Event {
	if len(categories) == 0 {
		categories = []string{"Logistics & Planning"}
	}
	return db.Event{
		ID:                  id,
		Title:               title,
		Date:                "2025-05-18",
		Time:                "08:00",
		Description:         "desc",
		Location:            "Manila Bay",
		VolunteerCategories: categories,
		Tags:                []string{"Environmental"},
		MaxVolunteers:       max,
	}
}

func seedEvents(t *testing.T, database db.EventStore, events ...db.Event) {
	t.Helper()
	require.NoError(t, database.SetEvents(context.Background(), events))
}

func seedVolunteers(t *testing.T, database db.VolunteerStore, volunteers ...db.Volunteer) {
	t.Helper()
	require.NoError(t, database.SetVolunteers(context.Background(), volunteers))
}

func seedPending(t *testing.T, database db.PendingStore, pending ...db.PendingVolunteer) {
	t.Helper()
	require.NoError(t, database.SetPendingVolunteers(context.Background(), pending))
}

// failingDB wraps a real database and injects write failures.
type failingDB struct {
	*db.DB
	setVolunteersErr error
	setPendingErr    error
}

func (f *failingDB) SetVolunteers(ctx context.Context, volunteers []db.Volunteer) error {
	if f.setVolunteersErr != nil {
		return f.setVolunteersErr
	}
	return f.DB.SetVolunteers(ctx, volunteers)
}

func (f *failingDB) SetPendingVolunteers(ctx context.Context, pending []db.PendingVolunteer) error {
	if f.setPendingErr != nil {
		return f.setPendingErr
	}
	return f.DB.SetPendingVolunteers(ctx, pending)
}
