package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

func TestRequestRegistration(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))

	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)
	require.NotNil(t, request)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, "E1", request.EventID)
	assert.Equal(t, "Beach Cleanup", request.EventTitle)
	assert.Equal(t, "Ana Cruz", request.VolunteerName)
	assert.Equal(t, "ana@example.com", request.VolunteerEmail)
	assert.Equal(t, db.PendingStatusPending, request.Status)
	assert.Equal(t, "Logistics & Planning", request.Position)
	assert.NotZero(t, request.Timestamp)

	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestRequestRegistration_DuplicatePending(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	_, err = RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	assert.ErrorIs(t, err, ErrAlreadyRequested)

	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1, "duplicate request must not insert a second row")
}

func TestRequestRegistration_FullEvent(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 1))
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ben@example.com",
		AssignedEvents: []string{"E1"},
		Status:         "active",
	})

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	assert.ErrorIs(t, err, ErrEventFull)
}

func TestRequestRegistration_RemovedVolunteersOpenSlots(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 1))
	// Assigned but removed: does not count toward capacity.
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ben@example.com",
		AssignedEvents: []string{"E1"},
		RemovedEvents:  []string{"E1"},
		Status:         "active",
	})

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	assert.NoError(t, err)
}

func TestRequestRegistration_CanceledEvent(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	event := testEvent("E1", "Beach Cleanup", 10)
	event.Canceled = true
	seedEvents(t, database, event)

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	assert.ErrorIs(t, err, ErrEventCanceled)
}

func TestRequestRegistration_InvalidPosition(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10, "Logistics & Planning"))

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Finance & Budgeting")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestRequestRegistration_AlreadyActive(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E1"},
		Status:         "active",
	})

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRequestRegistration_AllowedAfterRemoval(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E1"},
		RemovedEvents:  []string{"E1"},
		Status:         "active",
	})

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	assert.NoError(t, err)
}

func TestRequestRegistration_PrunesSavedSnapshot(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	event := testEvent("E1", "Beach Cleanup", 10)
	seedEvents(t, database, event)
	require.NoError(t, database.SetSavedEvents(ctx, []db.Event{event}))

	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	saved, err := database.SavedEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved, "requesting must prune the bookmark")
}

func TestApproveRequest_CreatesVolunteer(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	volunteer, err := ApproveRequest(ctx, database, logger, request.ID)
	require.NoError(t, err)
	require.NotNil(t, volunteer)

	assert.Equal(t, "ana@example.com", volunteer.Email)
	assert.Equal(t, []string{"E1"}, volunteer.AssignedEvents)
	assert.Equal(t, "Logistics & Planning", volunteer.Positions["E1"])
	assert.Equal(t, "active", volunteer.Status)

	// The request row is retained as a terminal marker.
	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, db.PendingStatusApproved, pending[0].Status)
}

func TestApproveRequest_AppendsToExistingVolunteer(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database,
		testEvent("E1", "Beach Cleanup", 10),
		testEvent("E2", "Food Drive", 10),
	)
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Name:           "Ana Cruz",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E1"},
		Status:         "active",
		Positions:      map[string]string{"E1": "Logistics & Planning"},
	})

	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E2", "Logistics & Planning")
	require.NoError(t, err)

	volunteer, err := ApproveRequest(ctx, database, logger, request.ID)
	require.NoError(t, err)

	assert.Equal(t, "V1", volunteer.ID)
	assert.Equal(t, []string{"E1", "E2"}, volunteer.AssignedEvents)

	volunteers, err := database.Volunteers(ctx)
	require.NoError(t, err)
	assert.Len(t, volunteers, 1, "approval must not create a second record for the same email")
}

func TestApproveRequest_Idempotent(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	_, err = ApproveRequest(ctx, database, logger, request.ID)
	require.NoError(t, err)
	volunteer, err := ApproveRequest(ctx, database, logger, request.ID)
	require.NoError(t, err)

	occurrences := 0
	for _, id := range volunteer.AssignedEvents {
		if id == "E1" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "double approval must not duplicate the assignment")

	volunteers, err := database.Volunteers(ctx)
	require.NoError(t, err)
	assert.Len(t, volunteers, 1)
}

func TestApproveRequest_RejectedRow(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedPending(t, database, db.PendingVolunteer{
		ID:             "P1",
		EventID:        "E1",
		VolunteerEmail: "ana@example.com",
		Status:         db.PendingStatusRejected,
	})

	_, err := ApproveRequest(ctx, database, logger, "P1")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestApproveRequest_NotFound(t *testing.T) {
	database := newTestDB(t)

	_, err := ApproveRequest(context.Background(), database, zap.NewNop(), "missing")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestApproveRequest_RestoresRemovedVolunteer(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E1"},
		RemovedEvents:  []string{"E1"},
		Status:         "active",
	})

	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	volunteer, err := ApproveRequest(ctx, database, logger, request.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"E1"}, volunteer.AssignedEvents, "no duplicate assignment on re-join")
	assert.Empty(t, volunteer.RemovedEvents, "re-approval clears the removal")
	assert.Equal(t, "Logistics & Planning", volunteer.Positions["E1"])
}

func TestApproveRequest_VolunteerWriteFailure(t *testing.T) {
	inner := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, inner, testEvent("E1", "Beach Cleanup", 10))
	request, err := RequestRegistration(ctx, inner, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	database := &failingDB{DB: inner, setVolunteersErr: errors.New("disk full")}

	_, err = ApproveRequest(ctx, database, logger, request.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRejectRequest(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	require.NoError(t, RejectRequest(ctx, database, logger, request.ID))

	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, db.PendingStatusRejected, pending[0].Status)

	// No volunteer record appears.
	volunteers, err := database.Volunteers(ctx)
	require.NoError(t, err)
	assert.Empty(t, volunteers)

	// Rejecting again is a no-op; rejecting an approved row is refused.
	assert.NoError(t, RejectRequest(ctx, database, logger, request.ID))
}

func TestRejectRequest_ApprovedRow(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)
	_, err = ApproveRequest(ctx, database, logger, request.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, RejectRequest(ctx, database, logger, request.ID), ErrNotPending)
}

func TestCancelRequest(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))
	_, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	require.NoError(t, CancelRequest(ctx, database, logger, "ana@example.com", "E1"))

	// Unlike an admin rejection, the row is gone.
	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, CancelRequest(ctx, database, logger, "ana@example.com", "E1"), ErrRequestNotFound)
}

func TestChangePosition_ActiveAssignment(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10, "Logistics & Planning", "Finance & Budgeting"))
	seedVolunteers(t, database, db.Volunteer{
		ID:             "V1",
		Email:          "ana@example.com",
		AssignedEvents: []string{"E1"},
		Status:         "active",
		Positions:      map[string]string{"E1": "Logistics & Planning"},
	})

	require.NoError(t, ChangePosition(ctx, database, logger, "ana@example.com", "E1", "Finance & Budgeting"))

	volunteers, err := database.Volunteers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Finance & Budgeting", volunteers[0].Positions["E1"])
}

func TestChangePosition_PendingRow(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10, "Logistics & Planning", "Finance & Budgeting"))
	request, err := RequestRegistration(ctx, database, logger, "ana@example.com", "Ana Cruz", "E1", "Logistics & Planning")
	require.NoError(t, err)

	require.NoError(t, ChangePosition(ctx, database, logger, "ana@example.com", "E1", "Finance & Budgeting"))

	pending, err := database.PendingVolunteers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, request.ID, pending[0].ID)
	assert.Equal(t, "Finance & Budgeting", pending[0].Position)
}

func TestChangePosition_InvalidPosition(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10, "Logistics & Planning"))

	err := ChangePosition(ctx, database, logger, "ana@example.com", "E1", "Safety & Security")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestChangePosition_NoRegistration(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedEvents(t, database, testEvent("E1", "Beach Cleanup", 10))

	err := ChangePosition(ctx, database, logger, "ana@example.com", "E1", "Logistics & Planning")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListPending_NewestFirst(t *testing.T) {
	database := newTestDB(t)
	logger := zap.NewNop()
	ctx := context.Background()

	seedPending(t, database,
		db.PendingVolunteer{ID: "P1", Timestamp: 100, Status: db.PendingStatusPending},
		db.PendingVolunteer{ID: "P2", Timestamp: 300, Status: db.PendingStatusPending},
		db.PendingVolunteer{ID: "P3", Timestamp: 200, Status: db.PendingStatusApproved},
	)

	pending, err := ListPending(ctx, database, logger)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, []string{"P2", "P3", "P1"}, []string{pending[0].ID, pending[1].ID, pending[2].ID})
}
