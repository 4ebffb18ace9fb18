package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

var (
	ErrInvalidPosition   = errors.New("position is not offered by this event")
	ErrAlreadyRequested  = errors.New("registration already requested")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrRequestNotFound   = errors.New("pending request not found")
	ErrNotPending        = errors.New("request is not pending")
)

// RequestRegistration records a volunteer's intent to join an event. The
// request is refused when the event is canceled or full, when the position
// is not one of the event's categories, or when the volunteer already has a
// pending request or an active assignment for the event.
func RequestRegistration(ctx context.Context, database db.RegistrationStore, logger *zap.Logger, email, name, eventID, position string) (*db.PendingVolunteer, error) {
	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	var event *db.Event
	for i := range events {
		if events[i].ID == eventID {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.Canceled {
		return nil, ErrEventCanceled
	}
	if !event.HasCategory(position) {
		return nil, ErrInvalidPosition
	}

	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	if IsFull(withDerived(*event, volunteers)) {
		return nil, ErrEventFull
	}
	for _, v := range volunteers {
		if v.Email == email && v.IsAssigned(eventID) && !v.IsRemoved(eventID) {
			return nil, ErrAlreadyRegistered
		}
	}

	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}
	for _, p := range pending {
		if p.VolunteerEmail == email && p.EventID == eventID && p.Status == db.PendingStatusPending {
			return nil, ErrAlreadyRequested
		}
	}

	request := db.PendingVolunteer{
		ID:             uuid.New().String(),
		EventID:        eventID,
		EventTitle:     event.Title,
		VolunteerName:  name,
		VolunteerEmail: email,
		Status:         db.PendingStatusPending,
		Timestamp:      time.Now().UnixMilli(),
		Position:       position,
	}

	logger.Info("Requesting registration",
		zap.String("request_id", request.ID),
		zap.String("event_id", eventID),
		zap.String("email", email),
		zap.String("position", position))

	if err := database.SetPendingVolunteers(ctx, append(pending, request)); err != nil {
		return nil, fmt.Errorf("failed to save pending requests: %w", err)
	}

	// Saved implies not yet acted upon, so acting prunes the bookmark.
	if err := pruneSaved(ctx, database, eventID); err != nil {
		return nil, err
	}
	return &request, nil
}

// ApproveRequest turns a pending request into a volunteer assignment. The
// request row is marked approved and retained. Approving an
// already-approved request changes nothing; the assignment append is
// membership-guarded, so a double approval can never produce a duplicate.
func ApproveRequest(ctx context.Context, database db.RegistrationStore, logger *zap.Logger, requestID string) (*db.Volunteer, error) {
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}

	var request *db.PendingVolunteer
	for i := range pending {
		if pending[i].ID == requestID {
			request = &pending[i]
			break
		}
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.Status == db.PendingStatusRejected {
		return nil, ErrNotPending
	}
	request.Status = db.PendingStatusApproved

	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	var assigned *db.Volunteer
	for i := range volunteers {
		if volunteers[i].Email != request.VolunteerEmail {
			continue
		}
		v := &volunteers[i]
		if !v.IsAssigned(request.EventID) {
			v.AssignedEvents = append(v.AssignedEvents, request.EventID)
		}
		// A removed volunteer re-joins through a fresh approval.
		if v.IsRemoved(request.EventID) {
			kept := v.RemovedEvents[:0]
			for _, id := range v.RemovedEvents {
				if id != request.EventID {
					kept = append(kept, id)
				}
			}
			v.RemovedEvents = kept
		}
		if v.Positions == nil {
			v.Positions = make(map[string]string)
		}
		v.Positions[request.EventID] = request.Position
		assigned = v
		break
	}
	if assigned == nil {
		volunteers = append(volunteers, db.Volunteer{
			ID:             uuid.New().String(),
			Name:           request.VolunteerName,
			Email:          request.VolunteerEmail,
			AssignedEvents: []string{request.EventID},
			Status:         "active",
			Positions:      map[string]string{request.EventID: request.Position},
		})
		assigned = &volunteers[len(volunteers)-1]
	}

	logger.Info("Approving registration",
		zap.String("request_id", requestID),
		zap.String("event_id", request.EventID),
		zap.String("email", request.VolunteerEmail))

	if err := database.SetPendingVolunteers(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to save pending requests: %w", err)
	}
	if err := database.SetVolunteers(ctx, volunteers); err != nil {
		return nil, fmt.Errorf("failed to save volunteers: %w", err)
	}
	if err := pruneSaved(ctx, database, request.EventID); err != nil {
		return nil, err
	}

	result := *assigned
	return &result, nil
}

// RejectRequest marks a pending request rejected, in place. Nothing else
// changes. Rejecting an approved request is refused.
func RejectRequest(ctx context.Context, database db.PendingStore, logger *zap.Logger, requestID string) error {
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch pending requests: %w", err)
	}

	for i := range pending {
		if pending[i].ID != requestID {
			continue
		}
		switch pending[i].Status {
		case db.PendingStatusApproved:
			return ErrNotPending
		case db.PendingStatusRejected:
			return nil
		}
		pending[i].Status = db.PendingStatusRejected

		logger.Info("Rejecting registration",
			zap.String("request_id", requestID),
			zap.String("event_id", pending[i].EventID),
			zap.String("email", pending[i].VolunteerEmail))

		if err := database.SetPendingVolunteers(ctx, pending); err != nil {
			return fmt.Errorf("failed to save pending requests: %w", err)
		}
		return nil
	}
	return ErrRequestNotFound
}

// CancelRequest deletes the volunteer's own pending request outright,
// unlike an admin rejection which retains the row.
func CancelRequest(ctx context.Context, database db.PendingStore, logger *zap.Logger, email, eventID string) error {
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch pending requests: %w", err)
	}

	kept := pending[:0]
	found := false
	for _, p := range pending {
		if p.VolunteerEmail == email && p.EventID == eventID && p.Status == db.PendingStatusPending {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrRequestNotFound
	}

	logger.Info("Canceling registration request",
		zap.String("event_id", eventID),
		zap.String("email", email))

	if err := database.SetPendingVolunteers(ctx, kept); err != nil {
		return fmt.Errorf("failed to save pending requests: %w", err)
	}
	return nil
}

// ChangePosition overwrites the chosen role for an active assignment, or
// for a pending request when no active assignment exists. No history is
// kept.
func ChangePosition(ctx context.Context, database db.RegistrationStore, logger *zap.Logger, email, eventID, position string) error {
	events, err := database.Events(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}
	var event *db.Event
	for i := range events {
		if events[i].ID == eventID {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return ErrEventNotFound
	}
	if !event.HasCategory(position) {
		return ErrInvalidPosition
	}

	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	for i := range volunteers {
		v := &volunteers[i]
		if v.Email != email || !v.IsAssigned(eventID) || v.IsRemoved(eventID) {
			continue
		}
		if v.Positions == nil {
			v.Positions = make(map[string]string)
		}
		v.Positions[eventID] = position

		logger.Info("Changing position",
			zap.String("event_id", eventID),
			zap.String("email", email),
			zap.String("position", position))

		if err := database.SetVolunteers(ctx, volunteers); err != nil {
			return fmt.Errorf("failed to save volunteers: %w", err)
		}
		return nil
	}

	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch pending requests: %w", err)
	}
	for i := range pending {
		p := &pending[i]
		if p.VolunteerEmail != email || p.EventID != eventID || p.Status != db.PendingStatusPending {
			continue
		}
		p.Position = position

		logger.Info("Changing requested position",
			zap.String("request_id", p.ID),
			zap.String("event_id", eventID),
			zap.String("email", email),
			zap.String("position", position))

		if err := database.SetPendingVolunteers(ctx, pending); err != nil {
			return fmt.Errorf("failed to save pending requests: %w", err)
		}
		return nil
	}

	return ErrRequestNotFound
}

// ListPending returns registration requests newest first.
func ListPending(ctx context.Context, database db.PendingStore, logger *zap.Logger) ([]db.PendingVolunteer, error) {
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}

	out := make([]db.PendingVolunteer, len(pending))
	copy(out, pending)
	sortPendingNewestFirst(out)

	logger.Debug("Listed pending requests", zap.Int("count", len(out)))
	return out, nil
}

func sortPendingNewestFirst(pending []db.PendingVolunteer) {
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Timestamp > pending[j].Timestamp
	})
}

// pruneSaved drops the event's snapshot from the saved list once the
// viewer has acted on it.
func pruneSaved(ctx context.Context, database db.SavedEventStore, eventID string) error {
	saved, err := database.SavedEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch saved events: %w", err)
	}
	kept := saved[:0]
	changed := false
	for _, e := range saved {
		if e.ID == eventID {
			changed = true
			continue
		}
		kept = append(kept, e)
	}
	if !changed {
		return nil
	}
	if err := database.SetSavedEvents(ctx, kept); err != nil {
		return fmt.Errorf("failed to save saved events: %w", err)
	}
	return nil
}
