package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

var (
	ErrAlreadySaved = errors.New("event already saved")
	ErrNotSaved     = errors.New("event not saved")
)

// SaveEvent bookmarks an event by storing a snapshot of it in the saved
// list. Saving is refused when the viewer already has a pending request or
// an active assignment, since saved means not yet acted upon.
func SaveEvent(ctx context.Context, database db.RegistrationStore, logger *zap.Logger, email, eventID string) error {
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

	status, err := statusForEmail(ctx, database, *event, email)
	if err != nil {
		return err
	}
	if status == StatusPending {
		return ErrAlreadyRequested
	}
	if status == StatusActive || status == StatusCancelled {
		return ErrAlreadyRegistered
	}

	saved, err := database.SavedEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch saved events: %w", err)
	}
	for _, e := range saved {
		if e.ID == eventID {
			return ErrAlreadySaved
		}
	}

	logger.Info("Saving event", zap.String("event_id", eventID), zap.String("email", email))

	if err := database.SetSavedEvents(ctx, append(saved, *event)); err != nil {
		return fmt.Errorf("failed to save saved events: %w", err)
	}
	return nil
}

// UnsaveEvent drops the bookmark.
func UnsaveEvent(ctx context.Context, database db.SavedEventStore, logger *zap.Logger, eventID string) error {
	saved, err := database.SavedEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch saved events: %w", err)
	}

	kept := saved[:0]
	found := false
	for _, e := range saved {
		if e.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotSaved
	}

	logger.Info("Unsaving event", zap.String("event_id", eventID))

	if err := database.SetSavedEvents(ctx, kept); err != nil {
		return fmt.Errorf("failed to save saved events: %w", err)
	}
	return nil
}

// ListSaved returns the viewer's saved snapshots, pruning any the viewer
// has since requested or been approved for. Pruned entries are written
// back so the stored list stays consistent with what is shown.
func ListSaved(ctx context.Context, database db.RegistrationStore, logger *zap.Logger, email string) ([]db.Event, error) {
	saved, err := database.SavedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved events: %w", err)
	}
	if len(saved) == 0 {
		return nil, nil
	}

	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}

	acted := make(map[string]bool)
	for _, p := range pending {
		if p.VolunteerEmail == email && p.Status != db.PendingStatusRejected {
			acted[p.EventID] = true
		}
	}
	for _, v := range volunteers {
		if v.Email != email {
			continue
		}
		for _, id := range v.AssignedEvents {
			acted[id] = true
		}
	}

	kept := make([]db.Event, 0, len(saved))
	for _, e := range saved {
		if acted[e.ID] {
			continue
		}
		kept = append(kept, e)
	}

	if len(kept) != len(saved) {
		logger.Debug("Pruning acted-upon saved events",
			zap.String("email", email),
			zap.Int("pruned", len(saved)-len(kept)))
		if err := database.SetSavedEvents(ctx, kept); err != nil {
			return nil, fmt.Errorf("failed to save saved events: %w", err)
		}
	}
	return kept, nil
}

// statusForEmail derives the registration status of email for event from
// the live collections.
func statusForEmail(ctx context.Context, database db.RegistrationStore, event db.Event, email string) (RegistrationStatus, error) {
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return StatusNone, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	pending, err := database.PendingVolunteers(ctx)
	if err != nil {
		return StatusNone, fmt.Errorf("failed to fetch pending requests: %w", err)
	}

	var viewer *db.Volunteer
	for i := range volunteers {
		if volunteers[i].Email == email {
			viewer = &volunteers[i]
			break
		}
	}
	return StatusFor(event, viewer, pending, email), nil
}
