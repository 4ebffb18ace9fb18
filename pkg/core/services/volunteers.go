package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

var (
	ErrVolunteerNotFound = errors.New("volunteer not found")
	ErrNotRegistered     = errors.New("no registration for this event")
)

// RegistrationStatus is the derived state of a (volunteer, event) pair.
// There is no stored status field; it is computed from the three
// collections.
type RegistrationStatus string

const (
	StatusNone      RegistrationStatus = "none"
	StatusPending   RegistrationStatus = "pending"
	StatusActive    RegistrationStatus = "active"
	StatusRemoved   RegistrationStatus = "removed"
	StatusCancelled RegistrationStatus = "cancelled"
)

// StatusFor derives the registration status of email for event. volunteer
// may be nil when no volunteer record exists for the email.
func StatusFor(event db.Event, volunteer *db.Volunteer, pending []db.PendingVolunteer, email string) RegistrationStatus {
	if volunteer != nil && volunteer.IsAssigned(event.ID) {
		switch {
		case volunteer.IsRemoved(event.ID):
			return StatusRemoved
		case event.Canceled:
			return StatusCancelled
		default:
			return StatusActive
		}
	}
	for _, p := range pending {
		if p.VolunteerEmail == email && p.EventID == event.ID && p.Status == db.PendingStatusPending {
			return StatusPending
		}
	}
	return StatusNone
}

// RemoveFromEvent is the admin action that forcibly removes a volunteer
// from an event. The event id is recorded in RemovedEvents and the chosen
// position is dropped; AssignedEvents is left unchanged so the removal
// stays distinguishable from never having joined.
func RemoveFromEvent(ctx context.Context, database db.VolunteerStore, logger *zap.Logger, volunteerID, eventID string) error {
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	for i := range volunteers {
		v := &volunteers[i]
		if v.ID != volunteerID {
			continue
		}
		if !v.IsAssigned(eventID) {
			return ErrNotRegistered
		}
		if !v.IsRemoved(eventID) {
			v.RemovedEvents = append(v.RemovedEvents, eventID)
		}
		delete(v.Positions, eventID)

		logger.Info("Removing volunteer from event",
			zap.String("volunteer_id", volunteerID),
			zap.String("event_id", eventID))

		if err := database.SetVolunteers(ctx, volunteers); err != nil {
			return fmt.Errorf("failed to save volunteers: %w", err)
		}
		return nil
	}
	return ErrVolunteerNotFound
}

// Withdraw is the volunteer's own exit from an approved event: the
// assignment and position are deleted outright, leaving no removal record.
func Withdraw(ctx context.Context, database db.VolunteerStore, logger *zap.Logger, email, eventID string) error {
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	for i := range volunteers {
		v := &volunteers[i]
		if v.Email != email {
			continue
		}
		if !v.IsAssigned(eventID) {
			return ErrNotRegistered
		}
		kept := v.AssignedEvents[:0]
		for _, id := range v.AssignedEvents {
			if id != eventID {
				kept = append(kept, id)
			}
		}
		v.AssignedEvents = kept
		delete(v.Positions, eventID)

		logger.Info("Withdrawing from event",
			zap.String("email", email),
			zap.String("event_id", eventID))

		if err := database.SetVolunteers(ctx, volunteers); err != nil {
			return fmt.Errorf("failed to save volunteers: %w", err)
		}
		return nil
	}
	return ErrVolunteerNotFound
}

// ListVolunteers returns the volunteer collection as stored.
func ListVolunteers(ctx context.Context, database db.VolunteerStore, logger *zap.Logger) ([]db.Volunteer, error) {
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	logger.Debug("Listed volunteers", zap.Int("count", len(volunteers)))
	return volunteers, nil
}

// RegisteredEvent is one entry in a volunteer's own event listing.
type RegisteredEvent struct {
	Event    db.Event
	Position string
	Status   RegistrationStatus
}

// MyEventsResult groups the viewer's events by derived status.
type MyEventsResult struct {
	Active    []RegisteredEvent
	Pending   []RegisteredEvent
	Removed   []RegisteredEvent
	Cancelled []RegisteredEvent
}

// MyEvents classifies every event the viewer has touched: active, pending,
// removed, and cancelled groups, with the chosen position for each.
// Pending entries are ordered newest request first.
func MyEvents(ctx context.Context, database db.RegistrationStore, logger *zap.Logger, email string) (*MyEventsResult, error) {
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

	var viewer *db.Volunteer
	for i := range volunteers {
		if volunteers[i].Email == email {
			viewer = &volunteers[i]
			break
		}
	}

	byID := make(map[string]db.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	result := &MyEventsResult{}

	if viewer != nil {
		for _, id := range viewer.AssignedEvents {
			event, ok := byID[id]
			if !ok {
				continue
			}
			entry := RegisteredEvent{
				Event:    withDerived(event, volunteers),
				Position: viewer.Positions[id],
				Status:   StatusFor(event, viewer, pending, email),
			}
			switch entry.Status {
			case StatusRemoved:
				result.Removed = append(result.Removed, entry)
			case StatusCancelled:
				result.Cancelled = append(result.Cancelled, entry)
			default:
				result.Active = append(result.Active, entry)
			}
		}
	}

	sorted := make([]db.PendingVolunteer, len(pending))
	copy(sorted, pending)
	sortPendingNewestFirst(sorted)
	for _, p := range sorted {
		if p.VolunteerEmail != email || p.Status != db.PendingStatusPending {
			continue
		}
		event, ok := byID[p.EventID]
		if !ok {
			continue
		}
		result.Pending = append(result.Pending, RegisteredEvent{
			Event:    withDerived(event, volunteers),
			Position: p.Position,
			Status:   StatusPending,
		})
	}

	logger.Debug("Classified registered events",
		zap.String("email", email),
		zap.Int("active", len(result.Active)),
		zap.Int("pending", len(result.Pending)),
		zap.Int("removed", len(result.Removed)),
		zap.Int("cancelled", len(result.Cancelled)))

	return result, nil
}
