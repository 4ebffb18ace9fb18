package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventCanceled = errors.New("event is canceled")
	ErrEventFull     = errors.New("event has no open slots")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// EventInput carries the admin-entered fields for creating or editing an
// event. Every field the original form required is required here too.
type EventInput struct {
	Title               string   `validate:"required"`
	Date                string   `validate:"required"`
	Time                string   `validate:"required"`
	Description         string   `validate:"required"`
	Location            string   `validate:"required"`
	LocationCoordinates *db.Coordinates
	CoverPhoto          string
	VolunteerCategories []string `validate:"min=1,dive,required"`
	Tags                []string `validate:"min=1,dive,required"`
	MaxVolunteers       int      `validate:"gt=0"`
}

// currentVolunteerCount counts volunteers assigned to the event, excluding
// anyone an admin has since removed. Removal exclusion is applied here so
// every view agrees on the count.
func currentVolunteerCount(eventID string, volunteers []db.Volunteer) int {
	count := 0
	for _, v := range volunteers {
		if v.IsAssigned(eventID) && !v.IsRemoved(eventID) {
			count++
		}
	}
	return count
}

// withDerived returns a copy of the event with CurrentVolunteers computed
// from the volunteer collection.
func withDerived(event db.Event, volunteers []db.Volunteer) db.Event {
	event.CurrentVolunteers = currentVolunteerCount(event.ID, volunteers)
	return event
}

// IsFull reports whether the event's capacity is reached. A canceled event
// is never full.
func IsFull(event db.Event) bool {
	return !event.Canceled && event.MaxVolunteers > 0 && event.CurrentVolunteers >= event.MaxVolunteers
}

// sortNewestFirst orders events by id descending. Ids are creation
// timestamps, so this is newest-first creation order.
func sortNewestFirst(events []db.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, errA := strconv.ParseInt(events[i].ID, 10, 64)
		b, errB := strconv.ParseInt(events[j].ID, 10, 64)
		if errA != nil || errB != nil {
			return events[i].ID > events[j].ID
		}
		return a > b
	})
}

// CreateEvent validates the input and appends a new event to the catalog.
func CreateEvent(ctx context.Context, database db.EventStore, logger *zap.Logger, input EventInput) (*db.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}

	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	event := db.Event{
		ID:                  strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:               input.Title,
		Date:                input.Date,
		Time:                input.Time,
		Description:         input.Description,
		Location:            input.Location,
		LocationCoordinates: input.LocationCoordinates,
		CoverPhoto:          input.CoverPhoto,
		VolunteerCategories: input.VolunteerCategories,
		Tags:                input.Tags,
		MaxVolunteers:       input.MaxVolunteers,
	}

	logger.Info("Creating event",
		zap.String("event_id", event.ID),
		zap.String("title", event.Title),
		zap.Int("max_volunteers", event.MaxVolunteers))

	if err := database.SetEvents(ctx, append(events, event)); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}
	return &event, nil
}

// UpdateEvent validates the input and overwrites the stored fields of the
// event in place. The canceled flag is untouched.
func UpdateEvent(ctx context.Context, database db.EventStore, logger *zap.Logger, eventID string, input EventInput) (*db.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}

	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var updated *db.Event
	for i := range events {
		if events[i].ID != eventID {
			continue
		}
		events[i].Title = input.Title
		events[i].Date = input.Date
		events[i].Time = input.Time
		events[i].Description = input.Description
		events[i].Location = input.Location
		events[i].LocationCoordinates = input.LocationCoordinates
		events[i].CoverPhoto = input.CoverPhoto
		events[i].VolunteerCategories = input.VolunteerCategories
		events[i].Tags = input.Tags
		events[i].MaxVolunteers = input.MaxVolunteers
		updated = &events[i]
		break
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}

	logger.Info("Updating event", zap.String("event_id", eventID), zap.String("title", input.Title))

	if err := database.SetEvents(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}
	return updated, nil
}

// CancelEvent sets the event's canceled flag. Volunteer and pending records
// are untouched; cancelled status is derived at read time.
func CancelEvent(ctx context.Context, database db.EventStore, logger *zap.Logger, eventID string) error {
	events, err := database.Events(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	found := false
	for i := range events {
		if events[i].ID == eventID {
			events[i].Canceled = true
			found = true
			break
		}
	}
	if !found {
		return ErrEventNotFound
	}

	logger.Info("Canceling event", zap.String("event_id", eventID))

	if err := database.SetEvents(ctx, events); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

// DeleteEvent removes the event from the catalog and cascades the id out of
// the saved-event snapshots. Volunteer assignments and pending rows keep
// their (now dangling) references.
func DeleteEvent(ctx context.Context, database db.CatalogStore, logger *zap.Logger, eventID string) error {
	events, err := database.Events(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	kept := events[:0]
	found := false
	for _, e := range events {
		if e.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEventNotFound
	}

	logger.Info("Deleting event", zap.String("event_id", eventID))

	if err := database.SetEvents(ctx, kept); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}

	saved, err := database.SavedEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch saved events: %w", err)
	}
	keptSaved := saved[:0]
	changed := false
	for _, e := range saved {
		if e.ID == eventID {
			changed = true
			continue
		}
		keptSaved = append(keptSaved, e)
	}
	if changed {
		if err := database.SetSavedEvents(ctx, keptSaved); err != nil {
			return fmt.Errorf("failed to save saved events: %w", err)
		}
	}
	return nil
}

// ListEvents returns the catalog newest first with derived volunteer counts.
func ListEvents(ctx context.Context, database db.CatalogStore, logger *zap.Logger) ([]db.Event, error) {
	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	out := make([]db.Event, 0, len(events))
	for _, e := range events {
		out = append(out, withDerived(e, volunteers))
	}
	sortNewestFirst(out)

	logger.Debug("Listed events", zap.Int("count", len(out)))
	return out, nil
}

// GetEvent returns one event with its derived volunteer count.
func GetEvent(ctx context.Context, database db.CatalogStore, logger *zap.Logger, eventID string) (*db.Event, error) {
	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	for _, e := range events {
		if e.ID == eventID {
			derived := withDerived(e, volunteers)
			return &derived, nil
		}
	}
	return nil, ErrEventNotFound
}

// CancelledAndFull returns the two admin report views: cancelled events,
// and non-cancelled events whose slots are filled (newest first).
func CancelledAndFull(ctx context.Context, database db.CatalogStore, logger *zap.Logger) (cancelled, full []db.Event, err error) {
	events, err := ListEvents(ctx, database, logger)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range events {
		switch {
		case e.Canceled:
			cancelled = append(cancelled, e)
		case IsFull(e):
			full = append(full, e)
		}
	}
	return cancelled, full, nil
}
