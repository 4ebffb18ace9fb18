package db

import "context"

// EventStore defines the interface for event collection access.
type EventStore interface {
	Events(ctx context.Context) ([]Event, error)
	SetEvents(ctx context.Context, events []Event) error
}

// VolunteerStore defines the interface for volunteer collection access.
type VolunteerStore interface {
	Volunteers(ctx context.Context) ([]Volunteer, error)
	SetVolunteers(ctx context.Context, volunteers []Volunteer) error
}

// PendingStore defines the interface for pending registration access.
type PendingStore interface {
	PendingVolunteers(ctx context.Context) ([]PendingVolunteer, error)
	SetPendingVolunteers(ctx context.Context, pending []PendingVolunteer) error
}

// SavedEventStore defines the interface for saved-event snapshot access.
type SavedEventStore interface {
	SavedEvents(ctx context.Context) ([]Event, error)
	SetSavedEvents(ctx context.Context, saved []Event) error
}

// UserStore defines the interface for user account access.
type UserStore interface {
	Users(ctx context.Context) ([]User, error)
	SetUsers(ctx context.Context, users []User) error
}

// CatalogStore covers the event catalog operations, which need volunteer
// reads for derived counts and saved-event writes for delete cascades.
type CatalogStore interface {
	EventStore
	VolunteerStore
	SavedEventStore
}

// RegistrationStore covers the registration workflow transitions.
type RegistrationStore interface {
	EventStore
	VolunteerStore
	PendingStore
	SavedEventStore
}

// Database is the full set of collection operations.
type Database interface {
	RegistrationStore
	UserStore
}
