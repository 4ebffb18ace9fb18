package db

// Storage keys. Each holds one JSON-encoded collection.
const (
	KeyEvents      = "events"
	KeyVolunteers  = "volunteers"
	KeyPending     = "pendingVolunteers"
	KeyUsers       = "users"
	KeySavedEvents = "savedEvents"
)

// Coordinates is an optional map location attached to an event.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Event is an admin-created volunteering opportunity. The ID is the
// stringified creation timestamp in milliseconds and doubles as a
// creation-order sort key.
type Event struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Date                string       `json:"date"`
	Time                string       `json:"time"`
	Description         string       `json:"description"`
	Location            string       `json:"location"`
	LocationCoordinates *Coordinates `json:"locationCoordinates,omitempty"`
	CoverPhoto          string       `json:"coverPhoto,omitempty"`
	VolunteerCategories []string     `json:"volunteerCategories"`
	Tags                []string     `json:"tags,omitempty"`
	MaxVolunteers       int          `json:"maxVolunteers"`
	Canceled            bool         `json:"canceled,omitempty"`

	// CurrentVolunteers is derived from the volunteer collection at read
	// time and is never authoritative.
	CurrentVolunteers int `json:"currentVolunteers,omitempty"`
}

// HasCategory reports whether position is one of the event's role
// categories.
func (e Event) HasCategory(position string) bool {
	for _, c := range e.VolunteerCategories {
		if c == position {
			return true
		}
	}
	return false
}

// Volunteer is a person approved for at least one event. The email is the
// natural key used to match against user accounts and pending requests.
//
// An event id may appear in both AssignedEvents and RemovedEvents at the
// same time; RemovedEvents membership takes precedence when deriving
// status, and AssignedEvents keeps the id for history.
type Volunteer struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	AssignedEvents []string          `json:"assignedEvents"`
	RemovedEvents  []string          `json:"removedEvents,omitempty"`
	Status         string            `json:"status"`
	Positions      map[string]string `json:"positions,omitempty"`
}

// IsAssigned reports membership in AssignedEvents, irrespective of removal.
func (v Volunteer) IsAssigned(eventID string) bool {
	for _, id := range v.AssignedEvents {
		if id == eventID {
			return true
		}
	}
	return false
}

// IsRemoved reports whether an admin has removed the volunteer from the
// event.
func (v Volunteer) IsRemoved(eventID string) bool {
	for _, id := range v.RemovedEvents {
		if id == eventID {
			return true
		}
	}
	return false
}

// PendingStatus is the lifecycle marker on a registration request.
// Approved and rejected rows stay in the collection as terminal markers.
type PendingStatus string

const (
	PendingStatusPending  PendingStatus = "pending"
	PendingStatusApproved PendingStatus = "approved"
	PendingStatusRejected PendingStatus = "rejected"
)

// PendingVolunteer is a volunteer's in-flight request to join an event.
// EventTitle and the volunteer fields are snapshots taken at request time
// and may drift from the live records.
type PendingVolunteer struct {
	ID             string        `json:"id"`
	EventID        string        `json:"eventId"`
	EventTitle     string        `json:"eventTitle"`
	VolunteerName  string        `json:"volunteerName"`
	VolunteerEmail string        `json:"volunteerEmail"`
	Status         PendingStatus `json:"status"`
	Timestamp      int64         `json:"timestamp"`
	Position       string        `json:"position"`
}

// User is an account record stored in the users collection.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Role           string `json:"role"`
}
