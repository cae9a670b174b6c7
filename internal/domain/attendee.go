package domain

import "context"

// RSVPStatus is an attendee's response to an event.
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "going"
	RSVPMaybe    RSVPStatus = "maybe"
	RSVPNotGoing RSVPStatus = "not_going"
)

// Valid reports whether s is one of the known statuses.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

// Attendee is one user's RSVP record for one event. There is at most one
// record per (UserID, EventID).
// swagger:model Attendee
type Attendee struct {
	UserID  string     `json:"userId"`
	EventID string     `json:"eventId"`
	Status  RSVPStatus `json:"status"`
}

// NewAttendee creates a new Attendee record.
func NewAttendee(userID, eventID string, status RSVPStatus) *Attendee {
	return &Attendee{
		UserID:  userID,
		EventID: eventID,
		Status:  status,
	}
}

// AttendeeService defines RSVP operations.
type AttendeeService interface {
	// Rsvp upserts the actor's record on the event. Idempotent.
	Rsvp(ctx context.Context, actor *User, eventID string, status RSVPStatus) (Result[*Event], error)
	// CancelRsvp removes the actor's record; a missing record is a no-op.
	CancelRsvp(ctx context.Context, actor *User, eventID string) (Result[*Event], error)
	// ListEventsByAttendee returns events the user has a record on, optionally
	// restricted to the given statuses.
	ListEventsByAttendee(ctx context.Context, userID string, statuses ...RSVPStatus) (Result[[]*Event], error)
}
