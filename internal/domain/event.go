package domain

import (
	"context"
	"strings"
	"time"
)

// Date and time-of-day layouts used by Event.Date and Event.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event represents an event organized by a user.
// swagger:model Event
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Image       string      `json:"image"`
	OrganizerID string      `json:"organizerId"`
	Attendees   []*Attendee `json:"attendees"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewEvent returns a new Event built from fields. ID is set by the service on create.
func NewEvent(fields EventFields, organizerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       strings.TrimSpace(fields.Title),
		Description: fields.Description,
		Date:        strings.TrimSpace(fields.Date),
		Time:        strings.TrimSpace(fields.Time),
		Location:    fields.Location,
		Image:       fields.Image,
		OrganizerID: organizerID,
		Attendees:   []*Attendee{},
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// FindAttendee returns the index of userID's RSVP record, or -1.
func (e *Event) FindAttendee(userID string) int {
	for i, a := range e.Attendees {
		if a.UserID == userID {
			return i
		}
	}
	return -1
}

// EventFields are the client-editable fields of an event.
type EventFields struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Image       string
}

// Validate returns a slice of error messages; nil means valid.
func (f EventFields) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, "title is required")
	}
	if d := strings.TrimSpace(f.Date); d == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(DateLayout, d); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if t := strings.TrimSpace(f.Time); t != "" {
		if _, err := time.Parse(TimeLayout, t); err != nil {
			errs = append(errs, "time must be HH:MM")
		}
	}
	return errs
}

// EventPatch carries the fields of an update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	Image       *string
}

// Apply returns the fields of e with the patch applied.
func (p EventPatch) Apply(e *Event) EventFields {
	f := EventFields{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Image:       e.Image,
	}
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.Time != nil {
		f.Time = *p.Time
	}
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
	return f
}

// EventDetails is an event enriched with its organizer, when known.
// swagger:model EventDetails
type EventDetails struct {
	*Event
	Organizer *User `json:"organizer,omitempty"`
}

// EventService defines event CRUD. actor is the authenticated user, nil
// when the caller has no session.
type EventService interface {
	ListEvents(ctx context.Context) (Result[[]*Event], error)
	GetEvent(ctx context.Context, id string) (Result[*EventDetails], error)
	CreateEvent(ctx context.Context, actor *User, fields EventFields) (Result[*Event], error)
	UpdateEvent(ctx context.Context, actor *User, id string, patch EventPatch) (Result[*Event], error)
	DeleteEvent(ctx context.Context, actor *User, id string) (Result[struct{}], error)
	ListEventsByOrganizer(ctx context.Context, userID string) (Result[[]*Event], error)
}
