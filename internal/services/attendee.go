package services

import (
	"context"
	"log/slog"
	"strings"

	"eventr/internal/domain"
	"eventr/internal/repository"
)

var statusList = strings.Join([]string{string(domain.RSVPGoing), string(domain.RSVPMaybe), string(domain.RSVPNotGoing)}, ", ")

var errInvalidStatus = domain.InvalidInput("status must be one of " + statusList)

type attendeeService struct {
	events       *repository.Collection[*domain.Event]
	users        *repository.Collection[*domain.User]
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewAttendeeService creates an AttendeeService. emailService may be nil,
// in which case no RSVP confirmations are sent.
func NewAttendeeService(store *repository.Store, emailService domain.EmailService, logger *slog.Logger) domain.AttendeeService {
	return &attendeeService{
		events:       store.Events,
		users:        store.Users,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *attendeeService) Rsvp(ctx context.Context, actor *domain.User, eventID string, status domain.RSVPStatus) (domain.Result[*domain.Event], error) {
	if actor == nil {
		return domain.Fail[*domain.Event](domain.ErrUnauthenticated), nil
	}
	if !status.Valid() {
		return domain.Fail[*domain.Event](errInvalidStatus), nil
	}
	user, err := requireUser(ctx, s.users, actor, domain.ErrUserNotFound)
	if err != nil {
		return domain.FromError[*domain.Event](err)
	}

	var (
		updated *domain.Event
		changed bool
	)
	err = s.events.Update(ctx, func(events []*domain.Event) ([]*domain.Event, error) {
		i := indexOfEvent(events, eventID)
		if i < 0 {
			return nil, domain.ErrEventNotFound
		}
		ev := events[i]
		if j := ev.FindAttendee(user.ID); j >= 0 {
			changed = ev.Attendees[j].Status != status
			ev.Attendees[j].Status = status
		} else {
			ev.Attendees = append(ev.Attendees, domain.NewAttendee(user.ID, ev.ID, status))
			changed = true
		}
		updated = ev
		return events, nil
	})
	if err != nil {
		return domain.FromError[*domain.Event](err)
	}

	if changed {
		s.sendConfirmation(ctx, user, updated, status)
	}
	return domain.OK(updated), nil
}

// sendConfirmation emails the RSVP outcome. Failures are logged only.
func (s *attendeeService) sendConfirmation(ctx context.Context, user *domain.User, ev *domain.Event, status domain.RSVPStatus) {
	if s.emailService == nil {
		return
	}
	data := &domain.RsvpConfirmationEmailData{
		Email:      user.Email,
		Name:       user.Name,
		EventTitle: ev.Title,
		EventDate:  ev.Date,
		EventTime:  ev.Time,
		Location:   ev.Location,
		Status:     status,
	}
	if err := s.emailService.SendRsvpConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp confirmation not sent", "event_id", ev.ID, "user_id", user.ID, "err", err)
	}
}

func (s *attendeeService) CancelRsvp(ctx context.Context, actor *domain.User, eventID string) (domain.Result[*domain.Event], error) {
	if actor == nil {
		return domain.Fail[*domain.Event](domain.ErrUnauthenticated), nil
	}

	var updated *domain.Event
	err := s.events.Update(ctx, func(events []*domain.Event) ([]*domain.Event, error) {
		i := indexOfEvent(events, eventID)
		if i < 0 {
			return nil, domain.ErrEventNotFound
		}
		ev := events[i]
		kept := make([]*domain.Attendee, 0, len(ev.Attendees))
		for _, a := range ev.Attendees {
			if a.UserID != actor.ID {
				kept = append(kept, a)
			}
		}
		ev.Attendees = kept
		updated = ev
		return events, nil
	})
	if err != nil {
		return domain.FromError[*domain.Event](err)
	}
	return domain.OK(updated), nil
}

func (s *attendeeService) ListEventsByAttendee(ctx context.Context, userID string, statuses ...domain.RSVPStatus) (domain.Result[[]*domain.Event], error) {
	wanted := make(map[domain.RSVPStatus]struct{}, len(statuses))
	for _, st := range statuses {
		if !st.Valid() {
			return domain.Fail[[]*domain.Event](errInvalidStatus), nil
		}
		wanted[st] = struct{}{}
	}

	events, err := s.events.Load(ctx)
	if err != nil {
		return domain.FromError[[]*domain.Event](err)
	}
	out := make([]*domain.Event, 0)
	for _, e := range events {
		j := e.FindAttendee(userID)
		if j < 0 {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[e.Attendees[j].Status]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return domain.OK(out), nil
}
