package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"eventr/internal/domain"
	"eventr/internal/repository"
)

type eventService struct {
	events *repository.Collection[*domain.Event]
	users  *repository.Collection[*domain.User]
}

func NewEventService(store *repository.Store) domain.EventService {
	return &eventService{
		events: store.Events,
		users:  store.Users,
	}
}

func (s *eventService) ListEvents(ctx context.Context) (domain.Result[[]*domain.Event], error) {
	events, err := s.events.Load(ctx)
	if err != nil {
		return domain.FromError[[]*domain.Event](err)
	}
	return domain.OK(events), nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (domain.Result[*domain.EventDetails], error) {
	events, err := s.events.Load(ctx)
	if err != nil {
		return domain.FromError[*domain.EventDetails](err)
	}
	i := indexOfEvent(events, id)
	if i < 0 {
		return domain.Fail[*domain.EventDetails](domain.ErrEventNotFound), nil
	}

	details := &domain.EventDetails{Event: events[i]}
	users, err := s.users.Load(ctx)
	if err != nil {
		return domain.FromError[*domain.EventDetails](err)
	}
	// A missing organizer leaves the event unenriched.
	if u := findUserByID(users, details.OrganizerID); u != nil {
		details.Organizer = u.Public()
	}
	return domain.OK(details), nil
}

func (s *eventService) CreateEvent(ctx context.Context, actor *domain.User, fields domain.EventFields) (domain.Result[*domain.Event], error) {
	if actor == nil {
		return domain.Fail[*domain.Event](domain.ErrUnauthenticated), nil
	}
	if errs := fields.Validate(); len(errs) > 0 {
		return domain.Fail[*domain.Event](domain.InvalidInput(strings.Join(errs, "; "))), nil
	}
	organizer, err := requireUser(ctx, s.users, actor, domain.ErrOrganizerNotFound)
	if err != nil {
		return domain.FromError[*domain.Event](err)
	}

	now := time.Now().UTC()
	event := domain.NewEvent(fields, organizer.ID, now, now)
	err = s.events.Update(ctx, func(events []*domain.Event) ([]*domain.Event, error) {
		event.ID = newID()
		for indexOfEvent(events, event.ID) >= 0 {
			event.ID = newID()
		}
		return append(events, event), nil
	})
	if err != nil {
		return domain.FromError[*domain.Event](err)
	}
	return domain.OK(event), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actor *domain.User, id string, patch domain.EventPatch) (domain.Result[*domain.Event], error) {
	if actor == nil {
		return domain.Fail[*domain.Event](domain.ErrUnauthenticated), nil
	}

	var updated *domain.Event
	err := s.events.Update(ctx, func(events []*domain.Event) ([]*domain.Event, error) {
		i := indexOfEvent(events, id)
		if i < 0 {
			return nil, domain.ErrEventNotFound
		}
		current := events[i]
		if current.OrganizerID != actor.ID {
			return nil, domain.ErrForbidden
		}
		fields := patch.Apply(current)
		if errs := fields.Validate(); len(errs) > 0 {
			return nil, domain.InvalidInput(strings.Join(errs, "; "))
		}

		// id, organizer, creation time and attendees always carry over.
		next := domain.NewEvent(fields, current.OrganizerID, current.CreatedAt, time.Now().UTC())
		next.ID = current.ID
		next.Attendees = current.Attendees
		events[i] = next
		updated = next
		return events, nil
	})
	if err != nil {
		return domain.FromError[*domain.Event](err)
	}
	return domain.OK(updated), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actor *domain.User, id string) (domain.Result[struct{}], error) {
	if actor == nil {
		return domain.Fail[struct{}](domain.ErrUnauthenticated), nil
	}

	err := s.events.Update(ctx, func(events []*domain.Event) ([]*domain.Event, error) {
		i := indexOfEvent(events, id)
		if i < 0 {
			return nil, domain.ErrEventNotFound
		}
		if events[i].OrganizerID != actor.ID {
			return nil, domain.ErrForbidden
		}
		return slices.Delete(events, i, i+1), nil
	})
	if err != nil {
		return domain.FromError[struct{}](err)
	}
	return domain.OK(struct{}{}), nil
}

func (s *eventService) ListEventsByOrganizer(ctx context.Context, userID string) (domain.Result[[]*domain.Event], error) {
	events, err := s.events.Load(ctx)
	if err != nil {
		return domain.FromError[[]*domain.Event](err)
	}
	out := make([]*domain.Event, 0)
	for _, e := range events {
		if e.OrganizerID == userID {
			out = append(out, e)
		}
	}
	return domain.OK(out), nil
}
