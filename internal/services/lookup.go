package services

import (
	"context"

	"github.com/google/uuid"

	"eventr/internal/domain"
	"eventr/internal/repository"
)

// newID returns a time-ordered UUID (v7), falling back to a random one.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func indexOfEvent(events []*domain.Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func findUserByID(users []*domain.User, id string) *domain.User {
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func findUserByEmail(users []*domain.User, email string) *domain.User {
	for _, u := range users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// requireUser checks that actor is set and still exists, returning the
// stored user. notFound is returned when the actor's record is gone.
func requireUser(ctx context.Context, users *repository.Collection[*domain.User], actor *domain.User, notFound *domain.Error) (*domain.User, error) {
	if actor == nil || actor.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	all, err := users.Load(ctx)
	if err != nil {
		return nil, err
	}
	u := findUserByID(all, actor.ID)
	if u == nil {
		return nil, notFound
	}
	return u, nil
}
