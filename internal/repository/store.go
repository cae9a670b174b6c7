package repository

import (
	"eventr/internal/domain"
	"eventr/internal/seed"
)

// Store groups the collections the services work on.
type Store struct {
	Users    *Collection[*domain.User]
	Events   *Collection[*domain.Event]
	Sessions *Collection[*domain.Session]
}

// NewStore returns the users, events and sessions collections on backend,
// seeded with the demo user (password hashed by hasher) and demo events.
func NewStore(backend domain.Backend, hasher domain.PasswordHasher) *Store {
	return &Store{
		Users:    NewCollection[*domain.User](backend, domain.UsersCollection, seed.Users(hasher)),
		Events:   NewCollection[*domain.Event](backend, domain.EventsCollection, seed.Events),
		Sessions: NewCollection[*domain.Session](backend, domain.SessionsCollection, nil),
	}
}
