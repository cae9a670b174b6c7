// Package seed holds the records collections start with on first run.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"eventr/internal/domain"
)

// Demo account created on first run.
const (
	DemoUserID       = "1"
	DemoUserName     = "Demo User"
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "password123"
)

//go:embed events.json
var eventsJSON []byte

// Events returns the demo events. Each call decodes a fresh copy.
func Events() ([]*domain.Event, error) {
	var events []*domain.Event
	if err := json.Unmarshal(eventsJSON, &events); err != nil {
		return nil, fmt.Errorf("decode seed events: %w", err)
	}
	return events, nil
}

// Users returns a seed function yielding the demo user. The password is
// hashed once, on first use.
func Users(hasher domain.PasswordHasher) func() ([]*domain.User, error) {
	var (
		once sync.Once
		hash string
		err  error
	)
	return func() ([]*domain.User, error) {
		once.Do(func() {
			hash, err = hasher.Hash(DemoUserPassword)
		})
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		u := domain.NewUser(DemoUserName, DemoUserEmail, hash)
		u.ID = DemoUserID
		return []*domain.User{u}, nil
	}
}
