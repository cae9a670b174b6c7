package domain

import (
	"context"
	"time"
)

// Session is a persisted login. A session token is valid while its session
// exists and has not expired.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewSession returns a new Session. ID is set by the service.
func NewSession(userID string, createdAt time.Time, ttl time.Duration) *Session {
	return &Session{
		UserID:    userID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
	}
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Collection names under which records are stored.
const (
	UsersCollection    = "users"
	EventsCollection   = "events"
	SessionsCollection = "sessions"
)

// Backend is the durable medium behind collections: whole values stored
// under fixed keys.
type Backend interface {
	// Get returns the stored value for key; ok is false when none exists.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, data []byte) error
}
