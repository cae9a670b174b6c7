package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"eventr/internal/domain"
	"eventr/internal/repository"
	"eventr/internal/repository/memory"
	"eventr/internal/seed"

	"github.com/stretchr/testify/require"
)

// fakePasswordHasher implements domain.PasswordHasher without bcrypt.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) { return "hash-" + password, nil }
func (fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokens implements domain.TokenManager with readable tokens.
type fakeTokens struct {
	issueErr error
}

func (f *fakeTokens) Issue(userID, sessionID string, expiry time.Duration) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "tok:" + userID + ":" + sessionID, nil
}

func (f *fakeTokens) Verify(token string) (*domain.TokenClaims, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "tok" {
		return nil, errors.New("bad token")
	}
	return &domain.TokenClaims{UserID: parts[1], SessionID: parts[2]}, nil
}

// fakeEmailService records sent emails.
type fakeEmailService struct {
	mu       sync.Mutex
	welcomes []*domain.WelcomeMessageEmailData
	rsvps    []*domain.RsvpConfirmationEmailData
	err      error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, data)
	return f.err
}

func (f *fakeEmailService) SendRsvpConfirmation(ctx context.Context, data *domain.RsvpConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rsvps = append(f.rsvps, data)
	return f.err
}

// failingBackend fails every call.
type failingBackend struct{}

func (failingBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (failingBackend) Put(ctx context.Context, key string, data []byte) error {
	return errors.New("disk on fire")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore() *repository.Store {
	return repository.NewStore(memory.NewBackend(), fakePasswordHasher{})
}

// demoUser returns the seeded demo user as an actor.
func demoUser() *domain.User {
	return &domain.User{ID: seed.DemoUserID, Name: seed.DemoUserName, Email: seed.DemoUserEmail}
}

// addUser stores a user with the given id and returns it as an actor.
func addUser(t *testing.T, store *repository.Store, id, name, email string) *domain.User {
	t.Helper()
	u := domain.NewUser(name, email, "hash-pw")
	u.ID = id
	err := store.Users.Update(context.Background(), func(users []*domain.User) ([]*domain.User, error) {
		return append(users, u), nil
	})
	require.NoError(t, err)
	return u.Public()
}
