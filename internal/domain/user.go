package domain

import (
	"context"
	"time"
)

// User represents a registered user.
// Password holds the bcrypt hash of the user's password; it is persisted
// but never returned to callers (see Public).
// swagger:model User
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// NewUser returns a new User with the given fields. ID is set by the service on register.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}
}

// Public returns a copy of u without the password.
func (u User) Public() *User {
	u.Password = ""
	return &u
}

// AuthResponse is returned by a successful login.
// swagger:model AuthResponse
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenClaims is what a verified session token carries.
type TokenClaims struct {
	UserID    string
	SessionID string
	ExpiresAt time.Time
}

// TokenIssuer issues tokens (e.g. JWT) bound to a session.
type TokenIssuer interface {
	Issue(userID, sessionID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	TokenIssuer
	TokenVerifier
}

// UserService defines registration, login and session operations.
// Failure envelopes carry DuplicateEmail, InvalidCredentials, Unauthenticated
// or InvalidInput; the error return is reserved for storage failures.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (Result[*User], error)
	Login(ctx context.Context, email, password string) (Result[*AuthResponse], error)
	Logout(ctx context.Context, token string) (Result[struct{}], error)
	// CurrentUser resolves a session token to its user (session rehydration).
	CurrentUser(ctx context.Context, token string) (Result[*User], error)
}
