package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventr/internal/adapters/auth"
	"eventr/internal/delivery/http/controllers"
	"eventr/internal/delivery/http/middleware"
	"eventr/internal/repository"
	"eventr/internal/repository/memory"
	"eventr/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	store := repository.NewStore(memory.NewBackend(), hasher)

	users := services.NewUserService(store, hasher, auth.NewJWTIssuer("test-secret"), time.Hour, nil, logger)
	events := services.NewEventService(store)
	attendees := services.NewAttendeeService(store, nil, logger)

	router := NewRouter(
		controllers.NewEventController(logger, events),
		controllers.NewAttendeeController(logger, attendees),
		controllers.NewUserController(logger, events, attendees),
		controllers.NewAuthController(logger, users),
		limiter,
	)
	srv := httptest.NewServer(middleware.Authenticate(users, logger)(router))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestRouter_EndToEnd(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := call(t, srv, http.MethodPost, "/auth/register", "", `{"name":"Ada","email":"ada@x.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.NotContains(t, string(env.Data), "password")

	status, env = call(t, srv, http.MethodPost, "/auth/register", "", `{"name":"Ada","email":"ada@x.com","password":"pw"}`)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "duplicate_email", env.Code)

	status, env = call(t, srv, http.MethodPost, "/auth/login", "", `{"email":"ada@x.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_credentials", env.Code)

	status, env = call(t, srv, http.MethodPost, "/auth/login", "", `{"email":"ada@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, status)
	var login struct {
		User  struct{ ID, Name string }
		Token string
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, "Ada", login.User.Name)
	token := login.Token

	status, _ = call(t, srv, http.MethodPost, "/events", "", `{"title":"Launch","date":"2024-01-01"}`)
	require.Equal(t, http.StatusUnauthorized, status)

	status, env = call(t, srv, http.MethodPost, "/events", token, `{"title":"Launch","date":"2024-01-01","id":"mine","attendees":[{"userId":"x"}]}`)
	require.Equal(t, http.StatusCreated, status)
	var ev struct {
		ID          string
		OrganizerID string `json:"organizerId"`
		Attendees   []struct {
			UserID string `json:"userId"`
			Status string
		}
	}
	require.NoError(t, json.Unmarshal(env.Data, &ev))
	assert.NotEqual(t, "mine", ev.ID)
	assert.Equal(t, login.User.ID, ev.OrganizerID)
	assert.Empty(t, ev.Attendees)

	status, env = call(t, srv, http.MethodPost, "/events/"+ev.ID+"/rsvp", token, `{"status":"maybe"}`)
	require.Equal(t, http.StatusOK, status)
	status, env = call(t, srv, http.MethodPost, "/events/"+ev.ID+"/rsvp", token, `{"status":"going"}`)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &ev))
	require.Len(t, ev.Attendees, 1)
	assert.Equal(t, "going", ev.Attendees[0].Status)

	status, env = call(t, srv, http.MethodGet, "/users/"+login.User.ID+"/rsvps?status=going", "", "")
	require.Equal(t, http.StatusOK, status)
	var rsvps []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &rsvps))
	assert.Len(t, rsvps, 1)

	// Seeded events belong to the demo user.
	status, env = call(t, srv, http.MethodDelete, "/events/1", token, "")
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden", env.Code)

	status, _ = call(t, srv, http.MethodDelete, "/events/"+ev.ID, token, "")
	require.Equal(t, http.StatusOK, status)
	status, env = call(t, srv, http.MethodGet, "/events/"+ev.ID, "", "")
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", env.Code)

	status, _ = call(t, srv, http.MethodGet, "/auth/me", token, "")
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, srv, http.MethodPost, "/auth/logout", token, "")
	require.Equal(t, http.StatusOK, status)
	status, env = call(t, srv, http.MethodGet, "/auth/me", token, "")
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthenticated", env.Code)
}

func TestRouter_SeedAndHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := call(t, srv, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = call(t, srv, http.MethodGet, "/events/1", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"organizer":{"id":"1","name":"Demo User"`)

	status, _ = call(t, srv, http.MethodPost, "/auth/login", "", `{"email":"demo@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_RateLimitsLogin(t *testing.T) {
	srv := newTestServer(t, middleware.NewRateLimiter(0.001, 1))

	status, _ := call(t, srv, http.MethodPost, "/auth/login", "", `{"email":"demo@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, status)
	status, env := call(t, srv, http.MethodPost, "/auth/login", "", `{"email":"demo@example.com","password":"nope"}`)
	require.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "rate_limited", env.Code)

	status, _ = call(t, srv, http.MethodGet, "/events", "", "")
	assert.Equal(t, http.StatusOK, status)
}
