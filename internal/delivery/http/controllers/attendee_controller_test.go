package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventr/internal/delivery/http/middleware"
	"eventr/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	fail         *domain.Error
	err          error
	lastActor    *domain.User
	lastEventID  string
	lastStatus   domain.RSVPStatus
	lastUserID   string
	lastStatuses []domain.RSVPStatus
}

func (f *fakeAttendeeService) result() (domain.Result[*domain.Event], error) {
	if f.err != nil {
		return domain.Result[*domain.Event]{}, f.err
	}
	if f.fail != nil {
		return domain.Fail[*domain.Event](f.fail), nil
	}
	return domain.OK(&domain.Event{ID: f.lastEventID}), nil
}

func (f *fakeAttendeeService) Rsvp(ctx context.Context, actor *domain.User, eventID string, status domain.RSVPStatus) (domain.Result[*domain.Event], error) {
	f.lastActor, f.lastEventID, f.lastStatus = actor, eventID, status
	return f.result()
}

func (f *fakeAttendeeService) CancelRsvp(ctx context.Context, actor *domain.User, eventID string) (domain.Result[*domain.Event], error) {
	f.lastActor, f.lastEventID = actor, eventID
	return f.result()
}

func (f *fakeAttendeeService) ListEventsByAttendee(ctx context.Context, userID string, statuses ...domain.RSVPStatus) (domain.Result[[]*domain.Event], error) {
	f.lastUserID, f.lastStatuses = userID, statuses
	if f.err != nil {
		return domain.Result[[]*domain.Event]{}, f.err
	}
	if f.fail != nil {
		return domain.Fail[[]*domain.Event](f.fail), nil
	}
	return domain.OK([]*domain.Event{}), nil
}

func TestAttendeeController_Rsvp(t *testing.T) {
	actor := &domain.User{ID: "u2"}

	tests := []struct {
		name       string
		body       string
		fake       *fakeAttendeeService
		wantStatus int
		wantCode   string
	}{
		{"success", `{"status":"maybe","userId":"someone-else"}`, &fakeAttendeeService{}, http.StatusOK, ""},
		{"missing status", `{}`, &fakeAttendeeService{}, http.StatusBadRequest, "invalid_input"},
		{"unknown status", `{"status":"perhaps"}`, &fakeAttendeeService{fail: domain.InvalidInput("bad status")}, http.StatusBadRequest, "invalid_input"},
		{"event not found", `{"status":"going"}`, &fakeAttendeeService{fail: domain.ErrEventNotFound}, http.StatusNotFound, "not_found"},
		{"unauthenticated", `{"status":"going"}`, &fakeAttendeeService{fail: domain.ErrUnauthenticated}, http.StatusUnauthorized, "unauthenticated"},
		{"storage failure", `{"status":"going"}`, &fakeAttendeeService{err: domain.ErrStorageUnavailable}, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /events/{id}/rsvp", NewAttendeeController(testLogger, tt.fake).Rsvp)
			req := httptest.NewRequest(http.MethodPost, "/events/ev-1/rsvp", strings.NewReader(tt.body))
			req = req.WithContext(middleware.SetUser(req.Context(), actor))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, env.Code)
				return
			}
			assert.Equal(t, actor, tt.fake.lastActor)
			assert.Equal(t, "ev-1", tt.fake.lastEventID)
			assert.Equal(t, domain.RSVPMaybe, tt.fake.lastStatus)
		})
	}
}

func TestAttendeeController_CancelRsvp(t *testing.T) {
	fake := &fakeAttendeeService{}
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /events/{id}/rsvp", NewAttendeeController(testLogger, fake).CancelRsvp)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/events/ev-1/rsvp", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ev-1", fake.lastEventID)
	assert.Nil(t, fake.lastActor)
}
