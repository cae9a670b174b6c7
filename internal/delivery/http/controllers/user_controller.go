package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventr/internal/delivery/http/helpers"
	"eventr/internal/domain"
)

type UserController struct {
	Logger    *slog.Logger
	Events    domain.EventService
	Attendees domain.AttendeeService
}

func NewUserController(logger *slog.Logger, events domain.EventService, attendees domain.AttendeeService) *UserController {
	return &UserController{
		Logger:    logger,
		Events:    events,
		Attendees: attendees,
	}
}

// ListOrganizedEvents godoc
// @Summary List events organized by a user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /users/{userID}/events [get]
func (c *UserController) ListOrganizedEvents(w http.ResponseWriter, r *http.Request) {
	res, err := c.Events.ListEventsByOrganizer(r.Context(), r.PathValue("userID"))
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// ListRsvps godoc
// @Summary List events a user responded to
// @Description Returns every event the user has an RSVP for. status narrows the result; it may be repeated or comma-separated.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Param status query []string false "RSVP statuses to include" collectionFormat(csv) Enums(going, maybe, not_going)
// @Success 200 {object} controllers.EventListResponse
// @Failure 400 {object} helpers.APIResponse "code: invalid_input"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /users/{userID}/rsvps [get]
func (c *UserController) ListRsvps(w http.ResponseWriter, r *http.Request) {
	res, err := c.Attendees.ListEventsByAttendee(r.Context(), r.PathValue("userID"), parseStatuses(r)...)
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

func parseStatuses(r *http.Request) []domain.RSVPStatus {
	var out []domain.RSVPStatus
	for _, v := range r.URL.Query()["status"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, domain.RSVPStatus(s))
			}
		}
	}
	return out
}
