package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"eventr/internal/delivery/http/helpers"
	"eventr/internal/delivery/http/middleware"
	"eventr/internal/domain"
)

// RsvpRequest is the request body for POST /events/{id}/rsvp. The RSVP is
// always recorded for the authenticated user; a userId in the body is ignored.
type RsvpRequest struct {
	Status string          `json:"status" enums:"going,maybe,not_going"`
	UserID json.RawMessage `json:"userId,omitempty" swaggerignore:"true"`
}

func (r RsvpRequest) Validate() []string {
	if r.Status == "" {
		return []string{"status is required"}
	}
	return nil
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// Rsvp godoc
// @Summary RSVP to an event
// @Description Records the authenticated user's response. Repeating an RSVP overwrites the previous status.
// @Tags rsvp
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body RsvpRequest true "RSVP status"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.APIResponse "code: invalid_input"
// @Failure 401 {object} helpers.APIResponse "code: unauthenticated"
// @Failure 404 {object} helpers.APIResponse "code: not_found"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events/{id}/rsvp [post]
func (c *AttendeeController) Rsvp(w http.ResponseWriter, r *http.Request) {
	var req RsvpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor := middleware.UserFromContext(r.Context())
	res, err := c.Service.Rsvp(r.Context(), actor, r.PathValue("id"), domain.RSVPStatus(req.Status))
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// CancelRsvp godoc
// @Summary Cancel an RSVP
// @Description Removes the authenticated user's RSVP. Succeeds when there is none.
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} controllers.EventResponse
// @Failure 401 {object} helpers.APIResponse "code: unauthenticated"
// @Failure 404 {object} helpers.APIResponse "code: not_found"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events/{id}/rsvp [delete]
func (c *AttendeeController) CancelRsvp(w http.ResponseWriter, r *http.Request) {
	res, err := c.Service.CancelRsvp(r.Context(), middleware.UserFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}
