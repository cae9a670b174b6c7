package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"eventr/internal/delivery/http/helpers"
	"eventr/internal/delivery/http/middleware"
	"eventr/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
// id, organizerId, createdAt, updatedAt and attendees are accepted but ignored.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date" example:"2024-01-01"`
	Time        string `json:"time" example:"18:30"`
	Location    string `json:"location"`
	Image       string `json:"image"`

	ID          json.RawMessage `json:"id,omitempty" swaggerignore:"true"`
	OrganizerID json.RawMessage `json:"organizerId,omitempty" swaggerignore:"true"`
	CreatedAt   json.RawMessage `json:"createdAt,omitempty" swaggerignore:"true"`
	UpdatedAt   json.RawMessage `json:"updatedAt,omitempty" swaggerignore:"true"`
	Attendees   json.RawMessage `json:"attendees,omitempty" swaggerignore:"true"`
}

func (c CreateEventRequest) fields() domain.EventFields {
	return domain.EventFields{
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
		Time:        c.Time,
		Location:    c.Location,
		Image:       c.Image,
	}
}

// UpdateEventRequest is the request body for PUT /events/{id}. Omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date" example:"2024-01-01"`
	Time        *string `json:"time" example:"18:30"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`

	ID          json.RawMessage `json:"id,omitempty" swaggerignore:"true"`
	OrganizerID json.RawMessage `json:"organizerId,omitempty" swaggerignore:"true"`
	CreatedAt   json.RawMessage `json:"createdAt,omitempty" swaggerignore:"true"`
	UpdatedAt   json.RawMessage `json:"updatedAt,omitempty" swaggerignore:"true"`
	Attendees   json.RawMessage `json:"attendees,omitempty" swaggerignore:"true"`
}

func (u UpdateEventRequest) patch() domain.EventPatch {
	return domain.EventPatch{
		Title:       u.Title,
		Description: u.Description,
		Date:        u.Date,
		Time:        u.Time,
		Location:    u.Location,
		Image:       u.Image,
	}
}

// EventResponse is the success envelope carrying one event.
type EventResponse struct {
	Success bool          `json:"success"`
	Data    *domain.Event `json:"data"`
}

// EventListResponse is the success envelope carrying a list of events.
type EventListResponse struct {
	Success bool            `json:"success"`
	Data    []*domain.Event `json:"data"`
}

// EventDetailsResponse is the success envelope for GET /events/{id}.
type EventDetailsResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.EventDetails `json:"data"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event in creation order.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	res, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event and, when known, its organizer.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controllers.EventDetailsResponse
// @Failure 404 {object} helpers.APIResponse "code: not_found"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	res, err := c.Service.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event organized by the authenticated user. id, timestamps and attendees are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.APIResponse "code: invalid_input"
// @Failure 401 {object} helpers.APIResponse "code: unauthenticated"
// @Failure 404 {object} helpers.APIResponse "code: not_found (organizer)"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.CreateEvent(r.Context(), middleware.UserFromContext(r.Context()), req.fields())
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusCreated, res)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Updates the provided fields. Only the organizer may update; id, organizer, createdAt and attendees never change.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.APIResponse "code: invalid_input"
// @Failure 401 {object} helpers.APIResponse "code: unauthenticated"
// @Failure 403 {object} helpers.APIResponse "code: forbidden"
// @Failure 404 {object} helpers.APIResponse "code: not_found"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.UpdateEvent(r.Context(), middleware.UserFromContext(r.Context()), r.PathValue("id"), req.patch())
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event. Only the organizer may delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "code: unauthenticated"
// @Failure 403 {object} helpers.APIResponse "code: forbidden"
// @Failure 404 {object} helpers.APIResponse "code: not_found"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	res, err := c.Service.DeleteEvent(r.Context(), middleware.UserFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}
