package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventr/internal/delivery/http/controllers"
	"eventr/internal/delivery/http/helpers"
	"eventr/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// Register and login are rate limited per client IP when limiter is set.
func NewRouter(
	eventController *controllers.EventController,
	attendeeController *controllers.AttendeeController,
	userController *controllers.UserController,
	authController *controllers.AuthController,
	limiter *middleware.RateLimiter,
) *http.ServeMux {
	mux := http.NewServeMux()

	limit := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if limiter != nil {
		limit = limiter.Limit
	}

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{id}", eventController.GetEvent)
	mux.HandleFunc("PUT /events/{id}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", eventController.DeleteEvent)

	// RSVP
	mux.HandleFunc("POST /events/{id}/rsvp", attendeeController.Rsvp)
	mux.HandleFunc("DELETE /events/{id}/rsvp", attendeeController.CancelRsvp)

	// Users
	mux.HandleFunc("GET /users/{userID}/events", userController.ListOrganizedEvents)
	mux.HandleFunc("GET /users/{userID}/rsvps", userController.ListRsvps)

	// Auth
	mux.HandleFunc("POST /auth/register", limit(authController.Register))
	mux.HandleFunc("POST /auth/login", limit(authController.Login))
	mux.HandleFunc("POST /auth/logout", authController.Logout)
	mux.HandleFunc("GET /auth/me", authController.Me)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, helpers.APIResponse{Success: true, Data: map[string]string{"status": "ok"}})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
