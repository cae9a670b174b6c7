// Package controllers maps HTTP requests onto the domain services.
package controllers

import (
	"log/slog"
	"net/http"

	"eventr/internal/delivery/http/helpers"
)

// writeInternalError logs err and answers 500 without leaking its text.
func writeInternalError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}
