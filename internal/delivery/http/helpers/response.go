package helpers

import (
	"encoding/json"
	"net/http"

	"eventr/internal/domain"
)

// Error codes for failures raised by the HTTP layer itself. Business
// failures use the domain.ErrorKind of the service result.
const (
	ErrCodeBadRequest    = string(domain.KindInvalidInput)
	ErrCodeUnauthorized  = string(domain.KindUnauthenticated)
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeInternalError = "internal_error"
)

// APIResponse documents the envelope every endpoint answers with.
// On success Data is set; on failure Error and Code are set.
// swagger:model APIResponse
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindNotFound:           http.StatusNotFound,
	domain.KindDuplicateEmail:     http.StatusConflict,
	domain.KindInvalidCredentials: http.StatusUnauthorized,
	domain.KindUnauthenticated:    http.StatusUnauthorized,
	domain.KindForbidden:          http.StatusForbidden,
	domain.KindInvalidInput:       http.StatusBadRequest,
}

// StatusForKind maps a business error kind to its HTTP status.
func StatusForKind(kind domain.ErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteResult writes res with successStatus when it succeeded, or with the
// status of its error kind otherwise.
func WriteResult[T any](w http.ResponseWriter, successStatus int, res domain.Result[T]) {
	status := successStatus
	if !res.Success {
		status = StatusForKind(res.Kind)
	}
	WriteJSON(w, status, res)
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes a failure envelope with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIResponse{Success: false, Error: message, Code: code})
}
