package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventr/internal/delivery/http/helpers"
	"eventr/internal/domain"
)

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// SetUser returns a context carrying the authenticated user.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil when the request
// carried no valid session.
func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey).(*domain.User)
	return u
}

// SetToken returns a context carrying the raw bearer token.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the bearer token sent with the request, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok && t != ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}

// Authenticate resolves the bearer token, when present, to its user and
// stores both in the request context. Requests without a valid session
// continue anonymously; the services decide whether that is allowed.
func Authenticate(users domain.UserService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := SetToken(r.Context(), token)
			res, err := users.CurrentUser(ctx, token)
			if err != nil {
				logger.ErrorContext(ctx, "resolve session failed", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
				return
			}
			if res.Success {
				ctx = SetUser(ctx, res.Data)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
