package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS wraps next with CORS handling for the allowed origins. "*" allows
// any origin; credentials are only allowed for explicit origins.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	wildcard := false
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o == "*" {
			wildcard = true
		}
		if o != "" {
			origins = append(origins, o)
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: !wildcard,
		MaxAge:           86400,
	})
	return c.Handler(next)
}
