package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, k := range []string{"PORT", "DATA_BACKEND", "DATA_DIR", "SESSION_TTL", "CORS_ALLOWED_ORIGINS", "EMAIL_PROVIDER", "RATE_LIMIT_RPS"} {
		t.Setenv(k, "")
	}
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file", cfg.DataBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.InDelta(t, 5.0, cfg.RateLimitRPS, 0)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATA_BACKEND", "SQLite3")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.DataBackend)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"unknown backend", map[string]string{"DATA_BACKEND": "redis", "JWT_SECRET": "x"}, "unknown DATA_BACKEND"},
		{"sql without url", map[string]string{"DATA_BACKEND": "postgres", "DATABASE_URL": "", "JWT_SECRET": "x"}, "DATABASE_URL is required"},
		{"missing secret", map[string]string{"DATA_BACKEND": "memory", "JWT_SECRET": ""}, "JWT_SECRET is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}
