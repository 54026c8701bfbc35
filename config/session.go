package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects where session records are persisted.
type SessionBackend string

const (
	// SessionBackendRedis stores sessions as JSON blobs with a TTL.
	SessionBackendRedis SessionBackend = "redis"
	// SessionBackendPostgres stores sessions in the ui_sessions table.
	SessionBackendPostgres SessionBackend = "postgres"
	// SessionBackendMemory keeps sessions in process memory (development only).
	SessionBackendMemory SessionBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (s *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "postgres", "memory":
		*s = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: redis, postgres, memory)", v)
	}
}

// SessionConfig contains session storage configuration.
type SessionConfig struct {
	Backend       SessionBackend `env:"SESSION_BACKEND"        envDefault:"redis"`
	TTL           time.Duration  `env:"SESSION_TTL"            envDefault:"24h"`
	CookieName    string         `env:"SESSION_COOKIE_NAME"    envDefault:"session_id"`
	KeyPrefix     string         `env:"SESSION_KEY_PREFIX"     envDefault:"spendwise:session:"`
	PurgeInterval time.Duration  `env:"SESSION_PURGE_INTERVAL" envDefault:"10m"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendRedis
	}
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	if strings.TrimSpace(s.CookieName) == "" {
		s.CookieName = "session_id"
	}
	if s.KeyPrefix == "" {
		s.KeyPrefix = "spendwise:session:"
	}
	if s.PurgeInterval < time.Minute {
		s.PurgeInterval = time.Minute
	}
}
