package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Fatalf("expected redis session backend, got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Fatalf("expected 24h session ttl, got %s", cfg.Session.TTL)
	}
	if cfg.Session.CookieName != "session_id" {
		t.Fatalf("expected session_id cookie, got %q", cfg.Session.CookieName)
	}
	if cfg.Backend.DevURL != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected dev backend url %q", cfg.Backend.DevURL)
	}
	if cfg.Backend.ProdURL != "https://spendwise-backend-7ul1.onrender.com" {
		t.Fatalf("unexpected prod backend url %q", cfg.Backend.ProdURL)
	}
	if !cfg.NeedsRedis() || cfg.NeedsPostgres() {
		t.Fatalf("expected only redis to be required by default")
	}
	if cfg.RateLimit.TrustProxy {
		t.Fatalf("expected X-Forwarded-For to be untrusted by default")
	}
}

func TestAppConfig_ParseSessionEnv(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "Postgres")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com/ ")
	t.Setenv("DB_NAME", "sessions")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Session.Backend != SessionBackendPostgres {
		t.Fatalf("expected postgres backend, got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %s", cfg.Session.TTL)
	}
	if cfg.Backend.BaseURL != "https://api.example.com" {
		t.Fatalf("expected trimmed base url, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Postgres.Name != "sessions" {
		t.Fatalf("expected db name sessions, got %q", cfg.Postgres.Name)
	}
	if !cfg.NeedsPostgres() || cfg.NeedsRedis() {
		t.Fatalf("expected only postgres to be required")
	}
}

func TestSessionBackend_UnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    SessionBackend
		wantErr bool
	}{
		{input: "redis", want: SessionBackendRedis},
		{input: " MEMORY ", want: SessionBackendMemory},
		{input: "postgres", want: SessionBackendPostgres},
		{input: "etcd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got SessionBackend
			err := got.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	cfg := SessionConfig{CookieName: " ", PurgeInterval: time.Second}
	cfg.Sanitize()

	if cfg.Backend != SessionBackendRedis {
		t.Fatalf("expected redis fallback, got %q", cfg.Backend)
	}
	if cfg.TTL != 24*time.Hour {
		t.Fatalf("expected ttl fallback, got %s", cfg.TTL)
	}
	if cfg.CookieName != "session_id" {
		t.Fatalf("expected cookie name fallback, got %q", cfg.CookieName)
	}
	if cfg.PurgeInterval != time.Minute {
		t.Fatalf("expected purge interval clamp, got %s", cfg.PurgeInterval)
	}
}

func TestRateLimitConfig_Sanitize(t *testing.T) {
	cfg := RateLimitConfig{RPS: -3, Burst: 0}
	cfg.Sanitize()

	if cfg.RPS != 1 || cfg.Burst != 1 {
		t.Fatalf("expected rps=1 burst=1, got rps=%v burst=%d", cfg.RPS, cfg.Burst)
	}
}

func TestBackendConfig_Sanitize(t *testing.T) {
	cfg := BackendConfig{DevURL: " ", ProdURL: "https://prod.example.com//"}
	cfg.Sanitize()

	if cfg.DevURL != defaultBackendDevURL {
		t.Fatalf("expected dev default, got %q", cfg.DevURL)
	}
	if cfg.ProdURL != "https://prod.example.com" {
		t.Fatalf("expected trailing slashes trimmed, got %q", cfg.ProdURL)
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
	if cfg.Prefix != defaultObservabilityName {
		t.Fatalf("expected default prefix, got %q", cfg.Prefix)
	}
}
