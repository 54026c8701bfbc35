package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// SecureCookies marks session, flash and CSRF cookies as Secure.
	// Forced off in development mode by the router.
	SecureCookies bool `env:"APP_SECURE_COOKIES" envDefault:"true"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.Addr == "" {
		h.Addr = ":8080"
	}
}

// RateLimitConfig controls the per-client limiter on login, registration and password reset.
type RateLimitConfig struct {
	Enabled bool    `env:"AUTH_RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS     float64 `env:"AUTH_RATE_LIMIT_RPS"     envDefault:"1"`
	Burst   int     `env:"AUTH_RATE_LIMIT_BURST"   envDefault:"5"`
	// TrustProxy keys clients by X-Forwarded-For. Enable only behind a proxy
	// that overwrites the header.
	TrustProxy bool `env:"AUTH_RATE_LIMIT_TRUST_PROXY" envDefault:"false"`
}

// Sanitize clamps the limiter to usable values.
func (r *RateLimitConfig) Sanitize() {
	if r.RPS <= 0 {
		r.RPS = 1
	}
	if r.Burst < 1 {
		r.Burst = 1
	}
}
