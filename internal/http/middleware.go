package httpx

import (
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/spendwise/spendwise-web/internal/gateway"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Bool("htmx", IsHTMX(r)),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush lets streamed downloads pass through the logging wrapper.
func (w *respWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionMiddlewareOptions groups dependencies for SessionMiddleware.
type SessionMiddlewareOptions struct {
	Sessions *service.SessionService // Required
	Cookies  CookieConfig
	Logger   *slog.Logger
}

// SessionMiddleware attaches the per-request notification stack, the session
// state loaded from the session cookie and the gateway caller. Notifications
// carried by a flash cookie are restored onto the stack and the cookie is
// cleared.
func SessionMiddleware(opts SessionMiddlewareOptions) func(http.Handler) http.Handler {
	if opts.Sessions == nil {
		panic("httpx: SessionMiddlewareOptions.Sessions is required")
	}
	cookies := opts.Cookies.withDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stack := notify.NewStack()
			if c, err := r.Cookie(cookies.FlashName); err == nil {
				items, decErr := notify.DecodeFlash(c.Value)
				if decErr != nil {
					logger.DebugContext(r.Context(), "discarding malformed flash cookie", "error", decErr)
				}
				stack.Restore(items)
				cookies.clear(w, r, cookies.FlashName)
			}
			ctx := notify.WithStack(r.Context(), stack)

			var id string
			if c, err := r.Cookie(cookies.SessionName); err == nil {
				id = c.Value
			}
			st, err := opts.Sessions.Load(ctx, id)
			if err != nil {
				logger.WarnContext(ctx, "session load failed", "error", err)
			}

			ctx = service.WithState(ctx, st)
			ctx = gateway.WithCaller(ctx, gateway.Caller{Host: r.Host, Token: st.Token()})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP returns the caller's address. The first X-Forwarded-For hop is
// honoured only when trustProxy is set, since clients can forge the header.
func ClientIP(r *http.Request, trustProxy bool) string {
	if xff := r.Header.Get("X-Forwarded-For"); trustProxy && xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitConfig configures the per-IP limiter.
type RateLimitConfig struct {
	RPS   float64
	Burst int
	// IdleTTL drops limiters not seen for this long.
	IdleTTL time.Duration
	// TrustProxy keys clients by X-Forwarded-For instead of the peer address.
	TrustProxy bool
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	cfg      RateLimitConfig
	limiters map[string]*ipLimiter
	now      func() time.Time
}

// NewIPRateLimiter constructs a limiter. Non-positive settings fall back to
// 1 rps with a burst of 5.
func NewIPRateLimiter(cfg RateLimitConfig) *IPRateLimiter {
	if cfg.RPS <= 0 {
		cfg.RPS = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	return &IPRateLimiter{cfg: cfg, limiters: make(map[string]*ipLimiter), now: time.Now}
}

// Allow reports whether ip may proceed now.
func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, v := range l.limiters {
		if now.Sub(v.lastSeen) > l.cfg.IdleTTL {
			delete(l.limiters, k)
		}
	}
	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// RateLimit rejects requests over the per-IP budget with 429. htmx callers
// get a toast instead of a swapped error body.
func RateLimit(l *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil || l.Allow(ClientIP(r, l.cfg.TrustProxy)) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Retry-After", "1")
			if IsHTMX(r) {
				SetHXTriggers(w, map[string]any{
					toastEvent: []notify.Notification{
						notify.NewStack().Push("Too many attempts, please wait a moment", notify.Warning),
					},
				})
				SetHXReswap(w, "none")
			}
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		})
	}
}
