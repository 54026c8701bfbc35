package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"

	spendwise "github.com/spendwise/spendwise-web"
	"github.com/spendwise/spendwise-web/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Handlers *Handlers               // Required
	Sessions *service.SessionService // Required
	Cookies  CookieConfig
	CSRF     CSRFConfig
	// AuthLimiter throttles the sign-in forms per client IP. Nil disables it.
	AuthLimiter *IPRateLimiter
	Readiness   map[string]ReadinessCheck
	IsDev       bool         // Serve static files from disk
	Logger      *slog.Logger // Optional
}

// NewRouter creates the HTTP router. Probes and static files bypass the
// session; every other route runs behind CSRF protection and the session
// middleware.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := services.Handlers

	app := http.NewServeMux()
	app.HandleFunc("GET /{$}", h.Index)
	app.HandleFunc("GET /login", h.Login)
	app.HandleFunc("GET /register", h.Register)
	app.HandleFunc("GET /forgot-password", h.ForgotPassword)
	app.HandleFunc("GET /view/{id}", h.View)
	app.HandleFunc("GET /calendar", h.Calendar)
	app.HandleFunc("GET /export/{kind}", h.Export)
	app.HandleFunc("POST /actions/{name}", h.Action)
	registerAuthRoutes(app, h, services.AuthLimiter)

	var chain http.Handler = app
	chain = SessionMiddleware(SessionMiddlewareOptions{
		Sessions: services.Sessions,
		Cookies:  services.Cookies,
		Logger:   logger,
	})(chain)
	chain = CSRFProtection(services.CSRF)(chain)

	root := http.NewServeMux()
	root.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	root.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	root.Handle("GET /readyz", readyHandler(services.Readiness))
	root.Handle("GET /static/", staticHandler(services.IsDev, logger))
	root.Handle("/", chain)

	return Recover(logger)(Logging(logger)(root))
}

func registerAuthRoutes(mux *http.ServeMux, h *Handlers, limiter *IPRateLimiter) {
	limit := RateLimit(limiter)
	mux.Handle("POST /auth/login", limit(http.HandlerFunc(h.PostLogin)))
	mux.Handle("POST /auth/register", limit(http.HandlerFunc(h.PostRegister)))
	mux.Handle("POST /auth/forgot-password", limit(http.HandlerFunc(h.PostForgotPassword)))
	mux.Handle("POST /auth/reset-password", limit(http.HandlerFunc(h.PostResetPassword)))
	mux.HandleFunc("POST /auth/logout", h.PostLogout)
}

// TemplateFS returns the template tree: the working copy on disk in dev mode
// so edits show up on restart, the embedded copy otherwise.
func TemplateFS(isDev bool) (fs.FS, error) {
	if isDev {
		return os.DirFS(TemplatePathFromRoot), nil
	}
	return fs.Sub(spendwise.TemplateFS, TemplatePathFromRoot)
}

// staticHandler serves /static/*.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot))))
	}
	staticSub, err := fs.Sub(spendwise.StaticFS, StaticPathFromRoot)
	if err != nil {
		logger.Error("failed to create sub-filesystem for static assets", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

//nolint:gochecknoglobals // compiled once
var versionedAsset = regexp.MustCompile(`[?&]v=[A-Za-z0-9.]+$`)

// staticWithCacheHeaders lets versioned URLs be cached for a year and forces
// revalidation for everything else.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if versionedAsset.MatchString(r.URL.RequestURI()) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}
