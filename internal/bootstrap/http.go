package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spendwise/spendwise-web/config"
	"github.com/spendwise/spendwise-web/internal/domain/catalog"
	httpx "github.com/spendwise/spendwise-web/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler wires the template renderer, handlers and router.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	svc := cfg.Services

	templateFS, err := httpx.TemplateFS(appCfg.IsDev)
	if err != nil {
		return nil, fmt.Errorf("template filesystem: %w", err)
	}
	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Catalog:    catalog.Default(),
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	secure := appCfg.HTTP.SecureCookies && !appCfg.IsDev
	cookies := httpx.CookieConfig{
		SessionName: appCfg.Session.CookieName,
		Domain:      appCfg.HTTP.CookieDomain,
		Secure:      secure,
		TTL:         appCfg.Session.TTL,
	}

	handlers := httpx.NewHandlers(httpx.HandlersOptions{
		Services: httpx.Services{
			Sessions:  svc.Sessions,
			Auth:      svc.Auth,
			Navigator: svc.Navigator,
			Actions:   svc.Actions,
			Backend:   svc.Gateway,
		},
		Web:    httpx.WebConfig{Renderer: renderer, Cookies: cookies},
		Logger: logger,
	})

	var limiter *httpx.IPRateLimiter
	if appCfg.RateLimit.Enabled {
		limiter = httpx.NewIPRateLimiter(httpx.RateLimitConfig{
			RPS:        appCfg.RateLimit.RPS,
			Burst:      appCfg.RateLimit.Burst,
			TrustProxy: appCfg.RateLimit.TrustProxy,
		})
	}

	return httpx.NewRouter(httpx.RouterServices{
		Handlers: handlers,
		Sessions: svc.Sessions,
		Cookies:  cookies,
		CSRF: httpx.CSRFConfig{
			CookieDomain: appCfg.HTTP.CookieDomain,
			Secure:       secure,
		},
		AuthLimiter: limiter,
		Readiness:   svc.Readiness,
		IsDev:       appCfg.IsDev,
		Logger:      logger,
	}), nil
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig, errCh chan<- error) (*http.Server, error) {
	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return startServer(logger, handler, cfg.Config.HTTP.Addr, errCh), nil
}

func startServer(logger *slog.Logger, handler http.Handler, addr string, errCh chan<- error) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			select {
			case errCh <- fmt.Errorf("http server: %w", err):
			default:
			}
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}
