package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendwise/spendwise-web/config"
	"github.com/spendwise/spendwise-web/internal/adapters/memory"
	"github.com/spendwise/spendwise-web/internal/adapters/postgres"
	redisadapter "github.com/spendwise/spendwise-web/internal/adapters/redis"
	"github.com/spendwise/spendwise-web/internal/adapters/reaper"
	"github.com/spendwise/spendwise-web/internal/domain/catalog"
	"github.com/spendwise/spendwise-web/internal/gateway"
	httpx "github.com/spendwise/spendwise-web/internal/http"
	"github.com/spendwise/spendwise-web/internal/observability/statsd"
	"github.com/spendwise/spendwise-web/internal/ports"
	"github.com/spendwise/spendwise-web/internal/service"
)

const shutdownWaitTimeout = 15 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions  *service.SessionService
	Auth      *service.AuthService
	Navigator *service.Navigator
	Actions   *service.Actions
	Gateway   *gateway.Client
	// Purger is set for session stores without native expiry.
	Purger    ports.SessionPurger
	Readiness map[string]httpx.ReadinessCheck
	Metrics   *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB               // Only for the postgres session backend
	RedisClient redis.UniversalClient // Only for the redis session backend
	Logger      *slog.Logger
}

// NewServices wires the session store, gateway and application services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	store, purger, err := buildSessionStore(cfg.Session, deps)
	if err != nil {
		return ServiceContainer{}, err
	}

	metrics := buildMetrics(logger, cfg.Observability.Metrics)

	gw := gateway.New(gateway.Options{
		BaseURL: cfg.Backend.BaseURL,
		DevURL:  cfg.Backend.DevURL,
		ProdURL: cfg.Backend.ProdURL,
		Metrics: metrics,
		Logger:  logger,
	})

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Store:  store,
		Config: service.SessionConfig{TTL: cfg.Session.TTL},
		Logger: logger,
	})
	auth := service.NewAuthService(service.AuthServiceOptions{
		Sessions: sessions,
		Backend:  gw,
		Logger:   logger,
	})
	loaders := service.NewLoaders(service.LoadersOptions{
		Backend: gw,
		Catalog: catalog.Default(),
		Logger:  logger,
	})

	return ServiceContainer{
		Sessions: sessions,
		Auth:     auth,
		Navigator: service.NewNavigator(service.NavigatorOptions{
			Sessions: sessions,
			Loaders:  loaders,
			Logger:   logger,
		}),
		Actions:   service.NewActions(service.ActionsOptions{Backend: gw, Auth: auth}),
		Gateway:   gw,
		Purger:    purger,
		Readiness: readinessChecks(deps),
		Metrics:   metrics,
	}, nil
}

//nolint:ireturn // the store is chosen at runtime from SESSION_BACKEND.
func buildSessionStore(cfg config.SessionConfig, deps *ServiceDeps) (ports.SessionStore, ports.SessionPurger, error) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		if deps.RedisClient == nil {
			return nil, nil, errors.New("redis session backend requires a redis client")
		}
		return redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, cfg.KeyPrefix), nil, nil
	case config.SessionBackendPostgres:
		if deps.DB == nil {
			return nil, nil, errors.New("postgres session backend requires a database")
		}
		store := postgres.NewSessionStore(deps.DB)
		return store, store, nil
	case config.SessionBackendMemory:
		store := memory.NewSessionStore()
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

func readinessChecks(deps *ServiceDeps) map[string]httpx.ReadinessCheck {
	checks := make(map[string]httpx.ReadinessCheck)
	if deps.RedisClient != nil {
		rc := deps.RedisClient
		checks["redis"] = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
	}
	if deps.DB != nil {
		db := deps.DB
		checks["postgres"] = db.PingContext
	}
	return checks
}

func buildMetrics(logger *slog.Logger, cfg config.ObservabilityMetricsConfig) *statsd.Client {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Warn("statsd disabled", "error", err)
		client, _ = statsd.NewClient(statsd.Config{Logger: logger})
	}
	return client
}

// ServiceOrchestrationConfig contains everything RunServicesWithShutdown needs.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and the session reaper and
// blocks until a shutdown signal arrives or the server fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("service orchestration config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 2)
	server, err := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	}, errCh)
	if err != nil {
		return err
	}

	reaperDone, err := startReaper(serviceCtx, cfg, logger)
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
		logger.Info("shutting down services...")
	case runErr = <-errCh:
		logger.Error("service error", "error", runErr)
	}
	cancel()

	if stopErr := ShutdownHTTPServer(context.Background(), server, logger); stopErr != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutdown http server: %w", stopErr))
	}
	waitForService(reaperDone, "session reaper", logger)

	if cfg.Services.Metrics != nil {
		if closeErr := cfg.Services.Metrics.Close(); closeErr != nil {
			logger.Warn("close statsd client", "error", closeErr)
		}
	}
	return runErr
}

func startReaper(ctx context.Context, cfg *ServiceOrchestrationConfig, logger *slog.Logger) (<-chan struct{}, error) {
	if cfg.Services.Purger == nil {
		return nil, nil
	}
	runner, err := reaper.NewRunner(reaper.RunnerOptions{
		Purger:   cfg.Services.Purger,
		Interval: cfg.Config.Session.PurgeInterval,
		Logger:   logger,
		Metrics:  cfg.Services.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("create session reaper: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := runner.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "session reaper failed", "error", err)
		}
	}()
	return done, nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
