// Package reaper runs the loop that purges expired session records from
// stores without native expiry.
package reaper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spendwise/spendwise-web/internal/observability/statsd"
	"github.com/spendwise/spendwise-web/internal/ports"
)

// DefaultInterval is used when RunnerOptions.Interval is not positive.
const DefaultInterval = 10 * time.Minute

// Runner periodically purges expired sessions.
type Runner struct {
	purger   ports.SessionPurger
	interval time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Purger   ports.SessionPurger // Required
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  statsd.Sink
}

// NewRunner creates a new reaper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Purger == nil {
		return nil, errors.New("session purger is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = statsd.Discard{}
	}
	return &Runner{
		purger:   opts.Purger,
		interval: opts.Interval,
		logger:   opts.Logger.With("component", "session_reaper"),
		metrics:  opts.Metrics,
	}, nil
}

// Run purges once immediately and then on every tick until ctx is canceled.
// Purge failures are logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting session reaper", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.WarnContext(ctx, "session purge failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce performs a single purge and reports how many records were removed.
func (r *Runner) RunOnce(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := r.purger.PurgeExpired(ctx)
	result := "success"
	if err != nil {
		result = "error"
	}
	tags := map[string]string{"result": result}
	r.metrics.Timing("sessions.purge.duration", time.Since(start), tags)
	if err != nil {
		return 0, err
	}
	r.metrics.Count("sessions.purged", n, nil)
	if n > 0 {
		r.logger.DebugContext(ctx, "purged expired sessions", "count", n)
	}
	return n, nil
}
