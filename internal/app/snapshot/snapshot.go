// Package snapshot maintains the eventually consistent read view of
// overrides that the query service serves from. A refresher reloads the
// whole override set from the store on a fixed interval and publishes it
// as an immutable view; readers never touch the store.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/clusterconf/internal/app/context"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/platform/telemetry"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.OverrideReader = (*Snapshot)(nil)
	_ ports.HealthChecker  = (*Snapshot)(nil)
)

const (
	// DefaultInterval is the refresh cadence used when none is configured.
	DefaultInterval = time.Second

	// DefaultSource is the provenance label reported with override values.
	DefaultSource = "mon"

	// staleFactor is how many missed intervals make the view unhealthy.
	staleFactor = 3
)

// errNotLoaded is returned by Overrides before the first successful refresh.
var errNotLoaded = fmt.Errorf("override snapshot not loaded: %w", domain.ErrUnavailable)

// view is one published, immutable state of the override set.
type view struct {
	byName   map[string][]option.Value
	count    int
	loadedAt time.Time
}

// status tracks refresh outcomes for the health check.
type status struct {
	lastErr     error
	lastAttempt time.Time
}

// Options configures a Snapshot.
type Options struct {
	// Source is the provenance label; defaults to DefaultSource.
	Source string
	// Interval is the refresh cadence; defaults to DefaultInterval.
	Interval time.Duration
	// Metrics is optional.
	Metrics *telemetry.Metrics
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Snapshot is the refreshable read view over an OverrideStore.
type Snapshot struct {
	store    ports.OverrideStore
	source   string
	interval time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time

	refreshMu sync.Mutex
	view      *appctx.SafeRef[*view]
	status    *appctx.SafeRef[status]
}

// New creates a Snapshot over store. No view is published until the first
// Refresh.
func New(store ports.OverrideStore, opts Options) *Snapshot {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Snapshot{
		store:    store,
		source:   opts.Source,
		interval: opts.Interval,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		now:      opts.Now,
		view:     appctx.NewRef[*view](nil),
		status:   appctx.NewRef(status{}),
	}
}

// Overrides returns the current view grouped by option name. The map and
// its slices are shared and must not be modified.
func (s *Snapshot) Overrides(_ context.Context) (map[string][]option.Value, error) {
	v := s.view.Get()
	if v == nil {
		return nil, errNotLoaded
	}
	return v.byName, nil
}

// Source returns the provenance label.
func (s *Snapshot) Source() string {
	return s.source
}

// Interval returns the refresh cadence, the upper bound on how long a write
// takes to become visible.
func (s *Snapshot) Interval() time.Duration {
	return s.interval
}

// Refresh reloads every override from the store and publishes a new view.
// On failure the previous view stays published.
func (s *Snapshot) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	list, err := s.store.List(ctx)
	now := s.now()

	s.status.Update(func(st *status) {
		st.lastErr = err
		st.lastAttempt = now
	})

	if err != nil {
		s.record(ctx, "error", -1)
		return fmt.Errorf("refreshing override snapshot: %w", err)
	}

	v := build(list, now)
	s.view.Set(v)
	s.record(ctx, "success", v.count)
	return nil
}

// Run refreshes immediately and then every interval until ctx is done.
// Refresh failures are logged and retried on the next tick. Run returns nil
// when ctx is canceled.
func (s *Snapshot) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.ErrorContext(ctx, "snapshot refresh failed",
				slog.String("operation", "Snapshot.Run"),
				slog.Duration("interval", s.interval),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Name implements ports.HealthChecker.
func (s *Snapshot) Name() string {
	return "snapshot"
}

// HealthCheck fails when no view has been published, when the last refresh
// failed, or when the view is older than several refresh intervals.
func (s *Snapshot) HealthCheck(_ context.Context) error {
	st := s.status.Get()
	if st.lastErr != nil {
		return fmt.Errorf("last refresh failed: %w", st.lastErr)
	}

	v := s.view.Get()
	if v == nil {
		return errNotLoaded
	}
	if age := s.now().Sub(v.loadedAt); age > staleFactor*s.interval {
		return fmt.Errorf("override snapshot stale: loaded %s ago: %w", age.Round(time.Millisecond), domain.ErrUnavailable)
	}
	return nil
}

func (s *Snapshot) record(ctx context.Context, result string, count int) {
	if s.metrics == nil {
		return
	}
	s.metrics.SnapshotRefreshTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
	if count >= 0 {
		s.metrics.SnapshotOverrides.Record(ctx, int64(count))
	}
}

// build groups overrides by option name with values in section order.
func build(list []override.Override, loadedAt time.Time) *view {
	byName := make(map[string][]option.Value)
	for _, o := range list {
		byName[o.Name] = append(byName[o.Name], option.Value{Section: o.Section, Value: o.Value})
	}
	for _, values := range byName {
		option.SortValues(values)
	}
	return &view{byName: byName, count: len(list), loadedAt: loadedAt}
}
