package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/clusterconf/internal/app/context"
	"github.com/jsamuelsen11/clusterconf/internal/app/fanout"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// Compile-time check that AdminService implements ports.AdminService.
var _ ports.AdminService = (*AdminService)(nil)

// defaultBulkWorkers bounds concurrent store writes during BulkSet.
const defaultBulkWorkers = 8

// AdminService implements ports.AdminService. Every write is validated
// against the option catalog before it reaches the override store.
type AdminService struct {
	catalog    ports.Catalog
	store      ports.OverrideStore
	logger     *slog.Logger
	now        func() time.Time
	maxWorkers int
}

// AdminOption configures an AdminService.
type AdminOption func(*AdminService)

// WithClock sets the time source used to stamp overrides.
func WithClock(now func() time.Time) AdminOption {
	return func(s *AdminService) { s.now = now }
}

// WithBulkWorkers sets the BulkSet concurrency limit.
func WithBulkWorkers(n int) AdminOption {
	return func(s *AdminService) { s.maxWorkers = n }
}

// NewAdminService creates an AdminService. A nil logger discards output.
func NewAdminService(catalog ports.Catalog, store ports.OverrideStore, logger *slog.Logger, opts ...AdminOption) *AdminService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &AdminService{
		catalog:    catalog,
		store:      store,
		logger:     logger,
		now:        time.Now,
		maxWorkers: defaultBulkWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set validates and stores an override.
func (s *AdminService) Set(ctx context.Context, section, name, value string) (*override.Override, error) {
	s.logger.InfoContext(ctx, "setting override",
		slog.String("section", section),
		slog.String("name", name),
	)

	o, err := s.resolve(section, name, value)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, o); err != nil {
		s.logger.ErrorContext(ctx, "failed to set override",
			slog.String("operation", "Set"),
			slog.String("key", o.Key()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &o, nil
}

// Remove deletes an override.
func (s *AdminService) Remove(ctx context.Context, section, name string) error {
	s.logger.InfoContext(ctx, "removing override",
		slog.String("section", section),
		slog.String("name", name),
	)

	sec, err := option.ParseSection(section)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, sec.String(), name); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove override",
			slog.String("operation", "Remove"),
			slog.String("key", override.Key(sec.String(), name)),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Dump returns every stored override ordered by name then section.
func (s *AdminService) Dump(ctx context.Context) ([]override.Override, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to dump overrides",
			slog.String("operation", "Dump"),
			slog.Any("error", err),
		)
		return nil, err
	}

	override.Sort(list)
	return list, nil
}

// Apply validates every change up front, then executes them in order. A
// remove must refer to an override that exists at that point of the batch,
// counting earlier changes in the same batch. On the first store failure,
// changes already written are rolled back in reverse order.
func (s *AdminService) Apply(ctx context.Context, changes []override.Change) error {
	s.logger.InfoContext(ctx, "applying changes", slog.Int("count", len(changes)))
	if len(changes) == 0 {
		return nil
	}

	rc := appctx.New(ctx)

	for i, c := range changes {
		if err := s.stage(rc, c); err != nil {
			return fmt.Errorf("change %d (%s): %w", i+1, c, err)
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to apply changes",
			slog.String("operation", "Apply"),
			slog.Int("count", len(changes)),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// BulkSet runs independent sets concurrently. Item failures are reported in
// the result and never fail the call as a whole.
func (s *AdminService) BulkSet(ctx context.Context, items []ports.SetRequest) (*ports.BulkSetResult, error) {
	s.logger.InfoContext(ctx, "bulk setting overrides", slog.Int("count", len(items)))

	results := fanout.Run(ctx, s.maxWorkers, items, func(ctx context.Context, it ports.SetRequest) (*override.Override, error) {
		return s.Set(ctx, it.Section, it.Name, it.Value)
	})

	out := &ports.BulkSetResult{
		Applied: make([]override.Override, 0, len(items)),
	}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkSetError{
				Section: items[i].Section,
				Name:    items[i].Name,
				Err:     r.Err,
			})
			continue
		}
		out.Applied = append(out.Applied, *r.Value)
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk set partially failed",
			slog.String("operation", "BulkSet"),
			slog.Int("applied", len(out.Applied)),
			slog.Int("failed", len(out.Errors)),
		)
	}

	return out, nil
}

// resolve validates a set request against the catalog and returns the
// override to store, with canonical section and value.
func (s *AdminService) resolve(section, name, value string) (override.Override, error) {
	opt, ok := s.catalog.Lookup(name)
	if !ok {
		return override.Override{}, fmt.Errorf("option %q: %w", name, domain.ErrNotFound)
	}

	sec, err := option.ParseSection(section)
	if err != nil {
		return override.Override{}, err
	}

	canonical, err := option.ParseValue(&opt, value)
	if err != nil {
		return override.Override{}, err
	}

	return override.Override{
		Name:      opt.Name,
		Section:   sec.String(),
		Value:     canonical,
		UpdatedAt: s.now().UTC(),
	}, nil
}

// stage validates one change against the batch's view of the store and
// queues the matching action.
func (s *AdminService) stage(rc *appctx.RequestContext, c override.Change) error {
	if !c.Op.IsValid() {
		return domain.NewValidationError("op", fmt.Sprintf("must be %s or %s, got %q", override.OpSet, override.OpRemove, c.Op))
	}

	sec, err := option.ParseSection(c.Section)
	if err != nil {
		return err
	}
	key := override.Key(sec.String(), c.Name)

	prev, err := s.current(rc, key)
	if err != nil {
		return err
	}

	if c.Op == override.OpRemove {
		if prev == nil {
			return fmt.Errorf("override %s: %w", key, domain.ErrNotFound)
		}
		return rc.Stage(cacheKey(key), (*override.Override)(nil), &removeAction{store: s.store, prev: *prev})
	}

	next, err := s.resolve(c.Section, c.Name, c.Value)
	if err != nil {
		return err
	}
	return rc.Stage(cacheKey(key), &next, &setAction{store: s.store, next: next, prev: prev})
}

// current returns the override for key as the batch sees it: staged changes
// first, then the store contents read once per batch.
func (s *AdminService) current(rc *appctx.RequestContext, key string) (*override.Override, error) {
	stored, err := appctx.GetOrFetch(rc, "overrides", func(ctx context.Context) (map[string]override.Override, error) {
		list, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		byKey := make(map[string]override.Override, len(list))
		for _, o := range list {
			byKey[o.Key()] = o
		}
		return byKey, nil
	})
	if err != nil {
		return nil, err
	}

	return appctx.GetOrFetch(rc, cacheKey(key), func(context.Context) (*override.Override, error) {
		o, ok := stored[key]
		if !ok {
			return nil, nil
		}
		return &o, nil
	})
}

func cacheKey(key string) string {
	return "override:" + key
}
