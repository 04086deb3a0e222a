// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// Compile-time check that ConfigService implements ports.ConfigService.
var _ ports.ConfigService = (*ConfigService)(nil)

// ConfigService implements ports.ConfigService by merging the static option
// catalog with the override read view. It holds no per-request state and
// never reads the override store directly, so results may trail recent
// writes by up to one refresh interval.
type ConfigService struct {
	catalog ports.Catalog
	reader  ports.OverrideReader
	logger  *slog.Logger
}

// NewConfigService creates a ConfigService. A nil logger discards output.
func NewConfigService(catalog ports.Catalog, reader ports.OverrideReader, logger *slog.Logger) *ConfigService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ConfigService{
		catalog: catalog,
		reader:  reader,
		logger:  logger,
	}
}

// List returns every catalog option merged with its current overrides.
func (s *ConfigService) List(ctx context.Context) ([]option.Option, error) {
	s.logger.DebugContext(ctx, "listing options")

	overrides, err := s.overrides(ctx, "List")
	if err != nil {
		return nil, err
	}

	opts := s.catalog.All()
	source := s.reader.Source()
	for i := range opts {
		opts[i] = opts[i].WithOverrides(overrides[opts[i].Name], source)
	}
	return opts, nil
}

// Get returns a single merged option by name.
func (s *ConfigService) Get(ctx context.Context, name string) (*option.Option, error) {
	s.logger.DebugContext(ctx, "fetching option", slog.String("name", name))

	opt, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("option %q: %w", name, domain.ErrNotFound)
	}

	overrides, err := s.overrides(ctx, "Get")
	if err != nil {
		return nil, err
	}

	merged := opt.WithOverrides(overrides[name], s.reader.Source())
	return &merged, nil
}

// Filter returns merged options for names in request order. Unknown and
// repeated names are skipped.
func (s *ConfigService) Filter(ctx context.Context, names []string) ([]option.Option, error) {
	s.logger.DebugContext(ctx, "filtering options", slog.Int("count", len(names)))

	overrides, err := s.overrides(ctx, "Filter")
	if err != nil {
		return nil, err
	}

	source := s.reader.Source()
	seen := make(map[string]struct{}, len(names))
	opts := make([]option.Option, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		opt, ok := s.catalog.Lookup(name)
		if !ok {
			continue
		}
		opts = append(opts, opt.WithOverrides(overrides[name], source))
	}
	return opts, nil
}

func (s *ConfigService) overrides(ctx context.Context, op string) (map[string][]option.Value, error) {
	overrides, err := s.reader.Overrides(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read overrides",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return nil, err
	}
	return overrides, nil
}
