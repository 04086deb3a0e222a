package ports

import (
	"context"

	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

// Catalog is the static option schema compiled into the cluster.
type Catalog interface {
	// All returns every option in name order, without overrides.
	All() []option.Option

	// Lookup returns the option schema for name.
	Lookup(name string) (option.Option, bool)

	// Len returns the number of options in the catalog.
	Len() int
}

// OverrideStore is the authoritative key-value store of overrides, keyed
// by (section, option name). Implemented by storage adapters.
type OverrideStore interface {
	// List returns every stored override.
	List(ctx context.Context) ([]override.Override, error)

	// Set creates or replaces the override for (o.Section, o.Name).
	Set(ctx context.Context, o override.Override) error

	// Delete removes the override for (section, name).
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, section, name string) error

	// Close releases the store's resources.
	Close() error
}

// OverrideReader is the read view the query service consults. It may lag
// behind the OverrideStore it mirrors.
type OverrideReader interface {
	// Overrides returns the current view grouped by option name.
	Overrides(ctx context.Context) (map[string][]option.Value, error)

	// Source returns the provenance label reported with override values.
	Source() string
}

// ClusterConfClient defines the outbound port to a remote cluster_conf API.
// Implemented by the ACL adapter; used by the CLI and convergence polling.
type ClusterConfClient interface {
	// ListOptions returns every option record.
	ListOptions(ctx context.Context) ([]option.Option, error)

	// GetOption returns a single option record.
	// Returns domain.ErrNotFound if the remote reports 404.
	GetOption(ctx context.Context, name string) (*option.Option, error)

	// FilterOptions returns records for the given names.
	FilterOptions(ctx context.Context, names []string) ([]option.Option, error)

	// SetOption sets an override through the admin API.
	SetOption(ctx context.Context, section, name, value string) (*override.Override, error)

	// RemoveOption removes an override through the admin API.
	RemoveOption(ctx context.Context, section, name string) error

	// Dump returns every stored override through the admin API.
	Dump(ctx context.Context) ([]override.Override, error)
}
