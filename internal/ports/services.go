package ports

import (
	"context"

	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

// ConfigService defines the read-only query port over the configuration
// catalog. Implemented by the application layer; called by inbound adapters.
// Results reflect overrides eventually: a write made through AdminService
// becomes visible after the next read-view refresh, not immediately.
type ConfigService interface {
	// List returns every option in catalog order, each merged with its
	// current overrides. There is no pagination.
	List(ctx context.Context) ([]option.Option, error)

	// Get returns a single merged option by name.
	// Returns domain.ErrNotFound if the name is not in the catalog.
	Get(ctx context.Context, name string) (*option.Option, error)

	// Filter returns merged options for the given names in request order.
	// Unknown names are skipped.
	Filter(ctx context.Context, names []string) ([]option.Option, error)
}

// AdminService defines the administrative write port. It is the only path
// that mutates override state.
type AdminService interface {
	// Set validates value against the option schema and stores its
	// canonical form for the given section.
	// Returns domain.ErrNotFound for unknown options and
	// domain.ErrValidation for bad sections or values.
	Set(ctx context.Context, section, name, value string) (*override.Override, error)

	// Remove deletes the override for the given section.
	// Returns domain.ErrNotFound if no such override exists.
	Remove(ctx context.Context, section, name string) error

	// Dump returns every stored override, read directly from the store.
	Dump(ctx context.Context) ([]override.Override, error)

	// Apply executes a batch of changes in order. If any change fails,
	// changes already applied are rolled back and the error is returned.
	Apply(ctx context.Context, changes []override.Change) error

	// BulkSet runs independent sets concurrently. Each item succeeds or
	// fails on its own; failures are collected in BulkSetResult.Errors.
	BulkSet(ctx context.Context, items []SetRequest) (*BulkSetResult, error)
}

// SetRequest is one item of a bulk set.
type SetRequest struct {
	Section string
	Name    string
	Value   string
}

// BulkSetError records a single failed item within a bulk set.
type BulkSetError struct {
	Section string
	Name    string
	Err     error
}

// BulkSetResult holds the outcomes of a bulk set.
type BulkSetResult struct {
	Applied []override.Override
	Errors  []BulkSetError
}
