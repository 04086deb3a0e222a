// Package store implements the override store port over three backends:
// an in-process map, a SQLite file, and a Redis hash. All three key
// overrides by (section, option name) and report their health for the
// readiness check.
package store

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/clusterconf/internal/platform/config"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// healthName identifies the override store in readiness results.
const healthName = "override-store"

// Store is an override store that can also report its health.
type Store interface {
	ports.OverrideStore
	ports.HealthChecker
}

// Open constructs the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory, "":
		return NewMemory(), nil
	case config.StoreDriverSQLite:
		return OpenSQLite(ctx, cfg.SQLite.Path)
	case config.StoreDriverRedis:
		return OpenRedis(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
