// Package health provides a thread-safe health check registry for tracking
// the health of the override store, the snapshot refresher, and any remote
// cluster_conf API. The registry is used by the readiness endpoint to
// determine whether the service can accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = Checker{}
)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness check.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks concurrently and returns
// results keyed by checker name. Nil values indicate healthy components.
// When two checkers share a name, the one registered last wins.
// The slice is copied under a read lock so checks run without holding it.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			errs[i] = c.HealthCheck(ctx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// Checker adapts a plain function to [ports.HealthChecker].
type Checker struct {
	name  string
	check func(ctx context.Context) error
}

// NewChecker returns a named health checker backed by fn.
func NewChecker(name string, fn func(ctx context.Context) error) Checker {
	return Checker{name: name, check: fn}
}

// Name returns the component name.
func (c Checker) Name() string { return c.name }

// HealthCheck runs the wrapped function.
func (c Checker) HealthCheck(ctx context.Context) error { return c.check(ctx) }
