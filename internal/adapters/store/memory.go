package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

// Memory is a mutex-guarded in-process override store. Its contents are
// lost on restart.
type Memory struct {
	mu    sync.RWMutex
	items map[string]override.Override
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]override.Override)}
}

// List returns every override ordered by name, then section.
func (m *Memory) List(_ context.Context) ([]override.Override, error) {
	m.mu.RLock()
	list := slices.Collect(maps.Values(m.items))
	m.mu.RUnlock()

	override.Sort(list)
	return list, nil
}

// Set creates or replaces the override for (o.Section, o.Name).
func (m *Memory) Set(_ context.Context, o override.Override) error {
	if err := o.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[o.Key()] = o
	return nil
}

// Delete removes the override for (section, name).
func (m *Memory) Delete(_ context.Context, section, name string) error {
	key := override.Key(section, name)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; !ok {
		return fmt.Errorf("override %s: %w", key, domain.ErrNotFound)
	}
	delete(m.items, key)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Name implements ports.HealthChecker.
func (m *Memory) Name() string { return healthName }

// HealthCheck always reports healthy.
func (m *Memory) HealthCheck(_ context.Context) error { return nil }
