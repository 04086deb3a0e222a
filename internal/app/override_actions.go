package app

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

var (
	_ domain.Action = (*setAction)(nil)
	_ domain.Action = (*removeAction)(nil)
)

// setAction writes next. Rollback restores prev, or deletes the key when
// there was no previous override.
type setAction struct {
	store ports.OverrideStore
	next  override.Override
	prev  *override.Override
}

func (a *setAction) Execute(ctx context.Context) error {
	return a.store.Set(ctx, a.next)
}

func (a *setAction) Rollback(ctx context.Context) error {
	if a.prev != nil {
		return a.store.Set(ctx, *a.prev)
	}
	err := a.store.Delete(ctx, a.next.Section, a.next.Name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (a *setAction) Description() string {
	return override.Change{Op: override.OpSet, Section: a.next.Section, Name: a.next.Name, Value: a.next.Value}.String()
}

// removeAction deletes prev. Rollback writes it back.
type removeAction struct {
	store ports.OverrideStore
	prev  override.Override
}

func (a *removeAction) Execute(ctx context.Context) error {
	return a.store.Delete(ctx, a.prev.Section, a.prev.Name)
}

func (a *removeAction) Rollback(ctx context.Context) error {
	return a.store.Set(ctx, a.prev)
}

func (a *removeAction) Description() string {
	return override.Change{Op: override.OpRemove, Section: a.prev.Section, Name: a.prev.Name}.String()
}
