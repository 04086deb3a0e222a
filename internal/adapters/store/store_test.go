package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/store"
	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/platform/config"
)

// backends returns a fresh instance of every store backend.
func backends(t *testing.T) map[string]store.Store {
	t.Helper()
	ctx := context.Background()

	sqlite, err := store.OpenSQLite(ctx, filepath.Join(t.TempDir(), "overrides.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	mr := miniredis.RunT(t)
	rdb, err := store.OpenRedis(ctx, config.RedisConfig{Addr: mr.Addr(), Prefix: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"sqlite": sqlite,
		"redis":  rdb,
	}
}

func TestStore_SetListDelete(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ts := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)

			list, err := s.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, list)

			require.NoError(t, s.Set(ctx, override.Override{
				Name: "osd_max_backfills", Section: "osd.1", Value: "4", UpdatedAt: ts,
			}))
			require.NoError(t, s.Set(ctx, override.Override{
				Name: "osd_max_backfills", Section: "osd", Value: "2", UpdatedAt: ts,
			}))
			require.NoError(t, s.Set(ctx, override.Override{
				Name: "mon_allow_pool_delete", Section: "mon", Value: "true", UpdatedAt: ts,
			}))

			list, err = s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, "mon/mon_allow_pool_delete", list[0].Key())
			assert.Equal(t, "osd/osd_max_backfills", list[1].Key())
			assert.Equal(t, "osd.1/osd_max_backfills", list[2].Key())
			assert.True(t, ts.Equal(list[0].UpdatedAt), "UpdatedAt = %v, want %v", list[0].UpdatedAt, ts)

			require.NoError(t, s.Delete(ctx, "osd", "osd_max_backfills"))

			list, err = s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
		})
	}
}

func TestStore_SetReplaces(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, override.Override{Name: "mon_allow_pool_delete", Section: "mon", Value: "true"}))
			require.NoError(t, s.Set(ctx, override.Override{Name: "mon_allow_pool_delete", Section: "mon", Value: "false"}))

			list, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "false", list[0].Value)
		})
	}
}

func TestStore_DeleteMissing(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := s.Delete(context.Background(), "mon", "fantasy_name")
			require.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestStore_SetRejectsIncompleteKey(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := s.Set(context.Background(), override.Override{Name: "", Section: "mon", Value: "x"})
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "override-store", s.Name())
			assert.NoError(t, s.HealthCheck(context.Background()))
		})
	}
}

func TestRedis_HealthCheckFailsWhenServerDown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb, err := store.OpenRedis(ctx, config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	mr.Close()

	err = rdb.HealthCheck(ctx)
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestRedis_UsesPrefixedHash(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb, err := store.OpenRedis(ctx, config.RedisConfig{Addr: mr.Addr(), Prefix: "ceph"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, rdb.Set(ctx, override.Override{Name: "mon_allow_pool_delete", Section: "mon", Value: "true"}))

	raw := mr.HGet("ceph:overrides", "mon/mon_allow_pool_delete")
	assert.Contains(t, raw, `"value":"true"`)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "overrides.db")

	s, err := store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, override.Override{Name: "osd_max_backfills", Section: "osd", Value: "3"}))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "3", list[0].Value)
}

func TestOpen_SelectsDriver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := store.Open(ctx, &config.StoreConfig{Driver: config.StoreDriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &store.Memory{}, s)

	s, err = store.Open(ctx, &config.StoreConfig{
		Driver: config.StoreDriverSQLite,
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "o.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	assert.IsType(t, &store.SQLite{}, s)

	_, err = store.Open(ctx, &config.StoreConfig{Driver: "etcd"})
	require.Error(t, err)
}
