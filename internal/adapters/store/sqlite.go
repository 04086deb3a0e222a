package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/platform/logging"
)

//go:embed sql/schema.sql
var sqliteSchema string

const (
	sqliteDirPerm = 0o750

	sqlListOverrides  = `SELECT section, name, value, updated_at FROM overrides ORDER BY name, section`
	sqlUpsertOverride = `INSERT INTO overrides (section, name, value, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT (section, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	sqlDeleteOverride = `DELETE FROM overrides WHERE section = ? AND name = ?`
)

// SQLite persists overrides in a single-file SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path, applies WAL
// pragmas and creates the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), sqliteDirPerm); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "override store opened",
		slog.String("driver", "sqlite"),
		slog.String("path", path),
	)

	return &SQLite{db: db}, nil
}

// List returns every override ordered by name, then section.
func (s *SQLite) List(ctx context.Context) ([]override.Override, error) {
	rows, err := s.db.QueryContext(ctx, sqlListOverrides)
	if err != nil {
		return nil, unavailable("listing overrides", err)
	}
	defer func() { _ = rows.Close() }()

	var list []override.Override
	for rows.Next() {
		var (
			o         override.Override
			updatedAt int64
		)
		if err := rows.Scan(&o.Section, &o.Name, &o.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}
		o.UpdatedAt = time.Unix(0, updatedAt).UTC()
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("listing overrides", err)
	}

	// SQL collation orders sections lexically; reapply section order.
	override.Sort(list)
	return list, nil
}

// Set creates or replaces the override for (o.Section, o.Name).
func (s *SQLite) Set(ctx context.Context, o override.Override) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, sqlUpsertOverride,
		o.Section, o.Name, o.Value, o.UpdatedAt.UnixNano(),
	); err != nil {
		return unavailable("storing override "+o.Key(), err)
	}
	return nil
}

// Delete removes the override for (section, name).
func (s *SQLite) Delete(ctx context.Context, section, name string) error {
	key := override.Key(section, name)

	res, err := s.db.ExecContext(ctx, sqlDeleteOverride, section, name)
	if err != nil {
		return unavailable("deleting override "+key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable("deleting override "+key, err)
	}
	if n == 0 {
		return fmt.Errorf("override %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *SQLite) Name() string { return healthName }

// HealthCheck pings the database.
func (s *SQLite) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("sqlite ping", err)
	}
	return nil
}

// unavailable wraps a backend failure so callers can match domain.ErrUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
}
