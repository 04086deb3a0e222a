package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
	"github.com/jsamuelsen11/clusterconf/internal/platform/config"
	"github.com/jsamuelsen11/clusterconf/internal/platform/logging"
)

const defaultRedisPrefix = "clusterconf"

// Redis stores all overrides of a cluster in one hash at "<prefix>:overrides".
// Hash fields are "section/name" keys; values are JSON records.
type Redis struct {
	client *redis.Client
	key    string
}

type redisRecord struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpenRedis connects to the server described by cfg and verifies it with PING.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address cannot be empty")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis %s: %w", cfg.Addr, err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "override store opened",
		slog.String("driver", "redis"),
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
	)

	return &Redis{client: client, key: prefix + ":overrides"}, nil
}

// List returns every override ordered by name, then section.
func (r *Redis) List(ctx context.Context) ([]override.Override, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, unavailable("listing overrides", err)
	}

	list := make([]override.Override, 0, len(fields))
	for field, raw := range fields {
		section, name, ok := override.SplitKey(field)
		if !ok {
			logging.FromContext(ctx).WarnContext(ctx, "skipping malformed override field",
				slog.String("operation", "store.Redis.List"),
				slog.String("field", field),
			)
			continue
		}

		var rec redisRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decoding override %s: %w", field, err)
		}
		list = append(list, override.Override{
			Name:      name,
			Section:   section,
			Value:     rec.Value,
			UpdatedAt: rec.UpdatedAt,
		})
	}

	override.Sort(list)
	return list, nil
}

// Set creates or replaces the override for (o.Section, o.Name).
func (r *Redis) Set(ctx context.Context, o override.Override) error {
	if err := o.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(redisRecord{Value: o.Value, UpdatedAt: o.UpdatedAt})
	if err != nil {
		return fmt.Errorf("encoding override %s: %w", o.Key(), err)
	}
	if err := r.client.HSet(ctx, r.key, o.Key(), raw).Err(); err != nil {
		return unavailable("storing override "+o.Key(), err)
	}
	return nil
}

// Delete removes the override for (section, name).
func (r *Redis) Delete(ctx context.Context, section, name string) error {
	key := override.Key(section, name)

	n, err := r.client.HDel(ctx, r.key, key).Result()
	if err != nil {
		return unavailable("deleting override "+key, err)
	}
	if n == 0 {
		return fmt.Errorf("override %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string { return healthName }

// HealthCheck pings the server.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable("redis ping", err)
	}
	return nil
}
