package kv

import (
	"context"
	"log/slog"
	"time"

	"meet-scheduler/internal/pkg/config"
	"meet-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        text PRIMARY KEY,
	value      jsonb NOT NULL,
	expires_at timestamptz
);
CREATE INDEX IF NOT EXISTS kv_entries_expires_at_idx ON kv_entries (expires_at);
`

// Connect opens the pool, verifies connectivity and applies the schema.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to apply kv schema")
	}

	cleanup := func() {
		pool.Close()
		slog.Info("database pool closed")
	}
	return pool, cleanup, nil
}
