// Package kv implements the durable key-value capability the scheduler
// persists through: get/put/list-by-prefix with per-entry TTL, backed by a
// single Postgres table. Expired entries are invisible to readers and lazily
// reclaimed.
package kv

import (
	"context"
	"errors"
	"time"

	"meet-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports a missing or expired key.
var ErrNotFound = errs.New("key not found")

type Entry struct {
	Key   string
	Value []byte
}

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Put upserts; ttl <= 0 stores the entry without expiry.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	ListByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	Delete(ctx context.Context, key string) error
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_entries
		 WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to get kv entry")
	}
	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_entries (key, value, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		return errs.Wrap(err, "failed to put kv entry")
	}
	return nil
}

func (s *PostgresStore) ListByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT key, value FROM kv_entries
		 WHERE key LIKE $1 || '%' AND (expires_at IS NULL OR expires_at > now())
		 ORDER BY key`,
		prefix,
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list kv entries")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, errs.Wrap(err, "failed to scan kv entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate kv entries")
	}
	return entries, nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	if err != nil {
		return errs.Wrap(err, "failed to delete kv entry")
	}
	return nil
}
