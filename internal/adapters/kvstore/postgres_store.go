package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/infrastructure/clients/postgres"
)

const kvTable = "kv_store"

// PostgresStore implements the KVStore interface on a single Postgres
// table, the same shape the hosted deployment uses: one row per record,
// key text primary key, value jsonb. Prefix scans are LIKE queries.
type PostgresStore struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresStore creates a new Postgres-backed store
func NewPostgresStore(client *postgres.Client) *PostgresStore {
	return &PostgresStore{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// EnsureSchema creates the kv_store table when it does not exist yet
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.client.DB().ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure kv_store schema: %w", err)
	}
	return nil
}

// Get returns the value stored under key
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.db.From(kvTable).
		Select(goqu.C("value")).
		Where(goqu.C("key").Eq(key)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	var value []byte
	if err := s.client.DB().QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, providers.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any previous row
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	record := goqu.Record{
		"key":        key,
		"value":      string(value),
		"updated_at": goqu.L("now()"),
	}

	query, args, err := s.db.Insert(kvTable).
		Rows(record).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      string(value),
			"updated_at": goqu.L("now()"),
		})).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build set query: %w", err)
	}

	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes the row under key
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.db.Delete(kvTable).
		Where(goqu.C("key").Eq(key)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns every value whose key starts with prefix
func (s *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	query, args, err := s.db.From(kvTable).
		Select(goqu.C("value")).
		Where(goqu.C("key").Like(escapeLikePattern(prefix) + "%")).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build prefix query: %w", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to read row for prefix %q: %w", prefix, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prefix %q: %w", prefix, err)
	}
	return values, nil
}

// escapeLikePattern escapes LIKE metacharacters so the prefix is matched
// literally.
func escapeLikePattern(prefix string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(prefix)
}
