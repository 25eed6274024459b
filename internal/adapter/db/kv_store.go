package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

const (
	createMySQLTableQuery = `
CREATE TABLE IF NOT EXISTS kv_entries (
  entry_key VARCHAR(191) NOT NULL PRIMARY KEY,
  entry_value LONGTEXT NOT NULL,
  updated_at DATETIME(6) NOT NULL
);`

	createPostgresTableQuery = `
CREATE TABLE IF NOT EXISTS kv_entries (
  entry_key VARCHAR(191) NOT NULL PRIMARY KEY,
  entry_value TEXT NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);`

	getEntryQuery    = `SELECT entry_value FROM kv_entries WHERE entry_key = ?`
	deleteEntryQuery = `DELETE FROM kv_entries WHERE entry_key = ?`

	upsertMySQLQuery = `
INSERT INTO kv_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value), updated_at = VALUES(updated_at)`

	upsertPostgresQuery = `
INSERT INTO kv_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at`
)

// KVStore persists entries in the kv_entries table. The SQL dialect follows
// the driver the connection was opened with.
type KVStore struct {
	db *sqlx.DB
}

var _ ports.KeyValueStore = (*KVStore)(nil)

func NewKVStore(db *sqlx.DB) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema creates the kv_entries table when it does not exist.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	query := createMySQLTableQuery
	if s.isPostgres() {
		query = createPostgresTableQuery
	}
	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.db.Rebind(getEntryQuery), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := upsertMySQLQuery
	if s.isPostgres() {
		query = upsertPostgresQuery
	}
	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), key, string(value), time.Now().UTC())
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(deleteEntryQuery), key)
	return err
}

func (s *KVStore) isPostgres() bool {
	return s.db.DriverName() == "postgres"
}
