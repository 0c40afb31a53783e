package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/shared"
)

// KV abstracts single-key blob storage so stores can be tested against
// alternative backends.
type KV interface {
	// Get returns the value stored under key. The boolean reports presence;
	// an absent key is not an error.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value whole.
	Set(key string, value []byte) error
}

// KVRepository implements [KV] over a SQLite kv table.
type KVRepository struct {
	db *sql.DB
}

var _ KV = (*KVRepository)(nil)

// NewKVRepository creates a KVRepository with the given database connection
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get retrieves the value stored under key
func (r *KVRepository) Get(key string) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to read key %s: %v", shared.ErrStorage, key, err)
	}

	return []byte(value), true, nil
}

// Set upserts the value stored under key
func (r *KVRepository) Set(key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("%w: failed to write key %s: %v", shared.ErrStorage, key, err)
	}

	return nil
}
