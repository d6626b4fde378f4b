// Package store provides the durable key-value slots the expense
// collection is persisted to.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/iexpense/internal/expense"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite-backed key-value store.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Get returns the value stored under key, or expense.ErrNoData.
func (d *DB) Get(key string) ([]byte, error) {
	var value []byte
	err := d.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, expense.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

// Put replaces the value stored under key.
func (d *DB) Put(key string, value []byte) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return tx.Commit()
}

// Keys returns every stored key in lexical order.
func (d *DB) Keys() ([]string, error) {
	rows, err := d.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Slot returns the slot stored under key.
func (d *DB) Slot(key string) *Slot {
	return &Slot{db: d, key: key}
}

// Slot is one key of a DB, usable as an expense.Slot.
type Slot struct {
	db  *DB
	key string
}

// Load implements expense.Slot.
func (s *Slot) Load() ([]byte, error) {
	return s.db.Get(s.key)
}

// Save implements expense.Slot.
func (s *Slot) Save(data []byte) error {
	return s.db.Put(s.key, data)
}
