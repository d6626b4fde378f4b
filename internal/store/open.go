package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/theirongolddev/iexpense/internal/config"
	"github.com/theirongolddev/iexpense/internal/expense"
)

// File names created inside the data directory.
const (
	DBFileName   = "iexpense.db"
	JSONFileName = "items.json"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenSlot opens the expense slot for the configured backend. The
// returned closer releases the backend and must be closed by the caller.
func OpenSlot(cfg config.Config) (expense.Slot, io.Closer, error) {
	dir := config.DataDir(cfg)

	switch cfg.General.Backend {
	case config.BackendMemory:
		return &MemSlot{}, nopCloser{}, nil
	case config.BackendFile:
		return FileSlot{Path: filepath.Join(dir, JSONFileName)}, nopCloser{}, nil
	case config.BackendSQLite, "":
		db, err := Open(filepath.Join(dir, DBFileName))
		if err != nil {
			return nil, nil, err
		}
		return db.Slot(expense.SlotKey), db, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.General.Backend)
}

// StoredKeys lists the keys held by the configured SQLite database. It
// reports nothing for other backends or when the database does not exist
// yet, and never creates it.
func StoredKeys(cfg config.Config) ([]string, error) {
	if cfg.General.Backend != config.BackendSQLite && cfg.General.Backend != "" {
		return nil, nil
	}
	path := filepath.Join(config.DataDir(cfg), DBFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	return db.Keys()
}
