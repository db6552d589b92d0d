package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// SQLiteKV keeps every key in a single-table SQLite database. It is an
// alternative to FileKV for users who prefer one database file over a
// directory of JSON files.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path, enables WAL
// journal mode, and ensures the kv table exists.
func OpenSQLite(path string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, errors.Wrap(err, "create database directory")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	if _, err := db.Exec(kvSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create kv table")
	}

	return &SQLiteKV{db: db}, nil
}

// Load reads the blob stored for key.
func (s *SQLiteKV) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "load key %s", key)
	}
	return data, true, nil
}

// Save replaces the blob stored for key.
func (s *SQLiteKV) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, data,
	)
	if err != nil {
		return errors.Wrapf(err, "save key %s", key)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
