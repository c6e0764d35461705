// Package db keeps extraction runs, their feature vectors and failures in a
// SQLite file.
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "page-signals.db"

// pragmas run on every new connection in the pool.
var pragmas = []string{"busy_timeout(5000)", "foreign_keys(1)"}

type DB struct {
	*sql.DB
	path string
}

// DefaultPath is the database file next to the running binary.
func DefaultPath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), DefaultDBName), nil
}

// Open opens the database at path and creates its tables on first use. An
// empty path selects DefaultPath.
func Open(path string) (*DB, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	conn, err := connect(path)
	if err != nil {
		return nil, err
	}
	db := &DB{DB: conn, path: path}
	if err := db.ensureSchemaExists(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema in %s: %w", path, err)
	}
	return db, nil
}

func connect(path string) (*sql.DB, error) {
	dsn := path + "?" + url.Values{"_pragma": pragmas}.Encode()
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return conn, nil
}

// ensureSchemaExists creates the tables unless the vectors table is present.
func (db *DB) ensureSchemaExists() error {
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='vectors'").Scan(&name)
	switch {
	case err == sql.ErrNoRows:
		return db.InitSchema()
	case err != nil:
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

func (db *DB) Path() string { return db.path }

// InitSchema creates every table and index.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
