package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps one open connection to a single-file experiment store.
//
// The connection is not safe for concurrent use; callers run at most
// one logical operation against an open store at a time and must Close
// the store when the session ends.
type DB struct {
	dbx *sqlx.DB
}

// Open opens the store at path, creating the file and the schema if
// they do not exist. Creating tables is idempotent, so reopening an
// existing store is always safe.
func Open(path string) (*DB, error) {
	dbx, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, storageErr("open store", err)
	}

	if err := dbx.Ping(); err != nil {
		dbx.Close()
		return nil, storageErr("open store", fmt.Errorf("ping %s: %w", path, err))
	}

	for _, stmt := range createStatements {
		if _, err := dbx.Exec(stmt); err != nil {
			dbx.Close()
			return nil, storageErr("create tables", err)
		}
	}

	return &DB{dbx: dbx}, nil
}

func (db *DB) Close() error {
	return db.dbx.Close()
}

// Conn exposes the underlying sqlx handle.
func (db *DB) Conn() *sqlx.DB {
	return db.dbx
}
