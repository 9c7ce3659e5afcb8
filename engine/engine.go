package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver. The
// returned handle is what store.New expects for persisting clouds and
// their cluster sets.
//
// For a file-backed store, pass a path like "./clusters.sqlite". For an
// in-memory store, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }
