package store

import (
	"database/sql"
)

const cloudsSchema = `
CREATE TABLE IF NOT EXISTS clouds (
    id TEXT PRIMARY KEY,
    name TEXT,
    created_at TIMESTAMP,
    points BLOB
);
`

const clustersSchema = `
CREATE TABLE IF NOT EXISTS clusters (
    cloud_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    indices BLOB NOT NULL,
    PRIMARY KEY(cloud_id, seq)
);
`

// EnsureSchema creates the clouds and clusters tables in the provided
// database if they do not already exist. seq preserves seed order, the
// order extraction emitted the clusters in.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(cloudsSchema); err != nil {
		return err
	}
	_, err := db.Exec(clustersSchema)
	return err
}
