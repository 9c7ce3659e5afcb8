// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering SQL scalar
// functions over the store's point and index BLOB encodings, so cluster
// results persisted by the store can be inspected from plain SQL.
package engine
