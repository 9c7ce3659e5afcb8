// Package store persists point clouds and their extracted clusters in
// SQLite so downstream labelling stages can consume them out of process.
// It includes:
//   - Store: durable storage keyed by the cloud's provenance tag
//   - Schema helpers for the clouds and clusters tables
//   - BLOB codecs for XYZ point buffers and cluster index lists
package store
