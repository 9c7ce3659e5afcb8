// Package cloud defines the point-cloud data model shared by this module:
// an append-only XYZ cloud with stable integer point identifiers, a
// provenance tag copied onto extracted clusters, and optional per-point
// unit surface normals.
package cloud
