// Package segmentation extracts connected spatial clusters from a point
// cloud by region growing over a radius-search index. Growth is gated by
// a merge predicate: plain Euclidean extraction accepts every in-radius
// neighbor, while the normal-deviation predicate additionally bounds the
// angular deviation between surface normals. Extraction is sequential and
// call-scoped; the cloud and index are never mutated.
package segmentation
