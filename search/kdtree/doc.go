// Package kdtree provides a kd-tree radius-search index with
// distance-sorted results. It is the recommended index for extraction
// over clouds of more than a few hundred points.
package kdtree
