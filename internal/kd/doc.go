// Package kd implements the 3-D kd-tree backing the public kdtree index:
// balanced median-split construction and pruned fixed-radius search over
// externally stored points.
package kd
