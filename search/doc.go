// Package search defines the radius-search contract consumed by cluster
// extraction. Implementations in this module include a brute-force
// baseline and a kd-tree; any structure satisfying the contract (octree,
// grid, external service) is acceptable.
package search
