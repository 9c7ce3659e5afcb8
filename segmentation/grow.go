package segmentation

import (
	"fmt"

	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/search"
)

// Grow partitions the cloud into clusters by region growing: each
// unvisited point seeds a cluster, and the cluster expands through
// radius-query neighbors accepted by pred until no queued member yields
// further growth. Clusters whose finished size falls outside
// [minSize, maxSize] are discarded; their points stay visited and are
// never reassigned. maxSize <= 0 means no upper bound.
//
// The index must have been built over exactly the supplied cloud; a size
// mismatch aborts with an error before any point is processed.
func Grow(c *cloud.PointCloud, pred MergePredicate, index search.Index, tolerance float64, minSize, maxSize int) ([]Cluster, error) {
	if index.CloudSize() != c.Len() {
		return nil, fmt.Errorf("segmentation: index built over a different cloud size (%d) than the input cloud (%d)",
			index.CloudSize(), c.Len())
	}
	return grow(c, nil, pred, index, tolerance, minSize, maxSize), nil
}

// GrowSubset is Grow over the view restricted to the given subset of
// cloud identifiers, iterated in subset order. The index must have been
// built over a subset of the same size; only sizes are compared, content
// equality is the caller's responsibility.
func GrowSubset(c *cloud.PointCloud, subset []int, pred MergePredicate, index search.Index, tolerance float64, minSize, maxSize int) ([]Cluster, error) {
	if len(index.Indices()) != len(subset) {
		return nil, fmt.Errorf("segmentation: index built over a different subset size (%d) than the input set (%d)",
			len(index.Indices()), len(subset))
	}
	return grow(c, subset, pred, index, tolerance, minSize, maxSize), nil
}

// grow runs the region-growing loop. subset == nil means the whole cloud
// in natural order.
func grow(c *cloud.PointCloud, subset []int, pred MergePredicate, index search.Index, tolerance float64, minSize, maxSize int) []Cluster {
	// Sorted results start with the query point itself; skip it.
	startOffset := 0
	if index.SortedResults() {
		startOffset = 1
	}
	visited := make([]bool, c.Len())

	seedCount := c.Len()
	if subset != nil {
		seedCount = len(subset)
	}
	var clusters []Cluster
	for s := 0; s < seedCount; s++ {
		seed := s
		if subset != nil {
			seed = subset[s]
		}
		if visited[seed] {
			continue
		}

		// The member list doubles as the BFS queue: members appended
		// during the pass are expanded within the same pass.
		members := []int{seed}
		visited[seed] = true
		for q := 0; q < len(members); q++ {
			ids, _, err := index.RadiusSearch(members[q], tolerance)
			if err != nil {
				// Degenerate query: skip this member, keep growing
				// from the rest of the queue.
				continue
			}
			for pos := startOffset; pos < len(ids); pos++ {
				if visited[ids[pos]] {
					continue
				}
				if pred(c, seed, ids, pos) {
					members = append(members, ids[pos])
					visited[ids[pos]] = true
				}
			}
		}

		if len(members) >= minSize && (maxSize <= 0 || len(members) <= maxSize) {
			clusters = append(clusters, Cluster{Indices: members, Origin: c.Tag()})
		}
	}
	return clusters
}
