package segmentation

import (
	"sort"

	"github.com/viant/cloudseg/cloud"
)

// Cluster is an ordered set of point identifiers grown from a single
// seed, stamped with the provenance tag of its source cloud. Members
// appear in the order they were accepted during growth, seed first.
type Cluster struct {
	Indices []int
	Origin  cloud.Tag
}

// Len returns the number of member points.
func (c Cluster) Len() int { return len(c.Indices) }

// LessBySize orders two clusters by ascending member count.
func LessBySize(a, b Cluster) bool { return len(a.Indices) < len(b.Indices) }

// SortBySize sorts clusters in place by ascending member count.
// Extraction emits clusters in seed order; callers wanting size order
// sort explicitly.
func SortBySize(clusters []Cluster) {
	sort.Slice(clusters, func(i, j int) bool { return LessBySize(clusters[i], clusters[j]) })
}
