package bruteforce

import (
	"fmt"

	"github.com/viant/cloudseg/cloud"
	searchapi "github.com/viant/cloudseg/search"
	"github.com/viant/vec/search"
)

// Index answers radius queries by scanning every indexed point. Results
// come back in indexing order, not sorted by distance.
type Index struct {
	cloud  *cloud.PointCloud
	subset []int
}

// New builds a brute-force index over the whole cloud.
func New(c *cloud.PointCloud) *Index {
	return &Index{cloud: c}
}

// NewWithIndices builds a brute-force index restricted to the given
// subset of cloud identifiers. The subset is copied.
func NewWithIndices(c *cloud.PointCloud, subset []int) *Index {
	return &Index{cloud: c, subset: append([]int(nil), subset...)}
}

// RadiusSearch scans the indexed points and returns all lying within
// radius of point id, as global cloud identifiers with their distances.
func (i *Index) RadiusSearch(id int, radius float64) ([]int, []float32, error) {
	if radius <= 0 {
		return nil, nil, fmt.Errorf("bruteforce: non-positive radius %v", radius)
	}
	if id < 0 || id >= i.cloud.Len() {
		return nil, nil, fmt.Errorf("bruteforce: point id %d out of range [0,%d)", id, i.cloud.Len())
	}
	target := search.Float32s(i.cloud.At(id))
	r := float32(radius)
	var ids []int
	var dists []float32
	scan := func(j int) {
		if d := target.EuclideanDistance(i.cloud.At(j)); d <= r {
			ids = append(ids, j)
			dists = append(dists, d)
		}
	}
	if i.subset != nil {
		for _, j := range i.subset {
			scan(j)
		}
	} else {
		for j := 0; j < i.cloud.Len(); j++ {
			scan(j)
		}
	}
	return ids, dists, nil
}

// SortedResults reports false: results follow indexing order.
func (i *Index) SortedResults() bool { return false }

// CloudSize returns the number of points in the backing cloud.
func (i *Index) CloudSize() int { return i.cloud.Len() }

// Indices returns the registered subset, or nil for the whole cloud.
func (i *Index) Indices() []int { return i.subset }

// Ensure Index satisfies the search contract.
var _ searchapi.Index = (*Index)(nil)
