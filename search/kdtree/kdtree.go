package kdtree

import (
	"fmt"

	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/internal/kd"
	"github.com/viant/cloudseg/search"
)

// Index answers radius queries through a balanced 3-D kd-tree. Results
// are ordered by ascending distance, so the first result of a successful
// query is the query point itself.
type Index struct {
	cloud  *cloud.PointCloud
	subset []int
	member map[int]bool
	tree   *kd.Tree
}

// New builds a kd-tree over the whole cloud.
func New(c *cloud.PointCloud) *Index {
	ids := make([]int, c.Len())
	for i := range ids {
		ids[i] = i
	}
	return &Index{cloud: c, tree: kd.Build(ids, c.At)}
}

// NewWithIndices builds a kd-tree restricted to the given subset of cloud
// identifiers. Queries must target subset members. The subset is copied.
func NewWithIndices(c *cloud.PointCloud, subset []int) *Index {
	ids := append([]int(nil), subset...)
	member := make(map[int]bool, len(subset))
	for _, id := range subset {
		member[id] = true
	}
	return &Index{
		cloud:  c,
		subset: append([]int(nil), subset...),
		member: member,
		tree:   kd.Build(ids, c.At),
	}
}

// RadiusSearch returns all indexed points within radius of point id,
// sorted by ascending distance, as global cloud identifiers.
func (i *Index) RadiusSearch(id int, radius float64) ([]int, []float32, error) {
	if radius <= 0 {
		return nil, nil, fmt.Errorf("kdtree: non-positive radius %v", radius)
	}
	if id < 0 || id >= i.cloud.Len() {
		return nil, nil, fmt.Errorf("kdtree: point id %d out of range [0,%d)", id, i.cloud.Len())
	}
	if i.member != nil && !i.member[id] {
		return nil, nil, fmt.Errorf("kdtree: point id %d is not part of the indexed subset", id)
	}
	ids, dists := i.tree.RadiusSearch(id, i.cloud.At(id), float32(radius))
	return ids, dists, nil
}

// SortedResults reports true: results are ordered by ascending distance.
func (i *Index) SortedResults() bool { return true }

// CloudSize returns the number of points in the backing cloud.
func (i *Index) CloudSize() int { return i.cloud.Len() }

// Indices returns the registered subset, or nil for the whole cloud.
func (i *Index) Indices() []int { return i.subset }

// Ensure Index satisfies the search contract.
var _ search.Index = (*Index)(nil)
