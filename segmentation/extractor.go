package segmentation

import (
	"fmt"

	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/search"
)

// Extractor holds the configuration for repeated plain Euclidean cluster
// extraction over a registered cloud: the search index handle, the
// spatial tolerance and the cluster size bounds. Setters perform no
// cross-field validation; nonsensical combinations (for example max <
// min) simply yield no clusters.
type Extractor struct {
	cloud     *cloud.PointCloud
	subset    []int
	index     search.Index
	tolerance float64
	minSize   int
	maxSize   int
}

// NewExtractor returns an extractor with minimum cluster size 1 and no
// maximum.
func NewExtractor() *Extractor {
	return &Extractor{minSize: 1}
}

// SetInputCloud registers the cloud to extract from.
func (e *Extractor) SetInputCloud(c *cloud.PointCloud) { e.cloud = c }

// InputCloud returns the registered cloud.
func (e *Extractor) InputCloud() *cloud.PointCloud { return e.cloud }

// SetIndices restricts extraction to a subset of cloud identifiers; nil
// restores the whole-cloud view. The search index must be built over the
// same subset.
func (e *Extractor) SetIndices(subset []int) { e.subset = subset }

// Indices returns the registered subset, or nil for the whole cloud.
func (e *Extractor) Indices() []int { return e.subset }

// SetSearchIndex registers the radius-search index handle. The index is
// borrowed, never mutated.
func (e *Extractor) SetSearchIndex(index search.Index) { e.index = index }

// SearchIndex returns the registered index handle.
func (e *Extractor) SearchIndex() search.Index { return e.index }

// SetClusterTolerance sets the spatial tolerance (L2 radius).
func (e *Extractor) SetClusterTolerance(tolerance float64) { e.tolerance = tolerance }

// ClusterTolerance returns the spatial tolerance.
func (e *Extractor) ClusterTolerance() float64 { return e.tolerance }

// SetMinClusterSize sets the minimum size a cluster needs to be emitted.
func (e *Extractor) SetMinClusterSize(size int) { e.minSize = size }

// MinClusterSize returns the minimum cluster size.
func (e *Extractor) MinClusterSize() int { return e.minSize }

// SetMaxClusterSize sets the maximum size a cluster may have to be
// emitted; size <= 0 means no upper bound.
func (e *Extractor) SetMaxClusterSize(size int) { e.maxSize = size }

// MaxClusterSize returns the maximum cluster size (<= 0: unbounded).
func (e *Extractor) MaxClusterSize() int { return e.maxSize }

// Extract runs plain Euclidean cluster extraction over the registered
// cloud, or over its registered subset when one is set.
func (e *Extractor) Extract() ([]Cluster, error) {
	if e.cloud == nil {
		return nil, fmt.Errorf("segmentation: no input cloud registered")
	}
	if e.index == nil {
		return nil, fmt.Errorf("segmentation: no search index registered")
	}
	if e.subset != nil {
		return GrowSubset(e.cloud, e.subset, AcceptAll, e.index, e.tolerance, e.minSize, e.maxSize)
	}
	return Grow(e.cloud, AcceptAll, e.index, e.tolerance, e.minSize, e.maxSize)
}
