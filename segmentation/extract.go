package segmentation

import (
	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/search"
)

// ExtractClusters decomposes the cloud into clusters using plain
// Euclidean distance: every neighbor within tolerance is accepted.
// maxSize <= 0 means no upper bound on cluster size.
func ExtractClusters(c *cloud.PointCloud, index search.Index, tolerance float64, minSize, maxSize int) ([]Cluster, error) {
	return Grow(c, AcceptAll, index, tolerance, minSize, maxSize)
}

// ExtractClustersSubset restricts plain Euclidean extraction to the given
// subset of cloud identifiers. The index must have been built over a
// subset of the same size.
func ExtractClustersSubset(c *cloud.PointCloud, subset []int, index search.Index, tolerance float64, minSize, maxSize int) ([]Cluster, error) {
	return GrowSubset(c, subset, AcceptAll, index, tolerance, minSize, maxSize)
}

// ExtractClustersWithNormals additionally gates growth on the angular
// deviation between surface normals (see NormalDeviation). maxAngle is in
// radians. The normal field must annotate every point of the cloud.
func ExtractClustersWithNormals(c *cloud.PointCloud, normals cloud.Normals, index search.Index, tolerance, maxAngle float64, minSize, maxSize int) ([]Cluster, error) {
	if err := normals.Check(c); err != nil {
		return nil, err
	}
	return Grow(c, NormalDeviation(normals, maxAngle), index, tolerance, minSize, maxSize)
}

// ExtractClustersWithNormalsSubset is ExtractClustersWithNormals over a
// subset of cloud identifiers. An empty subset is a silent success with
// no clusters.
func ExtractClustersWithNormalsSubset(c *cloud.PointCloud, normals cloud.Normals, subset []int, index search.Index, tolerance, maxAngle float64, minSize, maxSize int) ([]Cluster, error) {
	if err := normals.Check(c); err != nil {
		return nil, err
	}
	if len(subset) == 0 {
		return nil, nil
	}
	return GrowSubset(c, subset, NormalDeviation(normals, maxAngle), index, tolerance, minSize, maxSize)
}
