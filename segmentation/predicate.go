package segmentation

import (
	"math"

	"github.com/viant/cloudseg/cloud"
	"gonum.org/v1/gonum/spatial/r3"
)

// MergePredicate decides whether the neighbor at position pos of the
// candidate list joins the cluster grown from seedID. neighbors holds the
// global identifiers returned by the radius query around the current
// cluster member. Predicates must be side-effect free; they may capture
// precomputed thresholds.
type MergePredicate func(c *cloud.PointCloud, seedID int, neighbors []int, pos int) bool

// AcceptAll admits every neighbor within the search radius, yielding
// plain Euclidean clustering.
func AcceptAll(*cloud.PointCloud, int, []int, int) bool { return true }

// NormalDeviation returns a predicate gating growth on the angular
// deviation between surface normals: a neighbor is admitted only when
// the angle between its normal and the seed's normal stays within
// maxAngle, i.e. |normal(seed) · normal(neighbor)| >= cos(maxAngle).
// Sign is ignored, so anti-parallel normals count as aligned. maxAngle
// is in radians; its absolute value is used, capped at π. Normals must
// be unit length: the dot product is not re-normalized.
func NormalDeviation(normals cloud.Normals, maxAngle float64) MergePredicate {
	cosMax := math.Cos(math.Min(math.Abs(maxAngle), math.Pi))
	return func(_ *cloud.PointCloud, seedID int, neighbors []int, pos int) bool {
		dot := r3.Dot(normals[seedID], normals[neighbors[pos]])
		return math.Abs(dot) >= cosMax
	}
}
