package segmentation

import (
	"math"

	"github.com/viant/cloudseg/cloud"
	"gonum.org/v1/gonum/spatial/r3"
)

// Centroid returns the arithmetic mean position of the cluster's members.
// An empty cluster yields the zero vector.
func Centroid(c *cloud.PointCloud, cl Cluster) r3.Vec {
	if len(cl.Indices) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, id := range cl.Indices {
		p := c.At(id)
		sum = r3.Add(sum, r3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
	}
	return r3.Scale(1/float64(len(cl.Indices)), sum)
}

// Bounds returns the axis-aligned bounding box of the cluster's members.
// An empty cluster yields two zero vectors.
func Bounds(c *cloud.PointCloud, cl Cluster) (min, max r3.Vec) {
	if len(cl.Indices) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, id := range cl.Indices {
		p := c.At(id)
		x, y, z := float64(p[0]), float64(p[1]), float64(p[2])
		min.X = math.Min(min.X, x)
		min.Y = math.Min(min.Y, y)
		min.Z = math.Min(min.Z, z)
		max.X = math.Max(max.X, x)
		max.Y = math.Max(max.Y, y)
		max.Z = math.Max(max.Z, z)
	}
	return min, max
}
