package cloud

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Normals is a per-point field of surface normals parallel to a cloud,
// indexed by point identifier. Vectors are assumed pre-normalized to unit
// length; consumers compute dot products without re-normalizing.
type Normals []r3.Vec

// Check verifies the field annotates every point of c.
func (n Normals) Check(c *PointCloud) error {
	if len(n) != c.Len() {
		return fmt.Errorf("cloud: normal field length %d does not match cloud size %d", len(n), c.Len())
	}
	return nil
}
