package cloud

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tag identifies the origin of a point cloud. Every finalized cluster
// carries a copy of the tag so downstream labelling stages can attribute
// their input to the cloud it was extracted from.
type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// PointCloud is an append-only sequence of XYZ points stored in a flat
// float32 buffer (x0,y0,z0,x1,...). A point's identifier is its position
// in the cloud; identifiers are stable for the cloud's lifetime. The
// cloud must not be mutated while an extraction or an index built over it
// is in flight.
type PointCloud struct {
	tag Tag
	pts []float32
}

// New returns an empty cloud tagged with a fresh UUID.
func New(name string) *PointCloud {
	return &PointCloud{tag: Tag{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}}
}

// NewWithTag returns an empty cloud carrying the supplied tag.
func NewWithTag(tag Tag) *PointCloud {
	return &PointCloud{tag: tag}
}

// FromPoints wraps an existing XYZ buffer. The buffer length must be a
// multiple of 3; ownership passes to the cloud.
func FromPoints(tag Tag, pts []float32) (*PointCloud, error) {
	if len(pts)%3 != 0 {
		return nil, fmt.Errorf("cloud: point buffer length %d is not a multiple of 3", len(pts))
	}
	return &PointCloud{tag: tag, pts: pts}, nil
}

// Tag returns the provenance tag.
func (c *PointCloud) Tag() Tag { return c.tag }

// Len returns the number of points.
func (c *PointCloud) Len() int { return len(c.pts) / 3 }

// Append adds a point and returns its identifier.
func (c *PointCloud) Append(x, y, z float32) int {
	id := c.Len()
	c.pts = append(c.pts, x, y, z)
	return id
}

// At returns the XYZ components of point id as a view into the cloud
// buffer. The returned slice must not be modified.
func (c *PointCloud) At(id int) []float32 {
	return c.pts[id*3 : id*3+3 : id*3+3]
}

// Points returns the backing XYZ buffer. The buffer must be treated as
// read-only; it is aliased by At and by any index built over the cloud.
func (c *PointCloud) Points() []float32 { return c.pts }
