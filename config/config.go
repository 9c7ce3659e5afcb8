package config

import (
	"fmt"
	"math"
	"os"

	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/search"
	"github.com/viant/cloudseg/search/bruteforce"
	"github.com/viant/cloudseg/search/kdtree"
	"github.com/viant/cloudseg/segmentation"
	"gopkg.in/yaml.v3"
)

// Index kinds accepted by Params.Index.
const (
	IndexKDTree     = "kdtree"
	IndexBruteforce = "bruteforce"
)

// Params holds the tunable parameters of a cluster extraction run.
type Params struct {
	// Tolerance is the spatial cluster tolerance (L2 radius).
	Tolerance float64 `yaml:"tolerance"`

	// MinClusterSize is the minimum number of points a cluster needs to
	// be emitted.
	MinClusterSize int `yaml:"min_cluster_size"`

	// MaxClusterSize caps emitted cluster sizes; <= 0 means no bound.
	MaxClusterSize int `yaml:"max_cluster_size,omitempty"`

	// MaxNormalAngleDeg enables normal-deviation gating when > 0; the
	// value is the maximum angular deviation in degrees.
	MaxNormalAngleDeg float64 `yaml:"max_normal_angle_deg,omitempty"`

	// Index selects the radius-search implementation: "kdtree" (default)
	// or "bruteforce".
	Index string `yaml:"index,omitempty"`
}

// Default returns the parameters used when a field is left unset: a 2 cm
// tolerance, single-point minimum, unbounded maximum, kd-tree index.
func Default() Params {
	return Params{Tolerance: 0.02, MinClusterSize: 1, Index: IndexKDTree}
}

// Load reads YAML parameters from path, applying defaults for unset
// fields.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	return Parse(data)
}

// Parse unmarshals YAML parameters, applying defaults for unset fields
// and validating the index kind.
func Parse(data []byte) (Params, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("config: %w", err)
	}
	switch p.Index {
	case IndexKDTree, IndexBruteforce:
	case "":
		p.Index = IndexKDTree
	default:
		return Params{}, fmt.Errorf("config: unknown index kind %q", p.Index)
	}
	return p, nil
}

// MaxNormalAngle returns MaxNormalAngleDeg in radians.
func (p Params) MaxNormalAngle() float64 {
	return p.MaxNormalAngleDeg * math.Pi / 180
}

// NewIndex builds the configured radius-search index over the cloud.
func (p Params) NewIndex(c *cloud.PointCloud) (search.Index, error) {
	switch p.Index {
	case IndexBruteforce:
		return bruteforce.New(c), nil
	case IndexKDTree, "":
		return kdtree.New(c), nil
	default:
		return nil, fmt.Errorf("config: unknown index kind %q", p.Index)
	}
}

// Extractor returns a segmentation.Extractor configured with the params,
// the cloud and a freshly built index.
func (p Params) Extractor(c *cloud.PointCloud) (*segmentation.Extractor, error) {
	index, err := p.NewIndex(c)
	if err != nil {
		return nil, err
	}
	e := segmentation.NewExtractor()
	e.SetInputCloud(c)
	e.SetSearchIndex(index)
	e.SetClusterTolerance(p.Tolerance)
	e.SetMinClusterSize(p.MinClusterSize)
	e.SetMaxClusterSize(p.MaxClusterSize)
	return e, nil
}
