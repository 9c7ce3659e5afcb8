package segmentation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/cloudseg/cloud"
	"github.com/viant/cloudseg/search"
	"github.com/viant/cloudseg/search/bruteforce"
	"github.com/viant/cloudseg/search/kdtree"
)

func makeCloud(t *testing.T, name string, pts [][3]float32) *cloud.PointCloud {
	t.Helper()
	c := cloud.New(name)
	for _, p := range pts {
		c.Append(p[0], p[1], p[2])
	}
	return c
}

// twoGroups returns a cloud with two well-separated groups: a line of 3
// points around the origin and a line of 7 points around x=10, each with
// 0.2 spacing.
func twoGroups(t *testing.T) *cloud.PointCloud {
	t.Helper()
	c := cloud.New("two-groups")
	for i := 0; i < 3; i++ {
		c.Append(float32(i)*0.2, 0, 0)
	}
	for i := 0; i < 7; i++ {
		c.Append(10+float32(i)*0.2, 0, 0)
	}
	return c
}

// canonicalPartition renders clusters as sorted member coordinate lists,
// sorted across clusters, so partitions can be compared independently of
// identifier assignment and emission order.
func canonicalPartition(c *cloud.PointCloud, clusters []Cluster) [][]string {
	out := make([][]string, 0, len(clusters))
	for _, cl := range clusters {
		members := make([]string, 0, len(cl.Indices))
		for _, id := range cl.Indices {
			p := c.At(id)
			members = append(members, fmt.Sprintf("%.3f/%.3f/%.3f", p[0], p[1], p[2]))
		}
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Join(out[i], " ") < strings.Join(out[j], " ")
	})
	return out
}

func TestExtractClusters_TwoGroups(t *testing.T) {
	c := twoGroups(t)
	clusters, err := ExtractClusters(c, kdtree.New(c), 0.5, 1, 0)
	require.NoError(t, err)
	require.Len(t, clusters, 2)

	// Seed order: the group containing point 0 comes first.
	assert.Equal(t, 3, clusters[0].Len())
	assert.Equal(t, 7, clusters[1].Len())
	assert.Equal(t, 0, clusters[0].Indices[0])
	assert.Equal(t, c.Tag(), clusters[0].Origin)
	assert.Equal(t, c.Tag(), clusters[1].Origin)
}

func TestExtractClusters_PartitionProperty(t *testing.T) {
	c := twoGroups(t)
	clusters, err := ExtractClusters(c, bruteforce.New(c), 0.5, 1, 0)
	require.NoError(t, err)

	seen := make(map[int]bool)
	total := 0
	for _, cl := range clusters {
		for _, id := range cl.Indices {
			assert.False(t, seen[id], "point %d appears in more than one cluster", id)
			seen[id] = true
			total++
		}
	}
	assert.Equal(t, c.Len(), total)
}

func TestExtractClusters_MinSizeDropsGroupEntirely(t *testing.T) {
	c := twoGroups(t)
	clusters, err := ExtractClusters(c, kdtree.New(c), 0.5, 5, 0)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, 7, clusters[0].Len())

	// The dropped group's points must not resurface anywhere.
	for _, cl := range clusters {
		for _, id := range cl.Indices {
			assert.GreaterOrEqual(t, id, 3)
		}
	}
}

func TestExtractClusters_MaxSize(t *testing.T) {
	c := twoGroups(t)
	clusters, err := ExtractClusters(c, kdtree.New(c), 0.5, 1, 5)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, 3, clusters[0].Len())
}

func TestExtractClusters_SinglePoint(t *testing.T) {
	c := makeCloud(t, "lonely", [][3]float32{{1, 2, 3}})
	for _, index := range []search.Index{kdtree.New(c), bruteforce.New(c)} {
		clusters, err := ExtractClusters(c, index, 0.5, 1, 0)
		require.NoError(t, err)
		require.Len(t, clusters, 1)
		assert.Equal(t, []int{0}, clusters[0].Indices)
	}
}

func TestExtractClusters_EmptyCloud(t *testing.T) {
	c := cloud.New("empty")
	clusters, err := ExtractClusters(c, bruteforce.New(c), 0.5, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestExtract_SortedAndUnsortedIndexesAgree(t *testing.T) {
	c := randomCloud(t, 200, 3)
	sorted, err := ExtractClusters(c, kdtree.New(c), 0.6, 1, 0)
	require.NoError(t, err)
	unsorted, err := ExtractClusters(c, bruteforce.New(c), 0.6, 1, 0)
	require.NoError(t, err)

	diff := cmp.Diff(canonicalPartition(c, sorted), canonicalPartition(c, unsorted))
	assert.Empty(t, diff)
}

func TestExtract_CoincidentPointsSortedAndUnsortedAgree(t *testing.T) {
	// Duplicate points tie at distance zero; the sorted index must still
	// put the query point first or startOffset would skip a real neighbor.
	c := makeCloud(t, "coincident", [][3]float32{
		{1, 1, 1}, {1, 1, 1},
		{2, 2, 2}, {2, 2, 2}, {2, 2, 2},
		{9, 9, 9},
	})
	sorted, err := ExtractClusters(c, kdtree.New(c), 0.5, 1, 0)
	require.NoError(t, err)
	unsorted, err := ExtractClusters(c, bruteforce.New(c), 0.5, 1, 0)
	require.NoError(t, err)

	require.Len(t, sorted, 3)
	assert.Equal(t, []int{0, 1}, sorted[0].Indices)
	assert.ElementsMatch(t, []int{2, 3, 4}, sorted[1].Indices)
	diff := cmp.Diff(canonicalPartition(c, sorted), canonicalPartition(c, unsorted))
	assert.Empty(t, diff)
}

func TestExtract_PermutationInvariant(t *testing.T) {
	pts := [][3]float32{
		{0, 0, 0}, {0.2, 0, 0}, {0.4, 0, 0},
		{5, 5, 5}, {5.2, 5, 5},
		{-3, 0, 1},
	}
	c := makeCloud(t, "original", pts)
	clusters, err := ExtractClusters(c, kdtree.New(c), 0.5, 1, 0)
	require.NoError(t, err)

	perm := rand.New(rand.NewSource(7)).Perm(len(pts))
	shuffled := make([][3]float32, len(pts))
	for i, j := range perm {
		shuffled[i] = pts[j]
	}
	c2 := makeCloud(t, "shuffled", shuffled)
	clusters2, err := ExtractClusters(c2, kdtree.New(c2), 0.5, 1, 0)
	require.NoError(t, err)

	diff := cmp.Diff(canonicalPartition(c, clusters), canonicalPartition(c2, clusters2))
	assert.Empty(t, diff)
}

func randomCloud(t *testing.T, n int, spread float64) *cloud.PointCloud {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	c := cloud.New("random")
	for i := 0; i < n; i++ {
		c.Append(
			float32(rng.Float64()*spread),
			float32(rng.Float64()*spread),
			float32(rng.Float64()*spread),
		)
	}
	return c
}

// stubIndex lets tests misreport sizes and inject per-query failures
// around an optional real index.
type stubIndex struct {
	inner     search.Index
	cloudSize int
	indices   []int
	sorted    bool
	failFor   map[int]bool
}

func (s *stubIndex) RadiusSearch(id int, radius float64) ([]int, []float32, error) {
	if s.failFor[id] {
		return nil, nil, errors.New("stub: query failure")
	}
	if s.inner != nil {
		return s.inner.RadiusSearch(id, radius)
	}
	return nil, nil, nil
}

func (s *stubIndex) SortedResults() bool { return s.sorted }
func (s *stubIndex) CloudSize() int      { return s.cloudSize }
func (s *stubIndex) Indices() []int      { return s.indices }

func TestGrow_CloudSizeMismatchAborts(t *testing.T) {
	c := twoGroups(t)
	clusters, err := Grow(c, AcceptAll, &stubIndex{cloudSize: c.Len() + 1}, 0.5, 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different cloud size")
	assert.Nil(t, clusters)
}

func TestGrowSubset_SubsetSizeMismatchAborts(t *testing.T) {
	c := twoGroups(t)
	subset := []int{0, 1, 2}
	index := &stubIndex{cloudSize: c.Len(), indices: []int{0, 1}}
	clusters, err := GrowSubset(c, subset, AcceptAll, index, 0.5, 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different subset size")
	assert.Nil(t, clusters)
}

func TestGrow_QueryFailureSkipsMemberOnly(t *testing.T) {
	// A chain 0-1-2 with 0.4 spacing and tolerance 0.5: point 2 is only
	// reachable through point 1. Failing the query at 1 must leave {0,1}
	// as one cluster and let 2 reseed, not abort the extraction.
	c := makeCloud(t, "chain", [][3]float32{{0, 0, 0}, {0.4, 0, 0}, {0.8, 0, 0}})
	index := &stubIndex{
		inner:     bruteforce.New(c),
		cloudSize: c.Len(),
		failFor:   map[int]bool{1: true},
	}
	clusters, err := Grow(c, AcceptAll, index, 0.5, 1, 0)
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 1}, clusters[0].Indices)
	assert.Equal(t, []int{2}, clusters[1].Indices)
}

func TestExtractClustersSubset(t *testing.T) {
	c := twoGroups(t)
	subset := []int{3, 4, 5, 6, 7, 8, 9}
	for _, index := range []search.Index{
		kdtree.NewWithIndices(c, subset),
		bruteforce.NewWithIndices(c, subset),
	} {
		clusters, err := ExtractClustersSubset(c, subset, index, 0.5, 1, 0)
		require.NoError(t, err)
		require.Len(t, clusters, 1)
		assert.Equal(t, 7, clusters[0].Len())
		// Identifiers stay global.
		assert.Equal(t, 3, clusters[0].Indices[0])
	}
}

func TestGrowSubset_LeavesOtherPointsUntouched(t *testing.T) {
	c := twoGroups(t)
	subset := []int{0, 1, 2}
	clusters, err := GrowSubset(c, subset, AcceptAll, kdtree.NewWithIndices(c, subset), 0.5, 1, 0)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.ElementsMatch(t, subset, clusters[0].Indices)
}
