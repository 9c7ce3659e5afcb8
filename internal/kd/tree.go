package kd

import (
	"sort"

	"github.com/viant/vec/search"
)

// Tree is a 3-dimensional kd-tree over point identifiers. The tree does
// not own point storage; coordinates are resolved through the lookup
// callback supplied at build time, which must stay valid and immutable
// for the tree's lifetime.
type Tree struct {
	at   func(id int) []float32
	root *node
}

// Build constructs a balanced tree by recursive median split over ids.
// ids is reordered in place.
func Build(ids []int, at func(id int) []float32) *Tree {
	t := &Tree{at: at}
	t.root = t.build(ids, 0)
	return t
}

func (t *Tree) build(ids []int, axis int) *node {
	if len(ids) == 0 {
		return nil
	}
	sort.Slice(ids, func(a, b int) bool {
		return t.at(ids[a])[axis] < t.at(ids[b])[axis]
	})
	mid := len(ids) / 2
	n := &node{id: ids[mid], axis: axis}
	next := (axis + 1) % 3
	n.left = t.build(ids[:mid], next)
	n.right = t.build(ids[mid+1:], next)
	return n
}

type hit struct {
	id   int
	dist float32
}

// RadiusSearch returns the identifiers of all indexed points within
// radius of the point queryID at target, ordered by ascending distance,
// with their distances. Coincident points tie at distance zero; the
// query point itself always sorts first.
func (t *Tree) RadiusSearch(queryID int, target []float32, radius float32) ([]int, []float32) {
	var hits []hit
	t.search(t.root, target, radius, &hits)
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].dist != hits[b].dist {
			return hits[a].dist < hits[b].dist
		}
		return hits[a].id == queryID && hits[b].id != queryID
	})
	ids := make([]int, len(hits))
	dists := make([]float32, len(hits))
	for i, h := range hits {
		ids[i] = h.id
		dists[i] = h.dist
	}
	return ids, dists
}

func (t *Tree) search(n *node, target []float32, radius float32, hits *[]hit) {
	if n == nil {
		return
	}
	p := t.at(n.id)
	if d := search.Float32s(target).EuclideanDistance(p); d <= radius {
		*hits = append(*hits, hit{id: n.id, dist: d})
	}
	// Only cross the splitting plane when the ball around target reaches it.
	delta := target[n.axis] - p[n.axis]
	if delta <= 0 {
		t.search(n.left, target, radius, hits)
		if -delta <= radius {
			t.search(n.right, target, radius, hits)
		}
	} else {
		t.search(n.right, target, radius, hits)
		if delta <= radius {
			t.search(n.left, target, radius, hits)
		}
	}
}
