package search

// Index answers fixed-radius neighbor queries over a point cloud, or over
// a registered subset of it. An index is bound 1:1 to the cloud (and
// subset) it was built from and is read-only once built; callers own the
// index and lend it to consumers such as cluster extraction.
//
// Results always carry global cloud identifiers, whether or not the index
// was built over a subset.
type Index interface {
	// RadiusSearch returns the identifiers of the indexed points lying
	// within radius of the point id, together with their Euclidean
	// distances. Degenerate parameters (unknown id, non-positive radius)
	// yield an error; callers may treat such a failure as an empty
	// result for that one query.
	RadiusSearch(id int, radius float64) (ids []int, distances []float32, err error)

	// SortedResults reports whether RadiusSearch results are ordered by
	// ascending distance, in which case the first entry of a successful
	// query is the query point itself.
	SortedResults() bool

	// CloudSize returns the number of points in the backing cloud.
	CloudSize() int

	// Indices returns the subset of cloud identifiers the index was
	// built over, or nil when it covers the whole cloud.
	Indices() []int
}
