package kd

// node holds one point identifier and splits the subtree on the given
// axis (0=x, 1=y, 2=z).
type node struct {
	id    int
	axis  int
	left  *node
	right *node
}
