// Package bruteforce provides a radius-search index that answers queries
// by scanning all indexed points. It is the reference implementation of
// the search contract and deliberately reports unsorted results, so
// consumers exercise the path that cannot skip the self-match.
package bruteforce
