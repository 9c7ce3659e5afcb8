package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodePoints encodes a flat XYZ float32 buffer into a BLOB: a
// little-endian sequence of IEEE 754 float32 values without a length
// prefix; the length is derived from the BLOB size on decode.
func EncodePoints(pts []float32) ([]byte, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	b := make([]byte, len(pts)*4)
	for i, v := range pts {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b, nil
}

// DecodePoints decodes a BLOB produced by EncodePoints back into a flat
// float32 buffer.
func DecodePoints(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("store: invalid points blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	pts := make([]float32, n)
	for i := 0; i < n; i++ {
		pts[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return pts, nil
}

// EncodeIndices encodes cluster member identifiers as little-endian
// uint32 values, preserving order.
func EncodeIndices(ids []int) ([]byte, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	b := make([]byte, len(ids)*4)
	for i, id := range ids {
		if id < 0 || id > math.MaxUint32 {
			return nil, fmt.Errorf("store: point id %d does not fit the index encoding", id)
		}
		binary.LittleEndian.PutUint32(b[i*4:], uint32(id))
	}
	return b, nil
}

// DecodeIndices decodes a BLOB produced by EncodeIndices.
func DecodeIndices(b []byte) ([]int, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("store: invalid indices blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = int(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return ids, nil
}
