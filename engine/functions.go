package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// RegisterPointFunctions registers point_l2 and cluster_size with the
// driver so they are available on connections opened after this call.
// point_l2 computes the Euclidean distance between two XYZ float32 BLOBs
// as written by the store; cluster_size counts the identifiers in a
// cluster indices BLOB. Existing open connections will not see new
// functions.
func RegisterPointFunctions(_ *sql.DB) error {
	// Idempotent registration; the driver rejects duplicates, which we ignore.
	_ = sqlite.RegisterDeterministicScalarFunction("point_l2", 2, pointL2Impl)
	_ = sqlite.RegisterDeterministicScalarFunction("cluster_size", 1, clusterSizeImpl)
	return nil
}

func asFloats(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeFloats(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T; want BLOB", arg)
	}
}

func pointL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("point_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asFloats(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFloats(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("point_l2: dimension mismatch %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

func clusterSizeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("cluster_size: expected 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v)%4 != 0 {
			return nil, fmt.Errorf("cluster_size: invalid indices blob length %d", len(v))
		}
		return int64(len(v) / 4), nil
	default:
		return nil, fmt.Errorf("cluster_size: unsupported argument type %T; want BLOB", args[0])
	}
}

// decodeFloats mirrors the store's float32 BLOB layout locally to avoid
// an import cycle in tests.
func decodeFloats(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("engine: invalid float blob length %d", len(b))
	}
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
