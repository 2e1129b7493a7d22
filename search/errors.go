package search

import (
	"errors"
	"fmt"

	"github.com/arbortrace/voxelcore/voxel"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrInvalidEndpoint indicates start/goal out of bounds, or
	// spacings non-positive.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrInterrupted indicates the cancellation token tripped.
	ErrInterrupted = errors.New("search: interrupted")

	// ErrTimeout indicates the wall-clock budget was exceeded.
	ErrTimeout = errors.New("search: timeout")

	// ErrOracleFailure indicates a cost or heuristic oracle raised an
	// error; OracleFailure wraps the offending coordinate and the
	// underlying error.
	ErrOracleFailure = errors.New("search: oracle failure")

	// ErrNoPath indicates the open set emptied before reaching the goal:
	// start and goal lie in disconnected regions of the volume.
	ErrNoPath = errors.New("search: no path")
)

// OracleFailure wraps ErrOracleFailure with the coordinate that
// triggered it and the oracle's own error. Oracle failures are fatal:
// the engine tears down rather than attempting recovery.
type OracleFailure struct {
	Coord voxel.Coordinate
	Err   error
}

func (e *OracleFailure) Error() string {
	return fmt.Sprintf("search: oracle failed at (%s): %v", e.Coord, e.Err)
}

func (e *OracleFailure) Unwrap() error { return ErrOracleFailure }

func oracleFailure(coord voxel.Coordinate, err error) error {
	return &OracleFailure{Coord: coord, Err: err}
}
