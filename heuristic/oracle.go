package heuristic

import "github.com/arbortrace/voxelcore/voxel"

// Oracle estimates the remaining physical-distance cost from "from" to
// "to". The estimate must be admissible (never overestimate true
// remaining cost) for the engine's optimality guarantee to hold; an
// inadmissible Oracle still lets the engine terminate, just without a
// guarantee of path optimality.
type Oracle interface {
	// Estimate returns a non-negative physical-distance estimate
	// between two coordinates.
	Estimate(from, to voxel.Coordinate) float64
}

// Zero is the trivial admissible heuristic: it always estimates 0,
// which reduces the bidirectional or unidirectional search to plain
// Dijkstra (every node is explored in g-score order).
type Zero struct{}

// Estimate implements Oracle.
func (Zero) Estimate(voxel.Coordinate, voxel.Coordinate) float64 { return 0 }

// Euclidean is the default heuristic: straight-line physical distance
// honoring per-axis Spacing. It is admissible whenever every step's
// true cost (after the engine's MinStepCost scaling) is at least the
// physical distance traveled, which holds for any Oracle that never
// prices a step below MinStepCost.
type Euclidean struct {
	Spacing voxel.Spacing
}

// Estimate implements Oracle.
func (h Euclidean) Estimate(from, to voxel.Coordinate) float64 {
	return h.Spacing.Euclidean(from, to)
}

var (
	_ Oracle = Zero{}
	_ Oracle = Euclidean{}
	_ Oracle = Octile{}
)
