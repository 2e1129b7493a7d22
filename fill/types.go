package fill

import (
	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/voxel"
)

// Entry is one row of a position-indexed fill table: a voxel's
// coordinate, its cost from the seed, a back-reference to its
// predecessor's index (or -1 for a root), and whether it was still
// open when the fill stopped.
type Entry struct {
	X, Y, Z   int32
	G         float64
	PrevIndex int32
	Open      bool
}

// Record is the full persistable shape of a fill: the dense entry
// table plus the threshold, cost metric, and physical spacing needed
// to interpret it without re-running the search. SourcePaths, if
// present, names the traced paths that seeded the flood — a caller
// convenience, never consulted by Decode.
type Record struct {
	Entries     []Entry
	Threshold   float64
	Metric      costfn.MetricTag
	Spacing     voxel.Spacing
	SourcePaths [][]voxel.Coordinate
}
