package search

import "github.com/arbortrace/voxelcore/voxel"

// FrontierEntry is one voxel touched by a Fill run: its cost from the
// seed, whether it was still open (on the heap, not yet popped) when
// the run stopped, and its predecessor coordinate for tree
// reconstruction. Root voxels have no predecessor.
type FrontierEntry struct {
	Coord   voxel.Coordinate
	G       float64
	Pred    voxel.Coordinate
	HasPred bool
	Open    bool
}

// Frontier is the result of Engine.Fill: every voxel closed or still
// open when the cost-bounded flood stopped, together enough to encode
// a persisted fill without re-running the search.
type Frontier struct {
	Seed      voxel.Coordinate
	Threshold float64
	Entries   []FrontierEntry
	// PoppedG records, in pop order, the g-score of each voxel the
	// flood closed. A consistent heuristic (Fill always uses the zero
	// heuristic, i.e. plain Dijkstra order) guarantees this sequence is
	// non-decreasing.
	PoppedG []float64
	Stats   Stats
}
