package search

import "github.com/arbortrace/voxelcore/voxel"

// Result is a completed Trace: the voxel-ordered path from start to
// goal inclusive, the same path scaled into physical units per §6
// ("an ordered list of (x·sx, y·sy, z·sz) real-valued points with the
// units tag"), its total physical-distance-weighted cost, and
// diagnostic Stats about the run that produced it.
type Result struct {
	Path     []voxel.Coordinate
	Physical []voxel.Point
	Units    string
	Cost     float64
	Stats    Stats
}

// physicalPath scales every coordinate in path by spacing, in order,
// producing the real-valued point list Result.Physical carries.
func physicalPath(spacing voxel.Spacing, path []voxel.Coordinate) []voxel.Point {
	pts := make([]voxel.Point, len(path))
	for i, c := range path {
		pts[i] = spacing.PhysicalPoint(c)
	}
	return pts
}

// Stats summarizes one run's bookkeeping: open/closed/rejected counts
// and total expansions, useful to callers instrumenting or tuning a
// search.
type Stats struct {
	OpenCount     int
	ClosedCount   int
	RejectedCount int
	Expansions    int
}

// reconstruct walks n's predecessor chain on side back to its root
// (g == 0, pred == nil) and returns the coordinates in root-to-n order.
func reconstruct(n *Node, side Side) []voxel.Coordinate {
	var rev []voxel.Coordinate
	for cur := n; cur != nil; cur = cur.Pred(side) {
		rev = append(rev, cur.Coord)
	}
	out := make([]voxel.Coordinate, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
