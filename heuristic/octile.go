package heuristic

import (
	"math"
	"sort"

	"github.com/arbortrace/voxelcore/voxel"
)

// Octile is the 3-D generalization of the classic 2-D octile distance,
// tuned for a 26-connected grid where a diagonal step is cheaper, per
// unit physical distance traveled, than three separate axis-aligned
// steps. Given the per-axis voxel deltas sorted so that a >= b >= c,
// the straight-line voxel-count distance a 26-connected walk can
// achieve is:
//
//	sqrt(3)*c + sqrt(2)*(b-c) + 1*(a-b)
//
// (c diagonal-triple steps, then b-c diagonal-pair steps, then a-b
// axis-aligned steps). Octile scales that voxel-count distance by the
// volume's smallest axis spacing, which never overestimates the true
// physical distance for any anisotropic spacing, keeping the estimate
// admissible.
type Octile struct {
	Spacing voxel.Spacing
}

// Estimate implements Oracle.
func (h Octile) Estimate(from, to voxel.Coordinate) float64 {
	d := [3]int{
		absInt(from.X - to.X),
		absInt(from.Y - to.Y),
		absInt(from.Z - to.Z),
	}
	sort.Sort(sort.Reverse(sort.IntSlice(d[:])))
	a, b, c := float64(d[0]), float64(d[1]), float64(d[2])

	voxelDistance := math.Sqrt(3)*c + math.Sqrt(2)*(b-c) + (a - b)
	return voxelDistance * h.Spacing.MinAxisSpacing()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
