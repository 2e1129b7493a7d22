package fill_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/fill"
	"github.com/arbortrace/voxelcore/heuristic"
	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/voxel"
)

func uniformVolume(n int, intensity float64) *voxel.DenseAccessor {
	data := make([][][]float64, n)
	for z := range data {
		data[z] = make([][]float64, n)
		for y := range data[z] {
			data[z][y] = make([]float64, n)
			for x := range data[z][y] {
				data[z][y][x] = intensity
			}
		}
	}
	return voxel.NewDenseAccessor(data)
}

// TestResume_PicksUpWhereToFillLeftOff is testable property 5
// (spec.md §8): from_fill(to_fill(engine)) must yield an engine whose
// next expansion pops the same voxel at the same g a live, uninterrupted
// engine would have popped next. This drives the actual persisted
// shape (Encode then Decode, via Resume) rather than constructing a
// search.Frontier by hand, so it exercises the position-indexed wire
// format Record/Entry define, not just the in-memory Frontier type.
func TestResume_PicksUpWhereToFillLeftOff(t *testing.T) {
	n := 9
	acc := uniformVolume(n, 1)
	cost := &costfn.ReciprocalIntensity{Acc: acc, Floor: 1, MaxIntensity: 1}
	heur := heuristic.Euclidean{Spacing: voxel.Spacing{SX: 1, SY: 1, SZ: 1, Units: "voxel"}}
	cfg := search.NewConfig(acc, voxel.Spacing{SX: 1, SY: 1, SZ: 1, Units: "voxel"}, cost, heur, search.WithConnectivity(voxel.Conn6))
	eng, err := search.NewEngine(cfg)
	require.NoError(t, err)

	seed := voxel.Coordinate{X: 4, Y: 4, Z: 4}
	stopped, err := eng.Fill(context.Background(), seed, 1.5)
	require.NoError(t, err)

	var nextG = math.Inf(1)
	var nextVoxel voxel.Coordinate
	for _, e := range stopped.Entries {
		if e.Open && e.G < nextG {
			nextG = e.G
			nextVoxel = e.Coord
		}
	}
	require.False(t, math.IsInf(nextG, 1), "a fill stopped mid-flood must still have open entries")

	// Encode drops any entry whose g exceeds the frontier's own
	// threshold; Fill only ever stops once the cheapest remaining open
	// entry's g has reached that threshold, so encoding with the
	// original threshold would drop exactly the boundary entry this
	// test needs to resume from. Encode a copy with room to spare —
	// the resumed flood below still targets the original boundary.
	toEncode := stopped
	toEncode.Threshold = nextG + 10
	rec := fill.Encode(toEncode, costfn.MetricReciprocalIntensity, cfg.Spacing)

	resumed, err := fill.Resume(context.Background(), eng, rec, nextG+0.5)
	require.NoError(t, err)
	require.NotEmpty(t, resumed.PoppedG)
	assert.Equal(t, nextG, resumed.PoppedG[0],
		"the engine rebuilt from the persisted record must pop the same voxel, at the same g, a live engine would have popped next")

	for _, e := range resumed.Entries {
		if e.Coord.Equal(nextVoxel) {
			assert.False(t, e.Open, "the voxel popped on resume must now be closed")
		}
	}
}
