package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/heuristic"
	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/voxel"
)

func newTestBidirectionalEngine(t *testing.T, acc voxel.Accessor, opts ...search.Option) *search.BidirectionalEngine {
	t.Helper()
	cost := &costfn.ReciprocalIntensity{Acc: acc, Floor: 1e-3, MaxIntensity: 1}
	heur := heuristic.Euclidean{Spacing: unitSpacing()}
	cfg := search.NewConfig(acc, unitSpacing(), cost, heur, opts...)
	eng, err := search.NewBidirectionalEngine(cfg)
	require.NoError(t, err)
	return eng
}

func TestBidirectionalEngine_Trace_StartEqualsGoal(t *testing.T) {
	acc := uniformVolume(5, 1)
	eng := newTestBidirectionalEngine(t, acc, search.WithConnectivity(voxel.Conn26))

	p := voxel.Coordinate{X: 2, Y: 2, Z: 2}
	result, err := eng.Trace(context.Background(), p, p)
	require.NoError(t, err)
	assert.Equal(t, []voxel.Coordinate{p}, result.Path)
	assert.Equal(t, 0.0, result.Cost)
}

func TestBidirectionalEngine_Trace_MatchesUnidirectionalCost(t *testing.T) {
	n := 7
	acc := uniformVolume(n, 1)

	start := voxel.Coordinate{X: 0, Y: 0, Z: 0}
	goal := voxel.Coordinate{X: 6, Y: 6, Z: 6}

	uni := newTestEngine(t, acc, search.WithConnectivity(voxel.Conn26))
	bidi := newTestBidirectionalEngine(t, acc, search.WithConnectivity(voxel.Conn26))

	uniResult, err := uni.Trace(context.Background(), start, goal)
	require.NoError(t, err)

	bidiResult, err := bidi.Trace(context.Background(), start, goal)
	require.NoError(t, err)

	assert.InDelta(t, uniResult.Cost, bidiResult.Cost, 1e-9,
		"bidirectional search must return the same optimal cost as the unidirectional search")
	assert.Equal(t, start, bidiResult.Path[0])
	assert.Equal(t, goal, bidiResult.Path[len(bidiResult.Path)-1])
}

func TestBidirectionalEngine_Trace_PathIsContiguous(t *testing.T) {
	n := 9
	acc := uniformVolume(n, 1)
	// A thick wall with a single gap at (y=0) forces both fringes
	// to route through the same narrow corridor before they meet.
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			if y != 0 {
				acc.Set(4, y, z, 0.001)
			}
		}
	}
	eng := newTestBidirectionalEngine(t, acc, search.WithConnectivity(voxel.Conn6))

	start := voxel.Coordinate{X: 0, Y: 4, Z: 4}
	goal := voxel.Coordinate{X: 8, Y: 4, Z: 4}
	result, err := eng.Trace(context.Background(), start, goal)
	require.NoError(t, err)

	require.NotEmpty(t, result.Path)
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, goal, result.Path[len(result.Path)-1])

	for i := 1; i < len(result.Path); i++ {
		prev, cur := result.Path[i-1], result.Path[i]
		dx := abs(cur.X - prev.X)
		dy := abs(cur.Y - prev.Y)
		dz := abs(cur.Z - prev.Z)
		assert.LessOrEqual(t, dx, 1)
		assert.LessOrEqual(t, dy, 1)
		assert.LessOrEqual(t, dz, 1)
		assert.True(t, dx+dy+dz > 0, "consecutive path voxels must differ")
	}

	passedThroughGap := false
	for _, c := range result.Path {
		if c.X == 4 && c.Y == 0 {
			passedThroughGap = true
		}
	}
	assert.True(t, passedThroughGap, "the optimal path must detour through the one cheap gap in the wall")
}

func TestBidirectionalEngine_Trace_NoPathWhenDisconnected(t *testing.T) {
	n := 6
	acc := uniformVolume(n, 1)
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			acc.Set(3, y, z, 1e-9)
		}
	}
	blocking := blockingOracle{acc: acc, blockedX: 3}
	heur := heuristic.Euclidean{Spacing: unitSpacing()}
	cfg := search.NewConfig(acc, unitSpacing(), blocking, heur, search.WithConnectivity(voxel.Conn6))
	eng, err := search.NewBidirectionalEngine(cfg)
	require.NoError(t, err)

	start := voxel.Coordinate{X: 0, Y: 0, Z: 0}
	goal := voxel.Coordinate{X: 5, Y: 0, Z: 0}
	_, err = eng.Trace(context.Background(), start, goal)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestBidirectionalEngine_Trace_RejectsOutOfBoundsEndpoint(t *testing.T) {
	acc := uniformVolume(3, 1)
	eng := newTestBidirectionalEngine(t, acc)

	_, err := eng.Trace(context.Background(), voxel.Coordinate{X: -1}, voxel.Coordinate{X: 1})
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
}

func TestBidirectionalEngine_Trace_StatsAccountForRejections(t *testing.T) {
	n := 7
	acc := uniformVolume(n, 1)
	eng := newTestBidirectionalEngine(t, acc, search.WithConnectivity(voxel.Conn6))

	start := voxel.Coordinate{X: 0, Y: 3, Z: 3}
	goal := voxel.Coordinate{X: 6, Y: 3, Z: 3}
	result, err := eng.Trace(context.Background(), start, goal)
	require.NoError(t, err)

	assert.Greater(t, result.Stats.ClosedCount, 0)
	// The search runs (per spec.md §4.6 step 5) until either fringe's
	// heap drains entirely, not merely until a touch is found; every
	// voxel reachable from a root but popped after best has already
	// been fixed must fail the step-3 rejection test rather than being
	// relaxed, so a 7^3 uniform volume this densely connected produces
	// real rejections, not just zero-valued bookkeeping.
	assert.Greater(t, result.Stats.RejectedCount, 0,
		"the rejection test must actually discard some of the fringe's later pops once the optimal cost is known")
	assert.GreaterOrEqual(t, result.Stats.OpenCount, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
