package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/heuristic"
	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/voxel"
)

// TestEngine_Trace_TimeoutYieldsErrTimeout forces the wall-clock budget
// (spec.md §8 "Cancellation") by pairing a volume large enough that the
// search cannot finish instantly with a timeout so small it expires
// before the first expansion, and a check interval of 1 so facade
// observes it immediately rather than waiting CheckInterval pops.
func TestEngine_Trace_TimeoutYieldsErrTimeout(t *testing.T) {
	n := 40
	acc := uniformVolume(n, 1)
	cost := &costfn.ReciprocalIntensity{Acc: acc, Floor: 1, MaxIntensity: 1}
	heur := heuristic.Euclidean{Spacing: unitSpacing()}

	var finished search.Finished
	cfg := search.NewConfig(acc, unitSpacing(), cost, heur,
		search.WithConnectivity(voxel.Conn26),
		search.WithTimeout(time.Nanosecond),
		search.WithCheckInterval(1),
		search.WithOnFinished(func(f search.Finished) { finished = f }),
	)
	eng, err := search.NewEngine(cfg)
	require.NoError(t, err)

	start := voxel.Coordinate{X: 0, Y: 0, Z: 0}
	goal := voxel.Coordinate{X: n - 1, Y: n - 1, Z: n - 1}

	deadline := time.Now().Add(5 * time.Second)
	_, traceErr := eng.Trace(context.Background(), start, goal)
	assert.True(t, time.Now().Before(deadline), "a timed-out search must return well inside the bound the timeout itself sets")

	assert.ErrorIs(t, traceErr, search.ErrTimeout)
	assert.False(t, finished.Success)
	assert.ErrorIs(t, finished.Err, search.ErrTimeout)
}

// TestEngine_Trace_ContextCancelYieldsErrInterrupted forces
// cancellation via the caller's own context rather than the configured
// timeout, and checks the same "Finished(false) within the bound"
// contract named in spec.md §8's Cancellation scenario.
func TestEngine_Trace_ContextCancelYieldsErrInterrupted(t *testing.T) {
	n := 40
	acc := uniformVolume(n, 1)
	cost := &costfn.ReciprocalIntensity{Acc: acc, Floor: 1, MaxIntensity: 1}
	heur := heuristic.Euclidean{Spacing: unitSpacing()}

	var finished search.Finished
	cfg := search.NewConfig(acc, unitSpacing(), cost, heur,
		search.WithConnectivity(voxel.Conn26),
		search.WithCheckInterval(1),
		search.WithOnFinished(func(f search.Finished) { finished = f }),
	)
	eng, err := search.NewEngine(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := voxel.Coordinate{X: 0, Y: 0, Z: 0}
	goal := voxel.Coordinate{X: n - 1, Y: n - 1, Z: n - 1}

	deadline := time.Now().Add(5 * time.Second)
	_, traceErr := eng.Trace(ctx, start, goal)
	assert.True(t, time.Now().Before(deadline), "a cancelled search must return well within the bound, not run to completion")

	assert.ErrorIs(t, traceErr, search.ErrInterrupted)
	assert.False(t, finished.Success)
	assert.ErrorIs(t, finished.Err, search.ErrInterrupted)
}

// TestBidirectionalEngine_Trace_ContextCancelYieldsErrInterrupted
// confirms the same cancellation contract holds for the bidirectional
// engine's own hot loop, not just the unidirectional one.
func TestBidirectionalEngine_Trace_ContextCancelYieldsErrInterrupted(t *testing.T) {
	n := 40
	acc := uniformVolume(n, 1)
	eng := newTestBidirectionalEngine(t, acc,
		search.WithConnectivity(voxel.Conn26),
		search.WithCheckInterval(1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := voxel.Coordinate{X: 0, Y: 0, Z: 0}
	goal := voxel.Coordinate{X: n - 1, Y: n - 1, Z: n - 1}

	_, err := eng.Trace(ctx, start, goal)
	assert.ErrorIs(t, err, search.ErrInterrupted)
}
