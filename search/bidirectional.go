package search

import (
	"context"
	"fmt"
	"math"

	"github.com/arbortrace/voxelcore/pairheap"
	"github.com/arbortrace/voxelcore/slicemap"
	"github.com/arbortrace/voxelcore/voxel"
)

// BidirectionalEngine runs two fringes simultaneously, one growing from
// start and one from goal, meeting somewhere in the middle. It
// implements the Pijls & Post (2009) per-node rejection test: a popped
// node whose lower bounds already meet or exceed the best complete path
// found so far through any node touched by both sides is discarded
// rather than expanded. The search keeps popping until either fringe's
// heap is empty; there is no early stop on the sum of the two fringes'
// minimum f-scores.
type BidirectionalEngine struct {
	cfg Config
}

// NewBidirectionalEngine validates cfg's spacing and returns a
// BidirectionalEngine ready to run.
func NewBidirectionalEngine(cfg Config) (*BidirectionalEngine, error) {
	if err := cfg.Spacing.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w: %v", ErrInvalidEndpoint, err)
	}
	return &BidirectionalEngine{cfg: cfg}, nil
}

func (e *BidirectionalEngine) validateEndpoint(c voxel.Coordinate) error {
	if !e.cfg.Accessor.Bounds().Contains(c) {
		return fmt.Errorf("%w: %s outside volume bounds", ErrInvalidEndpoint, c)
	}
	return nil
}

// Trace runs the bidirectional search from start to goal. It returns
// the same Result shape as Engine.Trace, so callers can swap one for
// the other freely.
func (e *BidirectionalEngine) Trace(ctx context.Context, start, goal voxel.Coordinate) (Result, error) {
	if err := e.validateEndpoint(start); err != nil {
		return Result{}, err
	}
	if err := e.validateEndpoint(goal); err != nil {
		return Result{}, err
	}

	fac := newFacade(e.cfg)
	ctx, cancel := fac.withDeadline(ctx)
	defer cancel()

	w, h, _ := e.cfg.Accessor.Bounds().Dimensions()
	nodes := slicemap.New[*Node](e.cfg.Backend, w, h)

	openStart := pairheap.New[*Node](lessBySide(SideStart))
	openGoal := pairheap.New[*Node](lessBySide(SideGoal))

	minStep := e.cfg.Cost.MinStepCost()
	estimateFromStart := func(c voxel.Coordinate) float64 { return e.cfg.Heuristic.Estimate(c, goal) }
	estimateFromGoal := func(c voxel.Coordinate) float64 { return e.cfg.Heuristic.Estimate(c, start) }

	best := math.Inf(1)
	var touchNode *Node

	considerTouch := func(n *Node) {
		if n.G(SideStart) == math.Inf(1) || n.G(SideGoal) == math.Inf(1) {
			return
		}
		candidate := n.G(SideStart) + n.G(SideGoal)
		if candidate < best {
			best = candidate
			touchNode = n
		}
	}

	startNode := fetchOrCreate(nodes, start)
	startNode.SetG(SideStart, 0)
	startNode.SetF(SideStart, estimateFromStart(start)*minStep)
	hs := openStart.Insert(startNode)
	startNode.MarkOpen(SideStart, hs)

	goalNode := fetchOrCreate(nodes, goal)
	goalNode.SetG(SideGoal, 0)
	goalNode.SetF(SideGoal, estimateFromGoal(goal)*minStep)
	hg := openGoal.Insert(goalNode)
	goalNode.MarkOpen(SideGoal, hg)

	if start.Equal(goal) {
		best = 0
		touchNode = startNode
	}

	// Fs, Fg are "F_s" and "F_g" from spec.md §4.6 step 2: the f-score
	// of the most recently popped node on each side, seeded with each
	// root's own f-score before either side has popped anything. They
	// are deliberately one pop stale relative to whichever side is
	// about to be popped — only the popping side's own bound is fresh
	// this iteration — which is what keeps the step-3 rejection test
	// from collapsing into a tautology of the pop that just happened.
	Fs := startNode.F(SideStart)
	Fg := goalNode.F(SideGoal)

	stats := Stats{}
	var runErr error

	for !start.Equal(goal) {
		if openStart.Len() == 0 || openGoal.Len() == 0 {
			break
		}

		side := SideStart
		heap := openStart
		estimate := estimateFromStart
		rootSame := start
		oppositeF := Fg
		if openGoal.Len() < openStart.Len() {
			side = SideGoal
			heap = openGoal
			estimate = estimateFromGoal
			rootSame = goal
			oppositeF = Fs
		}

		popped, _ := heap.DeleteMin()
		popped.MarkClosed(side)
		stats.ClosedCount++

		// Pijls & Post (2009) per-node rejection test (§4.6 step 3): a
		// path through popped can only beat best if either bound below
		// still undercuts it. hToOpposite is popped's own heuristic
		// estimate toward the opposite fringe's root (exactly the
		// estimate that produced its f-score, so g+hToOpposite*minStep
		// equals popped's own f); hToSame is the estimate back toward
		// popped's own root, used to project the opposite side's F
		// bound through popped.
		hToOpposite := estimate(popped.Coord)
		hToSame := e.cfg.Heuristic.Estimate(popped.Coord, rootSame)
		boundA := popped.G(side) + hToOpposite*minStep
		boundB := popped.G(side) + oppositeF - hToSame*minStep

		if side == SideStart {
			Fs = popped.F(side)
		} else {
			Fg = popped.F(side)
		}

		if boundA >= best || boundB >= best {
			popped.MarkRejected()
			stats.RejectedCount++
			if err := fac.checkpoint(ctx, openStart.Len()+openGoal.Len(), stats.ClosedCount); err != nil {
				runErr = err
				break
			}
			continue
		}

		if err := relaxNeighbors(e.cfg, side, nodes, heap, popped, estimate, considerTouch); err != nil {
			runErr = err
			break
		}

		if err := fac.checkpoint(ctx, openStart.Len()+openGoal.Len(), stats.ClosedCount); err != nil {
			runErr = err
			break
		}
	}

	stats.OpenCount = openStart.Len() + openGoal.Len()
	stats.Expansions = fac.expansions

	if runErr == nil && touchNode == nil {
		runErr = ErrNoPath
	}

	success := runErr == nil
	fac.finish(success, runErr)
	if runErr != nil {
		return Result{Stats: stats}, runErr
	}

	path := reconstruct(touchNode, SideStart)
	goalSide := reconstruct(touchNode, SideGoal)
	for i := len(goalSide) - 2; i >= 0; i-- {
		path = append(path, goalSide[i])
	}

	return Result{
		Path:     path,
		Physical: physicalPath(e.cfg.Spacing, path),
		Units:    e.cfg.Spacing.Units,
		Cost:     touchNode.G(SideStart) + touchNode.G(SideGoal),
		Stats:    stats,
	}, nil
}
