package search

import (
	"context"
	"fmt"

	"github.com/arbortrace/voxelcore/pairheap"
	"github.com/arbortrace/voxelcore/slicemap"
	"github.com/arbortrace/voxelcore/voxel"
)

// Engine runs the unidirectional A* search: a single fringe growing
// outward from a start voxel, either toward a goal (Trace) or until
// every remaining open node's cost meets a threshold (Fill).
// An Engine is not safe for concurrent use; each call to Trace or Fill
// allocates fresh per-run state and is independent of any prior call.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg's spacing and returns an Engine ready to run.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Spacing.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w: %v", ErrInvalidEndpoint, err)
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) newVoxelMap() *slicemap.Map[*Node] {
	w, h, _ := e.cfg.Accessor.Bounds().Dimensions()
	return slicemap.New[*Node](e.cfg.Backend, w, h)
}

func (e *Engine) validateEndpoint(c voxel.Coordinate) error {
	if !e.cfg.Accessor.Bounds().Contains(c) {
		return fmt.Errorf("%w: %s outside volume bounds", ErrInvalidEndpoint, c)
	}
	return nil
}

// Trace runs point-to-point search from start to goal and returns the
// optimal path (by the configured Cost/Heuristic pair, assuming an
// admissible heuristic) or ErrNoPath if the two voxels are
// disconnected under the configured Connectivity.
func (e *Engine) Trace(ctx context.Context, start, goal voxel.Coordinate) (Result, error) {
	if err := e.validateEndpoint(start); err != nil {
		return Result{}, err
	}
	if err := e.validateEndpoint(goal); err != nil {
		return Result{}, err
	}

	fac := newFacade(e.cfg)
	ctx, cancel := fac.withDeadline(ctx)
	defer cancel()

	nodes := e.newVoxelMap()
	heap := pairheap.New[*Node](lessBySide(SideStart))
	estimate := func(c voxel.Coordinate) float64 { return e.cfg.Heuristic.Estimate(c, goal) }

	startNode := fetchOrCreate(nodes, start)
	startNode.SetG(SideStart, 0)
	startNode.SetF(SideStart, estimate(start)*e.cfg.Cost.MinStepCost())
	handle := heap.Insert(startNode)
	startNode.MarkOpen(SideStart, handle)

	stats := Stats{}
	var terminal *Node
	var runErr error

	if start.Equal(goal) {
		terminal = startNode
	} else {
		for {
			popped, ok := heap.DeleteMin()
			if !ok {
				runErr = ErrNoPath
				break
			}
			popped.MarkClosed(SideStart)
			stats.ClosedCount++

			if popped.Coord.Equal(goal) {
				terminal = popped
				break
			}

			if err := relaxNeighbors(e.cfg, SideStart, nodes, heap, popped, estimate, nil); err != nil {
				runErr = err
				break
			}

			if err := fac.checkpoint(ctx, heap.Len(), stats.ClosedCount); err != nil {
				runErr = err
				break
			}
		}
	}

	stats.OpenCount = heap.Len()
	stats.Expansions = fac.expansions

	success := runErr == nil
	fac.finish(success, runErr)
	if runErr != nil {
		return Result{Stats: stats}, runErr
	}

	path := reconstruct(terminal, SideStart)
	return Result{
		Path:     path,
		Physical: physicalPath(e.cfg.Spacing, path),
		Units:    e.cfg.Spacing.Units,
		Cost:     terminal.G(SideStart),
		Stats:    stats,
	}, nil
}

// Fill runs a cost-bounded flood from a single seed voxel, stopping as
// soon as the next voxel the engine would expand has a g-score at or
// above threshold. The returned Frontier holds every voxel
// closed during the run plus every voxel still open (on the heap, not
// yet popped) when it stopped.
func (e *Engine) Fill(ctx context.Context, seed voxel.Coordinate, threshold float64) (Frontier, error) {
	if err := e.validateEndpoint(seed); err != nil {
		return Frontier{}, err
	}

	nodes := e.newVoxelMap()
	heap := pairheap.New[*Node](lessBySide(SideStart))

	seedNode := fetchOrCreate(nodes, seed)
	seedNode.SetG(SideStart, 0)
	seedNode.SetF(SideStart, 0)
	handle := heap.Insert(seedNode)
	seedNode.MarkOpen(SideStart, handle)

	return e.runFill(ctx, nodes, heap, seed, threshold)
}

// ResumeFill rebuilds search state from a previously produced Frontier
// — typically one decoded from a persisted fill.Record via fill.Decode
// — and continues the cost-bounded flood up to threshold. This is
// §4.7's from_fill: nodes are reconstructed in the frontier's order,
// predecessors rewired by coordinate, and the open heap reseeded from
// the entries whose Open flag is set, so the very next expansion pops
// the same voxel with the same g-score a live engine would have popped
// next.
func (e *Engine) ResumeFill(ctx context.Context, frontier Frontier, threshold float64) (Frontier, error) {
	nodes := e.newVoxelMap()
	heap := pairheap.New[*Node](lessBySide(SideStart))

	byCoord := make(map[voxel.Coordinate]*Node, len(frontier.Entries))
	for _, entry := range frontier.Entries {
		n := fetchOrCreate(nodes, entry.Coord)
		n.SetG(SideStart, entry.G)
		n.SetF(SideStart, entry.G) // Fill always uses the zero heuristic, so f == g.
		byCoord[entry.Coord] = n
	}
	for _, entry := range frontier.Entries {
		n := byCoord[entry.Coord]
		if entry.HasPred {
			if pred, ok := byCoord[entry.Pred]; ok {
				n.SetPred(SideStart, pred)
			}
		}
		if entry.Open {
			handle := heap.Insert(n)
			n.MarkOpen(SideStart, handle)
		} else {
			n.MarkClosed(SideStart)
		}
	}

	return e.runFill(ctx, nodes, heap, frontier.Seed, threshold)
}

// runFill drives the shared Fill/ResumeFill expansion loop over an
// already-seeded voxel map and heap.
func (e *Engine) runFill(ctx context.Context, nodes *slicemap.Map[*Node], heap *pairheap.Heap[*Node], seed voxel.Coordinate, threshold float64) (Frontier, error) {
	fac := newFacade(e.cfg)
	ctx, cancel := fac.withDeadline(ctx)
	defer cancel()

	estimate := func(voxel.Coordinate) float64 { return 0 }

	stats := Stats{}
	var poppedG []float64
	var runErr error

	for {
		top, ok := heap.Min()
		if !ok {
			break
		}
		if top.G(SideStart) >= threshold {
			break
		}

		popped, _ := heap.DeleteMin()
		popped.MarkClosed(SideStart)
		stats.ClosedCount++
		poppedG = append(poppedG, popped.G(SideStart))

		if err := relaxNeighbors(e.cfg, SideStart, nodes, heap, popped, estimate, nil); err != nil {
			runErr = err
			break
		}

		if err := fac.checkpoint(ctx, heap.Len(), stats.ClosedCount); err != nil {
			runErr = err
			break
		}
	}

	stats.OpenCount = heap.Len()
	stats.Expansions = fac.expansions

	success := runErr == nil
	fac.finish(success, runErr)
	if runErr != nil {
		return Frontier{Stats: stats}, runErr
	}

	entries := make([]FrontierEntry, 0, nodes.Len())
	nodes.Iterate(func(x, y, z int, n *Node) bool {
		entry := FrontierEntry{
			Coord: voxel.Coordinate{X: x, Y: y, Z: z},
			G:     n.G(SideStart),
			Open:  n.IsOpen(SideStart),
		}
		if pred := n.Pred(SideStart); pred != nil {
			entry.Pred = pred.Coord
			entry.HasPred = true
		}
		entries = append(entries, entry)
		return true
	})

	return Frontier{
		Seed:      seed,
		Threshold: threshold,
		Entries:   entries,
		PoppedG:   poppedG,
		Stats:     stats,
	}, nil
}
