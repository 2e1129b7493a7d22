package search

import (
	"math"

	"github.com/arbortrace/voxelcore/pairheap"
	"github.com/arbortrace/voxelcore/slicemap"
	"github.com/arbortrace/voxelcore/voxel"
)

// lessBySide returns the heap comparator for one side: primarily by
// f-score, with ties broken deterministically by coordinate order so
// repeated runs over identical inputs produce byte-identical paths.
func lessBySide(side Side) pairheap.Less[*Node] {
	return func(a, b *Node) bool {
		fa, fb := a.F(side), b.F(side)
		if fa != fb {
			return fa < fb
		}
		return a.Coord.Less(b.Coord)
	}
}

// fetchOrCreate returns the node at coord, creating and storing a
// fresh one on first touch.
func fetchOrCreate(nodes *slicemap.Map[*Node], coord voxel.Coordinate) *Node {
	n, ok := nodes.Get(coord.X, coord.Y, coord.Z)
	if !ok {
		n = NewNode(coord)
		nodes.Put(coord.X, coord.Y, coord.Z, n)
	}
	return n
}

// relaxNeighbors performs one expansion step: for every
// in-bounds neighbor of p, price the step, and if it strictly improves
// that neighbor's f-score on side, update the neighbor and either
// decrease-key it (already open) or insert it fresh (unexplored or
// previously closed — re-opening a closed node on a better path is a
// safety net for a heuristic that is not strictly consistent).
//
// onUpdated, if non-nil, is invoked for every neighbor whose score was
// actually improved, letting the bidirectional engine maintain its
// cross-fringe bound without relax needing to know about the other side.
func relaxNeighbors(
	cfg Config,
	side Side,
	nodes *slicemap.Map[*Node],
	heap *pairheap.Heap[*Node],
	p *Node,
	estimate func(voxel.Coordinate) float64,
	onUpdated func(q *Node),
) error {
	bounds := cfg.Accessor.Bounds()
	minStep := cfg.Cost.MinStepCost()

	var buf [26]voxel.Coordinate
	neighbors := voxel.Neighbors(buf[:0], p.Coord, cfg.Connectivity, bounds)

	for _, nc := range neighbors {
		rawCost, err := cfg.Cost.CostAt(nc.X, nc.Y, nc.Z)
		if err != nil {
			return oracleFailure(nc, err)
		}
		step := math.Max(rawCost, minStep)

		gPrime := p.G(side) + cfg.Spacing.Euclidean(p.Coord, nc)*step
		fPrime := gPrime + estimate(nc)*minStep

		q := fetchOrCreate(nodes, nc)
		if fPrime >= q.F(side) {
			continue
		}

		q.SetG(side, gPrime)
		q.SetF(side, fPrime)
		q.SetPred(side, p)

		if q.IsOpen(side) {
			heap.DecreaseKey(q.Handle(side), q)
		} else {
			handle := heap.Insert(q)
			q.MarkOpen(side, handle)
		}

		if onUpdated != nil {
			onUpdated(q)
		}
	}
	return nil
}
