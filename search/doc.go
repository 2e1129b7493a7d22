// Package search implements the bidirectional-capable A* engine that
// traces a minimum-cost path between two voxels, or floods a
// cost-bounded frontier from one voxel, over a 6/18/26-connected
// integer grid.
//
// Engine drives a single fringe from the start voxel; it specializes
// into a point-to-point tracer (Trace, stopping when the goal
// coordinate itself is popped; there is no general goal predicate) and
// a flood fill (Fill, stopping once the cheapest unexpanded node's
// g-score reaches a cost threshold). BidirectionalEngine drives two
// interleaved fringes, one from each endpoint, using the Pijls & Post
// (2009) rejection test to skip expanding any popped node that cannot
// beat the best meeting cost found so far; it runs until either
// fringe's heap is empty.
//
// Both engines share the same Node bookkeeping, the same addressable
// open set (pairheap.Heap), and the same sparse voxel map
// (slicemap.Map) so memory stays proportional to explored voxels, not
// to the volume's full extent.
package search
