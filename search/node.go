package search

import (
	"math"

	"github.com/arbortrace/voxelcore/pairheap"
	"github.com/arbortrace/voxelcore/voxel"
)

// Side selects which of the two fringes a Node field belongs to.
// Unidirectional searches only ever use SideStart.
type Side int

const (
	// SideStart is the fringe growing outward from the start voxel.
	SideStart Side = iota
	// SideGoal is the fringe growing outward from the goal voxel,
	// used only by BidirectionalEngine.
	SideGoal
)

// NodeState labels the most recent side-transition a Node underwent.
// It exists for diagnostics (Stats.RejectedCount, logging) and is not
// itself load-bearing for correctness: whether a node is genuinely
// open on a given side is tracked independently per side by its heap
// handle's validity (see Node.IsOpen), because a voxel reached by both
// fringes can legitimately sit open on both heaps at once, something a
// single six-valued field cannot represent on its own. State records
// whichever side last touched the node.
type NodeState int

const (
	// Unexplored marks a Node that exists only because some side
	// touched it as a neighbor but has not yet inserted it.
	Unexplored NodeState = iota
	// OpenFromStart marks a node most recently placed on the start heap.
	OpenFromStart
	// OpenFromGoal marks a node most recently placed on the goal heap.
	OpenFromGoal
	// ClosedFromStart marks a node most recently popped from the start heap.
	ClosedFromStart
	// ClosedFromGoal marks a node most recently popped from the goal heap.
	ClosedFromGoal
	// Rejected marks a node the bidirectional rejection test excluded
	// from expansion by the bidirectional rejection test. Diagnostic only.
	Rejected
)

func (s NodeState) String() string {
	switch s {
	case Unexplored:
		return "unexplored"
	case OpenFromStart:
		return "open_from_start"
	case OpenFromGoal:
		return "open_from_goal"
	case ClosedFromStart:
		return "closed_from_start"
	case ClosedFromGoal:
		return "closed_from_goal"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Node is the per-voxel search state. Nodes are created the first time
// any side touches their coordinate and live for the lifetime of the
// engine that owns the voxel map holding them; they are never
// reference-counted, and there is exactly one owner (the voxel map).
type Node struct {
	Coord voxel.Coordinate

	GStart, GGoal float64 // best known cost from each side; +Inf until reached
	FStart, FGoal float64 // g + scaled heuristic, the heap priority key

	PredStart, PredGoal *Node // predecessor on each side's best path so far

	State NodeState

	handleStart, handleGoal pairheap.Handle[*Node]
}

// NewNode creates a Node at coord with both sides at +Inf cost and no
// predecessor: the state of a voxel before either fringe has reached
// it.
func NewNode(coord voxel.Coordinate) *Node {
	return &Node{
		Coord:  coord,
		GStart: math.Inf(1),
		GGoal:  math.Inf(1),
		FStart: math.Inf(1),
		FGoal:  math.Inf(1),
		State:  Unexplored,
	}
}

// G returns the node's g-score on the given side.
func (n *Node) G(side Side) float64 {
	if side == SideStart {
		return n.GStart
	}
	return n.GGoal
}

// SetG sets the node's g-score on the given side.
func (n *Node) SetG(side Side, v float64) {
	if side == SideStart {
		n.GStart = v
	} else {
		n.GGoal = v
	}
}

// F returns the node's f-score (heap priority) on the given side.
func (n *Node) F(side Side) float64 {
	if side == SideStart {
		return n.FStart
	}
	return n.FGoal
}

// SetF sets the node's f-score on the given side.
func (n *Node) SetF(side Side, v float64) {
	if side == SideStart {
		n.FStart = v
	} else {
		n.FGoal = v
	}
}

// Pred returns the node's predecessor on the given side.
func (n *Node) Pred(side Side) *Node {
	if side == SideStart {
		return n.PredStart
	}
	return n.PredGoal
}

// SetPred sets the node's predecessor on the given side.
func (n *Node) SetPred(side Side, p *Node) {
	if side == SideStart {
		n.PredStart = p
	} else {
		n.PredGoal = p
	}
}

// IsOpen reports whether this node currently holds a live handle on
// the given side's heap — the source of truth for open-set membership,
// independent of State.
func (n *Node) IsOpen(side Side) bool {
	if side == SideStart {
		return n.handleStart.Valid()
	}
	return n.handleGoal.Valid()
}

// Handle returns the node's current heap handle on the given side.
func (n *Node) Handle(side Side) pairheap.Handle[*Node] {
	if side == SideStart {
		return n.handleStart
	}
	return n.handleGoal
}

// MarkOpen records that handle now addresses this node on the given
// side's heap, and labels State with the corresponding OpenFrom* value.
func (n *Node) MarkOpen(side Side, handle pairheap.Handle[*Node]) {
	if side == SideStart {
		n.handleStart = handle
		n.State = OpenFromStart
	} else {
		n.handleGoal = handle
		n.State = OpenFromGoal
	}
}

// MarkClosed clears the given side's heap handle (DeleteMin already
// detached it from the heap) and labels State with the corresponding
// ClosedFrom* value.
func (n *Node) MarkClosed(side Side) {
	if side == SideStart {
		n.handleStart = pairheap.Handle[*Node]{}
		n.State = ClosedFromStart
	} else {
		n.handleGoal = pairheap.Handle[*Node]{}
		n.State = ClosedFromGoal
	}
}

// MarkRejected labels State as Rejected without touching either side's
// heap handle. Used by the bidirectional rejection test.
func (n *Node) MarkRejected() { n.State = Rejected }
