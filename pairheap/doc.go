// Package pairheap implements an addressable pairing heap: a priority
// queue that returns an opaque Handle from Insert and supports true
// DecreaseKey through that handle, in addition to DeleteMin.
// DecreaseKey cuts a node from a singly linked sibling list, so its
// cost grows with the number of siblings in front of that node; it is
// not bounded by O(log n) amortized.
//
// A plain binary heap (as used by container/heap-based consumers) only
// supports decrease-key by linear scan or by the caller tracking heap
// indices by hand, which does not compose with a priority that changes
// every time a cheaper path to a node is discovered during a search.
// The pairing heap's handle-based API exists specifically to make that
// operation cheap and correct: the handle always denotes the same
// element, even as the heap's internal shape changes around it.
//
// The heap is generic over the stored value type T and is ordered by a
// Less function supplied at construction, so it carries no assumptions
// about what T represents; callers wanting a coordinate tie-break (as a
// voxel search does) bake that into their Less function.
package pairheap
