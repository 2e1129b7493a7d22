package slicemap

import "sort"

// sortedSlice is the ordered backend: entries are kept in a single
// slice sorted by packed (y*width+x) key, found by binary search.
// Inserting a new key is O(n) (one slice splice); get is O(log n).
// This trades insert cost for Iterate visiting (y, x) in ascending
// order with no separate sort pass, which matters when a caller wants
// deterministic coordinate-order output (fill serialization).
type sortedSlice[T any] struct {
	width int
	keys  []int
	vals  []T
}

func newSortedSlice[T any](width int) *sortedSlice[T] {
	return &sortedSlice[T]{width: width}
}

func (s *sortedSlice[T]) search(key int) (idx int, found bool) {
	idx = sort.SearchInts(s.keys, key)
	found = idx < len(s.keys) && s.keys[idx] == key
	return idx, found
}

func (s *sortedSlice[T]) get(x, y int) (T, bool) {
	key := y*s.width + x
	idx, found := s.search(key)
	if !found {
		var zero T
		return zero, false
	}
	return s.vals[idx], true
}

func (s *sortedSlice[T]) put(x, y int, v T) {
	key := y*s.width + x
	idx, found := s.search(key)
	if found {
		s.vals[idx] = v
		return
	}
	s.keys = append(s.keys, 0)
	copy(s.keys[idx+1:], s.keys[idx:])
	s.keys[idx] = key

	var zero T
	s.vals = append(s.vals, zero)
	copy(s.vals[idx+1:], s.vals[idx:])
	s.vals[idx] = v
}

func (s *sortedSlice[T]) len() int { return len(s.keys) }

func (s *sortedSlice[T]) iterate(visit func(x, y int, v T) bool) {
	for i, key := range s.keys {
		x := key % s.width
		y := key / s.width
		if !visit(x, y, s.vals[i]) {
			return
		}
	}
}
