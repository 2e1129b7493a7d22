package slicemap

import (
	"fmt"
	"sort"
)

// Map is a sparse voxel map: (x, y, z) -> T. Its z-slices are held in a
// Go map keyed by z, not in a dense per-z array; a slice exists only for
// a z that has been written to. Within each z-slice storage follows
// Backend.
//
// A Map does not evict; it grows monotonically for its entire
// lifetime. Its zero value is not usable; construct one with New.
type Map[T any] struct {
	backend       Backend
	width, height int // plane extents, used to size ArrayBackend and to pack/unpack hash and sorted keys
	slices        map[int]slice[T]
}

// New constructs an empty Map over a plane of the given width and
// height, using backend to store each z-slice. width and height must
// be the full extent of the (x, y) plane the caller intends to
// address, even for HashBackend and SortedBackend, which only use them
// to pack/unpack coordinates, not to size storage up front.
func New[T any](backend Backend, width, height int) *Map[T] {
	return &Map[T]{
		backend: backend,
		width:   width,
		height:  height,
		slices:  make(map[int]slice[T]),
	}
}

// Get returns the value stored at (x, y, z) and true, or the zero
// value and false if that z has no slice yet or the slice has no entry
// at (x, y). Get on an untouched z never allocates.
func (m *Map[T]) Get(x, y, z int) (T, bool) {
	s, ok := m.slices[z]
	if !ok {
		var zero T
		return zero, false
	}
	return s.get(x, y)
}

// Put stores v at (x, y, z), allocating a new slice for z using the
// Map's configured Backend on first write to that z.
func (m *Map[T]) Put(x, y, z int, v T) {
	s, ok := m.slices[z]
	if !ok {
		if x < 0 || y < 0 {
			panic(fmt.Sprintf("slicemap: Put called with negative (x=%d,y=%d)", x, y))
		}
		s = newSlice[T](m.backend, m.width, m.height)
		m.slices[z] = s
	}
	s.put(x, y, v)
}

// Len returns the total number of stored (x, y, z) entries across all
// slices. Complexity: O(number of non-empty z-slices).
func (m *Map[T]) Len() int {
	total := 0
	for _, s := range m.slices {
		total += s.len()
	}
	return total
}

// Iterate visits every stored entry in deterministic slice-major,
// then-within-slice order: z ascending, then whatever order the
// slice's own backend promises (ascending (y, x) for SortedBackend and
// ArrayBackend; unspecified for HashBackend). visit returning false
// stops iteration early.
func (m *Map[T]) Iterate(visit func(x, y, z int, v T) bool) {
	zs := make([]int, 0, len(m.slices))
	for z := range m.slices {
		zs = append(zs, z)
	}
	sort.Ints(zs)

	for _, z := range zs {
		stop := false
		m.slices[z].iterate(func(x, y int, v T) bool {
			if !visit(x, y, z, v) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// Backend reports the storage backend this Map was constructed with.
func (m *Map[T]) Backend() Backend { return m.backend }
