package voxel

// Accessor is a read-only 3-D real-valued volume, such as a stack of
// image slices. Implementations are supplied by the caller (image
// loading and calibration are out of scope for this module) and are
// only ever read from the engine's own goroutine, so they need not be
// safe for concurrent mutation, only for concurrent reads across
// independent engine instances.
type Accessor interface {
	// Bounds returns the inclusive voxel box this accessor covers.
	Bounds() Bounds

	// At returns the real-valued intensity at (x, y, z). Callers must
	// only invoke At with coordinates inside Bounds(); behavior for
	// out-of-bounds coordinates is undefined and implementations are
	// not required to guard against it.
	At(x, y, z int) float64
}

// DenseAccessor is a trivial Accessor backed by a fully materialized
// [z][y][x] slice, useful for tests and for small volumes where the
// caller has already loaded every slice into memory.
type DenseAccessor struct {
	bounds Bounds
	data   [][][]float64 // data[z-Min.Z][y-Min.Y][x-Min.X]
}

// NewDenseAccessor wraps data (indexed [z][y][x], zero-based) as an
// Accessor whose Bounds starts at (0,0,0) and spans the slice extents.
// NewDenseAccessor does not copy data; callers must not mutate it while
// an engine is running against the returned Accessor.
func NewDenseAccessor(data [][][]float64) *DenseAccessor {
	d := len(data)
	h := 0
	w := 0
	if d > 0 {
		h = len(data[0])
		if h > 0 {
			w = len(data[0][0])
		}
	}
	return &DenseAccessor{
		bounds: Bounds{
			Min: Coordinate{0, 0, 0},
			Max: Coordinate{w - 1, h - 1, d - 1},
		},
		data: data,
	}
}

// Bounds implements Accessor.
func (a *DenseAccessor) Bounds() Bounds { return a.bounds }

// At implements Accessor.
func (a *DenseAccessor) At(x, y, z int) float64 {
	return a.data[z-a.bounds.Min.Z][y-a.bounds.Min.Y][x-a.bounds.Min.X]
}

// Set overwrites the intensity at (x, y, z). Callers must not call Set
// while an engine is concurrently reading this accessor.
func (a *DenseAccessor) Set(x, y, z int, v float64) {
	a.data[z-a.bounds.Min.Z][y-a.bounds.Min.Y][x-a.bounds.Min.X] = v
}
