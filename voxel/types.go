package voxel

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for coordinate and spacing validation.
var (
	// ErrOutOfBounds indicates a coordinate lies outside a Bounds box.
	ErrOutOfBounds = errors.New("voxel: coordinate out of bounds")

	// ErrNonPositiveSpacing indicates a Spacing axis is not strictly positive.
	ErrNonPositiveSpacing = errors.New("voxel: spacing must be strictly positive")
)

// Coordinate is an integer triple addressing a single voxel.
type Coordinate struct {
	X, Y, Z int
}

// Equal reports whether two coordinates address the same voxel.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y && c.Z == o.Z
}

// Less orders coordinates lexicographically by (X, Y, Z). It is used to
// deterministically break ties between equal-priority search nodes.
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

// String renders the coordinate as "x,y,z" for logging and error context.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// Bounds is a half-open-by-inclusive integer box: voxels with
// Min.X <= X <= Max.X (and likewise Y, Z) lie inside it. Endpoints are
// inclusive per the external interface's xMin..xMax convention.
type Bounds struct {
	Min, Max Coordinate
}

// Contains reports whether c lies within b, inclusive of Min and Max.
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// Dimensions returns the voxel counts (W, H, D) spanned by b.
func (b Bounds) Dimensions() (w, h, d int) {
	return b.Max.X - b.Min.X + 1, b.Max.Y - b.Min.Y + 1, b.Max.Z - b.Min.Z + 1
}

// Spacing holds per-axis physical voxel size and the units they are
// expressed in. A Spacing is valid only when all three axes are
// strictly positive; Validate reports ErrNonPositiveSpacing otherwise.
type Spacing struct {
	SX, SY, SZ float64
	Units      string
}

// Validate reports ErrNonPositiveSpacing if any axis is not > 0.
func (s Spacing) Validate() error {
	if s.SX <= 0 || s.SY <= 0 || s.SZ <= 0 {
		return fmt.Errorf("%w: (%g,%g,%g)", ErrNonPositiveSpacing, s.SX, s.SY, s.SZ)
	}
	return nil
}

// Physical converts a Coordinate into a real-valued point in physical
// units by scaling each axis by its Spacing.
func (s Spacing) Physical(c Coordinate) (x, y, z float64) {
	return float64(c.X) * s.SX, float64(c.Y) * s.SY, float64(c.Z) * s.SZ
}

// Point is a real-valued location in physical units. It carries no
// units of its own; the Units tag stays on the Spacing that produced it.
type Point struct {
	X, Y, Z float64
}

// PhysicalPoint is Physical wrapped as a Point, the shape callers want
// when scaling an entire path rather than one coordinate at a time.
func (s Spacing) PhysicalPoint(c Coordinate) Point {
	x, y, z := s.Physical(c)
	return Point{X: x, Y: y, Z: z}
}

// Euclidean returns the physical straight-line distance between two
// coordinates, honoring per-axis spacing. This is the default distance
// used both to weight a single expansion step and as the basis of the
// default admissible heuristic.
func (s Spacing) Euclidean(a, b Coordinate) float64 {
	dx := float64(a.X-b.X) * s.SX
	dy := float64(a.Y-b.Y) * s.SY
	dz := float64(a.Z-b.Z) * s.SZ
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// MinAxisSpacing returns the smallest of the three axis spacings, used by
// heuristics that want a conservative (never-overestimating) per-step
// lower bound such as Octile.
func (s Spacing) MinAxisSpacing() float64 {
	m := s.SX
	if s.SY < m {
		m = s.SY
	}
	if s.SZ < m {
		m = s.SZ
	}
	return m
}
