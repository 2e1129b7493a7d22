package voxel

// Connectivity selects how many of a voxel's up-to-26 neighbors the
// search considers adjacent, mirroring the face/edge/corner-sharing
// neighborhoods of a 3-D grid.
type Connectivity int

const (
	// Conn6 considers only face-sharing neighbors (±1 on exactly one axis).
	Conn6 Connectivity = iota
	// Conn18 adds edge-sharing neighbors (±1 on exactly two axes).
	Conn18
	// Conn26 adds corner-sharing neighbors (±1 on all three axes).
	Conn26
)

var (
	offsets6  = buildOffsets(Conn6)
	offsets18 = buildOffsets(Conn18)
	offsets26 = buildOffsets(Conn26)
)

// String renders the connectivity as its neighbor count.
func (c Connectivity) String() string {
	switch c {
	case Conn6:
		return "6"
	case Conn18:
		return "18"
	default:
		return "26"
	}
}

// ParseConnectivity is the inverse of String. An unrecognized value
// yields Conn26 and ok=false.
func ParseConnectivity(s string) (c Connectivity, ok bool) {
	switch s {
	case "6":
		return Conn6, true
	case "18":
		return Conn18, true
	case "26", "":
		return Conn26, true
	default:
		return Conn26, false
	}
}

func buildOffsets(c Connectivity) []Coordinate {
	var out []Coordinate
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nonZero := 0
				for _, v := range [3]int{dx, dy, dz} {
					if v != 0 {
						nonZero++
					}
				}
				switch c {
				case Conn6:
					if nonZero != 1 {
						continue
					}
				case Conn18:
					if nonZero == 3 {
						continue
					}
				}
				out = append(out, Coordinate{X: dx, Y: dy, Z: dz})
			}
		}
	}
	return out
}

// Offsets returns the precomputed neighbor offsets for a connectivity
// (6, 18, or 26 entries). The returned slice must not be mutated; it is
// shared across every call.
func (c Connectivity) Offsets() []Coordinate {
	switch c {
	case Conn6:
		return offsets6
	case Conn18:
		return offsets18
	default:
		return offsets26
	}
}

// Neighbors appends to dst every in-bounds neighbor of c under
// connectivity conn and within bounds, returning the extended slice.
// Passing a reused dst[:0] avoids an allocation per expansion.
func Neighbors(dst []Coordinate, c Coordinate, conn Connectivity, bounds Bounds) []Coordinate {
	for _, off := range conn.Offsets() {
		n := Coordinate{X: c.X + off.X, Y: c.Y + off.Y, Z: c.Z + off.Z}
		if bounds.Contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
