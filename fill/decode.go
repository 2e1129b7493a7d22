package fill

import (
	"fmt"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/voxel"
)

// Decode reconstructs a search.Frontier from a Record, validating that
// every PrevIndex lies in range and that the metric tag is one this
// module knows how to interpret. The returned Frontier's Seed is the
// coordinate of the first root entry (g == 0, no predecessor) found,
// which is enough to resume a single-seed fill; a multi-seed fill
// produced by Merge carries its seeds only implicitly, as the set of
// root entries.
func Decode(rec Record) (search.Frontier, error) {
	if !costfn.KnownMetrics[rec.Metric] {
		return search.Frontier{}, fmt.Errorf("%w: %q", ErrUnknownMetric, rec.Metric)
	}

	n := len(rec.Entries)
	entries := make([]search.FrontierEntry, n)
	var seed voxel.Coordinate
	seedFound := false

	for i, e := range rec.Entries {
		if e.PrevIndex < -1 || int(e.PrevIndex) >= n {
			return search.Frontier{}, fmt.Errorf("%w: entry %d has prev index %d out of range for %d entries", ErrCorruptFill, i, e.PrevIndex, n)
		}
		coord := voxel.Coordinate{X: int(e.X), Y: int(e.Y), Z: int(e.Z)}
		entry := search.FrontierEntry{Coord: coord, G: e.G, Open: e.Open}

		if e.PrevIndex >= 0 {
			p := rec.Entries[e.PrevIndex]
			entry.Pred = voxel.Coordinate{X: int(p.X), Y: int(p.Y), Z: int(p.Z)}
			entry.HasPred = true
		} else if !seedFound {
			seed = coord
			seedFound = true
		}

		entries[i] = entry
	}

	return search.Frontier{
		Seed:      seed,
		Threshold: rec.Threshold,
		Entries:   entries,
	}, nil
}
