package fill

import (
	"sort"

	"github.com/arbortrace/voxelcore/costfn"
	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/voxel"
)

// Encode converts a live Frontier into a position-indexed Record,
// dropping any entry whose cost exceeds the frontier's threshold and
// visiting the rest in ascending (z, y, x) order. That sort happens
// here rather than being inherited from whatever slicemap.Backend
// produced the Frontier, so the resulting Record — and anything
// derived from it, such as a persisted byte stream — is identical
// regardless of which backend ran the search.
func Encode(frontier search.Frontier, metric costfn.MetricTag, spacing voxel.Spacing) Record {
	kept := make([]search.FrontierEntry, 0, len(frontier.Entries))
	for _, e := range frontier.Entries {
		if e.G <= frontier.Threshold {
			kept = append(kept, e)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i].Coord, kept[j].Coord
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	index := make(map[voxel.Coordinate]int32, len(kept))
	for i, e := range kept {
		index[e.Coord] = int32(i)
	}

	entries := make([]Entry, len(kept))
	for i, e := range kept {
		prev := int32(-1)
		if e.HasPred {
			if p, ok := index[e.Pred]; ok {
				prev = p
			}
		}
		entries[i] = Entry{
			X:         int32(e.Coord.X),
			Y:         int32(e.Coord.Y),
			Z:         int32(e.Coord.Z),
			G:         e.G,
			PrevIndex: prev,
			Open:      e.Open,
		}
	}

	return Record{
		Entries:   entries,
		Threshold: frontier.Threshold,
		Metric:    metric,
		Spacing:   spacing,
	}
}
