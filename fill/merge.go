package fill

import (
	"fmt"

	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/voxel"
)

// Merge combines fills sharing the same metric and spacing into one
// position-indexed Record, keeping the cheapest entry at any
// coordinate touched by more than one input and taking the widest
// threshold. This is how a caller who seeded several independent
// floods (one per candidate source point) folds them into a single
// reachability graph without re-running the search from scratch.
func Merge(records ...Record) (Record, error) {
	if len(records) == 0 {
		return Record{}, nil
	}

	metric := records[0].Metric
	spacing := records[0].Spacing
	threshold := records[0].Threshold

	var all []search.FrontierEntry
	for i, rec := range records {
		if rec.Metric != metric {
			return Record{}, fmt.Errorf("%w: record %d metric %q does not match %q", ErrCorruptFill, i, rec.Metric, metric)
		}
		if rec.Spacing != spacing {
			return Record{}, fmt.Errorf("%w: record %d spacing does not match record 0's", ErrCorruptFill, i)
		}
		if rec.Threshold > threshold {
			threshold = rec.Threshold
		}

		frontier, err := Decode(rec)
		if err != nil {
			return Record{}, fmt.Errorf("fill: merge record %d: %w", i, err)
		}
		all = append(all, frontier.Entries...)
	}

	best := make(map[voxel.Coordinate]search.FrontierEntry, len(all))
	for _, e := range all {
		if cur, ok := best[e.Coord]; !ok || e.G < cur.G {
			best[e.Coord] = e
		}
	}

	merged := make([]search.FrontierEntry, 0, len(best))
	for _, e := range best {
		merged = append(merged, e)
	}

	return Encode(search.Frontier{Threshold: threshold, Entries: merged}, metric, spacing), nil
}
