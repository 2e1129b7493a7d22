package fill

import (
	"context"

	"github.com/arbortrace/voxelcore/search"
)

// Resume is §4.7's from_fill: it decodes rec into a search.Frontier and
// seeds eng with it, continuing the cost-bounded flood up to threshold.
// eng must share rec's Accessor/Cost/Heuristic/Spacing — Resume itself
// only validates rec's structural shape (via Decode), not that eng is a
// compatible engine for it.
func Resume(ctx context.Context, eng *search.Engine, rec Record, threshold float64) (search.Frontier, error) {
	frontier, err := Decode(rec)
	if err != nil {
		return search.Frontier{}, err
	}
	return eng.ResumeFill(ctx, frontier, threshold)
}
