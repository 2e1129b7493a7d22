package costfn

// MetricTag names the convention an Oracle used to turn intensity into
// cost, so a persisted fill can be decoded without guessing which
// transform produced its costs.
type MetricTag string

const (
	// MetricReciprocalIntensity tags costs computed as 1/intensity
	// (clamped away from zero), the default for tubular fluorescence
	// data where brightness spans orders of magnitude.
	MetricReciprocalIntensity MetricTag = "reciprocal-intensity-scaled"

	// Metric256MinusIntensity tags costs computed as 256-intensity,
	// a cheap linear inversion suited to 8-bit-range data.
	Metric256MinusIntensity MetricTag = "256-minus-intensity-scaled"
)

// KnownMetrics lists every MetricTag this module understands how to
// decode from a persisted fill. A caller using a custom Oracle outside
// these two is responsible for keeping their own tag registry; the
// persisted format rejects anything not in this set with
// fill.ErrUnknownMetric.
var KnownMetrics = map[MetricTag]bool{
	MetricReciprocalIntensity: true,
	Metric256MinusIntensity:   true,
}
