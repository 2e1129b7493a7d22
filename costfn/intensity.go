package costfn

import (
	"math"

	"github.com/arbortrace/voxelcore/voxel"
)

// ReciprocalIntensity prices a voxel as 1/intensity, clamped so a
// vanishing or negative reading never produces a zero or negative
// cost. MaxIntensity, if known ahead of time (e.g. from a calibration
// pass over the volume), lets MinStepCost report a tight bound
// (1/MaxIntensity); otherwise Floor alone bounds it.
type ReciprocalIntensity struct {
	Acc voxel.Accessor

	// Floor is the minimum intensity CostAt will divide by, guarding
	// against division blow-up on near-zero or negative readings.
	// Must be > 0; a zero value is treated as 1e-6.
	Floor float64

	// MaxIntensity, if > 0, is the known maximum intensity in Acc,
	// used to report the tightest possible MinStepCost. If <= 0,
	// MinStepCost falls back to 1/Floor.
	MaxIntensity float64
}

func (o *ReciprocalIntensity) floor() float64 {
	if o.Floor > 0 {
		return o.Floor
	}
	return 1e-6
}

// CostAt implements Oracle.
func (o *ReciprocalIntensity) CostAt(x, y, z int) (float64, error) {
	v := o.Acc.At(x, y, z)
	if v < o.floor() {
		v = o.floor()
	}
	return 1 / v, nil
}

// MinStepCost implements Oracle.
func (o *ReciprocalIntensity) MinStepCost() float64 {
	if o.MaxIntensity > 0 {
		return 1 / o.MaxIntensity
	}
	return 1 / o.floor()
}

// Tag reports MetricReciprocalIntensity.
func (o *ReciprocalIntensity) Tag() MetricTag { return MetricReciprocalIntensity }

// InvertedIntensity prices a voxel as Ceiling-intensity (conventionally
// Ceiling=256 for 8-bit-range data), clamped to never go below Floor
// so MinStepCost (and every step cost) stays strictly positive.
type InvertedIntensity struct {
	Acc voxel.Accessor

	// Ceiling is the value intensities are subtracted from. Zero defaults to
	// 256, matching the 8-bit convention the metric tag name implies.
	Ceiling float64

	// Floor is the minimum cost CostAt will ever return. Zero defaults
	// to 1e-6.
	Floor float64
}

func (o *InvertedIntensity) ceiling() float64 {
	if o.Ceiling > 0 {
		return o.Ceiling
	}
	return 256
}

func (o *InvertedIntensity) floor() float64 {
	if o.Floor > 0 {
		return o.Floor
	}
	return 1e-6
}

// CostAt implements Oracle.
func (o *InvertedIntensity) CostAt(x, y, z int) (float64, error) {
	cost := o.ceiling() - o.Acc.At(x, y, z)
	return math.Max(cost, o.floor()), nil
}

// MinStepCost implements Oracle.
func (o *InvertedIntensity) MinStepCost() float64 { return o.floor() }

// Tag reports Metric256MinusIntensity.
func (o *InvertedIntensity) Tag() MetricTag { return Metric256MinusIntensity }

var (
	_ Oracle = (*ReciprocalIntensity)(nil)
	_ Oracle = (*InvertedIntensity)(nil)
)
