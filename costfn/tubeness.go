package costfn

import "github.com/arbortrace/voxelcore/voxel"

// Tubeness adapts a precomputed tubeness (or any other externally
// computed per-voxel "how tube-like is this" score) accessor into an
// Oracle, without the engine ever needing to know tubeness was
// involved. Hessian/tubeness precomputation itself stays outside this
// module; this type only wires an already-computed volume in as an
// alternative cost source alongside the plain-intensity oracles.
type Tubeness struct {
	Acc voxel.Accessor

	// Floor guards against a zero or negative tubeness score producing
	// a zero or negative cost. Zero defaults to 1e-6.
	Floor float64
}

func (o *Tubeness) floor() float64 {
	if o.Floor > 0 {
		return o.Floor
	}
	return 1e-6
}

// CostAt implements Oracle as 1/tubeness, clamped away from zero.
func (o *Tubeness) CostAt(x, y, z int) (float64, error) {
	v := o.Acc.At(x, y, z)
	if v < o.floor() {
		v = o.floor()
	}
	return 1 / v, nil
}

// MinStepCost implements Oracle.
func (o *Tubeness) MinStepCost() float64 { return 1 / o.floor() }

var _ Oracle = (*Tubeness)(nil)
