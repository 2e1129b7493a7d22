// Package costfn defines the pluggable cost oracle a search engine
// queries to price each voxel step, plus the two concrete oracles a
// tracer typically wants: a reciprocal-intensity oracle and a
// 256-minus-intensity oracle, both over a voxel.Accessor.
//
// The engine never interprets intensity itself — it asks the oracle
// for CostAt(x,y,z) and MinStepCost() and trusts both. This keeps the
// search core ignorant of what "bright" means for a given modality or
// normalization: bright voxels are conventionally cheap, but that
// convention lives entirely in the oracle, never in the engine.
package costfn
