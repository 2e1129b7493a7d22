// Package heuristic defines the pluggable heuristic oracle a search
// engine queries for an estimate of remaining physical distance to a
// target, plus three concrete oracles: Zero (reduces the search to
// Dijkstra), Euclidean (the default, straight-line distance honoring
// per-axis spacing), and Octile (a tie-aware bound for 26-connected
// grids).
//
// Estimates are returned in physical units, with no cost weighting;
// the engine multiplies by the cost oracle's MinStepCost before
// comparing against g-scores, so a heuristic here need only be
// admissible with respect to true physical distance, never mind the
// cost convention in play.
package heuristic
