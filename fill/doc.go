// Package fill converts a live search.Frontier into a position-indexed
// graph — a flat, dependency-free table of voxels with open/closed
// bits and predecessor links by index rather than by pointer — and
// back, so a cost-bounded flood can be written to disk and resumed
// without re-running the search that produced it.
package fill
