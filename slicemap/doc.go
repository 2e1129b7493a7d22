// Package slicemap implements a sparse, per-z "slice" voxel map: a
// mapping from (x, y, z) to an arbitrary stored value, allocated lazily
// one z-slice at a time so memory stays proportional to the voxels the
// caller has actually touched rather than to the volume's full extent.
//
// Each slice is backed by one of three interchangeable implementations,
// selected per Map by Backend:
//
//   - Array:  a dense [W*H]T slice with an O(1) presence bitmap. Cheapest
//     per access, but pays the full W*H footprint the moment any voxel
//     in that z-slice is touched. Pick this when expected density in a
//     slice is high (a generous rule of thumb is > ~20%).
//   - Hash:   a Go map keyed by the packed (y*W+x) index. The default
//     choice for typical point-to-point tracing, where only a thin tube
//     of voxels around the eventual path is ever explored.
//   - Sorted: a key-ordered structure over the same packed index, for
//     callers that need Iterate to visit a slice in ascending (y, x)
//     order without a separate sort pass — the order fill serialization
//     wants for deterministic (z, y, x) output.
//
// Map never evicts entries; it grows monotonically until the caller
// drops the whole Map for garbage collection, which mirrors how a
// search engine's voxel map lives exactly as long as the engine does.
package slicemap
