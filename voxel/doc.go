// Package voxel defines the coordinate system, physical spacing, and
// read-only volume accessor shared by every other package in this module.
//
// A Coordinate is an integer triple (x, y, z) addressing a single voxel
// inside a rectangular Bounds box. Spacing converts integer grid steps
// into physical distance, so that a heuristic or a rendered path can
// speak in real units (microns, for example) instead of voxel counts.
//
// Nothing in this package allocates beyond the values themselves; it has
// no locking and no hidden state. Values here are immutable after
// construction and safe to share across goroutines.
package voxel
