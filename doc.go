// Package voxelcore is a search core for tracing tubular structures
// (neurites, vessels) through a 3-D intensity volume.
//
// 🧠 What is voxelcore?
//
//	A focused, dependency-light library that brings together:
//
//	  • voxel     — coordinates, bounds, physical spacing, and a
//	                pluggable read-only Accessor over a 3-D volume
//	  • pairheap  — an addressable pairing heap with true decrease-key
//	  • slicemap  — a sparse per-voxel map over three storage backends
//	  • costfn    — pluggable cost oracles over voxel intensity
//	  • heuristic — pluggable admissible distance estimates
//	  • search    — unidirectional and bidirectional A* engines with a
//	                progress/cancellation facade
//	  • fill      — encode, decode, and persist a cost-bounded flood as
//	                a position-indexed frontier
//
// ✨ Why these pieces?
//
//   - Volume-agnostic — the core never loads or calibrates image data;
//     callers supply a voxel.Accessor over whatever storage they use.
//   - Engines don't share state — each Engine or BidirectionalEngine
//     run allocates its own heap(s) and voxel map, so independent runs
//     never interfere.
//   - Admissible by construction — every shipped heuristic
//     underestimates true physical distance, which is what makes
//     Engine.Trace and BidirectionalEngine.Trace optimal.
//
// Dive into SPEC_FULL.md for the full requirements this module
// implements, and DESIGN.md for how each package is grounded.
package voxelcore
