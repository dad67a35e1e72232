// Package isolines extracts iso-contours from regularly sampled 2D scalar
// fields — elevation models, intensity maps, any rectangular grid of real
// samples.
//
// 🚀 What is isolines?
//
//	A small, deterministic library that turns a grid plus a set of target
//	values ("levels") into polylines and polygons along which the field
//	equals each level:
//		• field/   — validated scalar grids and level-set derivation
//		• contour/ — per-edge crossing tables and the boundary-walking tracer
//
// ✨ Why choose isolines?
//
//   - Deterministic – identical input always yields identical curves
//   - Exact bookkeeping – every level crossing is consumed exactly once
//   - Topology-aware – closed loops carry a winding orientation that tells
//     peaks from pits; open curves report the boundary edge they exit through
//   - Pure Go – no cgo, no rendering, no hidden I/O
//
// Quick ASCII example:
//
//	  0  0  0
//	  0 10  0      traced at level 5 yields one closed clockwise
//	  0  0  0      diamond around the central peak.
//
// Rendering, smoothing and coordinate mapping are deliberately out of scope:
// the library hands back curves in grid-vertex coordinate space and the
// consumer takes it from there.
//
//	go get github.com/katalvlaran/isolines
package isolines
