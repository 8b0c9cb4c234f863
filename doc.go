// Package relief is your in-memory toolkit for conditioning and analyzing
// digital elevation models — from the raw raster grid to a hydrologically
// correct, flow-routable terrain surface.
//
// 🚀 What is relief?
//
//	A modern, pure-Go terrain library that brings together:
//		• Grid primitives: a bounds-safe elevation raster with a no-data mask
//		• Octant flow directions: 8-direction codes plus a downstream walker
//		• Pit removal: Soille's hybrid cut/fill with priority-flood traversal
//		• Raster interchange: ESRI ASCII grid reading and writing
//
// ✨ Why choose relief?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic runs, sentinel errors, no
//     mutation of caller data
//   - Pure Go – no cgo, no GDAL at runtime
//   - Honest failure – internal-consistency violations abort instead of
//     returning a corrupted grid
//
// Under the hood, everything is organized under three subpackages:
//
//	dem/        — Grid, Direction, FlowField: the elevation model itself
//	pitremoval/ — hybrid cut/fill depression removal (the core algorithm)
//	raster/     — ESRI ASCII grid (.asc) interchange with dem.Grid
//
// Quick ASCII example:
//
//	    9 9 9 9
//	    9 2 9 9     ← the 2 is a pit: no downhill neighbor
//	    9 9 9 9
//
//	pit removal fills the hole and carves its outflow channel so every
//	cell drains to the raster edge.
//
// Next up: flow accumulation, watershed delineation and stream extraction
// on top of the emitted flow-direction field. Dive into the package docs
// and Example functions for full, runnable walkthroughs.
//
//	go get github.com/katalvlaran/relief
package relief
