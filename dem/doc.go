// Package dem models a digital elevation model (DEM): a rectangular grid of
// float64 elevations with a no-data sentinel, plus the per-cell flow
// directions derived from it.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 raster with a no-data sentinel.
//   - Bounds-safe accessors (At, SetElev) return ErrOutOfBounds instead of
//     panicking; edge callers treat it as "no such neighbor".
//   - Neighbors yields the 8-neighborhood in fixed octant order, silently
//     omitting out-of-range entries, so bounds logic lives in one place.
//   - Direction encodes 8 compass octants (clockwise from north-west) plus
//     the DirOutlet/DirUndefined sentinels; FlowField stores one per cell
//     and follows them downstream with Step.
//
// Why:
//
//   - Hydrologic conditioning: pit removal, flow routing, watershed builds.
//   - Terrain analysis: any algorithm walking a raster neighborhood.
//
// Complexity:
//
//   - New / Clone / Values: O(rows×cols).
//   - At / SetElev / Neighbors / Step: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinates beyond the grid extent (recoverable).
//
// Octant numbering, clockwise from north-west:
//
//	|0|1|2|
//	|7| |3|
//	|6|5|4|
package dem
