// Package pitremoval provides a precise implementation of hybrid cut/fill
// pit removal for digital elevation models, after Soille's "Optimal removal
// of spurious pits in digital elevation models".
//
// Overview:
//
//   - A pit is a local elevation minimum with no downhill neighbor: water
//     routed across the raster stalls there. Most pits in real DEMs are
//     artifacts of sampling and interpolation, and flow routing requires
//     them gone.
//   - Pure filling raises every depression to its spill point; pure carving
//     cuts a trench from every pit to its outlet. Either can move absurd
//     volumes of earth. The hybrid approach picks, per pit, the elevation
//     level where the fill volume and the cut volume balance, and does both
//     partially — filling the depression up to that level and carving the
//     outflow channel down to it.
//   - The driver is a priority-flood traversal seeded at the raster border
//     and at no-data margins: a min-heap finalizes cells in non-decreasing
//     elevation order, so when a pit surfaces, everything below it has
//     already been proven to drain.
//
// When to use:
//
//   - Conditioning a DEM before flow-direction, flow-accumulation, or
//     watershed-delineation products are built from it.
//   - Anywhere strict local minima must be removed while disturbing the
//     terrain as little as possible.
//
// Key behaviors:
//
//   - The input grid is cloned; the caller's data is never mutated, even on
//     failure.
//   - No-data cells are never modified and act as fixed outlet boundaries.
//   - The flow-direction field assigned during traversal is returned
//     alongside the conditioned grid for downstream routing consumers.
//   - Per-pit statistics (crest, chosen level, volumes) are reported in
//     Result.Pits.
//   - Deterministic: elevation ties in the queue break by (row, col), so a
//     given input always produces the identical result.
//
// Complexity:
//
//   - Time:  O(N log N) traversal over N = rows×cols cells, plus per-pit
//     resolution costs proportional to depression size × scanned levels.
//   - Space: O(N).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:           nil *dem.Grid passed to RemovePits.
//   - ErrInvalidStepSize:   StepSize ≤ 0; detected before any traversal, so
//     the input is guaranteed untouched.
//   - ErrNoOutletReachable: a flow-direction chain looped instead of
//     reaching an outlet. Unreachable while the traversal invariants hold;
//     treated as fatal — the run aborts rather than emitting a partially
//     resolved grid.
//
// API reference:
//
//	func RemovePits(g *dem.Grid, opts ...Option) (*Result, error)
package pitremoval
