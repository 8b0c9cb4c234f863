// Package pitremoval defines core types and configuration options for the
// hybrid cut/fill pit-removal algorithm on digital elevation models.
//
// Pit removal conditions a DEM so that every cell has a monotone-descending
// flow path to an outlet (a raster border cell or a cell adjacent to a
// no-data region), while minimizing the total volume of earth moved
// (cut + fill), following Soille's optimal pit-removal approach.
//
// Options:
//
//	– StepSize: granularity of the discretized elevation levels scanned when
//	  choosing where to stop filling and start cutting. Must be > 0; smaller
//	  values increase fidelity and runtime.
//
// Errors (sentinel):
//
//	– ErrNilGrid            if the provided *dem.Grid is nil.
//	– ErrInvalidStepSize    if StepSize ≤ 0 (fail fast; input untouched).
//	– ErrNoOutletReachable  if a flow-direction chain loops instead of
//	  reaching an outlet — an internal-consistency failure that aborts the
//	  run rather than emitting a partially resolved grid.
package pitremoval

import (
	"errors"

	"github.com/katalvlaran/relief/dem"
)

// Sentinel errors returned by RemovePits.
var (
	// ErrNilGrid indicates that a nil *dem.Grid was passed to RemovePits.
	ErrNilGrid = errors.New("pitremoval: grid is nil")

	// ErrInvalidStepSize indicates a non-positive elevation discretization
	// step. Detected before any traversal starts; the input grid is never
	// touched.
	ErrInvalidStepSize = errors.New("pitremoval: step size must be positive")

	// ErrNoOutletReachable indicates that following a flow-direction chain
	// never reached an outlet (the chain loops). This cannot occur while the
	// traversal invariants hold; when observed it is a fatal internal
	// inconsistency and the run is aborted, since a corrupted result is
	// worse than a clear failure.
	ErrNoOutletReachable = errors.New("pitremoval: flow-direction chain does not reach an outlet")
)

// FloodStatus tracks how certain the traversal is that a cell has a valid
// downhill path to an outlet. Transitions are monotone:
// Unvisited → Flooded → Confirmed; a Confirmed cell never steps back.
type FloodStatus uint8

const (
	// Unvisited marks a cell not yet reached by the flood front.
	Unvisited FloodStatus = iota
	// Flooded marks a cell reached by the flood front but not yet proven to
	// have a downhill path to an outlet.
	Flooded
	// Confirmed marks a cell proven connected to an outlet at or below its
	// own elevation.
	Confirmed
)

// DefaultStepSize is the elevation-level discretization used when no
// WithStepSize option is given.
const DefaultStepSize = 0.1

// Options configures the behavior of RemovePits.
//
// StepSize – elevation-level granularity for the cut/fill cost curves and
// the ideal-level scan. Must be > 0. Default is DefaultStepSize.
type Options struct {
	StepSize float64 // discretization granularity of candidate fill levels
}

// Option represents a functional option for configuring RemovePits.
type Option func(*Options)

// WithStepSize sets the elevation-level discretization granularity.
// The value is validated inside RemovePits: StepSize ≤ 0 yields
// ErrInvalidStepSize before any work is done, so the caller's grid is
// guaranteed untouched on failure.
func WithStepSize(step float64) Option {
	return func(o *Options) {
		o.StepSize = step
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - StepSize: DefaultStepSize (0.1 elevation units).
func DefaultOptions() Options {
	return Options{StepSize: DefaultStepSize}
}

// PitStats records one resolved pit: where it was, the crest bounding its
// depression, the chosen fill level, and the volumes moved. CrestFillVolume
// is the volume pure filling to the crest would have required with zero
// cutting — the do-no-worse baseline of the hybrid approach.
type PitStats struct {
	Row, Col        int     // pit cell coordinates
	PitElev         float64 // pit elevation before resolution
	CrestElev       float64 // bounding crest along the downstream path
	IdealLevel      float64 // chosen level minimizing |fill − cut|
	FillVolume      float64 // earth added within the depression at IdealLevel
	CutVolume       float64 // earth removed along the outflow channel at IdealLevel
	CrestFillVolume float64 // cost of filling fully to crest, for comparison
}

// Result carries the outputs of one RemovePits run: the pit-free elevation
// grid, the flow-direction field assigned during the traversal (the input
// to flow-accumulation and watershed consumers), and per-pit statistics.
type Result struct {
	// Grid is the conditioned elevation grid. It is a fresh grid: the
	// caller's input is never mutated.
	Grid *dem.Grid
	// Flow holds one direction per cell: the octant water follows
	// downstream, or dem.DirOutlet at discharge points. No-data cells stay
	// dem.DirUndefined.
	Flow *dem.FlowField
	// Pits lists every resolved pit in resolution order.
	Pits []PitStats
}
