// Package raster defines core types and sentinel errors for the raster
// subpackage of github.com/katalvlaran/relief.
package raster

import (
	"errors"
)

// Sentinel errors for raster interchange operations.
var (
	// ErrBadHeader indicates a malformed or incomplete ASCII grid header.
	ErrBadHeader = errors.New("raster: malformed ASCII grid header")
	// ErrBadCellCount indicates the data section does not hold exactly
	// nrows×ncols values.
	ErrBadCellCount = errors.New("raster: cell data does not match header dimensions")
)

// DefaultNoData is the no-data sentinel assumed when an ASCII grid omits
// the optional NODATA_value header line (the ESRI convention).
const DefaultNoData = -9999.0

// Header carries the georeference metadata of an ESRI ASCII grid: extent,
// lower-left origin, cell size, and the no-data sentinel. The origin and
// cell size are passed through verbatim — no coordinate-system logic lives
// here.
type Header struct {
	NCols, NRows int
	XLL, YLL     float64 // lower-left corner of the grid
	CellSize     float64
	NoData       float64
}
