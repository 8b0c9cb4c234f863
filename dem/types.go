// Package dem defines core types and sentinel errors for the dem subpackage
// of github.com/katalvlaran/relief.
package dem

import (
	"errors"
)

// Sentinel errors for dem operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("dem: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("dem: all rows must have the same length")
	// ErrOutOfBounds indicates cell coordinates beyond the grid extent.
	// It is a normal, recoverable condition at raster edges: callers probing
	// a neighborhood treat it as "no such neighbor" and continue.
	ErrOutOfBounds = errors.New("dem: cell coordinates outside grid extent")
)

// Direction encodes one of 8 compass octants as a small integer, numbered
// clockwise from north-west:
//
//	|0|1|2|
//	|7| |3|
//	|6|5|4|
//
// Two sentinels extend the code space: DirOutlet marks a cell that is itself
// a discharge point (no defined outflow), DirUndefined marks a cell whose
// outflow has not been assigned yet.
type Direction int8

// The 8 octant codes, clockwise from north-west.
const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
)

const (
	// DirOutlet marks a discharge point: water exits the model here, so no
	// further downstream cell is defined.
	DirOutlet Direction = -1
	// DirUndefined marks a cell whose flow direction has not been assigned.
	DirUndefined Direction = -2
)

// offsets holds the (row, col) delta for each octant code, in code order.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1},
}

// Defined reports whether d is one of the 8 octant codes (not a sentinel).
// Complexity: O(1).
func (d Direction) Defined() bool {
	return d >= NW && d <= W
}

// Offset returns the (row, col) delta for octant d.
// Calling Offset on a sentinel direction is a programmer error and panics.
// Complexity: O(1).
func (d Direction) Offset() (dr, dc int) {
	if !d.Defined() {
		panic("dem: Offset called on sentinel direction")
	}

	return offsets[d][0], offsets[d][1]
}

// Opposite returns the octant pointing the other way: (d+4) mod 8.
// Used to make a flooded neighbor point back at its flooder.
// Calling Opposite on a sentinel direction is a programmer error and panics.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	if !d.Defined() {
		panic("dem: Opposite called on sentinel direction")
	}

	return (d + 4) % 8
}

// Neighbor is one entry of a cell's 8-neighborhood: the octant code leading
// to it and its absolute grid coordinates.
type Neighbor struct {
	Dir      Direction // octant from the center cell to this neighbor
	Row, Col int       // absolute coordinates of the neighbor
}
