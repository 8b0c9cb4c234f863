// Package dem provides the elevation-grid model for terrain analysis:
// a dense rows×cols raster of float64 elevations with one designated
// no-data sentinel, bounds-safe accessors, and octant-ordered neighbor
// iteration that never yields out-of-range coordinates.
package dem

import (
	"fmt"
	"math"
)

// Grid is a dense, row-major elevation raster. The shape is immutable once
// built; cell values are mutable through SetElev only. Cells holding the
// no-data sentinel represent holes in the raster (lakes, masked regions,
// tile edges) and are treated by consumers as fixed outlet boundaries.
type Grid struct {
	rows, cols int
	noData     float64
	z          []float64 // row-major: z[r*cols+c]
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure the caller's slice stays untouched.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×cols) time and memory.
func New(values [][]float64, noData float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	z := make([]float64, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		copy(z[r*cols:(r+1)*cols], row)
	}

	return &Grid{rows: rows, cols: cols, noData: noData, z: z}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// NoData returns the no-data sentinel value.
func (g *Grid) NoData() float64 { return g.noData }

// InBounds reports whether (r,c) lies within the grid extent.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// OnBorder reports whether (r,c) lies on the outermost ring of the grid.
// Out-of-range coordinates are not on the border.
// Complexity: O(1).
func (g *Grid) OnBorder(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}

	return r == 0 || r == g.rows-1 || c == 0 || c == g.cols-1
}

// At returns the elevation at (r,c), or ErrOutOfBounds beyond the extent.
// The error is recoverable: neighborhood probes at raster edges treat it as
// "no such neighbor".
// Complexity: O(1).
func (g *Grid) At(r, c int) (float64, error) {
	if !g.InBounds(r, c) {
		return math.NaN(), fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, r, c, g.rows, g.cols)
	}

	return g.z[g.index(r, c)], nil
}

// SetElev overwrites the elevation at (r,c). It is the only mutation entry
// point of the grid. Returns ErrOutOfBounds beyond the extent.
// Complexity: O(1).
func (g *Grid) SetElev(r, c int, v float64) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, r, c, g.rows, g.cols)
	}
	g.z[g.index(r, c)] = v

	return nil
}

// IsNoData reports whether the cell at (r,c) holds the no-data sentinel.
// Out-of-range coordinates report false.
// Complexity: O(1).
func (g *Grid) IsNoData(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}

	return g.z[g.index(r, c)] == g.noData
}

// Neighbors returns the cells of the 8-neighborhood of (r,c) in fixed octant
// order (NW, N, NE, E, SE, S, SW, W). Entries falling outside the grid are
// omitted, not errors, so the slice holds between 3 and 8 entries for any
// in-bounds center; this keeps every bounds check in one audited place.
// Complexity: O(1) time, one allocation.
func (g *Grid) Neighbors(r, c int) []Neighbor {
	return g.AppendNeighbors(make([]Neighbor, 0, 8), r, c)
}

// AppendNeighbors appends the in-bounds 8-neighborhood of (r,c) to buf and
// returns the extended slice. It is the allocation-free form of Neighbors
// for hot traversal loops: pass buf[:0] to reuse the backing array.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(buf []Neighbor, r, c int) []Neighbor {
	for d := NW; d <= W; d++ {
		nr, nc := r+offsets[d][0], c+offsets[d][1]
		if !g.InBounds(nr, nc) {
			continue
		}
		buf = append(buf, Neighbor{Dir: d, Row: nr, Col: nc})
	}

	return buf
}

// Clone returns a deep copy of the grid.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	z := make([]float64, len(g.z))
	copy(z, g.z)

	return &Grid{rows: g.rows, cols: g.cols, noData: g.noData, z: z}
}

// Values returns the elevations as a freshly allocated 2D slice, so callers
// can hand the data to external consumers without aliasing the grid.
// Complexity: O(rows×cols).
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]float64, g.cols)
		copy(out[r], g.z[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// index maps (r,c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}
