package dem

import (
	"fmt"
)

// FlowField stores one Direction per grid cell: the octant its water follows
// downstream, DirOutlet for discharge points, or DirUndefined where no
// outflow has been assigned yet. It is the secondary output of pit removal,
// consumed by flow-accumulation and watershed builders.
//
// The intended invariant (established by the traversal that fills it in):
// following directions from any assigned cell reaches a DirOutlet or a
// no-data boundary in a bounded number of steps, with no cycles.
type FlowField struct {
	rows, cols int
	dirs       []Direction // row-major, initialized to DirUndefined
}

// NewFlowField allocates a rows×cols field with every cell DirUndefined.
// Returns ErrEmptyGrid for non-positive dimensions.
// Complexity: O(rows×cols).
func NewFlowField(rows, cols int) (*FlowField, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	dirs := make([]Direction, rows*cols)
	for i := range dirs {
		dirs[i] = DirUndefined
	}

	return &FlowField{rows: rows, cols: cols, dirs: dirs}, nil
}

// Rows returns the number of rows.
func (f *FlowField) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *FlowField) Cols() int { return f.cols }

// InBounds reports whether (r,c) lies within the field extent.
// Complexity: O(1).
func (f *FlowField) InBounds(r, c int) bool {
	return r >= 0 && r < f.rows && c >= 0 && c < f.cols
}

// Dir returns the direction stored at (r,c), or ErrOutOfBounds beyond the
// extent.
// Complexity: O(1).
func (f *FlowField) Dir(r, c int) (Direction, error) {
	if !f.InBounds(r, c) {
		return DirUndefined, fmt.Errorf("%w: (%d,%d) in %dx%d field", ErrOutOfBounds, r, c, f.rows, f.cols)
	}

	return f.dirs[r*f.cols+c], nil
}

// SetDir overwrites the direction at (r,c).
// Returns ErrOutOfBounds beyond the extent.
// Complexity: O(1).
func (f *FlowField) SetDir(r, c int, d Direction) error {
	if !f.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d field", ErrOutOfBounds, r, c, f.rows, f.cols)
	}
	f.dirs[r*f.cols+c] = d

	return nil
}

// Step follows the direction stored at (r,c) one hop downstream and returns
// the next cell. ok is false when the cell holds a sentinel direction
// (DirOutlet, DirUndefined), when (r,c) is out of bounds, or when the hop
// would leave the grid — all of which mean "nowhere further to trace".
// Complexity: O(1).
func (f *FlowField) Step(r, c int) (nr, nc int, ok bool) {
	if !f.InBounds(r, c) {
		return r, c, false
	}
	d := f.dirs[r*f.cols+c]
	if !d.Defined() {
		return r, c, false
	}
	dr, dc := d.Offset()
	nr, nc = r+dr, c+dc
	if !f.InBounds(nr, nc) {
		return r, c, false
	}

	return nr, nc, true
}
