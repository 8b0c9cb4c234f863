// Package pitremoval removes spurious depressions ("pits") from a digital
// elevation model with the hybrid cut/fill strategy of Soille: each detected
// pit is resolved at the elevation level that best balances filling its
// depression against cutting its outflow channel.
//
// The driver is a priority-flood traversal: outlets (border and
// no-data-adjacent cells) seed a min-heap, and cells are finalized strictly
// in non-decreasing elevation order. By the time a pit is popped, everything
// lower is already finalized, which makes its crest and cost curves
// well-defined.
package pitremoval

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/relief/dem"
)

// RemovePits conditions the elevation grid g so that no interior cell (any
// cell not on the border and not adjacent to no-data) is a strict local
// minimum of its 8-neighborhood. It accepts functional options to customize
// behavior (WithStepSize).
//
// Returns:
//
//   - res: the pit-free grid, the per-cell flow directions assigned during
//     the traversal, and statistics for every resolved pit.
//   - err: ErrNilGrid or ErrInvalidStepSize on invalid input, or
//     ErrNoOutletReachable on an internal-consistency failure (no partial
//     result is returned).
//
// The caller's grid is never mutated: RemovePits works on a clone, so a
// failed run leaves no observable effect. No-data cells are never modified
// and act as fixed outlet boundaries.
//
// Complexity:
//
//   - Time:  O(N log N + P·L·D) where N = rows×cols, P = number of pits,
//     L = levels scanned per pit (crest span / StepSize) and D = cells per
//     depression + outflow chain.
//   - Space: O(N) for the three per-cell arrays plus the heap.
func RemovePits(g *dem.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate the discretization step before touching anything.
	if cfg.StepSize <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidStepSize, cfg.StepSize)
	}

	// 4) Set up the runner over a clone; the input stays pristine.
	r, err := newRunner(g.Clone(), cfg)
	if err != nil {
		return nil, err
	}

	// 5) Seed the flood front with every confirmed outlet.
	r.seed()

	// 6) Drain the queue in non-decreasing elevation order.
	if err = r.process(); err != nil {
		return nil, err
	}

	return &Result{Grid: r.g, Flow: r.flow, Pits: r.pits}, nil
}

// runner holds the mutable state for a single RemovePits execution: the
// three same-shape grids (elevation, flow direction, flood status), the
// priority queue, and the per-run configuration. One runner per call — no
// state survives across runs.
type runner struct {
	g          *dem.Grid      // elevations; mutated in place by the resolver
	flow       *dem.FlowField // per-cell outflow octant
	status     []FloodStatus  // row-major flood tags
	processed  []bool         // set on first pop; later stale entries skip
	pq         cellPQ         // min-heap of (elevation, row, col)
	step       float64        // level discretization granularity
	rows, cols int
	pits       []PitStats
	nbuf       []dem.Neighbor // reusable neighborhood buffer for hot loops
}

func newRunner(g *dem.Grid, cfg Options) (*runner, error) {
	rows, cols := g.Rows(), g.Cols()
	flow, err := dem.NewFlowField(rows, cols)
	if err != nil {
		return nil, err
	}

	return &runner{
		g:         g,
		flow:      flow,
		status:    make([]FloodStatus, rows*cols),
		processed: make([]bool, rows*cols),
		pq:        make(cellPQ, 0, rows*cols),
		step:      cfg.StepSize,
		rows:      rows,
		cols:      cols,
		nbuf:      make([]dem.Neighbor, 0, 8),
	}, nil
}

// idx maps (r,c) to the row-major index shared by status and processed.
func (r *runner) idx(row, col int) int { return row*r.cols + col }

// elev reads the current elevation at (r,c); coordinates are in bounds by
// construction everywhere the runner calls it.
func (r *runner) elev(row, col int) float64 {
	z, _ := r.g.At(row, col)

	return z
}

// seed scans the grid once and pushes every cell that is, by construction,
// already connected to the outside world: border cells and cells adjacent
// to a no-data region. Seeds start Confirmed. A no-data-adjacent seed's
// flow direction points toward its no-data neighbor (where the water
// conceptually exits); a pure border seed has nowhere further to trace and
// gets dem.DirOutlet. A cell satisfying both conditions is seeded once.
//
// No-data cells themselves are marked Confirmed so the traversal never
// enqueues or modifies them; their flow direction stays DirUndefined.
// Complexity: O(rows×cols×8).
func (r *runner) seed() {
	heap.Init(&r.pq)
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			if r.g.IsNoData(row, col) {
				r.status[r.idx(row, col)] = Confirmed
				continue
			}
			dir, isSeed := dem.DirUndefined, false
			r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], row, col)
			for _, nb := range r.nbuf {
				if r.g.IsNoData(nb.Row, nb.Col) {
					dir, isSeed = nb.Dir, true
					break
				}
			}
			if !isSeed {
				if !r.g.OnBorder(row, col) {
					continue
				}
				dir = dem.DirOutlet
			}
			_ = r.flow.SetDir(row, col, dir)
			r.status[r.idx(row, col)] = Confirmed
			heap.Push(&r.pq, cellItem{elev: r.elev(row, col), row: row, col: col})
		}
	}
}

// process is the main traversal loop. Each pop either resolves a pit,
// re-promotes a Flooded cell that gained a confirmed low escape after a
// neighboring pit was resolved, or neither — and in every case floods the
// still-unvisited neighbors. The heap order guarantees cells are finalized
// in non-decreasing elevation order.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-elevation entry; ties resolve by (row, col).
		item := heap.Pop(&r.pq).(cellItem)
		i := r.idx(item.row, item.col)

		// 2) Only the first pop of a cell triggers processing; any later
		//    entry for the same cell is stale and skipped.
		if r.processed[i] {
			continue
		}
		r.processed[i] = true

		if r.isPit(item.row, item.col) {
			// 3) Pit: resolve it via the hybrid cut/fill strategy, which
			//    mutates the grid and confirms the cell.
			if err := r.resolvePit(item.row, item.col); err != nil {
				return err
			}
		} else if r.status[i] == Flooded {
			// 4) Not a pit, still only Flooded: promote to Confirmed if a
			//    confirmed neighbor sits at or below this cell's elevation.
			//    This corrects cells that were enclosed by a pit that has
			//    since been resolved.
			r.repromote(item.row, item.col)
		}

		// 5) Flood the still-unvisited neighborhood.
		r.floodNeighbors(item.row, item.col)
	}

	return nil
}

// isPit applies the pit test: a Confirmed cell is never a pit; a Flooded
// cell is a pit unless some neighbor is strictly lower, or equal-elevation
// and Unvisited (an equal-height escape route may still exist through it).
// No-data neighbors never count.
func (r *runner) isPit(row, col int) bool {
	if r.status[r.idx(row, col)] == Confirmed {
		return false
	}
	z := r.elev(row, col)
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], row, col)
	for _, nb := range r.nbuf {
		if r.g.IsNoData(nb.Row, nb.Col) {
			continue
		}
		nz := r.elev(nb.Row, nb.Col)
		if nz < z || (nz == z && r.status[r.idx(nb.Row, nb.Col)] == Unvisited) {
			return false
		}
	}

	return true
}

// repromote upgrades a Flooded cell to Confirmed when some confirmed
// neighbor sits at or below its elevation: a proven low path exists even
// though the pit test never fired for this cell.
func (r *runner) repromote(row, col int) {
	z := r.elev(row, col)
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], row, col)
	for _, nb := range r.nbuf {
		if r.g.IsNoData(nb.Row, nb.Col) {
			continue
		}
		if r.status[r.idx(nb.Row, nb.Col)] == Confirmed && r.elev(nb.Row, nb.Col) <= z {
			r.status[r.idx(row, col)] = Confirmed
			break
		}
	}
}

// floodNeighbors pushes every still-unvisited neighbor into the queue at
// its own elevation, pointing its flow direction back at (row, col). The
// neighbor starts Confirmed when this cell is Confirmed and the neighbor is
// at or above it (water demonstrably drains through here); otherwise it
// starts Flooded. Flow direction is assigned exactly once per cell: a cell
// leaves Unvisited the moment it is flooded and is never flooded again.
func (r *runner) floodNeighbors(row, col int) {
	z := r.elev(row, col)
	confirmed := r.status[r.idx(row, col)] == Confirmed
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], row, col)
	for _, nb := range r.nbuf {
		j := r.idx(nb.Row, nb.Col)
		if r.status[j] != Unvisited { // no-data cells are Confirmed at seed
			continue
		}
		_ = r.flow.SetDir(nb.Row, nb.Col, nb.Dir.Opposite())
		nz := r.elev(nb.Row, nb.Col)
		if confirmed && nz >= z {
			r.status[j] = Confirmed
		} else {
			r.status[j] = Flooded
		}
		heap.Push(&r.pq, cellItem{elev: nz, row: nb.Row, col: nb.Col})
	}
}
