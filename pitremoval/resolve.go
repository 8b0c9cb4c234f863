package pitremoval

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/relief/dem"
)

// resolvePit applies the hybrid cut/fill strategy to the pit at (row, col):
//
//  1. Trace the flow-direction chain downstream to find the bounding crest
//     elevation.
//  2. Enumerate the depression extent — the cells submerged if the pit were
//     filled to the crest.
//  3. Evaluate the discretized cut and fill volume curves and pick the
//     level minimizing |fill − cut| (lowest such level on ties).
//  4. Fill the depression to that level, cut the outflow channel down to
//     it, and confirm the pit.
//
// Every chain walk carries a cycle guard; a chain that fails to terminate
// is an internal-consistency failure (ErrNoOutletReachable) that aborts the
// whole run, so a corrupted grid is never returned.
func (r *runner) resolvePit(row, col int) error {
	pitElev := r.elev(row, col)

	crest, err := r.crestElevation(row, col)
	if err != nil {
		return err
	}

	extent := r.depressionExtent(row, col, crest)
	extentElevs := make([]float64, len(extent))
	for k, i := range extent {
		extentElevs[k] = r.elev(r.g.Coordinate(i))
	}

	chain, err := r.outflowChain(row, col)
	if err != nil {
		return err
	}

	ls := levels(pitElev, crest, r.step)
	fills, cuts := volumeCurves(ls, chain, extentElevs, crest)
	best := idealLevel(fills, cuts)
	ideal, fill, cut := ls[best], fills[best], cuts[best]

	r.pits = append(r.pits, PitStats{
		Row: row, Col: col,
		PitElev:         pitElev,
		CrestElev:       crest,
		IdealLevel:      ideal,
		FillVolume:      fill,
		CutVolume:       cut,
		CrestFillVolume: FillVolume(extentElevs, crest, crest),
	})

	r.applyFill(extent, ideal)
	if err = r.applyCut(row, col, ideal); err != nil {
		return err
	}
	r.status[r.idx(row, col)] = Confirmed

	return nil
}

// chainNext follows the flow direction at (row, col) one hop downstream.
// done reports that the cell is itself a discharge point (dem.DirOutlet).
// An undefined direction mid-chain breaks the traversal invariant and
// surfaces as ErrNoOutletReachable.
func (r *runner) chainNext(row, col int) (nr, nc int, done bool, err error) {
	d, _ := r.flow.Dir(row, col)
	if d == dem.DirOutlet {
		return row, col, true, nil
	}
	if !d.Defined() {
		return row, col, false, fmt.Errorf("%w: undefined flow direction at (%d,%d)", ErrNoOutletReachable, row, col)
	}
	dr, dc := d.Offset()

	return row + dr, col + dc, false, nil
}

// crestElevation follows the flow-direction chain from the pit downstream
// and returns the maximum elevation seen before reaching an outlet: either
// a no-data cell, a discharge point, or a confirmed cell at or below the
// running maximum (a proven outlet path). That maximum is the crest — the
// ceiling for filling this pit's depression.
// Complexity: O(chain length).
func (r *runner) crestElevation(row, col int) (float64, error) {
	crest := r.elev(row, col)
	cur, cuc := row, col
	for steps := 0; ; steps++ {
		if steps > r.rows*r.cols {
			return 0, fmt.Errorf("%w: cycle while tracing crest from (%d,%d)", ErrNoOutletReachable, row, col)
		}
		nr, nc, done, err := r.chainNext(cur, cuc)
		if err != nil {
			return 0, err
		}
		if done || r.g.IsNoData(nr, nc) {
			return crest, nil
		}
		z := r.elev(nr, nc)
		if z <= crest && r.status[r.idx(nr, nc)] == Confirmed {
			return crest, nil
		}
		if z > crest {
			crest = z
		}
		cur, cuc = nr, nc
	}
}

// depressionExtent enumerates the cells that would be submerged if the pit
// at (row, col) were filled to the crest: a priority expansion rooted at
// the pit, admitting a neighbor when its elevation is at or above the
// current cell's and strictly below the crest. The pit itself is always
// part of its own depression. Returns row-major cell indices.
// Complexity: O(extent × 8 × log extent).
func (r *runner) depressionExtent(row, col int, crest float64) []int {
	seen := map[int]struct{}{r.idx(row, col): {}}
	extent := []int{r.idx(row, col)}
	dq := cellPQ{{elev: r.elev(row, col), row: row, col: col}}
	heap.Init(&dq)

	for dq.Len() > 0 {
		cur := heap.Pop(&dq).(cellItem)
		r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], cur.row, cur.col)
		for _, nb := range r.nbuf {
			if r.g.IsNoData(nb.Row, nb.Col) {
				continue
			}
			j := r.idx(nb.Row, nb.Col)
			if _, ok := seen[j]; ok {
				continue
			}
			nz := r.elev(nb.Row, nb.Col)
			if nz < cur.elev || nz >= crest {
				continue
			}
			seen[j] = struct{}{}
			extent = append(extent, j)
			heap.Push(&dq, cellItem{elev: nz, row: nb.Row, col: nb.Col})
		}
	}

	return extent
}

// outflowChain collects the elevations along the flow-direction chain from
// the pit to its outlet — the cells a channel would have to be carved
// through. The walk stops at a no-data cell, a discharge point, or the
// first confirmed cell; confirmed cells already drain and are not charged
// to the cut curve.
// Complexity: O(chain length).
func (r *runner) outflowChain(row, col int) ([]float64, error) {
	var chain []float64
	cur, cuc := row, col
	for steps := 0; ; steps++ {
		if steps > r.rows*r.cols {
			return nil, fmt.Errorf("%w: cycle while walking outflow from (%d,%d)", ErrNoOutletReachable, row, col)
		}
		nr, nc, done, err := r.chainNext(cur, cuc)
		if err != nil {
			return nil, err
		}
		if done || r.g.IsNoData(nr, nc) || r.status[r.idx(nr, nc)] == Confirmed {
			return chain, nil
		}
		chain = append(chain, r.elev(nr, nc))
		cur, cuc = nr, nc
	}
}

// applyFill raises every depression cell to max(current, level). Cells
// already above the level keep their elevation.
func (r *runner) applyFill(extent []int, level float64) {
	for _, i := range extent {
		row, col := r.g.Coordinate(i)
		if r.elev(row, col) < level {
			_ = r.g.SetElev(row, col, level)
		}
	}
}

// applyCut walks the outflow chain from the pit and opens the channel at
// the ideal level: cells above the level are carved down to it, cells at or
// below pass through untouched (never raised), and every visited cell is
// confirmed. The walk ends at a no-data cell, a discharge point, or a
// confirmed cell at or below the level. Depression cells the fill just
// raised sit exactly at the level but are not yet confirmed, so the walk
// continues through them to the spill cells beyond the depression.
func (r *runner) applyCut(row, col int, level float64) error {
	cur, cuc := row, col
	for steps := 0; ; steps++ {
		if steps > r.rows*r.cols {
			return fmt.Errorf("%w: cycle while cutting outflow from (%d,%d)", ErrNoOutletReachable, row, col)
		}
		nr, nc, done, err := r.chainNext(cur, cuc)
		if err != nil {
			return err
		}
		if done || r.g.IsNoData(nr, nc) {
			return nil
		}
		j := r.idx(nr, nc)
		if r.elev(nr, nc) <= level && r.status[j] == Confirmed {
			return nil
		}
		if r.elev(nr, nc) > level {
			_ = r.g.SetElev(nr, nc, level)
		}
		r.status[j] = Confirmed
		cur, cuc = nr, nc
	}
}
