package pitremoval

// cellItem represents one queue entry: a cell and the elevation it was
// enqueued at. The elevation is a snapshot — the grid may be mutated while
// the entry waits — so consumers re-read the grid on pop.
type cellItem struct {
	elev     float64 // elevation at enqueue time
	row, col int
}

// cellPQ is a min-heap (priority queue) of cellItem ordered by elevation,
// the structure enforcing the core invariant that cells are finalized in
// non-decreasing elevation order. Elevation ties break by (row, col) so a
// run is fully deterministic for a given input.
//
// The queue follows the lazy-decrease-key pattern: duplicates are pushed
// rather than reprioritized, and stale entries are skipped on pop by
// checking whether the cell was already processed.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: lower elevation → higher priority, ties by
// row then column for determinism.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].elev != pq[j].elev {
		return pq[i].elev < pq[j].elev
	}
	if pq[i].row != pq[j].row {
		return pq[i].row < pq[j].row
	}

	return pq[i].col < pq[j].col
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to cellItem.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
