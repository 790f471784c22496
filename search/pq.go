package search

import "github.com/katalvlaran/mazerunner/grid"

// nodeItem is a heap entry. seq is the insertion counter used to break
// priority ties so equal-priority entries pop in FIFO order.
type nodeItem struct {
	c   grid.Coord
	g   float64
	pri float64
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (pri, seq). Decrease-key is
// lazy: improved entries are pushed again and stale ones skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].pri != pq[j].pri {
		return pq[i].pri < pq[j].pri
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
