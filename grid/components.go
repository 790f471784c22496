package grid

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable returns every cell reachable from `from` by breadth-first
// search over Neighbors, including `from` itself when it is passable.
// Complexity: O(W×H×d), Memory: O(W×H).
func (g *Grid) Reachable(from Coord, diagonals bool) mapset.Set[Coord] {
	seen := mapset.New[Coord]()
	if !g.IsPassable(from.X, from.Y) {
		return seen
	}
	q := queue.New[Coord]()
	seen.Put(from)
	q.Enqueue(from)
	for !q.Empty() {
		cur := q.Dequeue()
		for _, n := range g.Neighbors(cur.X, cur.Y, diagonals) {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			q.Enqueue(n)
		}
	}
	return seen
}

// Connected reports whether every passable in-bounds cell and Goal are
// reachable from Start using orthogonal moves.
func (g *Grid) Connected() bool {
	seen := g.Reachable(g.start, false)
	if !seen.Has(g.goal) {
		return false
	}
	for i, o := range g.open {
		if o && !seen.Has(g.Coordinate(i)) {
			return false
		}
	}
	return true
}

// OpenSides counts open orthogonal adjacencies between in-bounds cells.
// For a perfect maze it equals len(PassableCells())-1.
func (g *Grid) OpenSides() int {
	n := 0
	for i, m := range g.walls {
		// count each shared side once, from its west/north cell
		if m&East != 0 && (i+1)%g.width != 0 {
			n++
		}
		if m&South != 0 && i+g.width < len(g.walls) {
			n++
		}
	}
	return n
}
