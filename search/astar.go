package search

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
)

// AStar finds a minimum-cost path from start to goal using the configured
// heuristic, scaled by the cheapest passable terrain on the grid. With
// HeuristicScale ≤ 1 the returned cost is optimal; when zero-cost cells are
// present the estimate collapses to the goal's entry cost and the search
// behaves like Dijkstra.
//
// When discovered is non-nil only start, goal and cells in the set are
// expanded, and h is zero while the goal is undiscovered.
//
// Complexity: O((V + E) log V) time, O(V) space.
func (e *Engine) AStar(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	return e.cached(AStar, start, goal, discovered, func() Result {
		return e.bestFirst(AStar, start, goal, discovered, e.heuristic(goal, discovered))
	})
}

// Dijkstra is AStar with h ≡ 0.
func (e *Engine) Dijkstra(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	return e.cached(Dijkstra, start, goal, discovered, func() Result {
		return e.bestFirst(Dijkstra, start, goal, discovered, func(grid.Coord) float64 { return 0 })
	})
}

// Replan recomputes a route from the agent's current cell after the world
// changed. It is a full A* re-solve labelled Replan.
func (e *Engine) Replan(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	return e.cached(Replan, start, goal, discovered, func() Result {
		return e.bestFirst(Replan, start, goal, discovered, e.heuristic(goal, discovered))
	})
}

// bestFirst runs one Dijkstra/A* search.
func (e *Engine) bestFirst(algo Algorithm, start, goal grid.Coord, discovered *mapset.Set[grid.Coord], h func(grid.Coord) float64) Result {
	r := &runner{
		e:          e,
		start:      start,
		goal:       goal,
		discovered: discovered,
		h:          h,
		best:       make(map[grid.Coord]float64),
		prev:       make(map[grid.Coord]grid.Coord),
		res:        newResult(algo, goal),
	}
	if !e.g.IsValid(start.X, start.Y) || !e.g.IsValid(goal.X, goal.Y) {
		return r.res
	}
	r.init()
	if r.process() {
		r.res.Path = reconstruct(r.prev, start, goal)
		r.res.Cost = r.best[goal]
		r.res.Found = r.res.Path != nil
	}

	return r.res
}

// runner holds the mutable state of one best-first execution.
type runner struct {
	e          *Engine
	start      grid.Coord
	goal       grid.Coord
	discovered *mapset.Set[grid.Coord]
	h          func(grid.Coord) float64
	best       map[grid.Coord]float64    // best known g per cell
	prev       map[grid.Coord]grid.Coord // predecessor on the best path
	pq         nodePQ
	seq        uint64
	res        Result
}

// init seeds the heap with start at g = 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// push records g for c and enqueues it with f = g + h.
func (r *runner) push(c grid.Coord, g float64) {
	h := r.h(c)
	r.best[c] = g
	r.res.Nodes[c] = NodeScore{G: g, H: h, F: g + h}
	r.res.Frontier.Put(c)
	heap.Push(&r.pq, &nodeItem{c: c, g: g, pri: g + h, seq: r.seq})
	r.seq++
}

// process pops cells until the goal is settled or the heap drains. Entries
// whose g is worse than the best known are stale and skipped; a cell whose g
// improves after expansion is expanded again.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.c

		// 1) skip stale entries
		if item.g > r.best[u] {
			continue
		}

		// 2) settle
		r.res.Frontier.Remove(u)
		r.res.Explored.Put(u)
		if u == r.goal {
			return true
		}

		// 3) relax neighbours
		r.relax(u, item.g)
	}

	return false
}

// relax offers every accessible neighbour of u a path through u.
func (r *runner) relax(u grid.Coord, gu float64) {
	for _, v := range r.e.g.Neighbors(u.X, u.Y, r.e.opts.Diagonals) {
		if !accessible(v, r.start, r.goal, r.discovered) {
			continue
		}
		w := r.e.g.GetCost(v.X, v.Y)
		if math.IsInf(w, 1) {
			continue
		}
		ng := gu + w
		if old, seen := r.best[v]; seen && ng >= old {
			continue
		}
		r.prev[v] = u
		r.push(v, ng)
	}
}
