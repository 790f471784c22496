package search

import (
	"container/heap"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazerunner/grid"
)

// FogAStar plans under partial observability.
//
// Cells may be expanded when they are currently discovered or remembered in
// memory. Remembered cells are costed by their remembered terrain. Under
// fog, cells known to neither are discounted by ExplorationBonus (never
// below 1). Cells in recent carry RevisitPenalty on top.
//
// When the goal is unknown, or known but not yet reachable over known cells,
// the search heads for the nearest frontier instead: the known cell other
// than start, reachable from start over known cells, closest to start by
// Manhattan distance, that borders an unknown cell. Result.Target
// names the cell actually searched for. Cost is the true terrain cost of the
// returned path; penalised scores are kept in Nodes.
//
// FogAStar results are not cached.
func (e *Engine) FogAStar(start, goal grid.Coord, discovered *mapset.Set[grid.Coord], memory map[grid.Coord]grid.Terrain, recent *mapset.Set[grid.Coord]) Result {
	f := &fogSearch{e: e, start: start, discovered: discovered, memory: memory, recent: recent}

	if f.known(goal) || discovered == nil {
		res := f.run(goal, true)
		if res.Found || discovered == nil {
			return res
		}
	}
	if fr, ok := f.nearestFrontier(); ok {
		return f.run(fr, true)
	}

	return f.run(goal, false)
}

// run searches towards target. Without a known target the exploration
// heuristic steers the search.
func (f *fogSearch) run(target grid.Coord, known bool) Result {
	e, start := f.e, f.start
	res := newResult(FogAStar, target)
	if !e.g.IsValid(start.X, start.Y) || !e.g.IsValid(target.X, target.Y) {
		return res
	}

	h := f.explorationHeuristic
	if known {
		h = e.heuristic(target, nil)
	}

	best := map[grid.Coord]float64{start: 0}
	prev := make(map[grid.Coord]grid.Coord)
	var pq nodePQ
	var seq uint64
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{c: start, pri: h(start)})
	res.Frontier.Put(start)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.c
		if res.Explored.Has(u) {
			continue
		}
		res.Explored.Put(u)
		res.Frontier.Remove(u)
		if u == target {
			res.Path = reconstruct(prev, start, target)
			res.Cost = e.PathCost(res.Path)
			res.Found = res.Path != nil
			return res
		}
		for _, v := range e.g.Neighbors(u.X, u.Y, e.opts.Diagonals) {
			if !f.accessible(v) {
				continue
			}
			w := f.cost(v)
			if math.IsInf(w, 1) {
				continue
			}
			ng := item.g + w
			if old, ok := best[v]; ok && ng >= old {
				continue
			}
			best[v] = ng
			prev[v] = u
			hv := h(v)
			res.Nodes[v] = NodeScore{G: ng, H: hv, F: ng + hv}
			res.Frontier.Put(v)
			seq++
			heap.Push(&pq, &nodeItem{c: v, g: ng, pri: ng + hv, seq: seq})
		}
	}

	return res
}

type fogSearch struct {
	e          *Engine
	start      grid.Coord
	discovered *mapset.Set[grid.Coord]
	memory     map[grid.Coord]grid.Terrain
	recent     *mapset.Set[grid.Coord]
}

func (f *fogSearch) remembered(c grid.Coord) bool {
	_, ok := f.memory[c]
	return ok
}

func (f *fogSearch) known(c grid.Coord) bool {
	return (f.discovered != nil && f.discovered.Has(c)) || f.remembered(c)
}

func (f *fogSearch) accessible(c grid.Coord) bool {
	return f.discovered == nil || c == f.start || f.known(c)
}

func (f *fogSearch) cost(c grid.Coord) float64 {
	var w float64
	if t, ok := f.memory[c]; ok {
		w = f.e.g.Costs().Cost(t)
		if !f.e.g.IsPassable(c.X, c.Y) {
			w = math.Inf(1)
		}
	} else {
		w = f.e.g.GetCost(c.X, c.Y)
		if f.discovered != nil && !f.known(c) {
			w = math.Max(1, w*f.e.opts.ExplorationBonus)
		}
	}
	if f.recent != nil && f.recent.Has(c) {
		w += f.e.opts.RevisitPenalty
	}

	return w
}

// unknownNeighbours counts neighbours of c outside both discovered and memory.
func (f *fogSearch) unknownNeighbours(c grid.Coord) int {
	n := 0
	for _, v := range f.e.g.Neighbors(c.X, c.Y, f.e.opts.Diagonals) {
		if !f.known(v) {
			n++
		}
	}
	return n
}

// explorationHeuristic favours cells bordering unknown territory.
func (f *fogSearch) explorationHeuristic(c grid.Coord) float64 {
	if f.discovered == nil {
		return 0
	}
	return math.Max(0, 10-2*float64(f.unknownNeighbours(c)))
}

// nearestFrontier returns the known cell other than start that borders an
// unknown cell, can be walked to from start over known cells, and is
// nearest to start by Manhattan distance. Ties break in row-major order.
func (f *fogSearch) nearestFrontier() (grid.Coord, bool) {
	if f.discovered == nil {
		return grid.Coord{}, false
	}
	var cands []grid.Coord
	seen := mapset.New[grid.Coord]()
	seen.Put(f.start)
	q := queue.New[grid.Coord]()
	q.Enqueue(f.start)
	for !q.Empty() {
		u := q.Dequeue()
		if u != f.start && f.unknownNeighbours(u) > 0 {
			cands = append(cands, u)
		}
		for _, v := range f.e.g.Neighbors(u.X, u.Y, f.e.opts.Diagonals) {
			if seen.Has(v) || !f.known(v) || math.IsInf(f.cost(v), 1) {
				continue
			}
			seen.Put(v)
			q.Enqueue(v)
		}
	}
	if len(cands) == 0 {
		return grid.Coord{}, false
	}
	slices.SortFunc(cands, func(a, b grid.Coord) int {
		if da, db := a.Manhattan(f.start), b.Manhattan(f.start); da != db {
			return da - db
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return cands[0], true
}
