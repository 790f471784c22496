package search

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
)

// BidirectionalAStar grows one A* tree from start and one from goal,
// alternating pops, and stops at the first cell settled by both sides.
//
// The backward tree is costed in the forward direction: stepping from u to v
// on the goal side adds cost(u), the cost of entering u when walking from v
// towards the goal. The reported Cost is recomputed along the stitched path.
//
// The early meeting rule is not guaranteed to be optimal; callers needing an
// exact minimum should use AStar or Dijkstra.
//
// Complexity: O((V + E) log V) time, O(V) space.
func (e *Engine) BidirectionalAStar(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	return e.cached(BidirectionalAStar, start, goal, discovered, func() Result {
		return e.bidirectional(start, goal, discovered)
	})
}

// side is one half of a bidirectional search.
type side struct {
	best   map[grid.Coord]float64
	prev   map[grid.Coord]grid.Coord
	closed mapset.Set[grid.Coord]
	pq     nodePQ
	h      func(grid.Coord) float64
}

func newSide(origin grid.Coord, h func(grid.Coord) float64) *side {
	s := &side{
		best:   map[grid.Coord]float64{origin: 0},
		prev:   make(map[grid.Coord]grid.Coord),
		closed: mapset.New[grid.Coord](),
		h:      h,
	}
	heap.Init(&s.pq)
	heap.Push(&s.pq, &nodeItem{c: origin, g: 0, pri: h(origin)})

	return s
}

func (e *Engine) bidirectional(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	res := newResult(BidirectionalAStar, goal)
	if !e.g.IsValid(start.X, start.Y) || !e.g.IsValid(goal.X, goal.Y) {
		return res
	}
	if start == goal {
		res.Path = []grid.Coord{start}
		res.Cost = 0
		res.Found = true
		res.Explored.Put(start)
		return res
	}

	floor := e.stepFloor()
	fwd := newSide(start, e.heuristic(goal, nil))
	bwd := newSide(goal, e.estimate(start, floor))
	if discovered != nil && !discovered.Has(goal) {
		fwd.h = func(grid.Coord) float64 { return 0 }
		bwd.h = fwd.h
	}

	var seq uint64
	step := func(s, other *side, forward bool) (grid.Coord, bool) {
		for s.pq.Len() > 0 {
			item := heap.Pop(&s.pq).(*nodeItem)
			u := item.c
			if s.closed.Has(u) || item.g > s.best[u] {
				continue
			}
			s.closed.Put(u)
			res.Explored.Put(u)
			if other.closed.Has(u) {
				return u, true
			}
			for _, v := range e.g.Neighbors(u.X, u.Y, e.opts.Diagonals) {
				if !accessible(v, start, goal, discovered) || s.closed.Has(v) {
					continue
				}
				w := e.g.GetCost(v.X, v.Y)
				if !forward {
					w = e.g.GetCost(u.X, u.Y)
				}
				if math.IsInf(w, 1) {
					continue
				}
				ng := item.g + w
				if old, ok := s.best[v]; ok && ng >= old {
					continue
				}
				s.best[v] = ng
				s.prev[v] = u
				seq++
				heap.Push(&s.pq, &nodeItem{c: v, g: ng, pri: ng + s.h(v), seq: seq})
			}
			return u, false
		}
		return grid.Coord{}, false
	}

	var meet grid.Coord
	met := false
	for fwd.pq.Len() > 0 && bwd.pq.Len() > 0 && !met {
		if meet, met = step(fwd, bwd, true); met {
			break
		}
		meet, met = step(bwd, fwd, false)
	}

	for _, s := range []*side{fwd, bwd} {
		for _, it := range s.pq {
			if !s.closed.Has(it.c) {
				res.Frontier.Put(it.c)
			}
		}
		for c, g := range s.best {
			h := s.h(c)
			if cur, ok := res.Nodes[c]; !ok || g < cur.G {
				res.Nodes[c] = NodeScore{G: g, H: h, F: g + h}
			}
		}
	}
	if !met {
		return res
	}

	path := reconstruct(fwd.prev, start, meet)
	back := reconstruct(bwd.prev, goal, meet)
	if path == nil || back == nil {
		return res
	}
	for i := len(back) - 2; i >= 0; i-- {
		path = append(path, back[i])
	}
	res.Path = path
	res.Cost = e.PathCost(path)
	res.Found = true

	return res
}
