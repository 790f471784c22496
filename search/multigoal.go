package search

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
)

// MultiGoal visits every goal starting from start in the cheapest order.
// All orderings are enumerated depth-first with pruning on the running cost;
// ties keep the earliest ordering in input order. Each leg is an AStar search.
//
// Errors:
//   - ErrTooManyGoals when more than Options.MaxGoals distinct goals are given.
//
// Complexity: O(k! · k) over k goals plus O(k²) leg searches.
func (e *Engine) MultiGoal(start grid.Coord, goals []grid.Coord, discovered *mapset.Set[grid.Coord]) (Result, error) {
	goals = dedupe(goals, start)
	if len(goals) > e.opts.MaxGoals {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyGoals, len(goals), e.opts.MaxGoals)
	}
	if len(goals) == 0 {
		res := newResult(MultiGoal, start)
		res.Path, res.Cost, res.Found = []grid.Coord{start}, 0, true
		return res, nil
	}
	ts := newTourSearch(e, start, goals, nil, discovered)
	ts.solve(false)

	return ts.result(), nil
}

// Tour visits every waypoint in the cheapest order and then ends at final.
// The final cell is fixed; only waypoint orderings are enumerated.
//
// Errors:
//   - ErrTooManyGoals when more than Options.MaxGoals distinct waypoints are given.
func (e *Engine) Tour(start grid.Coord, waypoints []grid.Coord, final grid.Coord, discovered *mapset.Set[grid.Coord]) (Result, error) {
	waypoints = dedupe(waypoints, start)
	if len(waypoints) > e.opts.MaxGoals {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyGoals, len(waypoints), e.opts.MaxGoals)
	}
	ts := newTourSearch(e, start, waypoints, &final, discovered)
	ts.solve(false)

	return ts.result(), nil
}

// RouteExists reports whether some ordering of waypoints followed by final
// is walkable from start under full visibility. It stops at the first valid
// ordering. Above the goal cap it falls back to a connectivity check, which
// is equivalent on an undirected grid.
func (e *Engine) RouteExists(start grid.Coord, waypoints []grid.Coord, final grid.Coord) bool {
	waypoints = dedupe(waypoints, start)
	if len(waypoints) > e.opts.MaxGoals {
		reach := e.g.Reachable(start, e.opts.Diagonals)
		if !reach.Has(final) {
			return false
		}
		for _, w := range waypoints {
			if !reach.Has(w) {
				return false
			}
		}
		return true
	}
	ts := newTourSearch(e, start, waypoints, &final, nil)
	ts.solve(true)

	return ts.found
}

// Chain walks stops in the given order, one algo search per leg, and
// stitches the legs. It is the fixed-order counterpart of Tour, used when
// checkpoints must be reached in declaration order. Found is false as soon
// as one leg fails. FogAStar legs run without memory.
func (e *Engine) Chain(algo Algorithm, start grid.Coord, stops []grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	target := start
	if len(stops) > 0 {
		target = stops[len(stops)-1]
	}
	res := newResult(algo, target)
	path := []grid.Coord{start}
	cur := start
	for _, s := range stops {
		if s == cur {
			res.Order = append(res.Order, s)
			continue
		}
		l := e.Run(algo, cur, s, discovered)
		l.Explored.Each(func(c grid.Coord) { res.Explored.Put(c) })
		if !l.Found || l.Target != s {
			return res
		}
		path = append(path, l.Path[1:]...)
		res.Order = append(res.Order, s)
		cur = s
	}
	res.Path = path
	res.Cost = e.PathCost(path)
	res.Found = true

	return res
}

func dedupe(cs []grid.Coord, skip grid.Coord) []grid.Coord {
	seen := mapset.New[grid.Coord]()
	seen.Put(skip)
	out := make([]grid.Coord, 0, len(cs))
	for _, c := range cs {
		if seen.Has(c) {
			continue
		}
		seen.Put(c)
		out = append(out, c)
	}

	return out
}

// tourSearch enumerates goal orderings over a lazily filled leg matrix.
// Point 0 is start, points 1..k are the goals and, when fixed, point k+1 is
// the final cell.
type tourSearch struct {
	e          *Engine
	points     []grid.Coord
	k          int
	fixedFinal bool
	discovered *mapset.Set[grid.Coord]

	legs map[[2]int]Result

	visited []bool
	order   []int

	firstOnly bool
	found     bool
	bestCost  float64
	bestOrder []int
}

func newTourSearch(e *Engine, start grid.Coord, goals []grid.Coord, final *grid.Coord, discovered *mapset.Set[grid.Coord]) *tourSearch {
	points := append([]grid.Coord{start}, goals...)
	if final != nil {
		points = append(points, *final)
	}

	return &tourSearch{
		e:          e,
		points:     points,
		k:          len(goals),
		fixedFinal: final != nil,
		discovered: discovered,
		legs:       make(map[[2]int]Result),
		visited:    make([]bool, len(goals)+1),
		bestCost:   math.Inf(1),
	}
}

// leg returns the AStar result between points i and j.
func (ts *tourSearch) leg(i, j int) Result {
	key := [2]int{i, j}
	if r, ok := ts.legs[key]; ok {
		return r
	}
	r := ts.e.AStar(ts.points[i], ts.points[j], ts.discovered)
	ts.legs[key] = r

	return r
}

func (ts *tourSearch) solve(firstOnly bool) {
	ts.firstOnly = firstOnly
	ts.dfs(0, 0)
}

// dfs extends the current ordering from point last.
func (ts *tourSearch) dfs(last int, cost float64) {
	if ts.firstOnly && ts.found {
		return
	}
	if cost >= ts.bestCost {
		return
	}
	if len(ts.order) == ts.k {
		if ts.fixedFinal {
			l := ts.leg(last, ts.k+1)
			if !l.Found {
				return
			}
			cost += l.Cost
			if cost >= ts.bestCost {
				return
			}
		}
		ts.found = true
		ts.bestCost = cost
		ts.bestOrder = append(ts.bestOrder[:0], ts.order...)
		return
	}
	for i := 1; i <= ts.k; i++ {
		if ts.visited[i] {
			continue
		}
		l := ts.leg(last, i)
		if !l.Found {
			continue
		}
		ts.visited[i] = true
		ts.order = append(ts.order, i)
		ts.dfs(i, cost+l.Cost)
		ts.order = ts.order[:len(ts.order)-1]
		ts.visited[i] = false
	}
}

// result stitches the legs of the best ordering into one Result.
func (ts *tourSearch) result() Result {
	final := ts.points[len(ts.points)-1]
	res := newResult(MultiGoal, final)
	for _, l := range ts.legs {
		l.Explored.Each(func(c grid.Coord) { res.Explored.Put(c) })
	}
	if !ts.found {
		return res
	}

	seq := append([]int{0}, ts.bestOrder...)
	if ts.fixedFinal {
		seq = append(seq, ts.k+1)
	}
	res.Target = ts.points[seq[len(seq)-1]]
	path := []grid.Coord{ts.points[0]}
	for i := 1; i < len(seq); i++ {
		l := ts.leg(seq[i-1], seq[i])
		path = append(path, l.Path[1:]...)
		res.Order = append(res.Order, ts.points[seq[i]])
	}
	res.Path = path
	res.Cost = ts.e.PathCost(path)
	res.Found = true

	return res
}
