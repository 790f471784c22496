package search

import (
	"math"

	"github.com/zyedidia/generic/cache"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
)

// Engine runs searches over one grid. It holds an LRU cache of single-goal
// results keyed by endpoints, algorithm, discovered set and grid version, so
// any terrain or obstacle change invalidates earlier entries.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	g     *grid.Grid
	opts  Options
	cache *cache.Cache[cacheKey, Result]

	floor   float64 // cheapest finite entry cost at floorAt
	floorAt uint64
	floorOK bool
}

type cacheKey struct {
	start, goal grid.Coord
	algo        Algorithm
	fogged      bool
	fogSize     int
	fogHash     uint64
	version     uint64
}

// NewEngine binds an engine to g. Invalid options panic.
func NewEngine(g *grid.Grid, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{g: g, opts: o}
	if o.CacheSize > 0 {
		e.cache = cache.New[cacheKey, Result](o.CacheSize)
	}

	return e
}

// WithGrid returns a new engine with the same options bound to g and an
// empty cache. Used to search cloned grids.
func (e *Engine) WithGrid(g *grid.Grid) *Engine {
	c := &Engine{g: g, opts: e.opts}
	if e.opts.CacheSize > 0 {
		c.cache = cache.New[cacheKey, Result](e.opts.CacheSize)
	}

	return c
}

// Grid returns the bound grid.
func (e *Engine) Grid() *grid.Grid { return e.g }

// Options returns the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// ClearCache drops every cached result.
func (e *Engine) ClearCache() {
	if e.opts.CacheSize > 0 {
		e.cache = cache.New[cacheKey, Result](e.opts.CacheSize)
	}
}

// CacheSize reports how many results are cached.
func (e *Engine) CacheSize() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Size()
}

// Run dispatches a single-goal search by algorithm. MultiGoal degrades to
// AStar and FogAStar runs without memory.
func (e *Engine) Run(algo Algorithm, start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	switch algo {
	case Dijkstra:
		return e.Dijkstra(start, goal, discovered)
	case BidirectionalAStar:
		return e.BidirectionalAStar(start, goal, discovered)
	case BFS:
		return e.BFS(start, goal, discovered)
	case FogAStar:
		return e.FogAStar(start, goal, discovered, nil, nil)
	case Replan:
		return e.Replan(start, goal, discovered)
	default:
		return e.AStar(start, goal, discovered)
	}
}

// accessible reports whether pos may be expanded under the discovered set.
// A nil set means full visibility; start and goal are always accessible.
func accessible(pos, start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) bool {
	if discovered == nil || pos == start || pos == goal {
		return true
	}
	return discovered.Has(pos)
}

// cached wraps a search with the LRU lookup.
func (e *Engine) cached(algo Algorithm, start, goal grid.Coord, discovered *mapset.Set[grid.Coord], run func() Result) Result {
	if e.cache == nil {
		return run()
	}
	key := cacheKey{start: start, goal: goal, algo: algo, version: e.g.Version()}
	if discovered != nil {
		key.fogged = true
		key.fogSize = discovered.Size()
		key.fogHash = hashSet(discovered)
	}
	if r, ok := e.cache.Get(key); ok {
		return r
	}
	r := run()
	e.cache.Put(key, r)

	return r
}

// hashSet is an order-independent hash of a coordinate set. Collisions are
// possible; the key also carries the set size to make them rarer.
func hashSet(s *mapset.Set[grid.Coord]) uint64 {
	var sum, xor uint64
	s.Each(func(c grid.Coord) {
		h := uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
		h ^= h >> 33
		h *= 0xff51afd7ed558ccd
		h ^= h >> 33
		h *= 0xc4ceb9fe1a85ec53
		h ^= h >> 33
		sum += h
		xor ^= h
	})

	return sum ^ (xor * 0x9e3779b97f4a7c15)
}

// heuristic returns the scaled estimate towards goal, or zero when the goal
// lies outside the discovered set.
func (e *Engine) heuristic(goal grid.Coord, discovered *mapset.Set[grid.Coord]) func(grid.Coord) float64 {
	if discovered != nil && !discovered.Has(goal) {
		return func(grid.Coord) float64 { return 0 }
	}
	last := e.g.GetCost(goal.X, goal.Y)
	if math.IsInf(last, 1) {
		last = e.stepFloor()
	}

	return e.estimate(goal, last)
}

// estimate returns h(c) = scale·(floor·(steps-1) + last), where steps is a
// lower bound on the moves from c to target and last is the cost of the
// final move. Every other move enters a cell costing at least the floor, so
// with scale ≤ 1 the estimate is consistent.
//
// With diagonals the step bound is the Chebyshev distance whatever the
// configured heuristic.
func (e *Engine) estimate(target grid.Coord, last float64) func(grid.Coord) float64 {
	floor := e.stepFloor()
	h, scale, diag := e.opts.Heuristic, e.opts.HeuristicScale, e.opts.Diagonals

	return func(c grid.Coord) float64 {
		if c == target {
			return 0
		}
		steps := h.Distance(c, target)
		if diag {
			steps = ChebyshevDistance(c.X, c.Y, target.X, target.Y)
		}
		return scale * (floor*(steps-1) + last)
	}
}

// stepFloor returns the cheapest finite entry cost over the passable in-grid
// cells. It is recomputed whenever the grid version moves.
func (e *Engine) stepFloor() float64 {
	if e.floorOK && e.floorAt == e.g.Version() {
		return e.floor
	}
	lo := math.Inf(1)
	for _, c := range e.g.PassableCells() {
		if w := e.g.GetCost(c.X, c.Y); w < lo {
			lo = w
		}
	}
	if math.IsInf(lo, 1) {
		lo = 0
	}
	e.floor, e.floorAt, e.floorOK = lo, e.g.Version(), true

	return lo
}

// PathCost sums the entry cost of every cell after the first.
func (e *Engine) PathCost(path []grid.Coord) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	total := 0.0
	for _, c := range path[1:] {
		total += e.g.GetCost(c.X, c.Y)
	}

	return total
}

// reconstruct walks prev from goal back to start.
func reconstruct(prev map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
