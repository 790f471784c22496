package obstacle

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
	"github.com/katalvlaran/mazerunner/search"
)

// Manager owns every grid mutation that could break the route from start
// through the checkpoints to goal. It is not safe for concurrent use.
type Manager struct {
	g      *grid.Grid
	engine *search.Engine
	opts   Options
	turn   int
	log    *slog.Logger
}

// NewManager binds a manager to g. engine must search the same grid; nil
// builds a default engine.
func NewManager(g *grid.Grid, engine *search.Engine, opts ...Option) *Manager {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if engine == nil {
		engine = search.NewEngine(g)
	}

	return &Manager{g: g, engine: engine, opts: o, log: o.Logger}
}

// Grid returns the managed grid.
func (m *Manager) Grid() *grid.Grid { return m.g }

// Engine returns the engine used for route validation.
func (m *Manager) Engine() *search.Engine { return m.engine }

// Turn returns the number of Update calls so far.
func (m *Manager) Turn() int { return m.turn }

// Seed returns the manager seed.
func (m *Manager) Seed() int64 { return m.opts.Seed }

// Clone deep-copies the grid and the turn counter. The clone searches its
// own grid and shares nothing mutable with m.
func (m *Manager) Clone() *Manager {
	g := m.g.Clone()
	c := *m
	c.g = g
	c.engine = m.engine.WithGrid(g)

	return &c
}

// RouteExists reports whether some ordering of waypoints, then goal, is
// walkable from `from`.
func (m *Manager) RouteExists(from grid.Coord, waypoints []grid.Coord) bool {
	return m.engine.RouteExists(from, waypoints, m.g.Goal())
}

// routeIntact checks the full invariant from start.
func (m *Manager) routeIntact() bool {
	return m.RouteExists(m.g.Start(), m.g.Checkpoints())
}

// seedingStream returns the private stream of the one-shot seeding pass.
func (m *Manager) seedingStream() *rng.Stream {
	return rng.New(rng.Derive(m.opts.Seed, seedingStream))
}

// nearCritical reports whether c is within Manhattan distance 1 of a
// critical point.
func (m *Manager) nearCritical(c grid.Coord) bool {
	for _, p := range m.g.CriticalPoints() {
		if c.Manhattan(p) <= 1 {
			return true
		}
	}
	return false
}

// clearNearest unblocks up to n dynamic obstacles closest to targets.
// Ties break in row-major order.
func (m *Manager) clearNearest(targets []grid.Coord, n int) []grid.Coord {
	obs := m.g.Obstacles()
	dist := func(c grid.Coord) int {
		best := -1
		for _, t := range targets {
			if d := c.Manhattan(t); best < 0 || d < best {
				best = d
			}
		}
		return best
	}
	slices.SortStableFunc(obs, func(a, b grid.Coord) int { return dist(a) - dist(b) })
	if len(obs) > n {
		obs = obs[:n]
	}
	for _, c := range obs {
		m.g.Unblock(c)
	}

	return obs
}

// unvisited returns checkpoints not yet in reached, keeping order.
func unvisited(checkpoints, reached []grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(checkpoints))
	for _, c := range checkpoints {
		if !slices.Contains(reached, c) {
			out = append(out, c)
		}
	}
	return out
}
