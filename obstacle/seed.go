package obstacle

import (
	"slices"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// SpawnInitial seeds dynamic (lava) obstacles once, at maze creation.
//
// Eligible cells are passable, not critical and more than one step from
// every critical point. They are visited in a shuffled order drawn from the
// seeding stream; each is blocked with probability rate and kept only if a
// route from start through every checkpoint to goal survives. A bounded
// repair pass then clears obstacles nearest the critical points should the
// route ever be broken.
//
// Returns the obstacles in place afterwards, row-major.
func (m *Manager) SpawnInitial(rate float64) []grid.Coord {
	s := m.seedingStream()

	var eligible []grid.Coord
	for _, c := range m.g.PassableCells() {
		if !m.g.IsCritical(c) && !m.g.IsObstacle(c) && !m.nearCritical(c) {
			eligible = append(eligible, c)
		}
	}
	rng.Shuffle(s, eligible)

	for _, c := range eligible {
		if !s.Chance(rate) {
			continue
		}
		if !m.g.Block(c) {
			continue
		}
		if !m.routeIntact() {
			m.g.Unblock(c)
			m.log.Debug("obstacle: seeding reverted", "at", c)
		}
	}

	for attempt := 0; attempt < m.opts.RepairAttempts && !m.routeIntact(); attempt++ {
		if len(m.g.Obstacles()) == 0 {
			break
		}
		cleared := m.clearNearest(m.g.CriticalPoints(), repairBatch)
		m.log.Debug("obstacle: repair", "attempt", attempt, "cleared", len(cleared))
	}

	return m.g.Obstacles()
}

// EnsureRoute clears dynamic obstacles until a route exists from `from`
// through every checkpoint not in reached, then to goal. Each round removes
// up to five obstacles nearest the remaining waypoints; at most fifty rounds
// run. Waypoints left with no passable side get their adjacent obstacles
// cleared. Returns how many obstacles were removed.
func (m *Manager) EnsureRoute(from grid.Coord, checkpoints, reached []grid.Coord) int {
	left := unvisited(checkpoints, reached)
	targets := append(slices.Clone(left), m.g.Goal())
	removed := 0

	for round := 0; round < ensureRounds; round++ {
		if m.RouteExists(from, left) {
			return removed
		}
		if len(m.g.Obstacles()) == 0 {
			break
		}
		removed += len(m.clearNearest(targets, repairBatch))
	}

	for _, wp := range targets {
		if m.hasOpenSide(wp) {
			continue
		}
		for _, d := range grid.Directions {
			dx, dy := d.Offset()
			if n := wp.Add(dx, dy); m.g.Unblock(n) {
				removed++
			}
		}
	}
	if removed > 0 {
		m.log.Debug("obstacle: route ensured", "from", from, "removed", removed)
	}

	return removed
}

func (m *Manager) hasOpenSide(c grid.Coord) bool {
	for _, d := range grid.Directions {
		dx, dy := d.Offset()
		if n := c.Add(dx, dy); m.g.IsPassable(n.X, n.Y) {
			return true
		}
	}
	return false
}
