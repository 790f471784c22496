package obstacle

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// Update runs one turn of obstacle-terrain churn and advances the turn
// counter exactly once.
//
// The turn's draws come only from the stream derived from (seed, turn):
//
//  1. Obstacle-terrain cells (except the mover's) are shuffled and up to
//     ChangesPerTurn of them demoted to a weighted base terrain.
//  2. Eligible base cells are shuffled and up to ChangesPerTurn promoted to
//     a drawn obstacle terrain, within the MaxChanges total. After each
//     promotion the route from the mover through the unreached checkpoints
//     to goal is checked; a promotion that breaks it is rolled back alone.
//
// The mover is the last cell of currentPath, or start when it is empty.
// Identical seed, turn, grid and arguments give an identical Delta.
func (m *Manager) Update(currentPath, checkpoints, reached []grid.Coord) Delta {
	m.turn++
	s := rng.ForTurn(m.opts.Seed, m.turn)
	d := Delta{Turn: m.turn}

	mover := m.g.Start()
	if len(currentPath) > 0 {
		mover = currentPath[len(currentPath)-1]
	}
	region := m.region(currentPath)
	left := unvisited(checkpoints, reached)
	budget := m.opts.MaxChanges

	// 1) demote
	var obstacles, bases []grid.Coord
	for _, c := range m.g.PassableCells() {
		if c == mover || (region != nil && !region.Has(c)) {
			continue
		}
		t := m.g.Terrain(c.X, c.Y)
		switch {
		case t.IsObstacle():
			obstacles = append(obstacles, c)
		case t.IsBase() && !m.g.IsCritical(c) && !m.nearCritical(c):
			bases = append(bases, c)
		}
	}
	rng.Shuffle(s, obstacles)
	for _, c := range obstacles {
		if len(d.Changes) >= min(m.opts.ChangesPerTurn, budget) {
			break
		}
		i, err := s.Weighted(grid.BaseWeights)
		if err != nil {
			break
		}
		from, to := m.g.Terrain(c.X, c.Y), grid.BaseTerrains[i]
		if m.g.SetTerrain(c, to) {
			d.Changes = append(d.Changes, Change{At: c, From: from, To: to})
		}
	}
	budget -= len(d.Changes)

	// 2) promote, validating each one
	rng.Shuffle(s, bases)
	quota := min(m.opts.ChangesPerTurn, budget)
	promoted, attempts := 0, 0
	for _, c := range bases {
		if promoted >= quota || attempts >= 4*quota {
			break
		}
		attempts++
		from := m.g.Terrain(c.X, c.Y)
		to := grid.ObstacleTerrains[s.Intn(len(grid.ObstacleTerrains))]
		if !m.g.SetTerrain(c, to) {
			continue
		}
		if !m.RouteExists(mover, left) {
			m.g.SetTerrain(c, from)
			d.RolledBack = append(d.RolledBack, c)
			m.log.Debug("obstacle: promotion rolled back", "turn", m.turn, "at", c, "terrain", to)
			continue
		}
		d.Changes = append(d.Changes, Change{At: c, From: from, To: to})
		promoted++
	}

	return d
}

// region returns the cells within ChurnRadius of the last recentSteps path
// cells, or nil for the whole grid.
func (m *Manager) region(path []grid.Coord) *mapset.Set[grid.Coord] {
	if m.opts.ChurnRadius == 0 || len(path) == 0 {
		return nil
	}
	r := m.opts.ChurnRadius
	set := mapset.New[grid.Coord]()
	for _, p := range path[max(0, len(path)-recentSteps):] {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				c := p.Add(dx, dy)
				if c.Manhattan(p) <= r && m.g.InBounds(c.X, c.Y) {
					set.Put(c)
				}
			}
		}
	}

	return &set
}
