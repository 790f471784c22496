package maze

import (
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// AssignTerrain draws a weighted base terrain for every passable,
// non-checkpoint cell in row-major order. With obstacleRate > 0, cells
// more than one step away from every critical point may instead receive a
// static obstacle terrain.
func AssignTerrain(g *grid.Grid, s *rng.Stream, obstacleRate float64) {
	critical := g.CriticalPoints()
	for _, c := range g.PassableCells() {
		if g.IsCheckpoint(c) {
			continue
		}
		idx, err := s.Weighted(grid.BaseWeights)
		if err != nil {
			idx = 0
		}
		t := grid.BaseTerrains[idx]
		if obstacleRate > 0 && !nearAny(c, critical, 1) && s.Chance(obstacleRate) {
			t = grid.ObstacleTerrains[s.Intn(len(grid.ObstacleTerrains))]
		}
		g.SetTerrain(c, t)
	}
}

// SpawnRewards turns base-terrain cells into Reward cells with probability
// rate. Returns the converted cells in row-major order.
func SpawnRewards(g *grid.Grid, s *rng.Stream, rate float64) []grid.Coord {
	var out []grid.Coord
	for _, c := range g.PassableCells() {
		if !g.Terrain(c.X, c.Y).IsBase() {
			continue
		}
		if s.Chance(rate) && g.SetTerrain(c, grid.Reward) {
			out = append(out, c)
		}
	}
	return out
}

// nearAny reports whether c lies within Manhattan distance d of any point.
func nearAny(c grid.Coord, points []grid.Coord, d int) bool {
	for _, p := range points {
		if c.Manhattan(p) <= d {
			return true
		}
	}
	return false
}
