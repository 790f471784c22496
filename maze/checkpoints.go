package maze

import (
	"slices"

	"github.com/katalvlaran/mazerunner/grid"
)

// PlaceCheckpoints adds up to n checkpoints spread along increasing
// Manhattan distance from Start. Candidates are passable cells farther
// than minDist from both Start and Goal that do not carry an obstacle or
// reward terrain. Returns the cells added, in declaration order.
func PlaceCheckpoints(g *grid.Grid, n, minDist int) []grid.Coord {
	if n <= 0 {
		return nil
	}
	start, goal := g.Start(), g.Goal()
	var candidates []grid.Coord
	for _, c := range g.PassableCells() {
		if g.IsCheckpoint(c) || c.Manhattan(start) <= minDist || c.Manhattan(goal) <= minDist {
			continue
		}
		t := g.Terrain(c.X, c.Y)
		if t.IsObstacle() || t == grid.Reward {
			continue
		}
		candidates = append(candidates, c)
	}
	// PassableCells is row-major, so the stable sort keeps ties deterministic.
	slices.SortStableFunc(candidates, func(a, b grid.Coord) int {
		return a.Manhattan(start) - b.Manhattan(start)
	})

	picks := candidates
	if interval := len(candidates) / (n + 1); interval > 0 {
		picks = make([]grid.Coord, 0, n)
		for i := 1; i <= n; i++ {
			picks = append(picks, candidates[min(i*interval, len(candidates)-1)])
		}
	} else if len(picks) > n {
		picks = picks[:n]
	}

	added := make([]grid.Coord, 0, len(picks))
	for _, c := range picks {
		if g.AddCheckpoint(c.X, c.Y) {
			added = append(added, c)
		}
	}
	return added
}
