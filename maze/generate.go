package maze

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// Generate builds a perfect maze of the given size. Even dimensions are
// rounded down to odd ones; anything below 3 fails with
// grid.ErrDimensionTooSmall.
func Generate(width, height int, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.New(width, height, grid.WithCosts(o.Costs))
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	s := o.Stream
	if s == nil {
		s = rng.New(o.Seed)
	}
	carveStream := s.Fork(streamCarve)
	terrainStream := s.Fork(streamTerrain)

	backtrack(g, carveStream)
	openEndpoints(g)

	if o.Terrain {
		AssignTerrain(g, terrainStream, o.ObstacleRate)
	}
	if o.RewardRate > 0 {
		SpawnRewards(g, terrainStream, o.RewardRate)
	}
	return g, nil
}

// backtrack carves a spanning tree over the odd rooms starting at (1,1).
func backtrack(g *grid.Grid, s *rng.Stream) {
	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	mark := func(c grid.Coord) { visited[c.Y*w+c.X] = true }
	seen := func(c grid.Coord) bool { return visited[c.Y*w+c.X] }

	origin := grid.Coord{X: 1, Y: 1}
	st := stack.New[grid.Coord]()
	st.Push(origin)
	mark(origin)
	g.Carve(origin)

	candidates := make([]grid.Direction, 0, 4)
	for st.Size() > 0 {
		cur := st.Peek()
		candidates = candidates[:0]
		for _, d := range grid.Directions {
			dx, dy := d.Offset()
			n := cur.Add(2*dx, 2*dy)
			if g.InBounds(n.X, n.Y) && !seen(n) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			st.Pop()
			continue
		}
		d := candidates[s.Intn(len(candidates))]
		dx, dy := d.Offset()
		g.Carve(cur.Add(dx, dy))
		next := cur.Add(2*dx, 2*dy)
		g.Carve(next)
		mark(next)
		st.Push(next)
	}
}

// openEndpoints forces Entry and Exit open and attaches each to a room.
func openEndpoints(g *grid.Grid) {
	entry, exit := g.Entry(), g.Exit()
	g.Carve(entry)
	if !g.IsPassable(entry.X+1, entry.Y) {
		g.Carve(grid.Coord{X: entry.X, Y: entry.Y - 1})
	}
	g.Carve(exit)
	if !g.IsPassable(exit.X-1, exit.Y) {
		g.Carve(grid.Coord{X: exit.X, Y: exit.Y - 1})
	}
}
