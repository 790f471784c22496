package session

import (
	"time"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Hint returns the player's next cell on the cheapest route through the
// checkpoints still to reach and on to goal. With StrictOrder the route
// keeps the declared order; otherwise the cheapest order is used. Hints
// see the whole grid, fog or not. It returns false when the game is over
// or no route exists.
func (s *Session) Hint() (grid.Coord, bool) {
	if s.Over() {
		return grid.Coord{}, false
	}
	pos, goal := s.player.Position(), s.g.Goal()
	left := s.player.Remaining(s.checkpoints)

	var res search.Result
	switch {
	case len(left) == 0:
		res = s.engine.AStar(pos, goal, nil)
	case s.cfg.StrictOrder:
		res = s.engine.Chain(search.AStar, pos, append(left, goal), nil)
	default:
		var err error
		if res, err = s.engine.Tour(pos, left, goal, nil); err != nil {
			res = s.engine.Chain(search.AStar, pos, append(left, goal), nil)
		}
	}
	if !res.Found || len(res.Path) < 2 {
		return grid.Coord{}, false
	}

	return res.Path[1], true
}

// compared lists the single-goal algorithms Compare runs, in report order.
var compared = []search.Algorithm{
	search.AStar,
	search.Dijkstra,
	search.BidirectionalAStar,
	search.BFS,
	search.Replan,
	search.FogAStar,
}

// Compare runs every single-goal algorithm from the player's cell to goal
// on the live grid with full vision and reports cost, length, work and wall
// time. Caching is off so every row is a real search.
func (s *Session) Compare() []Comparison {
	opts := append(s.cfg.SearchOptions(), search.WithCacheSize(0))
	e := search.NewEngine(s.g, opts...)
	pos, goal := s.player.Position(), s.g.Goal()

	out := make([]Comparison, 0, len(compared))
	for _, algo := range compared {
		began := time.Now()
		res := e.Run(algo, pos, goal, nil)
		row := Comparison{
			Algorithm: algo,
			Found:     res.Found,
			Cost:      res.Cost,
			Explored:  res.NodesExplored(),
			Elapsed:   time.Since(began),
		}
		if res.Found {
			row.Steps = len(res.Path) - 1
		}
		out = append(out, row)
	}

	return out
}
