package agent

import (
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// ComputePath plans from the current cell to goal with algo. discovered
// restricts planning to a visible subset (nil: full vision); callers under
// fog pass the agent's own Discovered set. FogAStar also draws on the
// agent's terrain memory and recent positions. With a Forecast installed,
// plans from the static algorithms are re-costed against the predicted
// grids.
//
// It returns whether a path was found. On failure the plan is cleared and
// the agent goes Idle.
func (a *Agent) ComputePath(goal grid.Coord, algo search.Algorithm, discovered *mapset.Set[grid.Coord]) bool {
	a.state = Replanning
	var res search.Result
	switch algo {
	case search.FogAStar:
		recent := a.recentSet()
		res = a.engine.FogAStar(a.pos, goal, discovered, a.memory, &recent)
	default:
		res = a.engine.Run(algo, a.pos, goal, discovered)
	}

	return a.adopt(a.predict(algo, res))
}

// ComputeRoute plans through goals, the last of which is the final cell.
// With MultiGoal the intermediate goals are visited in the cheapest order;
// any other algorithm walks them in the given order, one leg per goal.
// A MultiGoal request above the engine's goal cap falls back to the given
// order with AStar legs.
func (a *Agent) ComputeRoute(goals []grid.Coord, algo search.Algorithm, discovered *mapset.Set[grid.Coord]) bool {
	switch len(goals) {
	case 0:
		return false
	case 1:
		return a.ComputePath(goals[0], algo, discovered)
	}

	a.state = Replanning
	n := len(goals)
	if algo == search.MultiGoal {
		res, err := a.engine.Tour(a.pos, goals[:n-1], goals[n-1], discovered)
		if err == nil {
			return a.adopt(res)
		}
		a.log.Debug("tour rejected, keeping declared order", "agent", a.id, "err", err)
		algo = search.AStar
	}

	return a.adopt(a.engine.Chain(algo, a.pos, goals, discovered))
}

// predict re-costs a static plan against the forecast, if any.
func (a *Agent) predict(algo search.Algorithm, res search.Result) search.Result {
	if a.opts.Forecast == nil || !res.Found {
		return res
	}
	switch algo {
	case search.BFS, search.Dijkstra, search.AStar, search.BidirectionalAStar:
		return search.Predict(res, a.opts.Forecast(res.Path))
	}
	return res
}

// adopt installs res as the current plan.
func (a *Agent) adopt(res search.Result) bool {
	a.result, a.planned = res, true
	if !res.Found || len(res.Path) == 0 || res.Path[0] != a.pos {
		a.plan, a.cursor = nil, 0
		a.state = Idle
		a.log.Debug("no path", "agent", a.id, "from", a.pos, "target", res.Target, "algorithm", res.Algorithm)
		return false
	}
	a.plan, a.cursor = slices.Clone(res.Path), 0
	a.state = Idle
	if len(a.plan) > 1 {
		a.state = Following
	}
	a.log.Debug("planned", "agent", a.id, "algorithm", res.Algorithm, "steps", len(a.plan)-1, "cost", res.Cost)

	return true
}

// Plan returns the current plan and the index of the agent's cell on it.
func (a *Agent) Plan() ([]grid.Coord, int) { return slices.Clone(a.plan), a.cursor }

// Result returns the last search result and whether any plan was computed.
func (a *Agent) Result() (search.Result, bool) { return a.result, a.planned }

// State returns the planning state.
func (a *Agent) State() State { return a.state }

// NeedsReplanning reports whether the plan is stale: no plan was found, the
// agent has left it, an upcoming cell became impassable, the plan no longer
// ends at goal, or the agent is within Lookahead cells of the plan's end.
func (a *Agent) NeedsReplanning(goal grid.Coord) bool {
	if !a.planned || !a.result.Found || a.cursor >= len(a.plan) || a.plan[a.cursor] != a.pos {
		return true
	}
	for _, c := range a.plan[a.cursor:] {
		if !a.g.IsPassable(c.X, c.Y) || math.IsInf(a.g.GetCost(c.X, c.Y), 1) {
			return true
		}
	}
	if a.plan[len(a.plan)-1] != goal {
		return true
	}
	return a.cursor >= len(a.plan)-a.opts.Lookahead
}

// Step advances one cell along the plan, paying for it like Move but
// allowing revisits. It returns false when there is no next cell, the agent
// has left the plan, or the move is rejected.
func (a *Agent) Step() bool {
	if a.cursor+1 >= len(a.plan) || a.plan[a.cursor] != a.pos {
		a.state = Idle
		return false
	}
	if !a.moveTo(a.plan[a.cursor+1], true) {
		return false
	}
	a.cursor++
	if a.cursor == len(a.plan)-1 {
		a.state = Idle
	}

	return true
}

// Fallback installs a one-step plan towards goal when search found nothing:
// among the current neighbours it picks the lowest Manhattan distance to
// goal, plus 200 for a visited cell and 100 for one of the last three
// history cells. Ties keep neighbour order. It returns false when the agent
// has no neighbour.
func (a *Agent) Fallback(goal grid.Coord) bool {
	var best grid.Coord
	bestScore, found := math.Inf(1), false
	tail := a.history[max(0, len(a.history)-3):]
	for _, n := range a.g.Neighbors(a.pos.X, a.pos.Y, a.engine.Options().Diagonals) {
		score := float64(n.Manhattan(goal))
		if a.visited.Has(n) {
			score += 200
		}
		if slices.Contains(tail, n) {
			score += 100
		}
		if score < bestScore {
			best, bestScore, found = n, score, true
		}
	}
	if !found {
		return false
	}
	a.plan, a.cursor = []grid.Coord{a.pos, best}, 0
	a.result = search.Result{
		Algorithm: a.result.Algorithm,
		Path:      slices.Clone(a.plan),
		Cost:      a.g.GetCost(best.X, best.Y),
		Found:     true,
		Target:    best,
		Explored:  mapset.New[grid.Coord](),
		Frontier:  mapset.New[grid.Coord](),
		Nodes:     make(map[grid.Coord]search.NodeScore),
	}
	a.planned = true
	a.state = Following
	a.log.Debug("fallback step", "agent", a.id, "to", best)

	return true
}
