package agent

import (
	"math"
	"slices"

	"github.com/katalvlaran/mazerunner/grid"
)

// Move steps by (dx, dy). The destination must be a neighbour the grid
// allows from the current cell, passable, not revisited when PreventRevisit
// is on, and affordable after the reward buff. A rejected move changes
// nothing and returns false.
func (a *Agent) Move(dx, dy int) bool {
	return a.moveTo(a.pos.Add(dx, dy), false)
}

// price applies the reward buff to a base cost.
func (a *Agent) price(base float64) float64 {
	if a.rewardLeft > 0 {
		return math.Max(0, base+a.opts.RewardBonus)
	}
	return base
}

// moveTo performs one step to dest. Plan following passes allowRevisit.
func (a *Agent) moveTo(dest grid.Coord, allowRevisit bool) bool {
	if !slices.Contains(a.g.Neighbors(a.pos.X, a.pos.Y, a.engine.Options().Diagonals), dest) {
		return false
	}
	if a.opts.PreventRevisit && !allowRevisit && a.visited.Has(dest) {
		return false
	}
	base := a.g.GetCost(dest.X, dest.Y)
	if math.IsInf(base, 1) {
		return false
	}
	paid := a.price(base)
	if a.energy < paid {
		return false
	}

	rec := MoveRecord{
		From:              a.pos,
		To:                dest,
		Cost:              paid,
		CostBefore:        a.cost,
		EnergyBefore:      a.energy,
		RewardMovesBefore: a.rewardLeft,
		FirstVisit:        !a.visited.Has(dest),
	}
	a.pos = dest
	a.history = append(a.history, dest)
	a.visited.Put(dest)
	a.cost += paid
	a.energy -= paid

	// the buff is spent on this move, a reward picked up here covers the next ones
	if a.rewardLeft > 0 {
		a.rewardLeft--
	}
	if a.g.Terrain(dest.X, dest.Y) == grid.Reward && !a.collected.Has(dest) {
		a.collected.Put(dest)
		a.rewardLeft = a.opts.RewardDuration
		rec.Reward = true
	}
	if a.countsAsCheckpoint(dest) {
		a.reached = append(a.reached, dest)
		rec.Checkpoint = true
	}

	a.moves.Push(rec)
	a.remember(dest)
	if a.opts.FogRadius > 0 {
		a.Discover(a.opts.FogRadius)
	}

	return true
}

// countsAsCheckpoint reports whether entering c newly reaches a checkpoint.
// Under StrictOrder only the next declared checkpoint counts.
func (a *Agent) countsAsCheckpoint(c grid.Coord) bool {
	if !a.g.IsCheckpoint(c) || slices.Contains(a.reached, c) {
		return false
	}
	if !a.opts.StrictOrder {
		return true
	}
	declared := a.g.Checkpoints()
	return len(a.reached) < len(declared) && declared[len(a.reached)] == c
}

// Undo reverts the last move and charges UndoCost. Position, cumulative
// cost, buff, visited membership, reached checkpoints and collected rewards
// return to their pre-move values; energy returns to its pre-move value
// minus the fee. It fails without effect when there is nothing to undo or
// the fee is unaffordable.
func (a *Agent) Undo() bool {
	if a.moves.Size() == 0 || a.energy < a.opts.UndoCost {
		return false
	}
	rec := a.moves.Pop()

	a.pos = rec.From
	a.history = a.history[:len(a.history)-1]
	if rec.FirstVisit {
		a.visited.Remove(rec.To)
	}
	a.cost = rec.CostBefore
	a.energy = rec.EnergyBefore - a.opts.UndoCost
	a.rewardLeft = rec.RewardMovesBefore
	if rec.Reward {
		a.collected.Remove(rec.To)
	}
	if rec.Checkpoint {
		if i := slices.Index(a.reached, rec.To); i >= 0 {
			a.reached = slices.Delete(a.reached, i, i+1)
		}
	}
	if n := len(a.recent); n > 0 && a.recent[n-1] == rec.To {
		a.recent = a.recent[:n-1]
	}
	if a.cursor > 0 && a.cursor < len(a.plan) && a.plan[a.cursor] == rec.To {
		a.cursor--
		a.state = Following
	}
	a.log.Debug("undo", "agent", a.id, "to", rec.From, "energy", a.energy)

	return true
}

// LastMove returns the top of the undo stack.
func (a *Agent) LastMove() (MoveRecord, bool) {
	if a.moves.Size() == 0 {
		return MoveRecord{}, false
	}
	return a.moves.Peek(), true
}

// CanAffordAnyMove reports whether some neighbour, visited or not, can be
// entered with the remaining energy.
func (a *Agent) CanAffordAnyMove() bool {
	for _, n := range a.g.Neighbors(a.pos.X, a.pos.Y, a.engine.Options().Diagonals) {
		base := a.g.GetCost(n.X, n.Y)
		if !math.IsInf(base, 1) && a.energy >= a.price(base) {
			return true
		}
	}
	return false
}

// IsTrapped reports whether the agent can no longer make progress: no
// affordable unvisited neighbour exists, and the cheapest route through
// the checkpoints still to reach and on to goal either does not exist or
// only crosses cells already visited.
func (a *Agent) IsTrapped(goal grid.Coord, checkpoints []grid.Coord) bool {
	for _, n := range a.g.Neighbors(a.pos.X, a.pos.Y, a.engine.Options().Diagonals) {
		base := a.g.GetCost(n.X, n.Y)
		if !a.visited.Has(n) && !math.IsInf(base, 1) && a.energy >= base {
			return false
		}
	}

	remaining := a.Remaining(checkpoints)
	route, err := a.engine.Tour(a.pos, remaining, goal, nil)
	if err != nil {
		return !a.engine.RouteExists(a.pos, remaining, goal)
	}
	if !route.Found {
		return true
	}
	for _, c := range route.Path[1:] {
		if !a.visited.Has(c) {
			return false
		}
	}
	return true
}
