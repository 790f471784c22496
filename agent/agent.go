package agent

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Agent is a player or AI walker on one grid. It owns its position, energy,
// history, undo stack, reward buff, plan and, under fog, its own view of the
// grid. An Agent is not safe for concurrent use.
type Agent struct {
	id     uuid.UUID
	g      *grid.Grid
	engine *search.Engine
	opts   Options
	log    *slog.Logger

	pos        grid.Coord
	energy     float64
	cost       float64
	history    []grid.Coord
	visited    mapset.Set[grid.Coord]
	reached    []grid.Coord
	moves      *stack.Stack[MoveRecord]
	rewardLeft int
	collected  mapset.Set[grid.Coord]

	plan    []grid.Coord
	cursor  int
	result  search.Result
	planned bool
	state   State

	discovered *mapset.Set[grid.Coord] // nil without fog
	memory     map[grid.Coord]grid.Terrain
	recent     []grid.Coord
}

// New places an agent on g. A nil engine gets a default one bound to g.
// Invalid options panic.
func New(g *grid.Grid, engine *search.Engine, opts ...Option) *Agent {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if engine == nil {
		engine = search.NewEngine(g)
	}
	a := &Agent{
		id:     uuid.New(),
		g:      g,
		engine: engine,
		opts:   o,
		log:    o.Logger,
	}
	start := g.Start()
	if o.startSet {
		start = o.start
	}
	a.Reset(start)

	return a
}

// Reset puts the agent back at start with a full budget and no history,
// plan, buff or memory. The ID is kept.
func (a *Agent) Reset(start grid.Coord) {
	a.pos = start
	a.energy = a.opts.Energy
	a.cost = 0
	a.history = []grid.Coord{start}
	a.visited = mapset.New[grid.Coord]()
	a.visited.Put(start)
	a.reached = nil
	a.moves = stack.New[MoveRecord]()
	a.rewardLeft = 0
	a.collected = mapset.New[grid.Coord]()

	a.plan, a.cursor = nil, 0
	a.result, a.planned = search.Result{}, false
	a.state = Idle

	a.discovered = nil
	a.memory = make(map[grid.Coord]grid.Terrain)
	a.recent = nil
	if a.opts.FogRadius > 0 {
		s := mapset.New[grid.Coord]()
		a.discovered = &s
		a.Discover(a.opts.FogRadius)
	}
	a.remember(start)
}

// Rebind points the agent at another grid and engine without touching its
// state. Used after the maze is regenerated in place of the old one.
func (a *Agent) Rebind(g *grid.Grid, engine *search.Engine) {
	if engine == nil {
		engine = search.NewEngine(g)
	}
	a.g, a.engine = g, engine
}

// ID returns the agent's identifier.
func (a *Agent) ID() uuid.UUID { return a.id }

// Position returns the current cell.
func (a *Agent) Position() grid.Coord { return a.pos }

// Energy returns the remaining budget.
func (a *Agent) Energy() float64 { return a.energy }

// TotalCost returns the cumulative cost paid.
func (a *Agent) TotalCost() float64 { return a.cost }

// History returns every position in visit order, start first.
func (a *Agent) History() []grid.Coord { return slices.Clone(a.history) }

// Visited reports whether c is on the visited set.
func (a *Agent) Visited(c grid.Coord) bool { return a.visited.Has(c) }

// Reached returns the checkpoints reached, in the order they were reached.
func (a *Agent) Reached() []grid.Coord { return slices.Clone(a.reached) }

// Moves returns the depth of the undo stack.
func (a *Agent) Moves() int { return a.moves.Size() }

// RewardMovesLeft returns how many moves the buff still covers.
func (a *Agent) RewardMovesLeft() int { return a.rewardLeft }

// RewardActive reports whether the buff applies to the next move.
func (a *Agent) RewardActive() bool { return a.rewardLeft > 0 }

// Engine returns the search engine the agent plans with.
func (a *Agent) Engine() *search.Engine { return a.engine }

// Discovered returns the agent's own discovered set, or nil without fog.
// The set is live; callers must not modify it.
func (a *Agent) Discovered() *mapset.Set[grid.Coord] { return a.discovered }

// Discover adds every valid cell within Manhattan radius of the agent to its
// discovered set, creating the set if fog was off. It returns the number of
// newly discovered cells.
func (a *Agent) Discover(radius int) int {
	if a.discovered == nil {
		s := mapset.New[grid.Coord]()
		a.discovered = &s
	}
	added := 0
	for dy := -radius; dy <= radius; dy++ {
		span := radius - abs(dy)
		for dx := -span; dx <= span; dx++ {
			c := a.pos.Add(dx, dy)
			if !a.g.IsValid(c.X, c.Y) || a.discovered.Has(c) {
				continue
			}
			a.discovered.Put(c)
			added++
		}
	}

	return added
}

// remember stores the terrain under c and pushes c onto the recent window.
func (a *Agent) remember(c grid.Coord) {
	a.memory[c] = a.g.Terrain(c.X, c.Y)
	if a.opts.MemoryLength == 0 {
		return
	}
	a.recent = append(a.recent, c)
	if len(a.recent) > a.opts.MemoryLength {
		a.recent = a.recent[1:]
	}
}

// recentSet returns the recent window as a set.
func (a *Agent) recentSet() mapset.Set[grid.Coord] {
	s := mapset.New[grid.Coord]()
	for _, c := range a.recent {
		s.Put(c)
	}
	return s
}

// AllCheckpointsReached reports whether required has been satisfied. With
// ordered set, the reached list must equal required element by element;
// otherwise every required cell must have been reached in any order.
func (a *Agent) AllCheckpointsReached(required []grid.Coord, ordered bool) bool {
	if ordered {
		return slices.Equal(a.reached, required)
	}
	for _, c := range required {
		if !slices.Contains(a.reached, c) {
			return false
		}
	}
	return true
}

// Remaining returns the checkpoints of required not reached yet, keeping
// their declared order.
func (a *Agent) Remaining(required []grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(required))
	for _, c := range required {
		if !slices.Contains(a.reached, c) {
			out = append(out, c)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
