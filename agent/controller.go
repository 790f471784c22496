package agent

import (
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Targets returns what the agent is heading for on this tick: zero or more
// waypoints followed by the final cell.
type Targets func() []grid.Coord

// Controller drives an Agent one step per Tick with a behaviour tree:
//
//	Selector
//	├── arrived                      (at the final target)
//	└── Sequence
//	    ├── Selector
//	    │   ├── fresh                (plan still valid; never under fog)
//	    │   ├── replan               (ComputePath / ComputeRoute)
//	    │   └── fallback             (greedy one-step plan)
//	    └── step
//
// Tick returns Success when the agent has arrived or moved one cell and
// Failure when it could neither plan nor move.
type Controller struct {
	a       *Agent
	algo    search.Algorithm
	targets Targets
	tree    bt.Node

	replans int
	steps   int
}

// NewController builds the tree for a. Under fog the agent replans every
// tick against its own discovered set.
func NewController(a *Agent, algo search.Algorithm, targets Targets) *Controller {
	c := &Controller{a: a, algo: algo, targets: targets}
	c.tree = bt.New(
		bt.Selector,
		bt.New(c.arrived),
		bt.New(
			bt.Sequence,
			bt.New(
				bt.Selector,
				bt.New(c.fresh),
				bt.New(c.replan),
				bt.New(c.fallback),
			),
			bt.New(c.step),
		),
	)

	return c
}

// Tick runs the tree once.
func (c *Controller) Tick() (bt.Status, error) { return c.tree.Tick() }

// Agent returns the driven agent.
func (c *Controller) Agent() *Agent { return c.a }

// Algorithm returns the planning algorithm.
func (c *Controller) Algorithm() search.Algorithm { return c.algo }

// SetAlgorithm switches the planning algorithm and forces a replan.
func (c *Controller) SetAlgorithm(algo search.Algorithm) {
	c.algo = algo
	c.a.planned = false
}

// Replans counts planning calls made by the tree.
func (c *Controller) Replans() int { return c.replans }

// Steps counts cells walked by the tree.
func (c *Controller) Steps() int { return c.steps }

func (c *Controller) final() (grid.Coord, bool) {
	ts := c.targets()
	if len(ts) == 0 {
		return grid.Coord{}, false
	}
	return ts[len(ts)-1], true
}

func (c *Controller) arrived([]bt.Node) (bt.Status, error) {
	if f, ok := c.final(); ok && c.a.pos == f && len(c.targets()) == 1 {
		c.a.state = Idle
		return bt.Success, nil
	}
	return bt.Failure, nil
}

func (c *Controller) fresh([]bt.Node) (bt.Status, error) {
	f, ok := c.final()
	if !ok || c.a.opts.FogRadius > 0 || c.a.NeedsReplanning(f) {
		return bt.Failure, nil
	}
	if c.a.cursor+1 >= len(c.a.plan) {
		return bt.Failure, nil
	}
	return bt.Success, nil
}

func (c *Controller) replan([]bt.Node) (bt.Status, error) {
	ts := c.targets()
	if len(ts) == 0 {
		return bt.Failure, nil
	}
	c.replans++
	found := c.a.ComputeRoute(ts, c.algo, c.a.discovered)
	if !found || c.a.cursor+1 >= len(c.a.plan) {
		return bt.Failure, nil
	}
	return bt.Success, nil
}

func (c *Controller) fallback([]bt.Node) (bt.Status, error) {
	f, ok := c.final()
	if !ok || !c.a.Fallback(f) {
		return bt.Failure, nil
	}
	return bt.Success, nil
}

func (c *Controller) step([]bt.Node) (bt.Status, error) {
	if !c.a.Step() {
		return bt.Failure, nil
	}
	c.steps++
	return bt.Success, nil
}
