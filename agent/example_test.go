package agent_test

import (
	"fmt"

	bt "github.com/joeycumines/go-behaviortree"

	"github.com/katalvlaran/mazerunner/agent"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// ExampleAgent_Undo walks two cells along a corridor and takes one back.
func ExampleAgent_Undo() {
	g, _ := grid.New(5, 5)
	for x := 0; x < g.Width(); x++ {
		g.Carve(grid.Coord{X: x, Y: 2})
	}
	a := agent.New(g, nil)
	a.Move(1, 0)
	a.Move(1, 0)
	fmt.Println(a.Position(), a.TotalCost(), a.Energy())

	a.Undo()
	fmt.Println(a.Position(), a.TotalCost(), a.Energy())

	// Output:
	// {1 2} 2 998
	// {0 2} 1 997
}

// ExampleController_Tick lets the behaviour tree drive an agent to the goal.
func ExampleController_Tick() {
	g, _ := grid.New(5, 5)
	for x := 0; x < g.Width(); x++ {
		g.Carve(grid.Coord{X: x, Y: 2})
	}
	g.SetTerrain(grid.Coord{X: 2, Y: 2}, grid.Water)

	a := agent.New(g, nil)
	c := agent.NewController(a, search.AStar, func() []grid.Coord { return []grid.Coord{g.Goal()} })
	for a.Position() != g.Goal() {
		if st, err := c.Tick(); err != nil || st != bt.Success {
			break
		}
	}
	fmt.Println(a.Position() == g.Goal(), c.Steps(), a.TotalCost())

	// Output:
	// true 6 7
}
