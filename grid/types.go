package grid

import (
	"errors"
	"math"
)

// ErrDimensionTooSmall indicates a grid narrower or shorter than 3 cells.
var ErrDimensionTooSmall = errors.New("grid: width and height must be at least 3")

// MinDimension is the smallest accepted width or height.
const MinDimension = 3

// Coord is a cell coordinate. X grows to the right, Y grows downwards.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Manhattan returns |dx| + |dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is a single side of a cell, usable as a bit in the wall mask.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return 0
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Directions lists the four sides in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// diagonalSteps pairs each diagonal offset with the two sides it needs open.
var diagonalSteps = [4]struct {
	dx, dy int
	a, b   Direction
}{
	{1, -1, North, East},
	{1, 1, South, East},
	{-1, 1, South, West},
	{-1, -1, North, West},
}

// Terrain tags a cell. Base terrains come from generation, obstacle
// terrains from per-turn churn, special terrains mark roles.
type Terrain uint8

const (
	Path Terrain = iota
	Grass
	Water
	Mud
	Lava
	Wall
	Start
	Goal
	Checkpoint
	Spikes
	Thorns
	Quicksand
	Rocks
	Reward

	numTerrains
)

var terrainNames = [numTerrains]string{
	"PATH", "GRASS", "WATER", "MUD", "LAVA", "WALL", "START", "GOAL",
	"CHECKPOINT", "SPIKES", "THORNS", "QUICKSAND", "ROCKS", "REWARD",
}

func (t Terrain) String() string {
	if t >= numTerrains {
		return "UNKNOWN"
	}
	return terrainNames[t]
}

// ParseTerrain maps an upper-case name back to its Terrain.
func ParseTerrain(name string) (Terrain, bool) {
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), true
		}
	}
	return 0, false
}

// IsBase reports whether t is a plain walkable terrain (path, grass, water, mud).
func (t Terrain) IsBase() bool {
	return t == Path || t == Grass || t == Water || t == Mud
}

// IsObstacle reports whether t is one of the churnable obstacle terrains.
func (t Terrain) IsObstacle() bool {
	return t == Spikes || t == Thorns || t == Quicksand || t == Rocks
}

// BaseTerrains are drawn at generation time with BaseWeights.
var (
	BaseTerrains = []Terrain{Grass, Water, Mud}
	BaseWeights  = []float64{0.7, 0.2, 0.1}
)

// ObstacleTerrains are the costly-but-passable terrains used by churn.
var ObstacleTerrains = []Terrain{Spikes, Thorns, Quicksand, Rocks}

// CostTable maps each Terrain to its movement cost. It is an array so that
// copies are independent.
type CostTable [numTerrains]float64

// DefaultCosts returns the stock terrain costs.
func DefaultCosts() CostTable {
	inf := math.Inf(1)
	var t CostTable
	t[Path] = 1
	t[Grass] = 1
	t[Water] = 3
	t[Mud] = 5
	t[Lava] = inf
	t[Wall] = inf
	t[Start] = 0
	t[Goal] = 0
	t[Checkpoint] = 0
	t[Spikes] = 4
	t[Thorns] = 3
	t[Quicksand] = 6
	t[Rocks] = 2
	t[Reward] = 0
	return t
}

// Cost returns the cost of terrain t (+Inf for unknown tags).
func (ct CostTable) Cost(t Terrain) float64 {
	if t >= numTerrains {
		return math.Inf(1)
	}
	return ct[t]
}

// With returns a copy of ct with terrain t priced at cost.
func (ct CostTable) With(t Terrain, cost float64) CostTable {
	if t < numTerrains {
		ct[t] = cost
	}
	return ct
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithCosts replaces the default cost table.
func WithCosts(ct CostTable) Option {
	return func(g *Grid) {
		g.costs = ct
	}
}
