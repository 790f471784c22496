package grid

import (
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a maze grid. All cells start as walls; generators carve them.
type Grid struct {
	width, height int
	open          []bool
	walls         []Direction
	terrain       []Terrain
	costs         CostTable
	start, goal   Coord
	checkpoints   []Coord
	underlying    map[Coord]Terrain // terrain hidden under a checkpoint
	obstacles     mapset.Set[Coord]
	version       uint64
}

// New builds a width×height grid of walls. Even dimensions are rounded
// down to the next odd value. Returns ErrDimensionTooSmall below 3.
// Complexity: O(W×H).
func New(width, height int, opts ...Option) (*Grid, error) {
	if width%2 == 0 {
		width--
	}
	if height%2 == 0 {
		height--
	}
	if width < MinDimension || height < MinDimension {
		return nil, ErrDimensionTooSmall
	}
	n := width * height
	g := &Grid{
		width:      width,
		height:     height,
		open:       make([]bool, n),
		walls:      make([]Direction, n),
		terrain:    make([]Terrain, n),
		costs:      DefaultCosts(),
		start:      Coord{X: -1, Y: height / 2},
		goal:       Coord{X: width, Y: height / 2},
		underlying: make(map[Coord]Terrain),
		obstacles:  mapset.New[Coord](),
	}
	for i := range g.terrain {
		g.terrain[i] = Wall
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the out-of-grid start cell (-1, H/2).
func (g *Grid) Start() Coord { return g.start }

// Goal returns the out-of-grid goal cell (W, H/2).
func (g *Grid) Goal() Coord { return g.goal }

// Entry returns the in-grid cell adjacent to Start.
func (g *Grid) Entry() Coord { return Coord{X: 0, Y: g.height / 2} }

// Exit returns the in-grid cell adjacent to Goal.
func (g *Grid) Exit() Coord { return Coord{X: g.width - 1, Y: g.height / 2} }

// Costs returns a copy of the active cost table.
func (g *Grid) Costs() CostTable { return g.costs }

// Version increases on every mutation.
func (g *Grid) Version() uint64 { return g.version }

// InBounds reports whether (x,y) lies inside the rectangle.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsValid reports whether (x,y) is inside the rectangle or is Start/Goal.
func (g *Grid) IsValid(x, y int) bool {
	c := Coord{X: x, Y: y}
	return c == g.start || c == g.goal || g.InBounds(x, y)
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// IsPassable reports whether (x,y) can be entered. Start and Goal always can.
func (g *Grid) IsPassable(x, y int) bool {
	c := Coord{X: x, Y: y}
	if c == g.start || c == g.goal {
		return true
	}
	if !g.InBounds(x, y) {
		return false
	}
	return g.open[g.index(x, y)]
}

// Terrain returns the terrain tag of (x,y). Dynamic obstacles report Lava,
// closed or out-of-range cells report Wall.
func (g *Grid) Terrain(x, y int) Terrain {
	c := Coord{X: x, Y: y}
	switch {
	case c == g.start:
		return Start
	case c == g.goal:
		return Goal
	case !g.InBounds(x, y):
		return Wall
	case g.obstacles.Has(c):
		return Lava
	case !g.open[g.index(x, y)]:
		return Wall
	}
	return g.terrain[g.index(x, y)]
}

// GetCost returns the cost of entering (x,y): +Inf if impassable.
func (g *Grid) GetCost(x, y int) float64 {
	if !g.IsPassable(x, y) {
		return math.Inf(1)
	}
	return g.costs.Cost(g.Terrain(x, y))
}

// Carve makes an in-bounds cell passable, keeping its terrain (Path if it
// was a wall). Reports whether anything changed.
func (g *Grid) Carve(c Coord) bool {
	if !g.InBounds(c.X, c.Y) {
		return false
	}
	i := g.index(c.X, c.Y)
	if g.open[i] {
		return false
	}
	if g.terrain[i] == Wall {
		g.terrain[i] = Path
	}
	g.setOpen(c, true)
	return true
}

// SetTerrain retags an in-bounds passable cell. Start, Goal and checkpoint
// cells keep their role and are refused.
func (g *Grid) SetTerrain(c Coord, t Terrain) bool {
	if !g.InBounds(c.X, c.Y) || g.IsCheckpoint(c) || t >= numTerrains {
		return false
	}
	i := g.index(c.X, c.Y)
	if !g.open[i] || g.terrain[i] == t {
		return false
	}
	g.terrain[i] = t
	g.version++
	return true
}

// Block turns a passable, non-critical in-bounds cell into a dynamic
// (lava) obstacle. The underlying terrain is kept for Unblock.
func (g *Grid) Block(c Coord) bool {
	if !g.InBounds(c.X, c.Y) || g.IsCritical(c) || !g.open[g.index(c.X, c.Y)] {
		return false
	}
	g.obstacles.Put(c)
	g.setOpen(c, false)
	return true
}

// Unblock removes a dynamic obstacle and reopens its walls towards
// passable neighbors.
func (g *Grid) Unblock(c Coord) bool {
	if !g.obstacles.Has(c) {
		return false
	}
	g.obstacles.Remove(c)
	g.setOpen(c, true)
	return true
}

// IsObstacle reports whether c is a dynamic obstacle.
func (g *Grid) IsObstacle(c Coord) bool { return g.obstacles.Has(c) }

// Obstacles returns the dynamic obstacles in row-major order.
func (g *Grid) Obstacles() []Coord {
	out := make([]Coord, 0, g.obstacles.Size())
	g.obstacles.Each(func(c Coord) {
		out = append(out, c)
	})
	sortRowMajor(out)
	return out
}

// AddCheckpoint appends (x,y) to the ordered checkpoint list. The cell
// must be passable, inside the grid, not Start/Goal and not yet listed.
func (g *Grid) AddCheckpoint(x, y int) bool {
	c := Coord{X: x, Y: y}
	if !g.InBounds(x, y) || !g.IsPassable(x, y) || g.IsCheckpoint(c) {
		return false
	}
	i := g.index(x, y)
	g.underlying[c] = g.terrain[i]
	g.terrain[i] = Checkpoint
	g.checkpoints = append(g.checkpoints, c)
	g.version++
	return true
}

// RemoveCheckpoint drops (x,y) from the checkpoint list and restores the
// terrain it covered.
func (g *Grid) RemoveCheckpoint(x, y int) bool {
	c := Coord{X: x, Y: y}
	idx := slices.Index(g.checkpoints, c)
	if idx < 0 {
		return false
	}
	g.checkpoints = slices.Delete(g.checkpoints, idx, idx+1)
	g.terrain[g.index(x, y)] = g.underlying[c]
	delete(g.underlying, c)
	g.version++
	return true
}

// Checkpoints returns the checkpoints in declaration order.
func (g *Grid) Checkpoints() []Coord { return slices.Clone(g.checkpoints) }

// IsCheckpoint reports whether c is a declared checkpoint.
func (g *Grid) IsCheckpoint(c Coord) bool { return slices.Contains(g.checkpoints, c) }

// IsCritical reports whether c is Start, Goal or a checkpoint.
func (g *Grid) IsCritical(c Coord) bool {
	return c == g.start || c == g.goal || g.IsCheckpoint(c)
}

// CriticalPoints returns Start, Goal and the checkpoints.
func (g *Grid) CriticalPoints() []Coord {
	out := make([]Coord, 0, 2+len(g.checkpoints))
	out = append(out, g.start, g.goal)
	return append(out, g.checkpoints...)
}

// PassableCells lists passable in-bounds cells in row-major order.
func (g *Grid) PassableCells() []Coord {
	out := make([]Coord, 0, len(g.open)/2)
	for i, o := range g.open {
		if o {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Clone returns a deep copy. The copy shares nothing with g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.open = slices.Clone(g.open)
	c.walls = slices.Clone(g.walls)
	c.terrain = slices.Clone(g.terrain)
	c.checkpoints = slices.Clone(g.checkpoints)
	c.underlying = make(map[Coord]Terrain, len(g.underlying))
	for k, v := range g.underlying {
		c.underlying[k] = v
	}
	c.obstacles = mapset.New[Coord]()
	g.obstacles.Each(func(p Coord) {
		c.obstacles.Put(p)
	})
	return &c
}

// setOpen flips passability of an in-bounds cell and recomputes the wall
// bits shared with its four neighbors.
func (g *Grid) setOpen(c Coord, open bool) {
	i := g.index(c.X, c.Y)
	g.open[i] = open
	g.walls[i] = 0
	for _, d := range Directions {
		dx, dy := d.Offset()
		n := c.Add(dx, dy)
		both := open && g.IsPassable(n.X, n.Y)
		if both {
			g.walls[i] |= d
		}
		if g.InBounds(n.X, n.Y) {
			j := g.index(n.X, n.Y)
			if both {
				g.walls[j] |= d.Opposite()
			} else {
				g.walls[j] &^= d.Opposite()
			}
		}
	}
	g.version++
}

// HasWall reports whether side d of (x,y) is closed. Impassable or
// out-of-range cells are walled on every side.
func (g *Grid) HasWall(x, y int, d Direction) bool {
	c := Coord{X: x, Y: y}
	if c == g.start {
		return d != East || !g.IsPassable(g.Entry().X, g.Entry().Y)
	}
	if c == g.goal {
		return d != West || !g.IsPassable(g.Exit().X, g.Exit().Y)
	}
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[g.index(x, y)]&d == 0
}

func sortRowMajor(cs []Coord) {
	slices.SortFunc(cs, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}
