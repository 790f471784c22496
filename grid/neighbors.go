package grid

// Neighbors returns the cells reachable in one step from (x,y).
//
// Start's only neighbor is Entry and Goal's only neighbor is Exit.
// Otherwise orthogonal neighbors follow open walls, in N, E, S, W order,
// and with diagonals enabled a diagonal step is allowed only when both
// orthogonal sides it cuts across are open.
// Impassable cells have no neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int, diagonals bool) []Coord {
	c := Coord{X: x, Y: y}
	switch c {
	case g.start:
		if e := g.Entry(); g.IsPassable(e.X, e.Y) {
			return []Coord{e}
		}
		return nil
	case g.goal:
		if e := g.Exit(); g.IsPassable(e.X, e.Y) {
			return []Coord{e}
		}
		return nil
	}
	if !g.IsPassable(x, y) {
		return nil
	}

	mask := g.walls[g.index(x, y)]
	out := make([]Coord, 0, 8)
	for _, d := range Directions {
		if mask&d == 0 {
			continue
		}
		dx, dy := d.Offset()
		out = append(out, c.Add(dx, dy))
	}
	if !diagonals {
		return out
	}
	for _, s := range diagonalSteps {
		if mask&s.a == 0 || mask&s.b == 0 {
			continue
		}
		n := c.Add(s.dx, s.dy)
		if g.InBounds(n.X, n.Y) && g.IsPassable(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}
