package grid

import "strings"

var glyphs = [numTerrains]byte{
	Path:       '.',
	Grass:      '.',
	Water:      '~',
	Mud:        '%',
	Lava:       'L',
	Wall:       '#',
	Start:      'S',
	Goal:       'G',
	Checkpoint: 'C',
	Spikes:     '^',
	Thorns:     '*',
	Quicksand:  '&',
	Rocks:      'o',
	Reward:     '$',
}

// Glyph returns the single-character ASCII form of t.
func (t Terrain) Glyph() byte {
	if t >= numTerrains {
		return '?'
	}
	return glyphs[t]
}

// String renders the grid as ASCII, one row per line, with Start and Goal
// drawn in an extra column on each side.
func (g *Grid) String() string { return g.Render(nil) }

// Render is String with marks drawn over the terrain of their cells.
func (g *Grid) Render(marks map[Coord]byte) string {
	var sb strings.Builder
	sb.Grow((g.width + 3) * g.height)
	row := make([]byte, 0, g.width+2)
	for y := 0; y < g.height; y++ {
		row = row[:0]
		for x := -1; x <= g.width; x++ {
			if !g.IsValid(x, y) {
				row = append(row, ' ')
				continue
			}
			if m, ok := marks[Coord{X: x, Y: y}]; ok {
				row = append(row, m)
				continue
			}
			row = append(row, g.Terrain(x, y).Glyph())
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
