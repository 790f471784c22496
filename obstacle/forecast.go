package obstacle

import "github.com/katalvlaran/mazerunner/grid"

// Forecast replays the next `turns` Update calls on a clone and returns a
// snapshot per turn. The live grid and turn counter are not touched, and a
// later sequence of real Update calls with the same arguments reproduces
// the forecast exactly.
func (m *Manager) Forecast(currentPath, checkpoints, reached []grid.Coord, turns int) []Snapshot {
	if turns <= 0 {
		return nil
	}
	sim := m.Clone()
	out := make([]Snapshot, 0, turns)
	for i := 0; i < turns; i++ {
		d := sim.Update(currentPath, checkpoints, reached)
		out = append(out, Snapshot{Turn: d.Turn, Delta: d, Grid: sim.g.Clone()})
	}

	return out
}
