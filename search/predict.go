package search

import (
	"slices"

	"github.com/katalvlaran/mazerunner/grid"
)

// Predict re-costs res.Path against forecast grids: the i-th step of the
// path is priced on future[min(i-1, len(future)-1)], so step one uses the
// next turn's grid and the last snapshot covers the rest of the path.
// With no forecast the result is returned unchanged. The returned Result
// has its own Path slice.
func Predict(res Result, future []*grid.Grid) Result {
	if !res.Found || len(future) == 0 {
		return res
	}
	out := res
	out.Path = slices.Clone(res.Path)
	total := 0.0
	for i := 1; i < len(out.Path); i++ {
		snap := future[min(i-1, len(future)-1)]
		c := out.Path[i]
		total += snap.GetCost(c.X, c.Y)
	}
	out.Cost = total

	return out
}
