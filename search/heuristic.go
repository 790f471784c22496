package search

import (
	"math"

	"github.com/katalvlaran/mazerunner/grid"
)

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(x1, y1, x2, y2 int) float64 {
	return math.Abs(float64(x1-x2)) + math.Abs(float64(y1-y2))
}

// EuclideanDistance returns the straight-line distance. It never exceeds
// ManhattanDistance for the same points.
func EuclideanDistance(x1, y1, x2, y2 int) float64 {
	dx, dy := float64(x1-x2), float64(y1-y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance evaluates h between two cells.
func (h Heuristic) Distance(a, b grid.Coord) float64 {
	if h == Euclidean {
		return EuclideanDistance(a.X, a.Y, b.X, b.Y)
	}
	return ManhattanDistance(a.X, a.Y, b.X, b.Y)
}

// ChebyshevDistance returns max(|x1-x2|, |y1-y2|), the move count between
// two cells when diagonal steps are allowed.
func ChebyshevDistance(x1, y1, x2, y2 int) float64 {
	return math.Max(math.Abs(float64(x1-x2)), math.Abs(float64(y1-y2)))
}
