package search

import (
	"math"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazerunner/grid"
)

// BFS finds a path with the fewest steps, ignoring terrain weights.
// Cost is still reported as the weighted cost of that path.
//
// Complexity: O(V + E) time and space.
func (e *Engine) BFS(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	return e.cached(BFS, start, goal, discovered, func() Result {
		return e.bfs(start, goal, discovered)
	})
}

func (e *Engine) bfs(start, goal grid.Coord, discovered *mapset.Set[grid.Coord]) Result {
	res := newResult(BFS, goal)
	if !e.g.IsValid(start.X, start.Y) || !e.g.IsValid(goal.X, goal.Y) {
		return res
	}

	depth := map[grid.Coord]int{start: 0}
	prev := make(map[grid.Coord]grid.Coord)
	q := queue.New[grid.Coord]()
	q.Enqueue(start)
	res.Frontier.Put(start)

	for !q.Empty() {
		u := q.Dequeue()
		res.Frontier.Remove(u)
		res.Explored.Put(u)
		d := float64(depth[u])
		res.Nodes[u] = NodeScore{G: d, F: d}
		if u == goal {
			res.Path = reconstruct(prev, start, goal)
			res.Cost = e.PathCost(res.Path)
			res.Found = res.Path != nil
			return res
		}
		for _, v := range e.g.Neighbors(u.X, u.Y, e.opts.Diagonals) {
			if _, seen := depth[v]; seen || !accessible(v, start, goal, discovered) || math.IsInf(e.g.GetCost(v.X, v.Y), 1) {
				continue
			}
			depth[v] = depth[u] + 1
			prev[v] = u
			res.Frontier.Put(v)
			q.Enqueue(v)
		}
	}

	return res
}
