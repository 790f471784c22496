// Package search finds routes through a grid.Grid.
//
// An Engine is bound to one grid and offers:
//
//   - Dijkstra, AStar and Replan: best-first search on entry costs.
//   - BidirectionalAStar: two A* trees meeting in the middle (approximate).
//   - BFS: fewest steps regardless of terrain.
//   - FogAStar: planning over discovered and remembered cells with
//     frontier exploration and a revisit penalty.
//   - MultiGoal and Tour: cheapest visiting order over a small goal set,
//     by exhaustive enumeration of orderings with cost pruning.
//   - Chain: legs through stops in a fixed order.
//   - RouteExists: first-found feasibility of a checkpoint route.
//
// Costs:
//
//   - Entering cell c costs grid.GetCost(c); leaving the start is free.
//   - A path's Cost is the sum over every cell after the first.
//   - Cells with +Inf cost are never entered.
//
// Visibility:
//
//   - Every single-goal search takes an optional discovered set. nil means
//     the whole grid is visible; otherwise only start, goal and cells in
//     the set are expanded, and h is zero while the goal is outside the set.
//
// Determinism:
//
//   - Heap ties break by insertion order; neighbours are visited N, E, S, W
//     (then diagonals). The same grid and inputs give the same Result.
//
// Caching:
//
//   - Single-goal results (except FogAStar) are kept in an LRU keyed by
//     endpoints, algorithm, discovered-set hash and grid version. Cached
//     Results are shared and must not be mutated.
//
// Complexity:
//
//   - Dijkstra/A*/Replan/Bidirectional/Fog: O((V + E) log V) time, O(V) space.
//   - BFS: O(V + E).
//   - MultiGoal/Tour over k goals: O(k!) orderings, O(k²) leg searches.
//
// Errors:
//
//   - ErrTooManyGoals: MultiGoal or Tour above Options.MaxGoals.
//   - ErrUnknownAlgorithm: ParseAlgorithm on an unknown name.
//
// The A* estimate is the heuristic distance multiplied by the cheapest
// finite entry cost on the grid, so zero-cost rewards and checkpoints keep
// it admissible. Heuristic scales above 1 may overestimate and lose
// optimality.
package search
