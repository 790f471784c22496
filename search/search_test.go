package search_test

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/maze"
	"github.com/katalvlaran/mazerunner/search"
)

//------------------------------------------------------------------------------
// Helpers
//------------------------------------------------------------------------------

// openGrid returns a w×h grid with every cell carved (all Path, cost 1).
func openGrid(t testing.TB, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Carve(grid.Coord{X: x, Y: y})
		}
	}
	return g
}

// braided returns a generated maze with some interior walls knocked out so
// that several routes compete. All in-grid cells cost at least 1.
func braided(t testing.TB, w, h int, seed int64) *grid.Grid {
	t.Helper()
	g, err := maze.Generate(w, h, maze.WithSeed(seed))
	require.NoError(t, err)
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if (x+y)%2 == 1 && (x*7+y*3)%5 == 0 {
				g.Carve(grid.Coord{X: x, Y: y})
			}
		}
	}
	return g
}

// requireValidPath checks adjacency, passability and reported cost.
func requireValidPath(t *testing.T, e *search.Engine, res search.Result, start, goal grid.Coord) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	g := e.Grid()
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		require.Contains(t, g.Neighbors(prev.X, prev.Y, e.Options().Diagonals), cur, "step %d: %v → %v", i, prev, cur)
	}
	require.InDelta(t, e.PathCost(res.Path), res.Cost, 1e-9)
}

//------------------------------------------------------------------------------
// Heuristics and parsing
//------------------------------------------------------------------------------

func TestHeuristics(t *testing.T) {
	assert.Equal(t, 20.0, search.ManhattanDistance(0, 0, 10, 10))
	assert.InDelta(t, math.Sqrt(200), search.EuclideanDistance(0, 0, 10, 10), 1e-12)
	assert.Equal(t, 0.0, search.ManhattanDistance(3, 4, 3, 4))
	for _, p := range [][4]int{{0, 0, 3, 4}, {-1, 2, 7, 2}, {5, 5, 1, 9}} {
		assert.LessOrEqual(t,
			search.EuclideanDistance(p[0], p[1], p[2], p[3]),
			search.ManhattanDistance(p[0], p[1], p[2], p[3]))
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []search.Algorithm{
		search.AStar, search.Dijkstra, search.BidirectionalAStar, search.BFS,
		search.FogAStar, search.Replan, search.MultiGoal,
	} {
		got, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	got, err := search.ParseAlgorithm(" dstar ")
	require.NoError(t, err)
	require.Equal(t, search.Replan, got)

	_, err = search.ParseAlgorithm("greedy")
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	h, ok := search.ParseHeuristic("euclidean")
	require.True(t, ok)
	require.Equal(t, search.Euclidean, h)
	_, ok = search.ParseHeuristic("chebyshev")
	require.False(t, ok)
}

func TestOptionsPanics(t *testing.T) {
	g := openGrid(t, 3, 3)
	require.Panics(t, func() { search.NewEngine(g, search.WithHeuristicScale(-1)) })
	require.Panics(t, func() { search.NewEngine(g, search.WithMaxGoals(0)) })
	require.Panics(t, func() { search.NewEngine(g, search.WithCacheSize(-1)) })
}

//------------------------------------------------------------------------------
// Single-goal searches
//------------------------------------------------------------------------------

func TestEngine_OpenGrid(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)
	for _, algo := range []search.Algorithm{search.AStar, search.Dijkstra, search.BidirectionalAStar, search.BFS, search.Replan, search.FogAStar} {
		t.Run(algo.String(), func(t *testing.T) {
			res := e.Run(algo, g.Start(), g.Goal(), nil)
			requireValidPath(t, e, res, g.Start(), g.Goal())
			require.Equal(t, 5.0, res.Cost, "five in-grid cells, goal is free")
			require.Len(t, res.Path, 7)
			require.True(t, res.Explored.Has(g.Goal()))
		})
	}
}

func TestEngine_StartEqualsGoal(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)
	c := grid.Coord{X: 2, Y: 2}
	for _, algo := range []search.Algorithm{search.AStar, search.Dijkstra, search.BidirectionalAStar, search.BFS} {
		res := e.Run(algo, c, c, nil)
		require.True(t, res.Found, algo.String())
		require.Equal(t, []grid.Coord{c}, res.Path)
		require.Equal(t, 0.0, res.Cost)
	}
}

func TestEngine_Unreachable(t *testing.T) {
	g, err := grid.New(5, 3)
	require.NoError(t, err)
	for x := 0; x < g.Width(); x++ {
		g.Carve(grid.Coord{X: x, Y: 1})
	}
	require.True(t, g.Block(grid.Coord{X: 2, Y: 1}))

	e := search.NewEngine(g)
	for _, algo := range []search.Algorithm{search.AStar, search.Dijkstra, search.BidirectionalAStar, search.BFS} {
		res := e.Run(algo, g.Start(), g.Goal(), nil)
		require.False(t, res.Found, algo.String())
		require.Empty(t, res.Path)
		require.True(t, math.IsInf(res.Cost, 1))
	}
}

func TestEngine_InfiniteCostTerrainIsAvoided(t *testing.T) {
	g := openGrid(t, 5, 3)
	g.SetTerrain(grid.Coord{X: 2, Y: 1}, grid.Lava)
	e := search.NewEngine(g)
	for _, algo := range []search.Algorithm{search.AStar, search.BFS} {
		res := e.Run(algo, g.Start(), g.Goal(), nil)
		requireValidPath(t, e, res, g.Start(), g.Goal())
		require.NotContains(t, res.Path, grid.Coord{X: 2, Y: 1})
	}
}

func TestEngine_AlgorithmsAgree(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := braided(t, 21, 15, seed)
			e := search.NewEngine(g, search.WithCacheSize(0))
			s, goal := g.Start(), g.Goal()

			dj := e.Dijkstra(s, goal, nil)
			as := e.AStar(s, goal, nil)
			bi := e.BidirectionalAStar(s, goal, nil)
			bf := e.BFS(s, goal, nil)

			requireValidPath(t, e, dj, s, goal)
			requireValidPath(t, e, as, s, goal)
			requireValidPath(t, e, bi, s, goal)
			requireValidPath(t, e, bf, s, goal)

			require.InDelta(t, dj.Cost, as.Cost, 1e-9, "A* with Manhattan is optimal here")
			require.LessOrEqual(t, as.NodesExplored(), dj.NodesExplored())
			require.GreaterOrEqual(t, bi.Cost, dj.Cost-1e-9, "bidirectional may only be worse")
			require.GreaterOrEqual(t, bf.Cost, dj.Cost-1e-9)
			require.LessOrEqual(t, len(bf.Path), len(dj.Path), "BFS minimises steps")
		})
	}
}

func TestEngine_PerfectMazeSinglePath(t *testing.T) {
	g, err := maze.Generate(31, 23, maze.WithSeed(11), maze.WithRewardRate(maze.DefaultRewardRate))
	require.NoError(t, err)
	e := search.NewEngine(g)
	dj := e.Dijkstra(g.Start(), g.Goal(), nil)
	for _, algo := range []search.Algorithm{search.AStar, search.BidirectionalAStar, search.BFS} {
		res := e.Run(algo, g.Start(), g.Goal(), nil)
		require.Equal(t, dj.Path, res.Path, "a tree has exactly one simple path: %s", algo)
	}
}

func TestEngine_Diagonals(t *testing.T) {
	g := openGrid(t, 5, 5)
	from, to := grid.Coord{X: 0, Y: 2}, grid.Coord{X: 4, Y: 0}

	ortho := search.NewEngine(g).Dijkstra(from, to, nil)
	require.Equal(t, 6.0, ortho.Cost)

	e := search.NewEngine(g, search.WithDiagonals())
	diag := e.Dijkstra(from, to, nil)
	requireValidPath(t, e, diag, from, to)
	require.Equal(t, 4.0, diag.Cost)
}

func TestEngine_HeuristicScale(t *testing.T) {
	g := braided(t, 21, 15, 3)
	e := search.NewEngine(g, search.WithHeuristicScale(1.5), search.WithCacheSize(0))
	res := e.AStar(g.Start(), g.Goal(), nil)
	requireValidPath(t, e, res, g.Start(), g.Goal())
	opt := search.NewEngine(g).Dijkstra(g.Start(), g.Goal(), nil)
	require.GreaterOrEqual(t, res.Cost, opt.Cost-1e-9)
}

func TestEngine_Euclidean(t *testing.T) {
	g := braided(t, 15, 11, 5)
	e := search.NewEngine(g, search.WithHeuristic(search.Euclidean))
	res := e.AStar(g.Start(), g.Goal(), nil)
	requireValidPath(t, e, res, g.Start(), g.Goal())
	require.InDelta(t, search.NewEngine(g).Dijkstra(g.Start(), g.Goal(), nil).Cost, res.Cost, 1e-9)
}

// detourGrid is a 9×5 grid whose middle row is Mud between two plain end
// cells, with a longer loop over the top row joining the two ends.
// The direct row costs 37, the loop 13 while it is plain Path.
func detourGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(9, 5)
	require.NoError(t, err)
	for x := 0; x < g.Width(); x++ {
		g.Carve(grid.Coord{X: x, Y: 2})
		g.Carve(grid.Coord{X: x, Y: 0})
		if x > 0 && x < g.Width()-1 {
			require.True(t, g.SetTerrain(grid.Coord{X: x, Y: 2}, grid.Mud))
		}
	}
	g.Carve(grid.Coord{X: 0, Y: 1})
	g.Carve(grid.Coord{X: g.Width() - 1, Y: 1})
	return g
}

// loopCells lists the cells of the top loop in detourGrid.
func loopCells(g *grid.Grid) []grid.Coord {
	cells := []grid.Coord{{X: 0, Y: 1}, {X: g.Width() - 1, Y: 1}}
	for x := 0; x < g.Width(); x++ {
		cells = append(cells, grid.Coord{X: x, Y: 0})
	}
	return cells
}

func TestEngine_ZeroCostDetourStaysOptimal(t *testing.T) {
	cases := []struct {
		name string
		opts []search.Option
	}{
		{"manhattan", nil},
		{"euclidean", []search.Option{search.WithHeuristic(search.Euclidean)}},
		{"diagonals", []search.Option{search.WithDiagonals()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := detourGrid(t)
			e := search.NewEngine(g, tc.opts...)

			res := e.AStar(g.Start(), g.Goal(), nil)
			requireValidPath(t, e, res, g.Start(), g.Goal())
			require.InDelta(t, e.Dijkstra(g.Start(), g.Goal(), nil).Cost, res.Cost, 1e-9)

			for _, c := range loopCells(g) {
				require.True(t, g.SetTerrain(c, grid.Reward))
			}
			dj := e.Dijkstra(g.Start(), g.Goal(), nil)
			require.Equal(t, 2.0, dj.Cost)
			for _, algo := range []search.Algorithm{search.AStar, search.Replan} {
				res = e.Run(algo, g.Start(), g.Goal(), nil)
				requireValidPath(t, e, res, g.Start(), g.Goal())
				assert.Equal(t, dj.Cost, res.Cost, "%s must take the free loop", algo)
			}
		})
	}
}

func TestChebyshevDistance(t *testing.T) {
	assert.Equal(t, 4.0, search.ChebyshevDistance(0, 0, 4, -3))
	assert.Equal(t, 0.0, search.ChebyshevDistance(2, 2, 2, 2))
}

//------------------------------------------------------------------------------
// Visibility
//------------------------------------------------------------------------------

func TestEngine_DiscoveredFilter(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)

	near := mapset.New[grid.Coord]()
	for y := 0; y < 5; y++ {
		near.Put(grid.Coord{X: 0, Y: y})
		near.Put(grid.Coord{X: 1, Y: y})
	}
	res := e.AStar(g.Start(), g.Goal(), &near)
	require.False(t, res.Found)
	res.Explored.Each(func(c grid.Coord) {
		require.True(t, c == g.Start() || near.Has(c), "expanded hidden cell %v", c)
	})

	row := mapset.New[grid.Coord]()
	for x := 0; x < 5; x++ {
		row.Put(grid.Coord{X: x, Y: 2})
	}
	row.Put(g.Goal())
	for _, algo := range []search.Algorithm{search.AStar, search.Dijkstra, search.BidirectionalAStar, search.BFS} {
		res = e.Run(algo, g.Start(), g.Goal(), &row)
		requireValidPath(t, e, res, g.Start(), g.Goal())
		for _, c := range res.Path[1:] {
			require.True(t, row.Has(c))
		}
	}
}

func TestFogAStar_Frontier(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)
	start := grid.Coord{X: 0, Y: 2}
	seen := mapset.New[grid.Coord]()
	seen.Put(start)
	seen.Put(grid.Coord{X: 1, Y: 2})

	res := e.FogAStar(start, g.Goal(), &seen, nil, nil)
	require.True(t, res.Found)
	require.Equal(t, grid.Coord{X: 1, Y: 2}, res.Target, "nearest frontier other than the current cell")
	require.Equal(t, []grid.Coord{start, {X: 1, Y: 2}}, res.Path)
}

func TestFogAStar_KnownButCutOffGoal(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)
	start, far := grid.Coord{X: 0, Y: 2}, grid.Coord{X: 4, Y: 2}
	seen := mapset.New[grid.Coord]()
	seen.Put(start)
	seen.Put(grid.Coord{X: 1, Y: 2})
	seen.Put(far)

	res := e.FogAStar(start, far, &seen, nil, nil)
	require.True(t, res.Found)
	require.Equal(t, grid.Coord{X: 1, Y: 2}, res.Target, "far is seen but not walkable over known cells")
}

func TestFogAStar_MemoryExtendsReach(t *testing.T) {
	g := openGrid(t, 5, 3)
	e := search.NewEngine(g)
	seen := mapset.New[grid.Coord]()
	seen.Put(grid.Coord{X: 0, Y: 1})
	memory := map[grid.Coord]grid.Terrain{}
	for x := 1; x < 5; x++ {
		memory[grid.Coord{X: x, Y: 1}] = grid.Path
	}
	memory[g.Goal()] = grid.Goal

	res := e.FogAStar(g.Start(), g.Goal(), &seen, memory, nil)
	requireValidPath(t, e, res, g.Start(), g.Goal())
	require.Equal(t, g.Goal(), res.Target)
}

func TestFogAStar_RevisitPenalty(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)
	from, to := grid.Coord{X: 0, Y: 2}, grid.Coord{X: 4, Y: 2}

	plain := e.FogAStar(from, to, nil, nil, nil)
	require.Contains(t, plain.Path, grid.Coord{X: 2, Y: 2})

	recent := mapset.New[grid.Coord]()
	recent.Put(grid.Coord{X: 2, Y: 2})
	res := e.FogAStar(from, to, nil, nil, &recent)
	requireValidPath(t, e, res, from, to)
	require.NotContains(t, res.Path, grid.Coord{X: 2, Y: 2})
}

//------------------------------------------------------------------------------
// Multi-goal
//------------------------------------------------------------------------------

func permutations(xs []grid.Coord) [][]grid.Coord {
	if len(xs) <= 1 {
		return [][]grid.Coord{slices.Clone(xs)}
	}
	var out [][]grid.Coord
	for i := range xs {
		rest := append(xs[:i:i], xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]grid.Coord{xs[i]}, p...))
		}
	}
	return out
}

func TestMultiGoal_BeatsEveryFixedOrder(t *testing.T) {
	g, err := maze.Generate(21, 15, maze.WithSeed(21))
	require.NoError(t, err)
	cps := maze.PlaceCheckpoints(g, 3, 3)
	require.Len(t, cps, 3)
	e := search.NewEngine(g)

	res, err := e.MultiGoal(g.Start(), cps, nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.ElementsMatch(t, cps, res.Order)
	for _, c := range cps {
		require.Contains(t, res.Path, c)
	}
	require.InDelta(t, e.PathCost(res.Path), res.Cost, 1e-9)

	for _, order := range permutations(cps) {
		total, from := 0.0, g.Start()
		for _, c := range order {
			leg := e.AStar(from, c, nil)
			require.True(t, leg.Found)
			total += leg.Cost
			from = c
		}
		require.LessOrEqual(t, res.Cost, total+1e-9, "order %v", order)
	}
}

func TestTour_EndsAtFinal(t *testing.T) {
	g, err := maze.Generate(21, 15, maze.WithSeed(8))
	require.NoError(t, err)
	cps := maze.PlaceCheckpoints(g, 3, 3)
	e := search.NewEngine(g)

	res, err := e.Tour(g.Start(), cps, g.Goal(), nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, g.Goal(), res.Path[len(res.Path)-1])
	require.Equal(t, g.Goal(), res.Order[len(res.Order)-1])
	require.Len(t, res.Order, len(cps)+1)
	require.Equal(t, g.Start(), res.Path[0])
	requireValidPath(t, e, res, g.Start(), g.Goal())

	none, err := e.Tour(g.Start(), nil, g.Goal(), nil)
	require.NoError(t, err)
	require.InDelta(t, e.AStar(g.Start(), g.Goal(), nil).Cost, none.Cost, 1e-9)
}

func TestChain_KeepsDeclaredOrder(t *testing.T) {
	g := openGrid(t, 7, 7)
	e := search.NewEngine(g)
	stops := []grid.Coord{{X: 3, Y: 0}, {X: 3, Y: 6}, g.Goal()}

	res := e.Chain(search.AStar, g.Start(), stops, nil)
	requireValidPath(t, e, res, g.Start(), g.Goal())
	require.Equal(t, stops, res.Order)
	require.InDelta(t, 19.0, res.Cost, 1e-9)

	tour, err := e.Tour(g.Start(), stops[:2], g.Goal(), nil)
	require.NoError(t, err)
	require.LessOrEqual(t, tour.Cost, res.Cost)

	require.True(t, g.Block(grid.Coord{X: 3, Y: 1}))
	require.True(t, g.Block(grid.Coord{X: 2, Y: 0}))
	require.True(t, g.Block(grid.Coord{X: 4, Y: 0}))
	cut := e.Chain(search.Dijkstra, g.Start(), stops, nil)
	require.False(t, cut.Found)
	require.True(t, math.IsInf(cut.Cost, 1))

	empty := e.Chain(search.BFS, g.Start(), nil, nil)
	require.True(t, empty.Found)
	require.Equal(t, []grid.Coord{g.Start()}, empty.Path)
}

func TestMultiGoal_Limits(t *testing.T) {
	g := openGrid(t, 7, 7)
	e := search.NewEngine(g)
	goals := []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}

	_, err := e.MultiGoal(g.Start(), goals, nil)
	require.True(t, errors.Is(err, search.ErrTooManyGoals))
	_, err = e.Tour(g.Start(), goals, g.Goal(), nil)
	require.ErrorIs(t, err, search.ErrTooManyGoals)

	res, err := e.MultiGoal(g.Start(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{g.Start()}, res.Path)

	res, err = e.MultiGoal(g.Start(), []grid.Coord{goals[0], goals[0], g.Start()}, nil)
	require.NoError(t, err, "duplicates and start collapse")
	require.Equal(t, []grid.Coord{goals[0]}, res.Order)

	wide := search.NewEngine(g, search.WithMaxGoals(5))
	res, err = wide.MultiGoal(g.Start(), goals, nil)
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestRouteExists(t *testing.T) {
	g, err := maze.Generate(15, 11, maze.WithSeed(5))
	require.NoError(t, err)
	cps := maze.PlaceCheckpoints(g, 3, 2)
	e := search.NewEngine(g)
	require.True(t, e.RouteExists(g.Start(), cps, g.Goal()))

	// a perfect maze has one route; closing any cell on it cuts the goal off
	path := e.AStar(g.Start(), g.Goal(), nil).Path
	var cut grid.Coord
	for _, c := range path[2 : len(path)-2] {
		if !g.IsCritical(c) {
			cut = c
			break
		}
	}
	require.True(t, g.Block(cut))
	require.False(t, e.RouteExists(g.Start(), cps, g.Goal()))

	// above the cap the connectivity fallback still answers
	narrow := search.NewEngine(g, search.WithMaxGoals(1))
	require.False(t, narrow.RouteExists(g.Start(), cps, g.Goal()))
	require.True(t, g.Unblock(cut))
	require.True(t, narrow.RouteExists(g.Start(), cps, g.Goal()))
}

//------------------------------------------------------------------------------
// Cache and prediction
//------------------------------------------------------------------------------

func TestEngine_Cache(t *testing.T) {
	g := openGrid(t, 5, 5)
	e := search.NewEngine(g)

	first := e.AStar(g.Start(), g.Goal(), nil)
	require.Equal(t, 1, e.CacheSize())
	again := e.AStar(g.Start(), g.Goal(), nil)
	require.Equal(t, first.Path, again.Path)
	require.Equal(t, 1, e.CacheSize(), "hit does not add an entry")

	seen := mapset.New[grid.Coord]()
	seen.Put(grid.Coord{X: 0, Y: 2})
	e.AStar(g.Start(), g.Goal(), &seen)
	require.Equal(t, 2, e.CacheSize(), "discovered set is part of the key")

	// mutation bumps the version, so the stale entry is bypassed
	require.True(t, g.SetTerrain(grid.Coord{X: 2, Y: 2}, grid.Mud))
	changed := e.AStar(g.Start(), g.Goal(), nil)
	require.True(t, changed.Found)
	require.Equal(t, 7.0, changed.Cost, "two-cell detour is cheaper than mud")
	require.NotContains(t, changed.Path, grid.Coord{X: 2, Y: 2})
	require.Equal(t, 3, e.CacheSize())

	e.ClearCache()
	require.Equal(t, 0, e.CacheSize())

	off := search.NewEngine(g, search.WithCacheSize(0))
	off.AStar(g.Start(), g.Goal(), nil)
	require.Equal(t, 0, off.CacheSize())
}

func TestPredict(t *testing.T) {
	g := openGrid(t, 5, 3)
	e := search.NewEngine(g)
	res := e.AStar(g.Start(), g.Goal(), nil)
	require.Equal(t, 5.0, res.Cost)

	require.Equal(t, res.Cost, search.Predict(res, nil).Cost)

	later := g.Clone()
	require.True(t, later.SetTerrain(grid.Coord{X: 2, Y: 1}, grid.Mud))
	pred := search.Predict(res, []*grid.Grid{g.Clone(), later})
	require.Equal(t, res.Path, pred.Path)
	require.Contains(t, res.Path, grid.Coord{X: 2, Y: 1})
	require.Equal(t, 9.0, pred.Cost, "mud costs 5 instead of 1 from the second step on")
	require.Equal(t, 5.0, res.Cost, "input is left untouched")
}
