package obstacle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/maze"
	"github.com/katalvlaran/mazerunner/obstacle"
	"github.com/katalvlaran/mazerunner/search"
)

// build returns a 21×15 maze with static obstacle terrain and three
// checkpoints.
func build(t *testing.T, seed int64, opts ...maze.Option) *grid.Grid {
	t.Helper()
	opts = append([]maze.Option{maze.WithSeed(seed), maze.WithObstacleRate(0.15)}, opts...)
	g, err := maze.Generate(21, 15, opts...)
	require.NoError(t, err)
	require.Len(t, maze.PlaceCheckpoints(g, 3, 3), 3)
	return g
}

func routeIntact(g *grid.Grid) bool {
	return search.NewEngine(g, search.WithCacheSize(0)).RouteExists(g.Start(), g.Checkpoints(), g.Goal())
}

// ManagerSuite exercises seeding, churn, forecasting and repair.
type ManagerSuite struct {
	suite.Suite
	g *grid.Grid
	m *obstacle.Manager
}

func (s *ManagerSuite) SetupTest() {
	s.g = build(s.T(), 7)
	s.m = obstacle.NewManager(s.g, nil, obstacle.WithSeed(99))
}

//------------------------------------------------------------------------------
// Seeding
//------------------------------------------------------------------------------

// TestSpawnInitialKeepsRoute seeds heavily and checks the invariant and
// placement rules.
func (s *ManagerSuite) TestSpawnInitialKeepsRoute() {
	obs := s.m.SpawnInitial(0.3)
	require.NotEmpty(s.T(), obs, "dead ends can always take lava")
	require.Equal(s.T(), s.g.Obstacles(), obs)
	require.True(s.T(), routeIntact(s.g))
	for _, c := range obs {
		require.False(s.T(), s.g.IsPassable(c.X, c.Y))
		require.Equal(s.T(), grid.Lava, s.g.Terrain(c.X, c.Y))
		for _, p := range s.g.CriticalPoints() {
			require.Greater(s.T(), c.Manhattan(p), 1, "obstacle %v too close to %v", c, p)
		}
	}
}

// TestSpawnInitialDeterministic compares two independent managers.
func (s *ManagerSuite) TestSpawnInitialDeterministic() {
	other := build(s.T(), 7)
	a := s.m.SpawnInitial(0.2)
	b := obstacle.NewManager(other, nil, obstacle.WithSeed(99)).SpawnInitial(0.2)
	require.Equal(s.T(), a, b)
	require.Equal(s.T(), s.g.String(), other.String())

	none := obstacle.NewManager(build(s.T(), 7), nil, obstacle.WithSeed(99)).SpawnInitial(0)
	require.Empty(s.T(), none)
}

//------------------------------------------------------------------------------
// Churn
//------------------------------------------------------------------------------

// TestUpdateDeterministic checks that equal seeds give equal turns 1..N.
func (s *ManagerSuite) TestUpdateDeterministic() {
	other := build(s.T(), 7)
	twin := obstacle.NewManager(other, nil, obstacle.WithSeed(99))
	for turn := 1; turn <= 8; turn++ {
		da := s.m.Update(nil, s.g.Checkpoints(), nil)
		db := twin.Update(nil, other.Checkpoints(), nil)
		require.Equal(s.T(), turn, da.Turn)
		require.Equal(s.T(), da, db, "turn %d", turn)
		require.Equal(s.T(), s.g.String(), other.String())
	}
	require.Equal(s.T(), 8, s.m.Turn())
}

// TestUpdateRespectsQuotas checks the per-turn caps and the invariant.
func (s *ManagerSuite) TestUpdateRespectsQuotas() {
	total := 0
	for turn := 0; turn < 12; turn++ {
		d := s.m.Update(nil, s.g.Checkpoints(), nil)
		require.LessOrEqual(s.T(), d.Len(), 3)
		demoted, promoted := 0, 0
		for _, c := range d.Changes {
			switch {
			case c.From.IsObstacle() && c.To.IsBase():
				demoted++
			case c.From.IsBase() && c.To.IsObstacle():
				promoted++
			default:
				s.T().Fatalf("unexpected change %+v", c)
			}
			require.Equal(s.T(), c.To, s.g.Terrain(c.At.X, c.At.Y))
		}
		require.LessOrEqual(s.T(), demoted, 2)
		require.LessOrEqual(s.T(), promoted, 2)
		require.True(s.T(), routeIntact(s.g))
		total += d.Len()
	}
	require.Positive(s.T(), total)
}

// TestUpdateZeroQuota still advances the turn.
func (s *ManagerSuite) TestUpdateZeroQuota() {
	m := obstacle.NewManager(s.g, nil, obstacle.WithChangesPerTurn(0))
	before := s.g.String()
	d := m.Update(nil, nil, nil)
	require.Zero(s.T(), d.Len())
	require.Equal(s.T(), 1, m.Turn())
	require.Equal(s.T(), before, s.g.String())
}

// TestUpdateSparesMover checks the mover's cell is never changed.
func (s *ManagerSuite) TestUpdateSparesMover() {
	path := search.NewEngine(s.g).AStar(s.g.Start(), s.g.Goal(), nil).Path
	walked := path[:len(path)/2]
	mover := walked[len(walked)-1]
	m := obstacle.NewManager(s.g, nil, obstacle.WithSeed(3), obstacle.WithChangesPerTurn(3), obstacle.WithMaxChanges(6))
	for turn := 0; turn < 20; turn++ {
		d := m.Update(walked, s.g.Checkpoints(), nil)
		for _, c := range d.Changes {
			require.NotEqual(s.T(), mover, c.At)
		}
	}
}

// TestUpdateChurnRadius keeps changes near the recent path.
func (s *ManagerSuite) TestUpdateChurnRadius() {
	path := search.NewEngine(s.g).AStar(s.g.Start(), s.g.Goal(), nil).Path
	walked := path[:len(path)/2]
	recent := walked[max(0, len(walked)-5):]
	m := obstacle.NewManager(s.g, nil, obstacle.WithSeed(5), obstacle.WithChurnRadius(2))
	for turn := 0; turn < 10; turn++ {
		d := m.Update(walked, s.g.Checkpoints(), nil)
		for _, c := range d.Changes {
			near := false
			for _, p := range recent {
				if c.At.Manhattan(p) <= 2 {
					near = true
					break
				}
			}
			require.True(s.T(), near, "change at %v outside radius", c.At)
		}
	}
}

// TestForecastMatchesRealTurns replays the future and then lives it.
func (s *ManagerSuite) TestForecastMatchesRealTurns() {
	before := s.g.String()
	version := s.g.Version()
	snaps := s.m.Forecast(nil, s.g.Checkpoints(), nil, 4)
	require.Len(s.T(), snaps, 4)
	require.Equal(s.T(), before, s.g.String(), "live grid untouched")
	require.Equal(s.T(), version, s.g.Version())
	require.Zero(s.T(), s.m.Turn())

	for i, snap := range snaps {
		d := s.m.Update(nil, s.g.Checkpoints(), nil)
		require.Equal(s.T(), i+1, snap.Turn)
		require.Equal(s.T(), snap.Delta, d)
		require.Equal(s.T(), snap.Grid.String(), s.g.String())
	}
	require.Len(s.T(), obstacle.Grids(snaps), 4)
	require.Nil(s.T(), s.m.Forecast(nil, nil, nil, 0))
}

// TestCloneIsIndependent mutates a clone only.
func (s *ManagerSuite) TestCloneIsIndependent() {
	before := s.g.String()
	c := s.m.Clone()
	for i := 0; i < 5; i++ {
		c.Update(nil, s.g.Checkpoints(), nil)
	}
	require.Equal(s.T(), before, s.g.String())
	require.Equal(s.T(), 5, c.Turn())
	require.Zero(s.T(), s.m.Turn())
	require.Equal(s.T(), s.m.Seed(), c.Seed())
}

//------------------------------------------------------------------------------
// Repair
//------------------------------------------------------------------------------

// TestEnsureRoute clears a hand-placed cut.
func (s *ManagerSuite) TestEnsureRoute() {
	require.Zero(s.T(), s.m.EnsureRoute(s.g.Start(), s.g.Checkpoints(), nil))

	path := search.NewEngine(s.g).AStar(s.g.Start(), s.g.Goal(), nil).Path
	var cut grid.Coord
	for _, c := range path[3 : len(path)-3] {
		if !s.g.IsCritical(c) {
			cut = c
			break
		}
	}
	require.True(s.T(), s.g.Block(cut))
	require.False(s.T(), s.m.RouteExists(s.g.Start(), s.g.Checkpoints()))

	require.GreaterOrEqual(s.T(), s.m.EnsureRoute(s.g.Start(), s.g.Checkpoints(), nil), 1)
	require.True(s.T(), s.m.RouteExists(s.g.Start(), s.g.Checkpoints()))
	require.False(s.T(), s.g.IsObstacle(cut))
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

//------------------------------------------------------------------------------
// Rollback
//------------------------------------------------------------------------------

// TestUpdateRollsBackBlockingPromotions makes every obstacle terrain
// impassable so promotions on the single maze route must be undone.
func TestUpdateRollsBackBlockingPromotions(t *testing.T) {
	inf := math.Inf(1)
	costs := grid.DefaultCosts()
	for _, tr := range grid.ObstacleTerrains {
		costs = costs.With(tr, inf)
	}
	g := build(t, 12, maze.WithCosts(costs), maze.WithObstacleRate(0))
	m := obstacle.NewManager(g, nil, obstacle.WithSeed(4))

	rolled := 0
	for turn := 0; turn < 15; turn++ {
		d := m.Update(nil, g.Checkpoints(), nil)
		require.True(t, routeIntact(g), "turn %d", d.Turn)
		for _, c := range d.RolledBack {
			require.True(t, g.Terrain(c.X, c.Y).IsBase(), "rolled back cell %v restored", c)
		}
		rolled += len(d.RolledBack)
	}
	require.Positive(t, rolled)
}

func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { obstacle.WithChangesPerTurn(-1)(&obstacle.Options{}) })
	require.Panics(t, func() { obstacle.WithMaxChanges(-1)(&obstacle.Options{}) })
	require.Panics(t, func() { obstacle.WithChurnRadius(-2)(&obstacle.Options{}) })
	require.Panics(t, func() { obstacle.WithRepairAttempts(-1)(&obstacle.Options{}) })
}
