package session

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/mazerunner/agent"
	"github.com/katalvlaran/mazerunner/config"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/maze"
	"github.com/katalvlaran/mazerunner/obstacle"
	"github.com/katalvlaran/mazerunner/rng"
	"github.com/katalvlaran/mazerunner/search"
)

// Session is one game in progress. It is not safe for concurrent use.
type Session struct {
	cfg config.Config
	log *slog.Logger

	g           *grid.Grid
	engine      *search.Engine
	obstacles   *obstacle.Manager
	checkpoints []grid.Coord
	rewards     []grid.Coord

	player *agent.Agent
	pilot  *agent.Controller
	ai     *agent.Agent
	rival  *agent.Controller

	turn      int
	lastDelta obstacle.Delta
	outcome   Outcome
}

// New validates cfg and builds a game from cfg.Seed.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{cfg: cfg, log: o.Logger}
	if err := s.build(cfg.Seed); err != nil {
		return nil, err
	}

	return s, nil
}

// build lays out a fresh maze from seed. Existing agents keep their IDs.
func (s *Session) build(seed int64) error {
	cfg := s.cfg
	obstacleRate := 0.0
	switch cfg.Mode {
	case config.ObstacleCourse, config.MultiGoal, config.AIDuel:
		obstacleRate = cfg.ObstacleRate
	}
	g, err := maze.Generate(cfg.Width, cfg.Height,
		maze.WithSeed(seed),
		maze.WithCosts(cfg.Costs),
		maze.WithObstacleRate(obstacleRate),
	)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	var checkpoints []grid.Coord
	switch cfg.Mode {
	case config.MultiGoal:
		checkpoints = maze.PlaceCheckpoints(g, cfg.Checkpoints, minCheckpointDist)
	case config.AIDuel:
		checkpoints = maze.PlaceCheckpoints(g, cfg.Checkpoints, minDuelCheckpointDist)
	}

	engine := search.NewEngine(g, cfg.SearchOptions()...)
	obstacles := obstacle.NewManager(g, engine,
		obstacle.WithSeed(seed),
		obstacle.WithChangesPerTurn(cfg.ChangesPerTurn),
		obstacle.WithMaxChanges(cfg.MaxChanges),
		obstacle.WithChurnRadius(cfg.ChurnRadius),
		obstacle.WithLogger(s.log),
	)
	lava := obstacles.SpawnInitial(cfg.LavaRate)
	rewards := maze.SpawnRewards(g, rng.New(rng.Derive(seed, streamRewards)), cfg.RewardRate)

	s.cfg.Seed = seed
	s.g, s.engine, s.obstacles = g, engine, obstacles
	s.checkpoints, s.rewards = checkpoints, rewards
	s.turn, s.lastDelta, s.outcome = 0, obstacle.Delta{}, Outcome{}

	s.placeAgents()
	s.log.Info("session: maze ready",
		"mode", cfg.Mode, "seed", seed, "size", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"checkpoints", len(checkpoints), "lava", len(lava), "rewards", len(rewards))
	s.evaluate()

	return nil
}

// placeAgents creates the agents on first build and rebinds them afterwards.
func (s *Session) placeAgents() {
	cfg := s.cfg
	if s.player == nil {
		s.player = agent.New(s.g, s.engine, s.agentOptions(cfg.Energy, cfg.FogRadius)...)
	} else {
		s.player.Rebind(s.g, s.engine)
		s.player.Reset(s.g.Start())
	}
	s.pilot = agent.NewController(s.player, s.algorithmFor(s.player), s.targetsOf(s.player))

	if !cfg.Mode.HasAI() {
		s.ai, s.rival = nil, nil
		return
	}
	energy := cfg.Energy
	if cfg.AIUnlimited {
		energy = math.Inf(1)
	}
	if s.ai == nil {
		s.ai = agent.New(s.g, s.engine, s.agentOptions(energy, cfg.AIFogRadius)...)
	} else {
		s.ai.Rebind(s.g, s.engine)
		s.ai.Reset(s.g.Start())
	}
	s.rival = agent.NewController(s.ai, s.algorithmFor(s.ai), s.targetsOf(s.ai))
}

func (s *Session) agentOptions(energy float64, fog int) []agent.Option {
	cfg := s.cfg
	opts := []agent.Option{
		agent.WithEnergy(energy),
		agent.WithUndoCost(cfg.UndoCost),
		agent.WithRewardBonus(cfg.RewardBonus),
		agent.WithRewardDuration(cfg.RewardDuration),
		agent.WithPreventRevisit(cfg.PreventRevisit),
		agent.WithStrictOrder(cfg.StrictOrder),
		agent.WithLookahead(cfg.Lookahead),
		agent.WithForecast(s.forecast),
		agent.WithLogger(s.log),
	}
	if cfg.Mode == config.BlindDuel {
		opts = append(opts, agent.WithFog(fog))
	}
	return opts
}

// forecast predicts the grids of the next Lookahead turns, assuming the
// player stays on its current path.
func (s *Session) forecast([]grid.Coord) []*grid.Grid {
	return obstacle.Grids(s.obstacles.Forecast(s.player.History(), s.checkpoints, s.player.Reached(), s.cfg.Lookahead))
}

// algorithmFor picks how an agent plans: FogAStar under fog, the cheapest
// checkpoint order when any order counts, the configured algorithm
// otherwise.
func (s *Session) algorithmFor(a *agent.Agent) search.Algorithm {
	switch {
	case a.Discovered() != nil:
		return search.FogAStar
	case len(s.checkpoints) > 0 && !s.cfg.StrictOrder:
		return search.MultiGoal
	}
	return s.cfg.Algorithm
}

// targetsOf lists what a still has to reach: unreached checkpoints, then goal.
func (s *Session) targetsOf(a *agent.Agent) agent.Targets {
	return func() []grid.Coord {
		return append(a.Remaining(s.checkpoints), s.g.Goal())
	}
}

// Reset rebuilds the current maze from the current seed.
func (s *Session) Reset() error { return s.build(s.cfg.Seed) }

// Regenerate builds a new maze from seed.
func (s *Session) Regenerate(seed int64) error { return s.build(seed) }

// Config returns the configuration in use; Seed reflects the last build.
func (s *Session) Config() config.Config { return s.cfg }

// Grid returns the live grid.
func (s *Session) Grid() *grid.Grid { return s.g }

// Engine returns the search engine shared by the agents.
func (s *Session) Engine() *search.Engine { return s.engine }

// Obstacles returns the obstacle manager.
func (s *Session) Obstacles() *obstacle.Manager { return s.obstacles }

// Checkpoints returns the checkpoints in declaration order.
func (s *Session) Checkpoints() []grid.Coord { return slices.Clone(s.checkpoints) }

// Rewards returns the reward cells placed at build time.
func (s *Session) Rewards() []grid.Coord { return slices.Clone(s.rewards) }

// Player returns the player agent.
func (s *Session) Player() *agent.Agent { return s.player }

// AI returns the AI agent, or nil outside the duel modes.
func (s *Session) AI() *agent.Agent { return s.ai }

// Rival returns the AI controller, or nil outside the duel modes.
func (s *Session) Rival() *agent.Controller { return s.rival }

// Turn returns how many player turns have completed.
func (s *Session) Turn() int { return s.turn }

// LastDelta returns the obstacle changes of the last turn.
func (s *Session) LastDelta() obstacle.Delta { return s.lastDelta }

// Outcome returns the current verdict.
func (s *Session) Outcome() Outcome { return s.outcome }

// Over reports whether the game has stopped.
func (s *Session) Over() bool { return s.outcome.Status != Playing }
