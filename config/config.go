package config

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Config is the full set of game tunables.
type Config struct {
	// Maze.
	Width, Height int
	Seed          int64
	Mode          Mode
	Costs         grid.CostTable
	ObstacleRate  float64 // static obstacle terrain, in modes that use it
	LavaRate      float64 // initial dynamic obstacles
	RewardRate    float64
	Checkpoints   int

	// Dynamic obstacles.
	ChangesPerTurn int
	MaxChanges     int
	ChurnRadius    int

	// Search.
	Algorithm      search.Algorithm
	Difficulty     Difficulty
	Heuristic      search.Heuristic
	HeuristicScale float64
	Diagonals      bool
	MaxGoals       int
	CacheSize      int

	// Agents.
	Energy         float64
	UndoCost       float64
	RewardBonus    float64
	RewardDuration int
	PreventRevisit bool
	StrictOrder    bool
	Lookahead      int
	FogRadius      int // player view under fog
	AIFogRadius    int // AI view under fog
	AIUnlimited    bool

	LogLevel slog.Level
}

// Default returns the stock configuration: a 31x23 Explore maze, A* at
// MEDIUM difficulty, 1000 energy.
func Default() Config {
	p := Presets[Medium]
	return Config{
		Width:          31,
		Height:         23,
		Mode:           Explore,
		Costs:          grid.DefaultCosts(),
		ObstacleRate:   0.15,
		LavaRate:       0.04,
		RewardRate:     0.03,
		Checkpoints:    3,
		ChangesPerTurn: 2,
		MaxChanges:     3,
		Algorithm:      search.AStar,
		Difficulty:     Medium,
		Heuristic:      p.Heuristic,
		HeuristicScale: p.HeuristicScale,
		MaxGoals:       4,
		CacheSize:      100,
		Energy:         1000,
		UndoCost:       2,
		RewardBonus:    -2,
		RewardDuration: 5,
		StrictOrder:    true,
		Lookahead:      5,
		FogRadius:      2,
		AIFogRadius:    1,
		AIUnlimited:    true,
		LogLevel:       slog.LevelInfo,
	}
}

// ApplyDifficulty sets the difficulty and the heuristic it implies.
func (c *Config) ApplyDifficulty(d Difficulty) {
	c.Difficulty = d
	if p, ok := Presets[d]; ok {
		c.Heuristic = p.Heuristic
		c.HeuristicScale = p.HeuristicScale
	}
}

// Validate checks ranges. Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case c.Width < 1 || c.Height < 1:
		return bad("maze size %dx%d", c.Width, c.Height)
	case c.Mode < Explore || c.Mode > BlindDuel:
		return bad("mode %v", c.Mode)
	case !rate(c.ObstacleRate):
		return bad("obstacle rate %v", c.ObstacleRate)
	case !rate(c.LavaRate):
		return bad("lava rate %v", c.LavaRate)
	case !rate(c.RewardRate):
		return bad("reward rate %v", c.RewardRate)
	case c.Checkpoints < 0:
		return bad("checkpoints %d", c.Checkpoints)
	case c.ChangesPerTurn < 0 || c.MaxChanges < 0:
		return bad("change quota %d/%d", c.ChangesPerTurn, c.MaxChanges)
	case c.ChurnRadius < 0:
		return bad("churn radius %d", c.ChurnRadius)
	case c.HeuristicScale < 0 || math.IsNaN(c.HeuristicScale):
		return bad("heuristic scale %v", c.HeuristicScale)
	case c.MaxGoals < 1:
		return bad("max goals %d", c.MaxGoals)
	case c.CacheSize < 0:
		return bad("cache size %d", c.CacheSize)
	case c.Energy < 0 || math.IsNaN(c.Energy):
		return bad("energy %v", c.Energy)
	case c.UndoCost < 0 || math.IsNaN(c.UndoCost):
		return bad("undo cost %v", c.UndoCost)
	case c.RewardDuration < 0:
		return bad("reward duration %d", c.RewardDuration)
	case c.Lookahead < 0:
		return bad("lookahead %d", c.Lookahead)
	case c.FogRadius < 0 || c.AIFogRadius < 0:
		return bad("fog radius %d/%d", c.FogRadius, c.AIFogRadius)
	}
	for t := grid.Path; t <= grid.Reward; t++ {
		if v := c.Costs.Cost(t); v < 0 || math.IsNaN(v) {
			return bad("cost of %v is %v", t, v)
		}
	}
	return nil
}

func rate(p float64) bool { return p >= 0 && p <= 1 }

// SearchOptions translates the search tunables into engine options.
func (c Config) SearchOptions() []search.Option {
	opts := []search.Option{
		search.WithHeuristic(c.Heuristic),
		search.WithHeuristicScale(c.HeuristicScale),
		search.WithMaxGoals(c.MaxGoals),
		search.WithCacheSize(c.CacheSize),
	}
	if c.Diagonals {
		opts = append(opts, search.WithDiagonals())
	}
	return opts
}

// ParseLevel maps debug, info, warn or error (any case) to a slog level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
}

// Logger builds a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
