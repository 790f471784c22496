package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Prefix is prepended to every environment key read by Load.
const Prefix = "MAZE_"

// Lookup resolves one environment key, like os.LookupEnv.
type Lookup func(key string) (string, bool)

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from MAZE_* variables over the
// defaults. Missing .env files are not an error; variables already set in
// the environment are never overwritten by a file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: env file: %v", ErrInvalidConfig, err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from Default and the MAZE_* keys lookup resolves.
// The difficulty preset is applied before explicit heuristic keys.
func FromEnv(lookup Lookup) (Config, error) {
	c := Default()
	r := reader{lookup: lookup}

	r.intVar("WIDTH", &c.Width)
	r.intVar("HEIGHT", &c.Height)
	r.int64Var("SEED", &c.Seed)
	if v, ok := r.get("MODE"); ok {
		m, err := ParseMode(v)
		r.fail("MODE", err)
		c.Mode = m
	}
	r.floatVar("OBSTACLE_RATE", &c.ObstacleRate)
	r.floatVar("LAVA_RATE", &c.LavaRate)
	r.floatVar("REWARD_RATE", &c.RewardRate)
	r.intVar("CHECKPOINTS", &c.Checkpoints)

	r.intVar("CHANGES_PER_TURN", &c.ChangesPerTurn)
	r.intVar("MAX_CHANGES", &c.MaxChanges)
	r.intVar("CHURN_RADIUS", &c.ChurnRadius)

	if v, ok := r.get("ALGORITHM"); ok {
		a, err := search.ParseAlgorithm(v)
		r.fail("ALGORITHM", err)
		c.Algorithm = a
	}
	if v, ok := r.get("DIFFICULTY"); ok {
		d, err := ParseDifficulty(v)
		r.fail("DIFFICULTY", err)
		c.ApplyDifficulty(d)
	}
	if v, ok := r.get("HEURISTIC"); ok {
		h, known := search.ParseHeuristic(v)
		if !known {
			r.fail("HEURISTIC", fmt.Errorf("unknown heuristic %q", v))
		}
		c.Heuristic = h
	}
	r.floatVar("HEURISTIC_SCALE", &c.HeuristicScale)
	r.boolVar("DIAGONALS", &c.Diagonals)
	r.intVar("MAX_GOALS", &c.MaxGoals)
	r.intVar("CACHE_SIZE", &c.CacheSize)

	r.floatVar("ENERGY", &c.Energy)
	r.floatVar("UNDO_COST", &c.UndoCost)
	r.floatVar("REWARD_BONUS", &c.RewardBonus)
	r.intVar("REWARD_DURATION", &c.RewardDuration)
	r.boolVar("PREVENT_REVISIT", &c.PreventRevisit)
	r.boolVar("STRICT_ORDER", &c.StrictOrder)
	r.intVar("LOOKAHEAD", &c.Lookahead)
	r.intVar("FOG_RADIUS", &c.FogRadius)
	r.intVar("AI_FOG_RADIUS", &c.AIFogRadius)
	r.boolVar("AI_UNLIMITED", &c.AIUnlimited)

	if v, ok := r.get("LOG_LEVEL"); ok {
		l, err := ParseLevel(v)
		r.fail("LOG_LEVEL", err)
		c.LogLevel = l
	}

	for t := grid.Path; t <= grid.Reward; t++ {
		var cost float64
		if r.floatVar("COST_"+t.String(), &cost) {
			c.Costs = c.Costs.With(t, cost)
		}
	}

	if r.err != nil {
		return Config{}, r.err
	}
	return c, c.Validate()
}

// reader keeps the first parse error so FromEnv reads straight through.
type reader struct {
	lookup Lookup
	err    error
}

func (r *reader) get(key string) (string, bool) {
	v, ok := r.lookup(Prefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (r *reader) fail(key string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, Prefix, key, err)
	}
}

func (r *reader) intVar(key string, dst *int) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	r.fail(key, err)
	if err == nil {
		*dst = n
	}
	return err == nil
}

func (r *reader) int64Var(key string, dst *int64) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	r.fail(key, err)
	if err == nil {
		*dst = n
	}
	return err == nil
}

// floatVar accepts "inf" for +Inf.
func (r *reader) floatVar(key string, dst *float64) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err == nil && math.IsNaN(f) {
		err = errors.New("NaN")
	}
	r.fail(key, err)
	if err == nil {
		*dst = f
	}
	return err == nil
}

func (r *reader) boolVar(key string, dst *bool) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	r.fail(key, err)
	if err == nil {
		*dst = b
	}
	return err == nil
}
