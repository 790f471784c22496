package maze

import (
	"errors"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// ErrBadRate indicates a spawn probability outside [0, 1].
var ErrBadRate = errors.New("maze: rate must be within [0, 1]")

// Stream ids for forks of the generation stream.
const (
	streamCarve uint64 = iota + 1
	streamTerrain
)

// DefaultRewardRate is the probability of a base cell becoming a reward.
const DefaultRewardRate = 0.03

// Options configures Generate.
type Options struct {
	Stream       *rng.Stream    // source of all draws; nil ⇒ rng.New(Seed)
	Seed         int64          // used when Stream is nil
	Costs        grid.CostTable // terrain costs of the produced grid
	Terrain      bool           // assign weighted base terrain
	RewardRate   float64        // chance of a base cell becoming a Reward
	ObstacleRate float64        // chance of a base cell getting a static obstacle terrain
}

// Option configures Generate.
type Option func(*Options)

// DefaultOptions returns seed 0, default costs, terrain on, no rewards and
// no static obstacles.
func DefaultOptions() Options {
	return Options{
		Costs:   grid.DefaultCosts(),
		Terrain: true,
	}
}

// WithSeed seeds a fresh stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithStream draws from an existing stream instead of seeding one.
func WithStream(s *rng.Stream) Option {
	return func(o *Options) { o.Stream = s }
}

// WithCosts sets the terrain cost table.
func WithCosts(ct grid.CostTable) Option {
	return func(o *Options) { o.Costs = ct }
}

// WithTerrain toggles base terrain assignment. When off every cell is Path.
func WithTerrain(on bool) Option {
	return func(o *Options) { o.Terrain = on }
}

// WithRewardRate sets the reward spawn probability. Panics outside [0,1].
func WithRewardRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			panic(ErrBadRate.Error())
		}
		o.RewardRate = p
	}
}

// WithObstacleRate sets the static obstacle-terrain probability. Panics outside [0,1].
func WithObstacleRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			panic(ErrBadRate.Error())
		}
		o.ObstacleRate = p
	}
}
