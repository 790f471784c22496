package agent

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/mazerunner/grid"
)

// Sentinel errors, used as panic messages by option constructors.
var (
	// ErrBadEnergy indicates a negative or NaN energy budget.
	ErrBadEnergy = errors.New("agent: energy must be non-negative")

	// ErrBadUndoCost indicates a negative undo fee.
	ErrBadUndoCost = errors.New("agent: undo cost must be non-negative")

	// ErrBadDuration indicates a negative reward duration, look-ahead or
	// memory length.
	ErrBadDuration = errors.New("agent: duration must be non-negative")

	// ErrBadRadius indicates a negative fog radius.
	ErrBadRadius = errors.New("agent: fog radius must be non-negative")
)

// State is the planning state of an agent.
type State uint8

const (
	// Idle: no usable plan, or the plan has been walked to its end.
	Idle State = iota
	// Following: a found plan with steps left.
	Following
	// Replanning: a new plan is being computed.
	Replanning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Following:
		return "FOLLOWING"
	case Replanning:
		return "REPLANNING"
	}
	return "UNKNOWN"
}

// MoveRecord is one reversible step on the undo stack.
type MoveRecord struct {
	From, To          grid.Coord
	Cost              float64 // cost actually paid, after the reward buff
	CostBefore        float64 // cumulative cost before the step
	EnergyBefore      float64
	RewardMovesBefore int
	FirstVisit        bool // To was not in the visited set before
	Checkpoint        bool // To was a newly reached checkpoint
	Reward            bool // To was a newly collected reward
}

// Forecaster predicts the grids of the next turns for a planned path.
// obstacle.Manager.Forecast composed with obstacle.Grids satisfies it.
type Forecaster func(path []grid.Coord) []*grid.Grid

// Options configures an Agent.
//
// Energy         – starting budget (default 1000; +Inf for unlimited).
// UndoCost       – fee charged by Undo (default 2).
// RewardBonus    – cost delta while the buff is active (default -2).
// RewardDuration – moves the buff lasts after a reward (default 5).
// PreventRevisit – Move refuses already visited cells (default false).
// StrictOrder    – only the next declared checkpoint counts as reached (default true).
// Lookahead      – NeedsReplanning fires this close to the plan's end (default 5).
// FogRadius      – > 0 keeps a private discovered set refreshed per step (default 0).
// MemoryLength   – recent positions kept for the revisit penalty (default 10).
// Forecast       – optional; re-costs BFS, Dijkstra, AStar and BidirectionalAStar plans.
// Logger         – debug sink (default discard).
type Options struct {
	Energy         float64
	UndoCost       float64
	RewardBonus    float64
	RewardDuration int
	PreventRevisit bool
	StrictOrder    bool
	Lookahead      int
	FogRadius      int
	MemoryLength   int
	Forecast       Forecaster
	Logger         *slog.Logger

	start    grid.Coord
	startSet bool
}

// Option represents a functional option for configuring an Agent.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Energy:         1000,
		UndoCost:       2,
		RewardBonus:    -2,
		RewardDuration: 5,
		StrictOrder:    true,
		Lookahead:      5,
		MemoryLength:   10,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEnergy sets the starting budget. Panics on negative or NaN values.
func WithEnergy(e float64) Option {
	return func(o *Options) {
		if e < 0 || math.IsNaN(e) {
			panic(ErrBadEnergy.Error())
		}
		o.Energy = e
	}
}

// WithUndoCost sets the undo fee. Panics on negative values.
func WithUndoCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			panic(ErrBadUndoCost.Error())
		}
		o.UndoCost = c
	}
}

// WithRewardBonus sets the per-move cost delta of an active buff.
func WithRewardBonus(b float64) Option {
	return func(o *Options) { o.RewardBonus = b }
}

// WithRewardDuration sets how many moves a buff lasts. Panics on negatives.
func WithRewardDuration(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadDuration.Error())
		}
		o.RewardDuration = n
	}
}

// WithPreventRevisit makes Move refuse cells already on the visited set.
func WithPreventRevisit(on bool) Option {
	return func(o *Options) { o.PreventRevisit = on }
}

// WithStrictOrder makes checkpoints count only in declared order.
func WithStrictOrder(on bool) Option {
	return func(o *Options) { o.StrictOrder = on }
}

// WithLookahead sets the staleness window. Panics on negatives.
func WithLookahead(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadDuration.Error())
		}
		o.Lookahead = n
	}
}

// WithFog enables fog of war with the given vision radius. Panics on
// negatives; 0 disables fog.
func WithFog(radius int) Option {
	return func(o *Options) {
		if radius < 0 {
			panic(ErrBadRadius.Error())
		}
		o.FogRadius = radius
	}
}

// WithMemoryLength sets how many recent positions are remembered.
// Panics on negatives.
func WithMemoryLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadDuration.Error())
		}
		o.MemoryLength = n
	}
}

// WithForecast installs a forecaster used to re-cost new plans.
func WithForecast(f Forecaster) Option {
	return func(o *Options) { o.Forecast = f }
}

// WithStart places the agent at c instead of the grid's start.
func WithStart(c grid.Coord) Option {
	return func(o *Options) {
		o.start = c
		o.startSet = true
	}
}

// WithLogger sets the debug logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
