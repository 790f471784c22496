package obstacle

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazerunner/grid"
)

// Sentinel errors, used as panic messages by option constructors.
var (
	// ErrBadQuota indicates a negative per-turn change count.
	ErrBadQuota = errors.New("obstacle: change quota must be non-negative")

	// ErrBadRadius indicates a negative churn radius.
	ErrBadRadius = errors.New("obstacle: churn radius must be non-negative")

	// ErrBadAttempts indicates a negative repair attempt count.
	ErrBadAttempts = errors.New("obstacle: repair attempts must be non-negative")
)

const (
	// seedingStream separates the one-shot seeding stream from per-turn streams.
	seedingStream uint64 = 1 << 32

	// recentSteps is how many trailing path cells define the churn region.
	recentSteps = 5

	// repairBatch is how many obstacles one repair round removes.
	repairBatch = 5

	// ensureRounds bounds EnsureRoute.
	ensureRounds = 50
)

// Options configures a Manager.
//
// Seed           – seed of every stream the manager draws from.
// ChangesPerTurn – K: at most K demotions and K promotions per turn (default 2).
// MaxChanges     – cap on demotions plus promotions per turn (default 3).
// ChurnRadius    – Manhattan radius around the last path cells; 0 is the whole grid (default 0).
// RepairAttempts – rounds of the post-seeding repair pass (default 30).
// Logger         – debug sink for rollbacks and repairs (default discard).
type Options struct {
	Seed           int64
	ChangesPerTurn int
	MaxChanges     int
	ChurnRadius    int
	RepairAttempts int
	Logger         *slog.Logger
}

// Option represents a functional option for configuring a Manager.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		ChangesPerTurn: 2,
		MaxChanges:     3,
		RepairAttempts: 30,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed sets the manager seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithChangesPerTurn sets K. Panics on negative values.
func WithChangesPerTurn(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic(ErrBadQuota.Error())
		}
		o.ChangesPerTurn = k
	}
}

// WithMaxChanges caps total changes per turn. Panics on negative values.
func WithMaxChanges(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadQuota.Error())
		}
		o.MaxChanges = n
	}
}

// WithChurnRadius limits churn to the neighbourhood of the mover's recent
// path. Panics on negative values.
func WithChurnRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			panic(ErrBadRadius.Error())
		}
		o.ChurnRadius = r
	}
}

// WithRepairAttempts bounds the post-seeding repair pass. Panics on negatives.
func WithRepairAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadAttempts.Error())
		}
		o.RepairAttempts = n
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

// Change is one terrain mutation.
type Change struct {
	At       grid.Coord
	From, To grid.Terrain
}

// Delta lists what one turn changed. Changes holds demotions first, then
// promotions, in application order. RolledBack lists promotions that were
// undone because they broke the route.
type Delta struct {
	Turn       int
	Changes    []Change
	RolledBack []grid.Coord
}

// Len returns the number of applied changes.
func (d Delta) Len() int { return len(d.Changes) }

// Snapshot is one forecast turn: the delta it would apply and a private
// copy of the grid after it.
type Snapshot struct {
	Turn  int
	Delta Delta
	Grid  *grid.Grid
}

// Grids extracts the grids of a forecast, in turn order.
func Grids(snaps []Snapshot) []*grid.Grid {
	out := make([]*grid.Grid, len(snaps))
	for i, s := range snaps {
		out[i] = s.Grid
	}
	return out
}
