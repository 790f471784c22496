package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazerunner/search"
)

// Status is the state of the game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	}
	return "PLAYING"
}

// Side names a participant.
type Side int

const (
	Nobody Side = iota
	Player
	AI
)

func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case AI:
		return "ai"
	}
	return "nobody"
}

// Outcome is the verdict once the game stops. Winner is Nobody when the
// player lost on their own.
type Outcome struct {
	Status Status
	Winner Side
	Reason string
	Turn   int
}

// Comparison is one row of Compare: a single-goal search from the player's
// cell to the goal.
type Comparison struct {
	Algorithm search.Algorithm
	Found     bool
	Cost      float64
	Steps     int
	Explored  int
	Elapsed   time.Duration
}

// Options configures a Session.
type Options struct {
	Logger *slog.Logger
}

// Option represents a functional option for configuring a Session.
type Option func(*Options)

// DefaultOptions returns a discard logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the logger handed to the session, its agents and its
// obstacle manager. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

const (
	// streamRewards derives the reward placement stream from the seed.
	streamRewards uint64 = 1 << 33

	// minCheckpointDist is how far checkpoints keep from start and goal.
	minCheckpointDist     = 3
	minDuelCheckpointDist = 5
)
