package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazerunner/search"
)

// Sentinel errors.
var (
	// ErrInvalidConfig wraps every validation and parse failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownMode indicates a mode name that ParseMode does not know.
	ErrUnknownMode = errors.New("config: unknown mode")

	// ErrUnknownDifficulty indicates a difficulty name outside EASY/MEDIUM/HARD.
	ErrUnknownDifficulty = errors.New("config: unknown difficulty")
)

// Mode selects the game variant a session sets up.
type Mode int

const (
	// Explore is a single player on plain terrain.
	Explore Mode = iota
	// ObstacleCourse adds static obstacle terrain.
	ObstacleCourse
	// MultiGoal adds checkpoints to visit before the goal.
	MultiGoal
	// AIDuel races the player against an AI through shared checkpoints.
	AIDuel
	// BlindDuel races both under fog of war, without checkpoints.
	BlindDuel
)

var modeNames = [...]string{"EXPLORE", "OBSTACLE_COURSE", "MULTI_GOAL", "AI_DUEL", "BLIND_DUEL"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a case-insensitive name to a Mode. Spaces and hyphens
// count as underscores, so "AI Duel" and "ai-duel" both work.
func ParseMode(name string) (Mode, error) {
	n := normalize(name)
	for i, s := range modeNames {
		if s == n {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// HasAI reports whether the mode fields an AI opponent.
func (m Mode) HasAI() bool { return m == AIDuel || m == BlindDuel }

// Difficulty is an AI strength preset.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"EASY", "MEDIUM", "HARD"}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty maps EASY, MEDIUM or HARD (any case) to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	n := normalize(name)
	for i, s := range difficultyNames {
		if s == n {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// Preset is what a Difficulty decides for the AI.
type Preset struct {
	Heuristic      search.Heuristic
	HeuristicScale float64
}

// Presets per difficulty. A scale below 1 keeps A* admissible but wanders;
// above 1 it commits early and may miss the cheapest route.
var Presets = map[Difficulty]Preset{
	Easy:   {Heuristic: search.Manhattan, HeuristicScale: 0.7},
	Medium: {Heuristic: search.Manhattan, HeuristicScale: 1.0},
	Hard:   {Heuristic: search.Euclidean, HeuristicScale: 1.5},
}

func normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
