package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/grid"
)

// Sentinel errors returned by the engine.
var (
	// ErrTooManyGoals indicates a multi-goal request above the configured cap.
	ErrTooManyGoals = errors.New("search: too many goals for exhaustive ordering")

	// ErrUnknownAlgorithm indicates an algorithm name that cannot be parsed.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBadHeuristicScale indicates a negative heuristic multiplier.
	ErrBadHeuristicScale = errors.New("search: heuristic scale must be non-negative")

	// ErrBadMaxGoals indicates a goal cap below one.
	ErrBadMaxGoals = errors.New("search: max goals must be at least 1")

	// ErrBadCacheSize indicates a negative cache capacity.
	ErrBadCacheSize = errors.New("search: cache size must be non-negative")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	AStar Algorithm = iota
	Dijkstra
	BidirectionalAStar
	BFS
	FogAStar
	Replan
	MultiGoal
)

var algorithmNames = map[Algorithm]string{
	AStar:              "ASTAR",
	Dijkstra:           "DIJKSTRA",
	BidirectionalAStar: "BIDIRECTIONAL_ASTAR",
	BFS:                "BFS",
	FogAStar:           "MODIFIED_ASTAR_FOG",
	Replan:             "REPLAN",
	MultiGoal:          "MULTI_OBJECTIVE",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. "DSTAR" and
// "A*" are accepted as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch n {
	case "DSTAR", "D*":
		return Replan, nil
	case "A*", "A_STAR":
		return AStar, nil
	}
	for a, s := range algorithmNames {
		if s == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Heuristic selects the distance estimate used by the A* family.
type Heuristic int

const (
	Manhattan Heuristic = iota
	Euclidean
)

func (h Heuristic) String() string {
	if h == Euclidean {
		return "EUCLIDEAN"
	}
	return "MANHATTAN"
}

// ParseHeuristic maps "MANHATTAN" or "EUCLIDEAN" (any case) to a Heuristic.
func ParseHeuristic(name string) (Heuristic, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MANHATTAN":
		return Manhattan, true
	case "EUCLIDEAN":
		return Euclidean, true
	}
	return Manhattan, false
}

// NodeScore holds the A* bookkeeping of one node.
type NodeScore struct {
	G, H, F float64
}

// Result is the outcome of a search. Results may be shared through the
// engine cache and must be treated as read-only.
type Result struct {
	Algorithm Algorithm
	Path      []grid.Coord // start..goal; empty when not found
	Cost      float64      // sum of entered-cell costs; +Inf when not found
	Found     bool
	Target    grid.Coord   // cell actually searched for (fog search may pick a frontier)
	Order     []grid.Coord // visiting order of goals (multi-goal only)
	Explored  mapset.Set[grid.Coord]
	Frontier  mapset.Set[grid.Coord]
	Nodes     map[grid.Coord]NodeScore
}

// NodesExplored returns the number of distinct expanded nodes.
func (r Result) NodesExplored() int { return r.Explored.Size() }

func newResult(algo Algorithm, target grid.Coord) Result {
	return Result{
		Algorithm: algo,
		Cost:      math.Inf(1),
		Target:    target,
		Explored:  mapset.New[grid.Coord](),
		Frontier:  mapset.New[grid.Coord](),
		Nodes:     make(map[grid.Coord]NodeScore),
	}
}

// Options configures an Engine.
//
// Heuristic        – distance estimate for the A* family (default Manhattan).
// HeuristicScale   – multiplier on h; >1 trades optimality for speed (default 1).
// Diagonals        – allow 8-neighbor moves (default false).
// MaxGoals         – cap on exhaustive multi-goal ordering (default 4).
// CacheSize        – LRU capacity for single-goal results; 0 disables (default 100).
// RevisitPenalty   – extra cost on recently visited cells in FogAStar (default 5).
// ExplorationBonus – cost factor for cells outside the known area in FogAStar (default 0.8).
type Options struct {
	Heuristic        Heuristic
	HeuristicScale   float64
	Diagonals        bool
	MaxGoals         int
	CacheSize        int
	RevisitPenalty   float64
	ExplorationBonus float64
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Heuristic:        Manhattan,
		HeuristicScale:   1,
		MaxGoals:         4,
		CacheSize:        100,
		RevisitPenalty:   5,
		ExplorationBonus: 0.8,
	}
}

// WithHeuristic selects the A* distance estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithHeuristicScale multiplies h. Panics on negative values.
func WithHeuristicScale(scale float64) Option {
	return func(o *Options) {
		if scale < 0 {
			panic(ErrBadHeuristicScale.Error())
		}
		o.HeuristicScale = scale
	}
}

// WithDiagonals enables 8-neighbor expansion.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}

// WithMaxGoals sets the multi-goal cap. Panics below 1.
func WithMaxGoals(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxGoals.Error())
		}
		o.MaxGoals = n
	}
}

// WithCacheSize sets the LRU capacity; 0 disables caching. Panics on negatives.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCacheSize.Error())
		}
		o.CacheSize = n
	}
}

// WithRevisitPenalty sets the FogAStar penalty for recently visited cells.
func WithRevisitPenalty(p float64) Option {
	return func(o *Options) { o.RevisitPenalty = p }
}
