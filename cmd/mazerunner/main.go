// Command mazerunner plays one headless game and prints the result.
//
// Configuration comes from .env and MAZE_* variables (see package config);
// flags override both. The player is driven by its own controller, or by
// hints with -hints, until the game ends or -turns runs out.
//
//	mazerunner -mode "ai duel" -seed 7 -difficulty hard -compare
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/mazerunner/config"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
	"github.com/katalvlaran/mazerunner/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli holds the flag values that are not config keys.
type cli struct {
	envFile  string
	turns    int
	hints    bool
	compare  bool
	quiet    bool
	mode     string
	algo     string
	diff     string
	logLevel string
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		c     cli
		flags config.Config
	)
	fs := flag.NewFlagSet("mazerunner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.envFile, "env", "", "env file to load (default .env)")
	fs.IntVar(&c.turns, "turns", 5000, "stop after this many turns")
	fs.BoolVar(&c.hints, "hints", false, "follow hints instead of the autopilot")
	fs.BoolVar(&c.compare, "compare", false, "print an algorithm comparison from the start")
	fs.BoolVar(&c.quiet, "quiet", false, "do not print the final maze")
	fs.StringVar(&c.mode, "mode", "", "explore, obstacle course, multi goal, ai duel or blind duel")
	fs.StringVar(&c.algo, "algorithm", "", "planning algorithm, e.g. ASTAR, DIJKSTRA, BFS")
	fs.StringVar(&c.diff, "difficulty", "", "EASY, MEDIUM or HARD")
	fs.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	fs.IntVar(&flags.Width, "width", 0, "maze width")
	fs.IntVar(&flags.Height, "height", 0, "maze height")
	fs.Int64Var(&flags.Seed, "seed", 0, "maze and obstacle seed")
	fs.Float64Var(&flags.Energy, "energy", 0, "starting energy (inf allowed)")
	fs.BoolVar(&flags.Diagonals, "diagonals", false, "allow diagonal moves")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var files []string
	if c.envFile != "" {
		files = append(files, c.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	if err := c.apply(fs, flags, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := session.New(cfg, session.WithLogger(cfg.Logger(stderr)))
	if err != nil {
		return err
	}
	if c.compare {
		printComparison(stdout, s.Compare())
	}

	for s.Turn() < c.turns && !s.Over() {
		if !c.step(s) {
			break
		}
	}
	report(stdout, s, c.quiet)

	return nil
}

// apply copies the flags that were actually given onto cfg.
func (c cli) apply(fs *flag.FlagSet, flags config.Config, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "seed":
			cfg.Seed = flags.Seed
		case "energy":
			cfg.Energy = flags.Energy
		case "diagonals":
			cfg.Diagonals = flags.Diagonals
		case "mode":
			cfg.Mode, err = config.ParseMode(c.mode)
		case "algorithm":
			cfg.Algorithm, err = search.ParseAlgorithm(c.algo)
		case "difficulty":
			var d config.Difficulty
			if d, err = config.ParseDifficulty(c.diff); err == nil {
				cfg.ApplyDifficulty(d)
			}
		case "log-level":
			cfg.LogLevel, err = config.ParseLevel(c.logLevel)
		}
	})
	return err
}

// step makes one player move.
func (c cli) step(s *session.Session) bool {
	if !c.hints {
		return s.Autoplay()
	}
	next, ok := s.Hint()
	if !ok {
		return false
	}
	pos := s.Player().Position()
	return s.Move(next.X-pos.X, next.Y-pos.Y)
}

func report(w io.Writer, s *session.Session, quiet bool) {
	cfg := s.Config()
	out := s.Outcome()
	p := s.Player()

	if !quiet {
		marks := make(map[grid.Coord]byte)
		for _, c := range p.History() {
			marks[c] = '+'
		}
		if ai := s.AI(); ai != nil {
			for _, c := range ai.History() {
				if _, ok := marks[c]; !ok {
					marks[c] = '-'
				}
			}
			marks[ai.Position()] = 'A'
		}
		marks[p.Position()] = '@'
		_, _ = fmt.Fprint(w, s.Grid().Render(marks))
	}

	_, _ = fmt.Fprintf(w, "mode=%v seed=%d size=%dx%d turns=%d\n",
		cfg.Mode, cfg.Seed, s.Grid().Width(), s.Grid().Height(), s.Turn())
	_, _ = fmt.Fprintf(w, "status=%v winner=%v reason=%q\n", out.Status, out.Winner, out.Reason)
	_, _ = fmt.Fprintf(w, "player cost=%.0f energy=%.0f checkpoints=%d/%d\n",
		p.TotalCost(), p.Energy(), len(p.Reached()), len(s.Checkpoints()))
	if ai := s.AI(); ai != nil {
		_, _ = fmt.Fprintf(w, "ai cost=%.0f checkpoints=%d/%d replans=%d\n",
			ai.TotalCost(), len(ai.Reached()), len(s.Checkpoints()), s.Rival().Replans())
	}
}

func printComparison(w io.Writer, rows []session.Comparison) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ALGORITHM\tFOUND\tCOST\tSTEPS\tEXPLORED\tTIME")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%v\t%v\t%.0f\t%d\t%d\t%v\n",
			r.Algorithm, r.Found, r.Cost, r.Steps, r.Explored, r.Elapsed)
	}
	_ = tw.Flush()
}
