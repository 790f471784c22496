package session

import (
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/katalvlaran/mazerunner/agent"
)

// Move walks the player one cell by (dx, dy) and, when the move is
// accepted, plays out the rest of the turn. It returns false when the game
// is over or the move is rejected.
func (s *Session) Move(dx, dy int) bool {
	if s.Over() || !s.player.Move(dx, dy) {
		return false
	}
	s.endTurn()

	return true
}

// Undo takes back the player's last move. The turn counter, the obstacle
// manager and the AI are left alone.
func (s *Session) Undo() bool {
	if s.Over() {
		return false
	}
	return s.player.Undo()
}

// Autoplay lets the player's own controller take the move, then plays out
// the turn. It returns false when the game is over or the controller could
// not move.
func (s *Session) Autoplay() bool {
	if s.Over() {
		return false
	}
	before := s.pilot.Steps()
	st, err := s.pilot.Tick()
	if err != nil {
		s.log.Warn("session: autopilot", "err", err)
		return false
	}
	if st != bt.Success || s.pilot.Steps() == before {
		return false
	}
	s.endTurn()

	return true
}

// endTurn runs everything that follows an accepted player move.
func (s *Session) endTurn() {
	s.turn++
	reached := s.player.Reached()
	s.lastDelta = s.obstacles.Update(s.player.History(), s.checkpoints, reached)
	cleared := s.obstacles.EnsureRoute(s.player.Position(), s.checkpoints, reached)
	s.log.Debug("session: turn",
		"turn", s.turn, "player", s.player.Position(), "energy", s.player.Energy(),
		"changes", s.lastDelta.Len(), "cleared", cleared)

	s.evaluate()
	if s.Over() || s.rival == nil {
		return
	}

	st, err := s.rival.Tick()
	switch {
	case err != nil:
		s.log.Warn("session: ai tick", "err", err)
	case st != bt.Success:
		s.log.Debug("session: ai stuck", "at", s.ai.Position())
	}
	s.evaluate()
}

// evaluate settles the outcome. The player's win is checked before the
// AI's, then the player's ways to lose.
func (s *Session) evaluate() {
	if s.Over() {
		return
	}
	goal := s.g.Goal()
	done := func(a *agent.Agent) bool {
		return a.Position() == goal && a.AllCheckpointsReached(s.checkpoints, s.cfg.StrictOrder)
	}

	switch {
	case done(s.player):
		s.finish(Won, Player, "reached the goal")
	case s.ai != nil && done(s.ai):
		s.finish(Lost, AI, "the AI reached the goal first")
	case s.player.Energy() <= 0:
		s.finish(Lost, Nobody, "out of energy")
	case !s.player.CanAffordAnyMove():
		s.finish(Lost, Nobody, "no affordable move")
	case s.player.IsTrapped(goal, s.checkpoints):
		s.finish(Lost, Nobody, "trapped")
	}
}

func (s *Session) finish(st Status, winner Side, reason string) {
	s.outcome = Outcome{Status: st, Winner: winner, Reason: reason, Turn: s.turn}
	s.log.Info("session: game over",
		"status", st, "winner", winner, "reason", reason, "turn", s.turn,
		"cost", s.player.TotalCost(), "energy", s.player.Energy())
}
