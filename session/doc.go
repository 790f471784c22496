// Package session runs one game: it builds the maze for a mode, seeds lava
// and rewards, places checkpoints and walks the player (and, in the duel
// modes, an AI opponent) turn by turn.
//
// A turn starts with a player move. The obstacle manager then churns
// terrain around the player's recent path and repairs the route, the
// outcome is evaluated, and in the duel modes the AI takes one behaviour
// tree tick before the outcome is evaluated again. Undo does not end a turn.
//
// The player wins by standing on the goal with every checkpoint reached
// (in declaration order when StrictOrder is set). In the duels the AI wins
// by the same rule; the player is checked first. The player loses when out
// of energy, unable to afford any move, or trapped.
package session
