// Package agent implements walkers on a maze grid: the player and AI
// opponents.
//
// An Agent keeps its position, energy budget, cumulative cost, history,
// visited set, reached checkpoints and an undo stack of MoveRecords. Every
// move pays the entry cost of the destination; an active reward buff lowers
// it by RewardBonus (never below zero) for RewardDuration moves. Undo
// restores the exact pre-move state and charges a fixed fee.
//
// Planning goes through a search.Engine. ComputePath and ComputeRoute install
// a plan, Step walks it one cell at a time, and NeedsReplanning reports when
// the plan has gone stale: never found, left behind by a manual move,
// blocked ahead, aimed elsewhere, or within Lookahead cells of its end.
//
// Under fog (WithFog) each agent owns its discovered set, refreshed after
// every move, plus a terrain memory and a window of recent positions used by
// search.FogAStar. Agents never share these.
//
// Controller wraps an Agent in a behaviour tree that replans when needed,
// falls back to a greedy step when search fails, and advances one cell per
// Tick.
//
// Rejections (invalid move, unaffordable move, no undo) are reported as
// false and leave the agent untouched.
package agent
