// Package mazerunner is a turn-based maze game engine: perfect-maze
// generation, weighted terrain, obstacles that change every turn, and
// agents that plan through them.
//
// 🚀 What is in the box?
//
//   - Maze generation: seeded recursive backtracker, terrain, checkpoints
//   - Obstacles: lava seeding and per-turn terrain churn that never cuts
//     the route from start through the checkpoints to goal
//   - Search: A*, Dijkstra, bidirectional A*, BFS, replanning, fog-of-war
//     A* and exhaustive multi-goal tours, behind one Engine with a path cache
//   - Agents: energy, undo, reward buffs, fog memory and a behaviour tree
//     controller for AI opponents
//   - Sessions: five game modes, win/trap detection, hints and algorithm
//     comparison
//
// Everything is organized under flat subpackages:
//
//	rng/       seedable, forkable random streams
//	grid/      cells, walls, terrain costs and ASCII rendering
//	maze/      generation, terrain assignment, checkpoint and reward placement
//	search/    path search engine
//	obstacle/  lava seeding, terrain churn, forecasts and route repair
//	agent/     player and AI walkers, behaviour tree controller
//	config/    defaults, .env and MAZE_* loading, difficulty presets
//	session/   one game, turn by turn
//
// Quick ASCII example, a 5x3 corridor with water and a checkpoint:
//
//	 #####
//	S.~.C.G
//	 #####
//
// Run a headless game with:
//
//	go run ./cmd/mazerunner -mode "ai duel" -seed 7 -compare
package mazerunner
