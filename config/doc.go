// Package config holds every tunable of a mazerunner game.
//
// Default returns the stock values. Load layers a .env file (via
// github.com/joho/godotenv) and MAZE_* environment variables on top of them
// and validates the result. A Difficulty preset picks the AI heuristic and
// its scale; explicit MAZE_HEURISTIC or MAZE_HEURISTIC_SCALE values win over
// the preset.
//
// Terrain costs are overridden one at a time with MAZE_COST_<TERRAIN>, for
// example MAZE_COST_MUD=7 or MAZE_COST_LAVA=inf.
package config
