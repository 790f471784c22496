// Package maze builds perfect mazes on a grid.Grid and decorates them.
//
// Generate runs a randomized depth-first backtracker over the odd "room"
// cells: from the room on top of the stack it picks, uniformly, an
// unvisited room two cells away, carves the wall cell between them and
// pushes it; rooms without unvisited neighbors are popped. The result is a
// spanning tree over every room, so the maze is connected and acyclic.
//
// Entry and Exit are always opened. When H/2 is even they face a wall
// cell rather than a room, so one border cell next to them is carved to
// hang them off the adjacent room without closing a loop.
//
// All randomness comes from an explicit *rng.Stream. Carving and terrain
// use separate forks of it, so terrain options never change the layout.
//
// Complexity: O(W×H) time and memory for Generate and AssignTerrain;
// PlaceCheckpoints is O(W×H log(W×H)).
package maze
