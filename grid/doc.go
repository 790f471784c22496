// Package grid models a maze as a rectangular grid of cells with terrain
// costs, an open-wall bitmap, an ordered checkpoint list and a set of
// dynamic obstacles.
//
// What:
//
//   - Grid has odd width and height. Start sits one step left of the
//     rectangle at (-1, H/2) and Goal one step right at (W, H/2); Entry
//     (0, H/2) and Exit (W-1, H/2) are their only neighbors.
//   - Every cell carries a Terrain; its movement cost comes from a
//     CostTable and is +Inf for impassable cells.
//   - The wall bitmap is kept consistent with passability on every
//     mutation: a side is open iff both cells on it are passable.
//   - Version increases on every mutation so derived data (search caches)
//     can detect staleness.
//
// Neighbors:
//
//   - Orthogonal neighbors follow open walls.
//   - Diagonal neighbors (optional) require both orthogonal sides open.
//
// Rendering:
//
//   - String draws one ASCII glyph per cell; Render overlays caller marks
//     such as agents and trails.
//
// Complexity:
//
//   - GetCost, IsPassable, HasWall: O(1).
//   - Neighbors: O(1) (at most 8 candidates).
//   - Reachable, Connected: O(W×H).
//   - Clone: O(W×H).
//
// Errors:
//
//   - ErrDimensionTooSmall: width or height below 3 after odd rounding.
//
// The grid does not enforce the route-through-checkpoints invariant;
// package obstacle owns every mutation that could break it.
package grid
