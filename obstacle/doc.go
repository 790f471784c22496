// Package obstacle mutates a maze between turns without ever breaking the
// route from start through every checkpoint to goal.
//
// Two mechanisms:
//
//   - SpawnInitial: one-shot seeding of dynamic (lava, impassable)
//     obstacles at maze creation, each kept only if the route survives,
//     followed by a bounded repair pass.
//   - Update: per-turn churn of obstacle terrains (spikes, thorns,
//     quicksand, rocks). Draws come from a private stream derived from
//     (seed, turn), so Forecast can replay future turns on a clone and
//     predict exactly what the live grid will see.
//
// Transactions:
//
//   - Every mutation that could cut the route is applied, validated with
//     search.Engine.RouteExists and rolled back on failure. Readers never
//     observe a disconnected grid.
//   - Rollbacks are logged at debug level and reported in Delta.RolledBack;
//     they are not errors.
//
// EnsureRoute is the recovery hook for a mover whose position or reached
// checkpoints changed the route requirement: it clears lava nearest the
// remaining waypoints until a route exists.
//
// Complexity:
//
//   - Update: O(W×H) scan plus O(K) route checks, each O(k!·(V log V)).
//   - SpawnInitial: one route check per blocked cell.
package obstacle
