// Package rng provides the deterministic random streams used by maze
// generation and by the obstacle manager.
//
// What:
//
//   - Stream is a SplitMix64 generator whose whole state is one uint64,
//     so copying a Stream value (or calling Clone) forks an identical
//     replay of the remaining draw sequence.
//   - Derive mixes a parent seed and a stream id into a new seed; ForTurn
//     builds the private per-turn stream of the obstacle manager.
//   - Shuffle and Weighted are the only sampling helpers the core needs.
//
// Determinism:
//
//   - Same seed ⇒ identical draws on every platform.
//   - seed==0 maps to DefaultSeed, never to a time-based source.
//   - Nothing in this package reads a process-wide random source.
//
// Concurrency:
//
//   - A *Stream is not goroutine-safe. Clone or Fork it per goroutine.
//
// Complexity:
//
//   - Uint64, Intn, Float64: O(1) (Intn uses rejection, expected O(1)).
//   - Shuffle: O(n) time, O(1) extra space.
//   - Weighted: O(k) for k weights.
package rng
