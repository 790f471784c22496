package rng

import "errors"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// ErrNoWeights is returned by Weighted when the weight slice is empty or sums to zero.
var ErrNoWeights = errors.New("rng: weights must contain at least one positive value")

// Stream is a deterministic SplitMix64 generator.
// The zero value is not ready for use; construct with New.
type Stream struct {
	seed  int64
	state uint64
	draws uint64
}

// New returns a Stream seeded with seed (seed==0 ⇒ DefaultSeed).
//
// Complexity: O(1).
func New(seed int64) *Stream {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Stream{seed: seed, state: uint64(seed)}
}

// ForTurn returns the private stream for a given turn of a seeded process.
// Identical (seed, turn) pairs always yield identical streams.
func ForTurn(seed int64, turn int) *Stream {
	if seed == 0 {
		seed = DefaultSeed
	}
	return New(Derive(seed, uint64(turn)))
}

// Derive mixes a parent seed and a stream identifier into a new seed using
// the SplitMix64 finalizer. Never returns 0.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + golden)
	x += golden
	x = mix(x)
	if x == 0 {
		x = golden
	}
	return int64(x)
}

// mix is the SplitMix64 output function.
func mix(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Seed reports the seed the stream was created with.
func (s *Stream) Seed() int64 { return s.seed }

// Draws reports how many 64-bit values have been consumed.
func (s *Stream) Draws() uint64 { return s.draws }

// Clone returns an independent copy positioned at the same point of the sequence.
func (s *Stream) Clone() *Stream {
	c := *s
	return &c
}

// Fork derives a child stream identified by id. The parent advances by
// exactly one draw, so repeated forks with the same id still differ.
func (s *Stream) Fork(id uint64) *Stream {
	return New(Derive(int64(s.Uint64()), id))
}

// Uint64 returns the next value of the sequence.
func (s *Stream) Uint64() uint64 {
	s.state += golden
	s.draws++
	return mix(s.state)
}

// Int63 returns a non-negative 63-bit integer.
func (s *Stream) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Intn returns a uniform value in [0, n). It panics if n <= 0, like math/rand.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		r := s.Uint64()
		if r >= threshold {
			return int(r % bound)
		}
	}
}

// Float64 returns a uniform value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Chance reports whether a draw falls below p. p <= 0 never consumes a draw.
func (s *Stream) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return s.Float64() < p
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// If s==nil, a DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](s *Stream, a []T) {
	n := len(a)
	if n <= 1 {
		return
	}
	if s == nil {
		s = New(0)
	}
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = s.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Weighted returns an index drawn proportionally to weights.
// Non-positive weights are never selected.
func (s *Stream) Weighted(weights []float64) (int, error) {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrNoWeights
	}
	r := s.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i, nil
		}
		r -= w
	}
	// Floating-point slack lands on the last positive weight.
	return last, nil
}
