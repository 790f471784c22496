package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/rng"
)

func draw(s *rng.Stream, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.Uint64()
	}
	return out
}

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	require.Equal(t, draw(a, 32), draw(b, 32))
	require.Equal(t, uint64(32), a.Draws())
}

func TestNew_ZeroSeedPolicy(t *testing.T) {
	a, b := rng.New(0), rng.New(rng.DefaultSeed)
	require.Equal(t, rng.DefaultSeed, a.Seed())
	require.Equal(t, draw(a, 8), draw(b, 8))
}

func TestClone_ReplaysRemainingSequence(t *testing.T) {
	s := rng.New(7)
	_ = draw(s, 5)
	c := s.Clone()
	want := draw(s, 10)
	require.Equal(t, want, draw(c, 10), "clone must replay the parent's future draws")
}

func TestFork_AdvancesParentOnce(t *testing.T) {
	s := rng.New(9)
	ref := s.Clone()
	child1 := s.Fork(1)
	_ = ref.Uint64()
	require.Equal(t, ref.Uint64(), s.Uint64())

	child2 := rng.New(9).Fork(1)
	require.Equal(t, draw(child1, 4), draw(child2, 4))
}

func TestForTurn_Deterministic(t *testing.T) {
	require.Equal(t, draw(rng.ForTurn(5, 3), 6), draw(rng.ForTurn(5, 3), 6))
	assert.NotEqual(t, draw(rng.ForTurn(5, 3), 6), draw(rng.ForTurn(5, 4), 6))
	assert.NotEqual(t, draw(rng.ForTurn(5, 3), 6), draw(rng.ForTurn(6, 3), 6))
}

func TestIntn_Range(t *testing.T) {
	s := rng.New(11)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := s.Intn(6)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 6)
		seen[v] = true
	}
	require.Len(t, seen, 6)
	require.Panics(t, func() { s.Intn(0) })
}

func TestFloat64_Range(t *testing.T) {
	s := rng.New(13)
	for i := 0; i < 1000; i++ {
		f := s.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestChance_ZeroDoesNotDraw(t *testing.T) {
	s := rng.New(3)
	require.False(t, s.Chance(0))
	require.Equal(t, uint64(0), s.Draws())
	require.True(t, s.Chance(1.0))
}

func TestShuffle_IsPermutation(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := append([]int(nil), a...)
	rng.Shuffle(rng.New(21), a)
	rng.Shuffle(rng.New(21), b)
	require.Equal(t, a, b)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, a)

	one := []string{"x"}
	rng.Shuffle(nil, one)
	require.Equal(t, []string{"x"}, one)
}

func TestWeighted(t *testing.T) {
	s := rng.New(17)
	counts := make([]int, 3)
	for i := 0; i < 5000; i++ {
		idx, err := s.Weighted([]float64{0.7, 0.2, 0.1})
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Greater(t, counts[0], counts[1])
	assert.Greater(t, counts[1], counts[2])

	idx, err := s.Weighted([]float64{0, 0, 5})
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	_, err = s.Weighted(nil)
	require.ErrorIs(t, err, rng.ErrNoWeights)
	_, err = s.Weighted([]float64{0, -1})
	require.ErrorIs(t, err, rng.ErrNoWeights)
}
