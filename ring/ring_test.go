package ring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXOR(t *testing.T) {
	got := XOR([]uint8{1, 0, 1, 1}, []uint8{0, 0, 1, 1})
	require.Equal(t, []uint8{1, 0, 0, 0}, got)
}

func TestModAddModSub(t *testing.T) {
	t.Run("ModAdd wraps", func(t *testing.T) {
		got := ModAdd([]int{5, 6}, []int{4, 6}, 7)
		require.Equal(t, []int{2, 5}, got)
	})
	t.Run("ModSub stays non-negative", func(t *testing.T) {
		got := ModSub([]int{1, 0}, []int{3, 6}, 7)
		require.Equal(t, []int{5, 1}, got)
	})
	t.Run("ModSub then ModAdd round-trips", func(t *testing.T) {
		a := []int{3, 1, 5, 2}
		b := []int{6, 6, 2, 4}
		q := 7
		diff := ModSub(a, b, q)
		back := ModAdd(diff, b, q)
		require.Equal(t, a, back)
	})
}

func TestNegMod(t *testing.T) {
	got := NegMod([]int{0, 1, 3}, 7)
	require.Equal(t, []int{0, 6, 4}, got)
}

func TestHammingWeight(t *testing.T) {
	require.Equal(t, 0, HammingWeight([]int{0, 0, 0}))
	require.Equal(t, 2, HammingWeight([]int{1, 0, 3}))
}

func TestMajority(t *testing.T) {
	t.Run("idempotence", func(t *testing.T) {
		v, err := Majority([]int{4, 4, 4, 4})
		require.NoError(t, err)
		require.Equal(t, 4, v)
	})
	t.Run("first-seen tie-break", func(t *testing.T) {
		v, err := Majority([]int{1, 0, 0, 1})
		require.NoError(t, err)
		require.Equal(t, 1, v)
	})
	t.Run("empty multiset fails", func(t *testing.T) {
		_, err := Majority([]int{})
		require.True(t, errors.Is(err, ErrEmptyMultiset))
	})
}

func TestWHTRoundTrip(t *testing.T) {
	f := []int64{1, -1, 1, 1, -1, -1, 1, -1}
	spectrum := WHT(f)
	back := WHT(spectrum)

	require.Len(t, back, len(f))
	for i := range f {
		require.Equal(t, f[i]*int64(len(f)), back[i])
	}
}

func TestArgMaxAbs(t *testing.T) {
	require.Equal(t, 2, ArgMaxAbs([]int64{1, -3, 5, -4}))
}

func TestLogLikelihoodFloor(t *testing.T) {
	// A wildly wrong error under a tight distribution should hit the
	// density floor and report the sentinel -1000.
	got := LogLikelihood(1e6, 0.5, 31)
	require.Equal(t, -1000.0, got)
}

func TestLogLikelihoodPrefersSmallerError(t *testing.T) {
	close := LogLikelihood(0, 1.5, 31)
	far := LogLikelihood(10, 1.5, 31)
	require.Greater(t, close, far)
}
