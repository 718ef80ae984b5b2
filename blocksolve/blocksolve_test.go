package blocksolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jteck44/bkw-lab/blocksolve"
	"github.com/jteck44/bkw-lab/sample"
)

func TestMajoritySolvesCleanBlock(t *testing.T) {
	// Samples with weight-1 windows directly reveal each bit.
	pool := []sample.Sample[uint8]{
		{V: []uint8{1, 0}, C: 1},
		{V: []uint8{1, 0}, C: 1},
		{V: []uint8{0, 1}, C: 0},
		{V: []uint8{0, 1}, C: 0},
	}
	got := blocksolve.Majority{}.Solve(pool, 0, 2, nil)
	require.Equal(t, []uint8{1, 0}, got)
}

func TestMajorityFallsBackToAllBits(t *testing.T) {
	pool := []sample.Sample[uint8]{
		{V: []uint8{1, 1}, C: 0},
		{V: []uint8{1, 1}, C: 0},
		{V: []uint8{1, 1}, C: 0},
	}
	got := blocksolve.Majority{}.Solve(pool, 0, 2, nil)
	require.Equal(t, []uint8{0, 0}, got)
}

func TestMajorityDefaultsToZeroOnNoSamples(t *testing.T) {
	got := blocksolve.Majority{}.Solve(nil, 0, 2, nil)
	require.Equal(t, []uint8{0, 0}, got)
}

func TestWalshHadamardDecodesExactBlock(t *testing.T) {
	secret := []uint8{1, 0}
	var pool []sample.Sample[uint8]
	for _, v := range [][]uint8{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		var c uint8
		for i := range v {
			c ^= v[i] & secret[i]
		}
		pool = append(pool, sample.Sample[uint8]{V: v, C: c})
	}

	got := blocksolve.WalshHadamard{}.Solve(pool, 0, 2, nil)
	require.Equal(t, secret, got)
}

func TestGaussianHypothesisRecoversNoiselessBlock(t *testing.T) {
	secret := []int{3, 1}
	q := 7

	// Two weight-2 samples pin the "11" pattern to (3,1); one alone would
	// tie every candidate with x0+x1 = 4 mod 7.
	pool := []sample.Sample[int]{
		{V: []int{1, 0}, C: 3},
		{V: []int{0, 1}, C: 1},
		{V: []int{2, 0}, C: 6},
		{V: []int{1, 1}, C: 4},
		{V: []int{1, 2}, C: 5},
	}

	g := blocksolve.GaussianHypothesis{Q: q, Sigma: 0.5, D: 2, QCap: 5, Steps: 0}
	got := g.Solve(pool, 0, 2, nil)
	require.Equal(t, secret, got)
}
