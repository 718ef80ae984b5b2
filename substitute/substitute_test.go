package substitute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jteck44/bkw-lab/sample"
	"github.com/jteck44/bkw-lab/substitute"
)

func TestLPNPreservesLinearConsistency(t *testing.T) {
	secret := []uint8{1, 0, 1, 1}
	v := []uint8{1, 1, 0, 1}
	var inner uint8
	for i := range v {
		inner ^= v[i] & secret[i]
	}
	noise := uint8(1)
	pool := []sample.Sample[uint8]{{V: append([]uint8(nil), v...), C: inner ^ noise}}

	substitute.LPN(pool, secret, 0, 2)

	var rest uint8
	for i := 2; i < len(v); i++ {
		rest ^= v[i] & secret[i]
	}
	require.Equal(t, rest^noise, pool[0].C)
}

func TestLWEPreservesLinearConsistency(t *testing.T) {
	secret := []int{3, 1, 5, 2}
	q := 7
	v := []int{1, 2, 0, 4}
	inner := 0
	for i := range v {
		inner = (inner + v[i]*secret[i]) % q
	}
	noise := 2
	pool := []sample.Sample[int]{{V: append([]int(nil), v...), C: (inner + noise) % q}}

	substitute.LWE(pool, secret, 0, 2, q)

	rest := 0
	for i := 2; i < len(v); i++ {
		rest = (rest + v[i]*secret[i]) % q
	}
	require.Equal(t, ((rest+noise)%q+q)%q, pool[0].C)
}
