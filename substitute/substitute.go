// Package substitute implements spec §4.4's back-substitution step:
// once a block window is recovered, its contribution is subtracted out
// of every original sample's target so later block iterations see an
// already-partially-solved system.
package substitute

import (
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// LPN rewrites c ^= XOR_{i in [start,end)} (v[i] & secret[i]) into every
// sample, in place. Vectors are left intact; only C changes.
func LPN(pool []sample.Sample[uint8], secret []uint8, start, end int) {
	for i := range pool {
		var contribution uint8
		for j := start; j < end; j++ {
			contribution ^= pool[i].V[j] & secret[j]
		}
		pool[i].C ^= contribution
	}
}

// LWE rewrites c = (c - sum_{i in [start,end)} v[i]*secret[i]) mod q into
// every sample, in place.
func LWE(pool []sample.Sample[int], secret []int, start, end, q int) {
	for i := range pool {
		contribution := 0
		for j := start; j < end; j++ {
			contribution = (contribution + pool[i].V[j]*secret[j]) % q
		}
		pool[i].C = ring.ModSub([]int{pool[i].C}, []int{contribution}, q)[0]
	}
}
