// Package reduce implements the block-collision reduction engine of
// spec §4.2: given a pool of samples and a target block index, it
// produces samples whose leading block coordinates are all zero.
//
// The Reducer interface is the "strategy polymorphism" point spec §9
// calls out: the outer solve loop (package bkwlab) is shared across
// every BKW variant, and only the reducer changes between standard
// BKW, LMS, CODED and CODED+Sieving — exactly as the teacher expresses
// a shared Context/Parameters with pluggable sampler strategies
// (ring.GaussianSampler vs ring.TernarySampler) rather than forking the
// encryption pipeline per secret distribution.
package reduce

import (
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// Reducer produces, from pool, a pool whose samples all have zero
// coordinates in block windows 1..blockCurrent-1.
type Reducer[T ring.Elem] interface {
	Reduce(pool []sample.Sample[T], blockCurrent int) []sample.Sample[T]
}

// Standard implements the common reduction shape of spec §4.2 for both
// LPN (Binary=true, XOR combination) and LWE (Binary=false, mod-Q
// combination with the negated-key probe for opposite-sign partners).
type Standard[T ring.Elem] struct {
	B      int
	Q      T
	Binary bool
}

// NewStandardLPN returns the GF(2)/XOR reducer for LPN.
func NewStandardLPN(b int) *Standard[uint8] {
	return &Standard[uint8]{B: b, Q: 2, Binary: true}
}

// NewStandardLWE returns the Z/qZ reducer for LWE.
func NewStandardLWE(b, q int) *Standard[int] {
	return &Standard[int]{B: b, Q: q, Binary: false}
}

// Reduce runs steps 1..blockCurrent-1 of spec §4.2, restarting the table
// fresh at every step. It never returns an error: an exhausted pool
// partway through is simply propagated as an empty slice, which the
// outer solve loop in bkwlab logs as a warning and treats as a zero
// block (spec §4.2's failure semantics / spec §4.6).
func (r *Standard[T]) Reduce(pool []sample.Sample[T], blockCurrent int) []sample.Sample[T] {
	pending := pool

	for step := 1; step < blockCurrent; step++ {
		pending = r.Step(pending, step)
		if len(pending) == 0 {
			return pending
		}
	}

	return pending
}

// Step runs a single reduction step against the window
// [(step-1)*B, step*B), annihilating same-key collisions and, for LWE,
// opposite-sign ones. Exported so variant reducers (package variant) can
// compose standard steps with their own coded/sieved steps without
// reimplementing the table walk.
func (r *Standard[T]) Step(pool []sample.Sample[T], step int) []sample.Sample[T] {
	start := (step - 1) * r.B
	end := step * r.B
	bits := bitsFor(int(r.Q))

	table := make(map[uint64]sample.Sample[T], len(pool))
	next := make([]sample.Sample[T], 0, len(pool))

	for _, s := range pool {
		window := s.V[start:end]

		if allZero(window) {
			next = append(next, s)
			continue
		}

		key := packKey(window, bits)

		if partner, ok := table[key]; ok {
			delete(table, key)
			next = append(next, r.combineSame(s, partner))
			continue
		}

		if !r.Binary {
			negWindow := ring.NegMod(window, r.Q)
			negKey := packKey(negWindow, bits)
			if partner, ok := table[negKey]; ok {
				delete(table, negKey)
				next = append(next, r.combineOpposite(s, partner))
				continue
			}
		}

		table[key] = s
	}

	return next
}

// combineSame annihilates a same-key collision: XOR for LPN, mod-sub for
// LWE.
func (r *Standard[T]) combineSame(s, partner sample.Sample[T]) sample.Sample[T] {
	if r.Binary {
		return sample.Sample[T]{V: ring.XOR(s.V, partner.V), C: s.C ^ partner.C}
	}
	v := ring.ModSub(s.V, partner.V, r.Q)
	c := ring.ModSub([]T{s.C}, []T{partner.C}, r.Q)[0]
	return sample.Sample[T]{V: v, C: c}
}

// combineOpposite annihilates an opposite-sign collision (LWE only):
// mod-add instead of mod-sub.
func (r *Standard[T]) combineOpposite(s, partner sample.Sample[T]) sample.Sample[T] {
	v := ring.ModAdd(s.V, partner.V, r.Q)
	c := ring.ModAdd([]T{s.C}, []T{partner.C}, r.Q)[0]
	return sample.Sample[T]{V: v, C: c}
}
