// Package variant implements the pluggable reducer overrides of spec
// §4.5: LMS modulus-switching, CODED linear-code collapsing, and
// CODED+SIEVING norm-bounded combination. Each wraps or composes the
// standard LWE reducer (package reduce) rather than duplicating its
// table walk, the same "decorate, don't fork" shape the teacher uses
// when e.g. bootstrapping wraps an evaluator instead of reimplementing
// its homomorphic operations.
package variant

import (
	"github.com/jteck44/bkw-lab/reduce"
	"github.com/jteck44/bkw-lab/sample"
)

// LMS is modulus-switching BKW-LWE (spec §4.5): samples are mapped into
// the smaller ring Z/pZ (p = q/2), reduced there with the standard
// reducer, and mapped back to Z/qZ. The round-trip through p loses
// precision on the way back out (spec §9 open question b) — this is by
// design, a deliberate accuracy/table-size trade, not a bug to paper
// over.
type LMS struct {
	Q, P int
	B    int
}

// NewLMS returns an LMS reducer for the given block width and modulus.
func NewLMS(b, q int) *LMS {
	p := q / 2
	return &LMS{Q: q, P: p, B: b}
}

func (l *LMS) Reduce(pool []sample.Sample[int], blockCurrent int) []sample.Sample[int] {
	converted := make([]sample.Sample[int], len(pool))
	for i, s := range pool {
		v := make([]int, len(s.V))
		for j, x := range s.V {
			v[j] = (x * l.P / l.Q) % l.P
		}
		converted[i] = sample.Sample[int]{V: v, C: (s.C * l.P / l.Q) % l.P}
	}

	inner := reduce.NewStandardLWE(l.B, l.P)
	reduced := inner.Reduce(converted, blockCurrent)

	out := make([]sample.Sample[int], len(reduced))
	for i, s := range reduced {
		v := make([]int, len(s.V))
		for j, x := range s.V {
			v[j] = (x * l.Q / l.P) % l.Q
		}
		out[i] = sample.Sample[int]{V: v, C: (s.C * l.Q / l.P) % l.Q}
	}
	return out
}
