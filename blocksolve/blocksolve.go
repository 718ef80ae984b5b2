// Package blocksolve implements spec §4.3's three block-recovery
// strategies: majority vote (LPN standard), Walsh-Hadamard maximisation
// (LPN LF1), and Gaussian log-likelihood hypothesis enumeration (LWE).
// Each implements BlockSolver so bkwlab.SolveLPN/SolveLWE can treat them
// interchangeably, the same "strategy object" shape spec §9 calls for.
package blocksolve

import (
	"github.com/jteck44/bkw-lab/bkwlog"
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// BlockSolver recovers the b coordinates of the block window
// [start,end) from a reduced sample pool, narrating its progress and
// any degenerate positions (spec §4.6) through sink.
type BlockSolver[T ring.Elem] interface {
	Solve(pool []sample.Sample[T], start, end int, sink bkwlog.Sink) []T
}

func emit(sink bkwlog.Sink, sev bkwlog.Severity, msg string) {
	if sink != nil {
		sink(bkwlog.Event{Message: msg, Severity: sev})
	}
}
