// Package bkwlab is the top-level orchestrator of spec §2: it wires a
// config.Params, a reduce.Reducer, a blocksolve.BlockSolver and
// substitute's back-substitution into the block-by-block recovery loop
// shared by every BKW variant. Everything below this package is a
// strategy object it composes; nothing here knows how reduction or
// block-solving actually work.
package bkwlab

import (
	"fmt"

	"github.com/jteck44/bkw-lab/bkwlog"
	"github.com/jteck44/bkw-lab/blocksolve"
	"github.com/jteck44/bkw-lab/config"
	"github.com/jteck44/bkw-lab/reduce"
	"github.com/jteck44/bkw-lab/sample"
	"github.com/jteck44/bkw-lab/substitute"
	"github.com/jteck44/bkw-lab/variant"
)

const previewLimit = 3

// SolveLPN runs the LPN code path of spec §2 over pool, recovering a
// dim-bit secret one block at a time, rightmost block first. pool is
// never mutated; Solve clones it before the first reduction.
//
// trueSecret is optional (spec §7's supplemented "per-run narrative
// logging"): when non-nil, Solve narrates per-block and aggregate
// accuracy against it, exactly as bkw_standard.py's solve(true_secret=...)
// does for its own console output. The solver never reads trueSecret to
// recover the block — it is a logging-only collaborator, mirroring the
// Python original's use of the same parameter.
func SolveLPN(p config.Params, pool []sample.Sample[uint8], trueSecret []uint8, sink bkwlog.Sink) ([]uint8, error) {
	if p.Type() != config.LPN {
		return nil, fmt.Errorf("bkwlab: SolveLPN called with a non-LPN Params")
	}

	secret := make([]uint8, p.Dim())
	working := sample.ClonePool(pool)

	var solver blocksolve.BlockSolver[uint8]
	if p.Strat() == config.LF1 {
		solver = blocksolve.WalshHadamard{}
	} else {
		solver = blocksolve.Majority{}
	}
	reducer := reduce.NewStandardLPN(p.B())

	emitPreview(sink, working)

	for block := p.A(); block >= 1; block-- {
		emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - begin", block, p.A()))
		start, end := (block-1)*p.B(), block*p.B()

		emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - phase 1: reduction", block, p.A()))
		reduced := reducer.Reduce(working, block)
		if len(reduced) == 0 {
			emit(sink, bkwlog.Warning, fmt.Sprintf("block %d: reduction exhausted the pool, leaving it zero", block))
			continue
		}

		emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - phase 2: block solve", block, p.A()))
		window := solver.Solve(reduced, start, end, sink)
		copy(secret[start:end], window)
		emit(sink, bkwlog.Value, fmt.Sprintf("block %d recovered %v", block, window))

		if trueSecret != nil {
			acc, err := BlockAccuracyLPN(secret, trueSecret, start, end)
			if err == nil {
				sev := bkwlog.Warning
				if acc == 1 {
					sev = bkwlog.Success
				}
				emit(sink, sev, fmt.Sprintf("block %d accuracy: %.0f%%", block, acc*100))
			}
		}

		if block > 1 {
			emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - phase 3: back-substitution", block, p.A()))
			substitute.LPN(working, secret, start, end)
			emit(sink, bkwlog.Success, "back-substitution complete")
		}
	}

	emit(sink, bkwlog.Secret, fmt.Sprintf("recovered secret: %v", secret))
	if trueSecret != nil {
		acc, err := AccuracyLPN(secret, trueSecret)
		if err == nil {
			sev := bkwlog.Warning
			if acc > 0.9 {
				sev = bkwlog.Success
			}
			emit(sink, sev, fmt.Sprintf("overall accuracy: %.1f%%", acc*100))
		}
	}

	return secret, nil
}

// SolveLWE runs the LWE code path of spec §2, selecting the reduction
// strategy (standard, LMS, CODED or CODED+SIEVING) named by p.Strat()
// and the Gaussian hypothesis block solver, whose accumulated noise
// scale grows with the number of reduction steps already applied.
//
// trueSecret is SolveLPN's optional logging-only collaborator, mirroring
// bkw_lwe.py's solve(true_secret=...): when non-nil, each imperfect block
// also gets an explanatory info event on why LWE recovery is harder than
// LPN (larger search space, accumulating Gaussian noise), per spec §7.
func SolveLWE(p config.Params, pool []sample.Sample[int], trueSecret []int, sink bkwlog.Sink) ([]int, error) {
	if p.Type() != config.LWE {
		return nil, fmt.Errorf("bkwlab: SolveLWE called with a non-LWE Params")
	}

	secret := make([]int, p.Dim())
	working := sample.ClonePool(pool)

	var reducer reduce.Reducer[int]
	switch p.Strat() {
	case config.LMS:
		reducer = variant.NewLMS(p.B(), p.Q())
	case config.Coded:
		c := variant.NewCoded(p.Dim(), p.B(), p.Q())
		c.T1, c.T2 = p.T1(), p.T2()
		reducer = c
	case config.CodedSieving:
		cs := variant.NewCodedSieving(p.Dim(), p.B(), p.Q())
		cs.Coded.T1, cs.Coded.T2 = p.T1(), p.T2()
		cs.B = p.BoundB()
		reducer = cs
	default:
		reducer = reduce.NewStandardLWE(p.B(), p.Q())
	}

	emitPreview(sink, working)

	for block := p.A(); block >= 1; block-- {
		emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - begin", block, p.A()))
		start, end := (block-1)*p.B(), block*p.B()

		emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - phase 1: reduction", block, p.A()))
		reduced := reducer.Reduce(working, block)
		if len(reduced) == 0 {
			emit(sink, bkwlog.Warning, fmt.Sprintf("block %d: reduction exhausted the pool, leaving it zero", block))
			continue
		}

		emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - phase 2: block solve", block, p.A()))
		solver := blocksolve.GaussianHypothesis{
			Q:     p.Q(),
			Sigma: p.Sigma(),
			D:     p.D(),
			QCap:  p.QCap(),
			Steps: block - 1,
		}
		window := solver.Solve(reduced, start, end, sink)
		copy(secret[start:end], window)
		emit(sink, bkwlog.Value, fmt.Sprintf("block %d recovered %v", block, window))

		if trueSecret != nil {
			correct := 0
			for i := start; i < end; i++ {
				if secret[i] == trueSecret[i] {
					correct++
				}
			}
			b := end - start
			sev := bkwlog.Warning
			if correct >= b-1 {
				sev = bkwlog.Success
			}
			emit(sink, sev, fmt.Sprintf("block %d accuracy: %d/%d", block, correct, b))

			if correct < b {
				emit(sink, bkwlog.Info, fmt.Sprintf(
					"block %d: LWE with modulus q=%d is harder than LPN here — accumulated Gaussian noise (sigma=%.3f) makes the hypothesis search less discriminating",
					block, p.Q(), p.Sigma()))
			}
		}

		if block > 1 {
			emit(sink, bkwlog.Phase, fmt.Sprintf("block %d/%d - phase 3: back-substitution", block, p.A()))
			substitute.LWE(working, secret, start, end, p.Q())
			emit(sink, bkwlog.Success, "back-substitution complete")
		}
	}

	emit(sink, bkwlog.Secret, fmt.Sprintf("recovered secret: %v", secret))
	if trueSecret != nil {
		acc, err := AccuracyLWE(secret, trueSecret)
		if err == nil {
			sev := bkwlog.Warning
			if acc > 0.7 {
				sev = bkwlog.Success
			}
			emit(sink, sev, fmt.Sprintf("overall accuracy: %.1f%%", acc*100))
		}
	}

	return secret, nil
}

func emit(sink bkwlog.Sink, sev bkwlog.Severity, msg string) {
	if sink != nil {
		sink(bkwlog.Event{Message: msg, Severity: sev})
	}
}

// emitPreview logs the first previewLimit samples of the pool so a
// driver's console narration has something concrete to show before the
// first reduction runs, capped per spec §7 so a large pool doesn't flood
// the sink.
func emitPreview[T any](sink bkwlog.Sink, pool []sample.Sample[T]) {
	if sink == nil {
		return
	}
	n := len(pool)
	if n > previewLimit {
		n = previewLimit
	}
	for i := 0; i < n; i++ {
		emit(sink, bkwlog.Info, fmt.Sprintf("sample[%d]: v=%v c=%v", i, pool[i].V, pool[i].C))
	}
	if len(pool) > previewLimit {
		emit(sink, bkwlog.Info, fmt.Sprintf("... %d more samples", len(pool)-previewLimit))
	}
}
