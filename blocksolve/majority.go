package blocksolve

import (
	"fmt"

	"github.com/jteck44/bkw-lab/bkwlog"
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// Majority is the standard LPN block solver (spec §4.3.1): one ballot
// box per position, filled from weight-1 samples, falling back to every
// bit set in weight>1 samples if no weight-1 sample was seen.
type Majority struct{}

func (Majority) Solve(pool []sample.Sample[uint8], start, end int, sink bkwlog.Sink) []uint8 {
	b := end - start
	ballots := make([][]uint8, b)

	for _, s := range pool {
		window := s.V[start:end]
		if ring.HammingWeight(window) == 1 {
			pos := indexOfOne(window)
			ballots[pos] = append(ballots[pos], s.C)
		}
	}

	if allEmpty(ballots) {
		emit(sink, bkwlog.Warning, "no weight-1 samples for majority vote, falling back to every set bit")
		for _, s := range pool {
			window := s.V[start:end]
			for pos, bit := range window {
				if bit == 1 {
					ballots[pos] = append(ballots[pos], s.C)
				}
			}
		}
	}

	out := make([]uint8, b)
	for pos, ballot := range ballots {
		if len(ballot) == 0 {
			emit(sink, bkwlog.Warning, fmt.Sprintf("position %d has no votes, defaulting to 0", pos))
			continue
		}
		v, err := ring.Majority(ballot)
		if err != nil {
			emit(sink, bkwlog.Warning, fmt.Sprintf("position %d: majority vote failed, defaulting to 0", pos))
			continue
		}
		out[pos] = v
	}
	return out
}

func indexOfOne(window []uint8) int {
	for i, x := range window {
		if x == 1 {
			return i
		}
	}
	return -1
}

func allEmpty(ballots [][]uint8) bool {
	for _, b := range ballots {
		if len(b) > 0 {
			return false
		}
	}
	return true
}
