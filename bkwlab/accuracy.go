package bkwlab

import (
	"github.com/montanaflynn/stats"
)

// AccuracyLPN reports the oracle-aware bit-accuracy of a recovered secret
// against the ground truth, per spec §6's accuracy reporter. It uses
// montanaflynn/stats.Mean over a 0/1 match indicator rather than a hand
// rolled ratio, exercising the same dependency the CODED-BKW decoder
// uses for its nearest-codeword mean.
func AccuracyLPN(recovered, truth []uint8) (float64, error) {
	indicators := make([]float64, len(truth))
	for i := range truth {
		if recovered[i] == truth[i] {
			indicators[i] = 1
		}
	}
	return stats.Mean(indicators)
}

// AccuracyLWE is AccuracyLPN's LWE counterpart.
func AccuracyLWE(recovered, truth []int) (float64, error) {
	indicators := make([]float64, len(truth))
	for i := range truth {
		if recovered[i] == truth[i] {
			indicators[i] = 1
		}
	}
	return stats.Mean(indicators)
}

// BlockAccuracyLPN reports the bit-accuracy of a single recovered block
// [start,end) against the ground truth, used by SolveLPN's
// per-block narration (spec §7's "per-block accuracy logging").
func BlockAccuracyLPN(recovered, truth []uint8, start, end int) (float64, error) {
	return AccuracyLPN(recovered[start:end], truth[start:end])
}

// BlockAccuracyLWE is BlockAccuracyLPN's LWE counterpart.
func BlockAccuracyLWE(recovered, truth []int, start, end int) (float64, error) {
	return AccuracyLWE(recovered[start:end], truth[start:end])
}
