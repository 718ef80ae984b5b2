package blocksolve

import (
	"fmt"
	"math"

	"github.com/jteck44/bkw-lab/bkwlog"
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// GaussianHypothesis is the LWE block solver (spec §4.3.3): filter
// low-weight samples, partition by non-zero pattern, and for each
// pattern brute-force the candidate tuple maximising the summed
// Gaussian log-likelihood of the induced errors.
//
// Steps is the number of reduction steps already applied to the pool
// passed to Solve (blockCurrent-1 in the outer solve loop); it sets the
// accumulated noise scale sigma*sqrt(2^Steps). A fresh GaussianHypothesis
// is constructed per block by bkwlab.SolveLWE since Steps varies block to
// block.
type GaussianHypothesis struct {
	Q     int
	Sigma float64
	D     int
	QCap  int
	Steps int
}

func (g GaussianHypothesis) Solve(pool []sample.Sample[int], start, end int, sink bkwlog.Sink) []int {
	b := end - start

	filtered := make([]sample.Sample[int], 0, len(pool))
	for _, s := range pool {
		if ring.HammingWeight(s.V[start:end]) <= g.D {
			filtered = append(filtered, s)
		}
	}
	emit(sink, bkwlog.Info, fmt.Sprintf("hypothesis filter kept %d/%d samples (d<=%d)", len(filtered), len(pool), g.D))

	partitions := make(map[string][]sample.Sample[int])
	patternPositions := make(map[string][]int)
	for _, s := range filtered {
		window := s.V[start:end]
		pattern, positions := patternOf(window)
		if len(positions) == 0 {
			continue
		}
		partitions[pattern] = append(partitions[pattern], s)
		patternPositions[pattern] = positions
	}

	sigmaTotal := g.Sigma * math.Sqrt(math.Pow(2, float64(g.Steps)))
	emit(sink, bkwlog.Info, fmt.Sprintf("%d distinct patterns, sigma_total=%.3f", len(partitions), sigmaTotal))

	result := make([]int, b)
	searchBound := g.QCap
	if g.Q < searchBound {
		searchBound = g.Q
	}

	for pattern, group := range partitions {
		positions := patternPositions[pattern]
		best, bestScore := searchCandidate(group, positions, start, searchBound, sigmaTotal, g.Q)
		emit(sink, bkwlog.Success, fmt.Sprintf("pattern %s: best candidate %v (score=%.2f)", pattern, best, bestScore))
		for j, pos := range positions {
			result[pos] = best[j]
		}
	}

	return result
}

// patternOf returns a stable string key for the non-zero indicator
// pattern of window plus the list of non-zero positions.
func patternOf(window []int) (string, []int) {
	var key []byte
	var positions []int
	for i, x := range window {
		if x != 0 {
			key = append(key, '1')
			positions = append(positions, i)
		} else {
			key = append(key, '0')
		}
	}
	return string(key), positions
}

// searchCandidate brute-forces candidate tuples in [0,bound)^len(positions)
// and returns the one maximising the summed log-likelihood of the
// induced errors across group, per spec §4.3.3.
func searchCandidate(group []sample.Sample[int], positions []int, start, bound int, sigmaTotal float64, q int) ([]int, float64) {
	k := len(positions)
	best := make([]int, k)
	bestScore := math.Inf(-1)

	candidate := make([]int, k)
	var enumerate func(depth int)
	enumerate = func(depth int) {
		if depth == k {
			score := scoreCandidate(group, positions, start, candidate, sigmaTotal, q)
			if score > bestScore {
				bestScore = score
				copy(best, candidate)
			}
			return
		}
		for v := 0; v < bound; v++ {
			candidate[depth] = v
			enumerate(depth + 1)
		}
	}
	enumerate(0)

	return best, bestScore
}

func scoreCandidate(group []sample.Sample[int], positions []int, start int, candidate []int, sigmaTotal float64, q int) float64 {
	score := 0.0
	for _, s := range group {
		errVal := s.C
		for j, pos := range positions {
			errVal = ((errVal - s.V[start+pos]*candidate[j]) % q + q) % q
		}
		balanced := float64(errVal)
		if errVal > q/2 {
			balanced = float64(errVal - q)
		}
		score += ring.LogLikelihood(balanced, sigmaTotal, q)
	}
	return score
}
