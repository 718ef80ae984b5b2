package variant

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/jteck44/bkw-lab/reduce"
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// Coded is CODED-BKW (spec §4.5): T1 standard LWE reduction steps
// followed by T2 coded steps, each keying the reduction table by the
// nearest codeword of a repetition code rather than the raw window.
type Coded struct {
	N, Q   int
	B      int
	T1, T2 int
}

// NewCoded returns a CODED-BKW reducer with the default T1=T2=1 (spec
// §4.5 / §7's "CODED-BKW's default t1=1, t2=1").
func NewCoded(n, b, q int) *Coded {
	return &Coded{N: n, Q: q, B: b, T1: 1, T2: 1}
}

func (c *Coded) Reduce(pool []sample.Sample[int], blockCurrent int) []sample.Sample[int] {
	std := reduce.NewStandardLWE(c.B, c.Q)

	temp := pool
	for step := 1; step <= c.T1 && step < blockCurrent; step++ {
		temp = std.Step(temp, step)
		if len(temp) == 0 {
			return temp
		}
	}

	for step := c.T1 + 1; step <= c.T1+c.T2 && step < blockCurrent; step++ {
		temp = c.CodedStep(temp, step)
		if len(temp) == 0 {
			return temp
		}
	}

	return temp
}

// CodedStep runs one coded reduction step over a widened window of
// n_i = b+1 coordinates, per spec §4.5. Exported so CodedSieving can
// post-process its output with a sieving pass without duplicating the
// table walk.
func (c *Coded) CodedStep(pool []sample.Sample[int], step int) []sample.Sample[int] {
	windowWidth := c.B + 1
	start := (step - 1) * c.B
	end := start + windowWidth
	if end > c.N {
		end = c.N
	}

	table := make(map[int]sample.Sample[int], len(pool))
	next := make([]sample.Sample[int], 0, len(pool))

	for _, s := range pool {
		codeword := nearestCodewordValue(s.V[start:end], c.Q)

		if partner, ok := table[codeword]; ok {
			delete(table, codeword)
			v := ring.ModSub(s.V, partner.V, c.Q)
			newC := ring.ModSub([]int{s.C}, []int{partner.C}, c.Q)[0]
			next = append(next, sample.Sample[int]{V: v, C: newC})
			continue
		}
		table[codeword] = s
	}

	return next
}

// nearestCodewordValue finds argmin_{x in [0,q)} |x - mean(window)|, the
// repetition-code decoder of spec §4.5 (a teaching demonstrator per
// spec §9's open question c, not claimed information-theoretically
// sound). stats.Mean is the teacher's montanaflynn/stats dependency,
// otherwise unused by the solver core.
func nearestCodewordValue(window []int, q int) int {
	if len(window) == 0 {
		return 0
	}

	data := make([]float64, len(window))
	for i, x := range window {
		data[i] = float64(x)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		panic(fmt.Sprintf("variant: stats.Mean: %v", err))
	}

	best := 0
	bestDist := absFloat(mean)
	for x := 1; x < q; x++ {
		dist := absFloat(float64(x) - mean)
		if dist < bestDist {
			best, bestDist = x, dist
		}
	}
	return best
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
