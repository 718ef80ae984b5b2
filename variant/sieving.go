package variant

import (
	"math"

	"github.com/jteck44/bkw-lab/reduce"
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// CodedSieving is CODED-BKW+SIEVING (spec §4.5): every coded step is
// followed by a norm-bounded sieving pass that recombines samples whose
// vector norm has grown past B*sqrt(len(v)).
type CodedSieving struct {
	Coded *Coded
	B     int
}

// NewCodedSieving returns a CODED-BKW+SIEVING reducer with the default
// norm bound B=5 (spec §4.5).
func NewCodedSieving(n, b, q int) *CodedSieving {
	return &CodedSieving{Coded: NewCoded(n, b, q), B: 5}
}

func (cs *CodedSieving) Reduce(pool []sample.Sample[int], blockCurrent int) []sample.Sample[int] {
	c := cs.Coded
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
		temp = cs.sieve(temp)
		if len(temp) == 0 {
			return temp
		}
	}

	return temp
}

// sieve implements spec §4.5's sieving pass: samples within the norm
// bound pass through untouched; an over-bound sample searches forward
// for a partner whose difference has strictly smaller norm, replacing
// itself with that difference on success, and is kept only if its own
// norm is still below 2B*sqrt(len) on failure, dropped otherwise.
func (cs *CodedSieving) sieve(pool []sample.Sample[int]) []sample.Sample[int] {
	bound := float64(cs.B) * math.Sqrt(float64(dimOf(pool)))

	out := make([]sample.Sample[int], 0, len(pool))
	for i, s1 := range pool {
		norm1 := euclideanNorm(s1.V)

		if norm1 <= bound {
			out = append(out, s1)
			continue
		}

		found := false
		for _, s2 := range pool[i+1:] {
			diffV := ring.ModSub(s1.V, s2.V, cs.Coded.Q)
			if euclideanNorm(diffV) < norm1 {
				diffC := ring.ModSub([]int{s1.C}, []int{s2.C}, cs.Coded.Q)[0]
				out = append(out, sample.Sample[int]{V: diffV, C: diffC})
				found = true
				break
			}
		}

		if !found && norm1 < 2*bound {
			out = append(out, s1)
		}
	}
	return out
}

func euclideanNorm(v []int) float64 {
	sum := 0.0
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func dimOf(pool []sample.Sample[int]) int {
	if len(pool) == 0 {
		return 1
	}
	return len(pool[0].V)
}
