package sample

import (
	"fmt"
	"math"
)

// LWEInstance generates samples (v, c) with c = <v,s> + e mod q, noise
// e ~ round(N(0,sigma^2)). It mirrors core/lwe.py's LWEInstance.
type LWEInstance struct {
	N      int
	Q      int
	Sigma  float64
	Secret []int
}

// NewLWEInstance builds an instance with the given secret. If secret is
// nil, a uniformly random one in [0,q) is drawn from src.
func NewLWEInstance(n, q int, sigma float64, secret []int, src Source) (*LWEInstance, error) {
	if secret != nil {
		if len(secret) != n {
			return nil, fmt.Errorf("sample: LWE secret must have %d entries, has %d", n, len(secret))
		}
		for i, v := range secret {
			if v < 0 || v >= q {
				return nil, fmt.Errorf("sample: LWE secret[%d]=%d out of range [0,%d)", i, v, q)
			}
		}
		secret = append([]int(nil), secret...)
	} else {
		secret = make([]int, n)
		for i := range secret {
			secret[i] = src.Intn(q)
		}
	}
	return &LWEInstance{N: n, Q: q, Sigma: sigma, Secret: secret}, nil
}

// GenerateSamples draws m samples (v, c) with c = <v,secret> + e mod q,
// e the nearest integer to a draw from N(0,sigma^2), per spec §6.
func (inst *LWEInstance) GenerateSamples(m int, src Source) []Sample[int] {
	out := make([]Sample[int], m)
	for i := range out {
		v := make([]int, inst.N)
		inner := 0
		for j := range v {
			v[j] = src.Intn(inst.Q)
			inner = (inner + v[j]*inst.Secret[j]) % inst.Q
		}

		noise := 0
		if inst.Sigma > 0 {
			noise = int(math.Round(src.NormFloat64() * inst.Sigma))
		}

		c := ((inner+noise)%inst.Q + inst.Q) % inst.Q
		out[i] = Sample[int]{V: v, C: c}
	}
	return out
}
