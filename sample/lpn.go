package sample

import "fmt"

// LPNInstance generates samples (v, c) with c = <v,s> XOR noise over
// GF(2), noise ~ Bernoulli(tau). It mirrors core/lpn.py's LPNInstance,
// with the secret carried as a field solely for the oracle-aware
// accuracy reporter — the solver itself never reads it.
type LPNInstance struct {
	K      int
	Tau    float64
	Secret []uint8
}

// NewLPNInstance builds an instance with the given secret. If secret is
// nil, a uniformly random one is drawn from src.
func NewLPNInstance(k int, tau float64, secret []uint8, src Source) (*LPNInstance, error) {
	if secret != nil && len(secret) != k {
		return nil, fmt.Errorf("sample: LPN secret must have %d bits, has %d", k, len(secret))
	}
	if secret == nil {
		secret = make([]uint8, k)
		for i := range secret {
			secret[i] = uint8(src.Intn(2))
		}
	} else {
		secret = append([]uint8(nil), secret...)
	}
	return &LPNInstance{K: k, Tau: tau, Secret: secret}, nil
}

// GenerateSamples draws n samples (v, c) with c = <v,secret> XOR noise,
// noise ~ Bernoulli(tau), per spec §6.
func (inst *LPNInstance) GenerateSamples(n int, src Source) []Sample[uint8] {
	out := make([]Sample[uint8], n)
	for i := range out {
		v := make([]uint8, inst.K)
		var inner uint8
		for j := range v {
			v[j] = uint8(src.Intn(2))
			inner ^= v[j] & inst.Secret[j]
		}

		var noise uint8
		if src.Float64() < inst.Tau {
			noise = 1
		}

		out[i] = Sample[uint8]{V: v, C: inner ^ noise}
	}
	return out
}
