// Package config validates the driver-supplied options from spec §6 into
// an immutable Params, following the same Literal/Params split as
// core/rlwe.ParametersLiteral -> rlwe.NewParameters in the teacher
// library: a plain, publicly-fielded struct that a driver fills in by
// hand or decodes from JSON/flags, and a private, validated counterpart
// produced by a single constructor that never returns a half-checked
// value.
package config

import (
	"errors"
	"fmt"
)

// ProblemType selects the LPN or LWE code path.
type ProblemType int

const (
	LPN ProblemType = iota
	LWE
)

func (t ProblemType) String() string {
	if t == LWE {
		return "LWE"
	}
	return "LPN"
}

// Strategy selects the block-solver / reducer variant.
type Strategy int

const (
	// Standard is majority-vote block solving for LPN.
	Standard Strategy = iota
	// LF1 is Walsh-Hadamard block solving for LPN.
	LF1
	// BKWLWE is Gaussian hypothesis-testing block solving for LWE.
	BKWLWE
	// LMS is BKW-LWE with modulus-switching reduction.
	LMS
	// Coded is BKW-LWE with linear-code collapsing reduction.
	Coded
	// CodedSieving is Coded with a norm-bounded sieving pass.
	CodedSieving
)

var (
	// ErrConfig is wrapped by every configuration validation failure.
	ErrConfig = errors.New("bkwlab: invalid configuration")
)

// Literal is the unchecked, user-facing configuration record described
// in spec §6. Every field corresponds 1:1 to a row of that table.
type Literal struct {
	Type ProblemType
	Strat Strategy

	// K is the LPN secret dimension; N is the LWE secret dimension.
	// Exactly one applies depending on Type.
	K int
	N int

	Q int // LWE modulus, > 1

	Tau   float64 // LPN Bernoulli flip probability, 0 <= tau < 0.5
	Sigma float64 // LWE Gaussian std-dev, >= 0 (0 is the noiseless case)

	A int // block count
	B int // coordinates/bits per block

	D    int // LWE hypothesis-filter Hamming cap (default 2)
	QCap int // per-coordinate search bound (default 5)

	T1 int // CODED standard reduction-step count (default 1)
	T2 int // CODED coded reduction-step count (default 1)

	BoundB int // SIEVING norm bound (default 5)
}

// Params is the validated, immutable configuration used by every other
// package in this module. Construct it with New.
type Params struct {
	lit Literal
	dim int // k for LPN, n for LWE — precomputed so callers never recompute a*b
}

// Type, Strat, K, N, Q, Tau, Sigma, A, B, D, QCap, T1, T2, BoundB expose
// the validated fields read-only.
func (p Params) Type() ProblemType { return p.lit.Type }
func (p Params) Strat() Strategy   { return p.lit.Strat }
func (p Params) K() int            { return p.lit.K }
func (p Params) N() int            { return p.lit.N }
func (p Params) Q() int            { return p.lit.Q }
func (p Params) Tau() float64      { return p.lit.Tau }
func (p Params) Sigma() float64    { return p.lit.Sigma }
func (p Params) A() int            { return p.lit.A }
func (p Params) B() int            { return p.lit.B }
func (p Params) D() int            { return p.lit.D }
func (p Params) QCap() int         { return p.lit.QCap }
func (p Params) T1() int           { return p.lit.T1 }
func (p Params) T2() int           { return p.lit.T2 }
func (p Params) BoundB() int       { return p.lit.BoundB }

// Dim returns the configured secret dimension (k for LPN, n for LWE).
func (p Params) Dim() int { return p.dim }

// New validates lit and fills in the documented defaults (D=2, QCap=5,
// T1=1, T2=1, BoundB=5), returning a Params a driver can pass to
// bkwlab.SolveLPN or bkwlab.SolveLWE. All failures are "configuration" kind (spec §7) and fail
// fast here rather than surfacing mid-solve.
func New(lit Literal) (Params, error) {
	if lit.D == 0 {
		lit.D = 2
	}
	if lit.QCap == 0 {
		lit.QCap = 5
	}
	if lit.T1 == 0 {
		lit.T1 = 1
	}
	if lit.T2 == 0 {
		lit.T2 = 1
	}
	if lit.BoundB == 0 {
		lit.BoundB = 5
	}

	var dim int
	switch lit.Type {
	case LPN:
		dim = lit.K
		if lit.K <= 0 {
			return Params{}, fmt.Errorf("%w: k must be positive, got %d", ErrConfig, lit.K)
		}
		if lit.Tau < 0 || lit.Tau >= 0.5 {
			return Params{}, fmt.Errorf("%w: tau must satisfy 0 <= tau < 0.5, got %v", ErrConfig, lit.Tau)
		}
	case LWE:
		dim = lit.N
		if lit.N <= 0 {
			return Params{}, fmt.Errorf("%w: n must be positive, got %d", ErrConfig, lit.N)
		}
		if lit.Q <= 1 {
			return Params{}, fmt.Errorf("%w: q must be > 1, got %d", ErrConfig, lit.Q)
		}
		if lit.Sigma <= 0 && lit.Sigma != 0 {
			// sigma == 0 is the noiseless test scenario (spec §8 law);
			// anything negative is a configuration mistake.
			return Params{}, fmt.Errorf("%w: sigma must be >= 0, got %v", ErrConfig, lit.Sigma)
		}
	default:
		return Params{}, fmt.Errorf("%w: unknown problem type %d", ErrConfig, lit.Type)
	}

	if lit.A <= 0 || lit.B <= 0 {
		return Params{}, fmt.Errorf("%w: a and b must be positive, got a=%d b=%d", ErrConfig, lit.A, lit.B)
	}
	if lit.A*lit.B != dim {
		return Params{}, fmt.Errorf("%w: a*b must equal the secret dimension (%d*%d != %d)", ErrConfig, lit.A, lit.B, dim)
	}

	return Params{lit: lit, dim: dim}, nil
}

// ValidateSecret checks the invariants spec §3 places on the ground-truth
// secret used by the accuracy oracle: len(secret) == dim, and for LWE
// every coordinate in [0, q).
func (p Params) ValidateSecret(secret []int) error {
	if len(secret) != p.dim {
		return fmt.Errorf("%w: secret has length %d, want %d", ErrConfig, len(secret), p.dim)
	}
	if p.lit.Type == LWE {
		for i, v := range secret {
			if v < 0 || v >= p.lit.Q {
				return fmt.Errorf("%w: secret[%d]=%d out of range [0,%d)", ErrConfig, i, v, p.lit.Q)
			}
		}
	}
	return nil
}
