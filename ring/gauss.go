package ring

import "math"

// foldWidth is the number of q-translates summed on either side of x by
// GaussPDF, matching the folded discrete Gaussian of spec §4.1.
const foldWidth = 3

// logFloor is the sentinel LogLikelihood returns once the folded density
// drops below the 1e-20 cutoff; it exists purely to discriminate
// "impossible" candidates from merely unlikely ones without computing
// log(0).
const logFloor = -1000

// densityFloor is the cutoff below which LogLikelihood substitutes
// logFloor instead of taking a real logarithm.
const densityFloor = 1e-20

// GaussPDF evaluates the folded discrete Gaussian density used as the
// noise model for LWE's Gaussian hypothesis test: the sum over the
// seven nearest aliases of x modulo q,
//
//	sum_{k=-3..3} N(x+k*q; 0, sigma^2)
func GaussPDF(x, sigma float64, q int) float64 {
	if sigma <= 0 {
		// The sigma=0 "noiseless" test scenarios (spec §8) take the
		// zero-variance limit of the Gaussian as a Dirac delta at every
		// alias of 0 mod q: density 1 where the folded x is exactly 0,
		// density 0 elsewhere. This keeps LogLikelihood well-defined
		// instead of dividing by zero.
		for k := -foldWidth; k <= foldWidth; k++ {
			if x+float64(k)*float64(q) == 0 {
				return 1
			}
		}
		return 0
	}

	total := 0.0
	coef := 1.0 / (sigma * math.Sqrt2 * math.SqrtPi)
	for k := -foldWidth; k <= foldWidth; k++ {
		d := x + float64(k)*float64(q)
		total += coef * math.Exp(-(d*d)/(2*sigma*sigma))
	}
	return total
}

// LogLikelihood scores an observed error under GaussPDF, returning
// log(pdf(error)*q), or logFloor when the density is below
// densityFloor. Multiplying by q before taking the log turns the
// per-point density into a log-probability-mass comparable across
// candidates regardless of modulus, matching the original solver's
// scoring rule.
func LogLikelihood(errVal, sigma float64, q int) float64 {
	pdf := GaussPDF(errVal, sigma, q)
	if pdf < densityFloor {
		return logFloor
	}
	return math.Log(pdf * float64(q))
}
