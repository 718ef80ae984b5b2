// Package ring implements the arithmetic kernel of the BKW solver: the
// handful of vector/scalar operations every reduction, block-solve and
// back-substitution step bottoms out in. It is named after the teacher
// library's own ring package, which plays the analogous role for
// polynomial-ring arithmetic in RLWE schemes — here the "ring" is either
// GF(2) (LPN) or Z/qZ (LWE), and there is no polynomial structure to
// exploit, only element-wise vector ops.
package ring

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Elem is any integer type a Sample coordinate or scalar may be stored
// in. LPN samples use small unsigned ints (bits); LWE samples use
// whatever width comfortably holds the modulus.
type Elem interface {
	constraints.Integer
}

// ErrEmptyMultiset is returned by Majority when given no candidates.
var ErrEmptyMultiset = errors.New("ring: majority of empty multiset")

// XOR computes the element-wise exclusive-or of two equal-length bit
// vectors. Used for LPN arithmetic, where R = GF(2).
func XOR[T Elem](a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// ModAdd computes the element-wise (a[i]+b[i]) mod q, non-negative.
func ModAdd[T Elem](a, b []T, q T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = modN(a[i]+b[i], q)
	}
	return out
}

// ModSub computes the element-wise (a[i]-b[i]) mod q, non-negative.
func ModSub[T Elem](a, b []T, q T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = modN(a[i]-b[i]+q, q)
	}
	return out
}

// modN reduces x into [0,q) for both signed and unsigned Elem types.
func modN[T Elem](x, q T) T {
	r := x % q
	if r < 0 {
		r += q
	}
	return r
}

// NegMod returns the element-wise (-v[i]) mod q, non-negative. Used by
// the LWE reducer to probe the opposite-sign partner of a table key.
func NegMod[T Elem](v []T, q T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = modN(-x, q)
	}
	return out
}

// HammingWeight counts the non-zero entries of v.
func HammingWeight[T Elem](v []T) int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}
	return n
}

// Majority returns the most frequent element of values, breaking ties by
// first-seen order. It fails on an empty slice.
func Majority[T comparable](values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, ErrEmptyMultiset
	}

	order := make([]T, 0, len(values))
	counts := make(map[T]int, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best := order[0]
	bestCount := counts[best]
	for _, v := range order[1:] {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, nil
}
