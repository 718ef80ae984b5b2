package ring

// WHT computes the Walsh-Hadamard transform of f in place of a fresh
// slice, using the standard even/odd divide-and-conquer: split f into
// even- and odd-indexed halves, transform each, then combine each pair
// (even[i]+odd[i], even[i]-odd[i]) into positions 2i and 2i+1, which
// leaves the spectrum in natural order: out[i] = sum_j (-1)^popcount(i&j) f[j].
// len(f) must be a power of two.
//
// Applying WHT twice and dividing by len(f) returns the original input
// (spec §8's round-trip invariant); WHT itself is only ever consulted
// via argmax |f̂[i]| by the LF1 block solver.
func WHT(f []int64) []int64 {
	n := len(f)
	if n == 1 {
		out := make([]int64, 1)
		out[0] = f[0]
		return out
	}

	h := n / 2
	even := make([]int64, h)
	odd := make([]int64, h)
	for i := 0; i < h; i++ {
		even[i] = f[2*i]
		odd[i] = f[2*i+1]
	}

	fEven := WHT(even)
	fOdd := WHT(odd)

	out := make([]int64, n)
	for i := 0; i < h; i++ {
		out[2*i] = fEven[i] + fOdd[i]
		out[2*i+1] = fEven[i] - fOdd[i]
	}
	return out
}

// ArgMaxAbs returns the index of the entry of f with largest absolute
// value, breaking ties toward the first occurrence.
func ArgMaxAbs(f []int64) int {
	best := 0
	bestAbs := abs64(f[0])
	for i := 1; i < len(f); i++ {
		if a := abs64(f[i]); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	return best
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
