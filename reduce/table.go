package reduce

import "github.com/jteck44/bkw-lab/ring"

// packKey packs a block-window tuple into a fixed-width integer key,
// big-endian, per spec §9 ("pack into a fixed-width integer... to avoid
// tuple hashing overhead"). bitsPerElem must be large enough to hold
// every possible coordinate value (1 for GF(2), ceil(log2(q)) for
// Z/qZ); b is small in every teaching configuration (<= ~8), so the
// packed key always fits comfortably in a uint64.
func packKey[T ring.Elem](v []T, bitsPerElem uint) uint64 {
	var key uint64
	for _, x := range v {
		key = (key << bitsPerElem) | uint64(x)
	}
	return key
}

// bitsFor returns the number of bits needed to represent any value in
// [0, q).
func bitsFor(q int) uint {
	bits := uint(1)
	for (1 << bits) < q {
		bits++
	}
	return bits
}

// allZero reports whether every entry of v is the zero value.
func allZero[T ring.Elem](v []T) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
