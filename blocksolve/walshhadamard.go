package blocksolve

import (
	"fmt"

	"github.com/jteck44/bkw-lab/bkwlog"
	"github.com/jteck44/bkw-lab/ring"
	"github.com/jteck44/bkw-lab/sample"
)

// WalshHadamard is the LF1 LPN block solver (spec §4.3.2): it builds the
// signed indicator function f over 2^b points, transforms it, and
// decodes the maximum-correlation index as the big-endian block bits.
type WalshHadamard struct{}

func (WalshHadamard) Solve(pool []sample.Sample[uint8], start, end int, sink bkwlog.Sink) []uint8 {
	b := end - start
	size := 1 << b
	f := make([]int64, size)

	for _, s := range pool {
		window := s.V[start:end]
		idx := bigEndianIndex(window)
		if s.C == 1 {
			f[idx]--
		} else {
			f[idx]++
		}
	}

	spectrum := ring.WHT(f)
	maxIdx := ring.ArgMaxAbs(spectrum)

	emit(sink, bkwlog.Info, fmt.Sprintf("walsh-hadamard maximum at index %d (|f^|=%d)", maxIdx, absInt64(spectrum[maxIdx])))

	return decodeBigEndian(maxIdx, b)
}

func bigEndianIndex(window []uint8) int {
	idx := 0
	for i, bit := range window {
		idx |= int(bit) << (len(window) - 1 - i)
	}
	return idx
}

func decodeBigEndian(idx, b int) []uint8 {
	out := make([]uint8, b)
	for i := 0; i < b; i++ {
		out[i] = uint8((idx >> (b - 1 - i)) & 1)
	}
	return out
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
