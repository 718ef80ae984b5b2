package sample

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Source is the randomness contract LPNInstance and LWEInstance sample
// generation draws on: a uniform integer in [0,n), a uniform float64 in
// [0,1) (used for the Bernoulli noise draw), and a standard normal
// deviate (used for the rounded-Gaussian noise draw). Keeping this as an
// interface, rather than hard-wiring crypto/rand, is what lets the test
// suite swap in a seeded, reproducible source without touching the
// instance types — mirroring how the teacher's samplers are all methods
// on an injected *Context/PRNG rather than reaching for a package-level
// random source.
type Source interface {
	Intn(n int) int
	Float64() float64
	NormFloat64() float64
}

// byteSource is a Source built over a stream of bytes, refilled in
// fixed-size chunks exactly as ring.CRPGenerator.Clock refills its
// internal sum buffer: read a block, consume it 8 bytes at a time,
// refill once exhausted.
type byteSource struct {
	read func(p []byte) (int, error)
	buf  []byte
	pos  int
}

const refillSize = 4096

func newByteSource(read func([]byte) (int, error)) *byteSource {
	return &byteSource{read: read, buf: make([]byte, refillSize), pos: refillSize}
}

func (s *byteSource) next8() uint64 {
	if s.pos+8 > len(s.buf) {
		if _, err := s.read(s.buf); err != nil {
			panic("sample: randomness source failed: " + err.Error())
		}
		s.pos = 0
	}
	v := binary.BigEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8
	return v
}

// Intn returns a uniform value in [0,n) via rejection sampling against
// the smallest mask covering n, so the distribution stays exactly
// uniform regardless of n.
func (s *byteSource) Intn(n int) int {
	if n <= 0 {
		panic("sample: Intn with n <= 0")
	}
	mask := uint64(1)
	for mask < uint64(n) {
		mask <<= 1
	}
	mask--
	for {
		v := s.next8() & mask
		if v < uint64(n) {
			return int(v)
		}
	}
}

// Float64 returns a uniform value in [0,1) with 53 bits of precision,
// the same width as math/rand.Float64.
func (s *byteSource) Float64() float64 {
	const mantissaBits = 53
	v := s.next8() >> (64 - mantissaBits)
	return float64(v) / float64(uint64(1)<<mantissaBits)
}

// NormFloat64 draws a standard normal deviate via the Box-Muller
// transform over two Float64 draws. BKW's noise doubles at every
// reduction step, so generation need not be constant-time or
// side-channel hardened — this is a teaching lab, not a production
// sampler.
func (s *byteSource) NormFloat64() float64 {
	u1 := s.Float64()
	if u1 < 1e-300 {
		u1 = 1e-300
	}
	u2 := s.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// UniformSource returns a Source backed by crypto/rand: non-deterministic,
// suitable for generating the oracle samples a real driver would feed to
// Solve (spec §6's "sample oracle").
func UniformSource() Source {
	return newByteSource(func(p []byte) (int, error) { return rand.Read(p) })
}

// GaussianSource is an alias for UniformSource kept distinct at the call
// site so LWEInstance.GenerateSamples reads as drawing from a noise
// source even though the underlying byte stream is the same CSPRNG.
func GaussianSource() Source { return UniformSource() }

// KeyedSource returns a Source deterministically derived from key via a
// keyed BLAKE2Xb XOF (golang.org/x/crypto/blake2b), the same construction
// family as the teacher's blake2b-keyed ring.CRPGenerator. Two
// KeyedSources built from the same key produce the same sample stream,
// which is what lets tests assert the reducer's "successive runs on the
// same input produce the same output" property (spec §4.2).
func KeyedSource(key []byte) Source {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		panic("sample: blake2b.NewXOF: " + err.Error())
	}
	return newByteSource(xof.Read)
}

// DeterministicSource returns a Source seeded from a short, human-typed
// label via a keyed BLAKE3 XOF rather than BLAKE2Xb — used by this
// module's own tests (see sample_test.go) where a memorable seed string
// is more convenient than a raw key. It is otherwise interchangeable
// with KeyedSource.
func DeterministicSource(seed string) Source {
	h, err := blake3.NewKeyed(padKey([]byte(seed)))
	if err != nil {
		panic("sample: blake3.NewKeyed: " + err.Error())
	}
	digest := h.Digest()
	return newByteSource(digest.Read)
}

// padKey pads/truncates seed to blake3's required 32-byte key length.
func padKey(seed []byte) []byte {
	key := make([]byte, 32)
	copy(key, seed)
	return key
}
