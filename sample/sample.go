// Package sample implements spec §3's data model: the (v, c) Sample pair
// and the LPN/LWE Instance types that own the hidden secret and generate
// noisy samples against it. This is the "fixed, trivial collaborator"
// spec §1 carves out of the core's scope — but per this project's
// standing rule that ambient/collaborator code still follows the
// teacher's idiom, it is built the same way the teacher builds its own
// samplers (core/ring.GaussianSampler, core/ring.TernarySampler): a
// small instance struct whose GenerateSamples method draws from an
// injected Source.
package sample

// Sample is a single (v, c) pair over the ring R (GF(2) for LPN,
// Z/qZ for LWE). T is the coordinate type; the reducer and block
// solvers are generic over it via ring.Elem.
type Sample[T any] struct {
	V []T
	C T
}

// Clone returns a deep copy of s. The reducer treats samples as owned
// values it may freely mutate, so every pool it starts from is built out
// of Clone calls rather than aliasing the caller's slices.
func (s Sample[T]) Clone() Sample[T] {
	v := make([]T, len(s.V))
	copy(v, s.V)
	return Sample[T]{V: v, C: s.C}
}

// ClonePool deep-copies every sample in pool.
func ClonePool[T any](pool []Sample[T]) []Sample[T] {
	out := make([]Sample[T], len(pool))
	for i, s := range pool {
		out[i] = s.Clone()
	}
	return out
}
