// Package dice provides the deterministic random source used by chunk generation.
//
// A Seed is a 64-bit xorshift stream plus the immutable origin it was created
// from. Rolls advance the stream; derivations are computed from the origin alone,
// so two callers holding different stream positions still agree on derived seeds.
package dice

import (
	"math/bits"
)

// fibonacci is 2^64 divided by the golden ratio.
const fibonacci uint64 = 11400714819323198485

// streamSalt separates At streams from Derive seeds for the same coordinates.
const streamSalt uint64 = 0x5bd1e9955bd1e995

// Seed is a deterministic random stream.
type Seed struct {
	State uint64 `json:"state"`
	Orig  uint64 `json:"orig"`
}

// NewSeed hashes v into a fresh seed whose state and origin are equal.
func NewSeed(v uint64) Seed {
	h := splitmix64(v)
	if h == 0 {
		h = fibonacci
	}
	return Seed{State: h, Orig: h}
}

// Restore rebuilds a seed from a previously saved state and origin.
func Restore(state, orig uint64) Seed {
	if state == 0 {
		state = fibonacci
	}
	return Seed{State: state, Orig: orig}
}

// Roll returns a value in [low, high], both inclusive, and advances the stream.
func (s *Seed) Roll(low, high int) int {
	v := s.next()
	if high <= low {
		return low
	}
	return fastrange(v, low, high)
}

// Derive returns an independent seed computed from the origin and coords.
// It never reads or advances the current stream position.
func (s Seed) Derive(coords ...int) Seed {
	h := s.mix(coords)
	return Seed{State: h, Orig: h}
}

// At returns a stream keyed by coords that keeps the origin, so derivations
// made through the returned seed match those made through s.
func (s Seed) At(coords ...int) Seed {
	h := splitmix64(s.mix(coords) ^ streamSalt)
	if h == 0 {
		h = fibonacci
	}
	return Seed{State: h, Orig: s.Orig}
}

// Fork returns a scratch copy of the current stream salted with salt. The
// receiver is not advanced.
func (s Seed) Fork(salt uint64) Seed {
	h := splitmix64(s.State ^ salt*fibonacci)
	if h == 0 {
		h = fibonacci
	}
	return Seed{State: h, Orig: s.Orig}
}

// QuadraticWeightedRoll returns a value in [0, high] where low values are
// quadratically more likely than high ones.
func (s *Seed) QuadraticWeightedRoll(high int) int {
	if high <= 0 {
		s.next()
		return 0
	}
	n := (high + 1) * (high + 1)
	r := s.Roll(0, n-1)
	return high - isqrt(r)
}

// Pow2WeightedRoll returns a value in [0, high] where each step down is twice
// as likely as the one above it.
func (s *Seed) Pow2WeightedRoll(high int) int {
	if high <= 0 {
		s.next()
		return 0
	}
	n := 1 << (high + 2)
	r := s.Roll(2, n-1)
	return high - (bits.Len64(uint64(r)) - 2)
}

func (s *Seed) next() uint64 {
	x := s.State
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.State = x
	return x
}

func (s Seed) mix(coords []int) uint64 {
	h := s.Orig
	for _, c := range coords {
		h = splitmix64(h ^ uint64(int64(c)+1)*fibonacci)
	}
	if h == 0 {
		h = fibonacci
	}
	return h
}

// fastrange maps v onto [low, high] with a multiply-shift reduction.
func fastrange(v uint64, low, high int) int {
	hi, _ := bits.Mul64(v, uint64(high-low+1))
	return int(hi) + low
}

func splitmix64(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
