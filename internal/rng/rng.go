// Package rng provides the seeded random stream every stochastic decision
// draws from. Streams serialise their exact position so a restored game
// continues the same sequence.
package rng

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
)

// Source is the minimal interface consumers depend on.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Stream is a PCG-backed Source whose state can be saved and restored.
type Stream struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// seedMix decorrelates the second PCG word from the first.
const seedMix = 0x9e3779b97f4a7c15

// New returns a stream seeded from seed.
func New(seed int64) *Stream {
	pcg := rand.NewPCG(uint64(seed), uint64(seed)^seedMix)
	return &Stream{pcg: pcg, r: rand.New(pcg)}
}

// IntN returns a value in [0, n). n must be positive.
func (s *Stream) IntN(n int) int { return s.r.IntN(n) }

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// State encodes the stream position as base64.
func (s *Stream) State() (string, error) {
	b, err := s.pcg.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("marshal rng: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Restore rewinds the stream to a position produced by State.
func (s *Stream) Restore(state string) error {
	b, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return fmt.Errorf("decode rng state: %w", err)
	}
	if err := s.pcg.UnmarshalBinary(b); err != nil {
		return fmt.Errorf("unmarshal rng: %w", err)
	}
	return nil
}

// Range returns an integer in [lo, hi]. When hi < lo it returns lo.
func Range(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Shuffle permutes n elements with a Fisher-Yates pass driven by src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, src.IntN(i+1))
	}
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
