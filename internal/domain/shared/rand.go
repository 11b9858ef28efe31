package shared

import (
	"math/rand"
	"time"
)

// Rand is an abstraction for random draws, allowing outcomes to be fixed in tests.
// Every probabilistic operation in the domain (market generation, mission risk,
// encounter triggering, combat resolution) draws through this interface.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1)
	Float64() float64
	// Intn returns a uniform draw in [0, n)
	Intn(n int) int
}

// RealRand implements Rand backed by math/rand
type RealRand struct {
	src *rand.Rand
}

// Float64 returns a uniform draw in [0, 1)
func (r *RealRand) Float64() float64 {
	return r.src.Float64()
}

// Intn returns a uniform draw in [0, n)
func (r *RealRand) Intn(n int) int {
	return r.src.Intn(n)
}

// NewRealRand creates a RealRand seeded from the current time
func NewRealRand() Rand {
	return &RealRand{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRand creates a RealRand with a fixed seed (reproducible sessions)
func NewSeededRand(seed int64) Rand {
	return &RealRand{src: rand.New(rand.NewSource(seed))}
}

// SequenceRand implements Rand by replaying queued values, for tests that
// need exact control over each draw. When a queue runs out it falls back to
// the corresponding Fallback value.
type SequenceRand struct {
	Floats        []float64
	Ints          []int
	FallbackFloat float64
	FallbackInt   int
}

// Float64 pops the next queued float, or returns FallbackFloat
func (s *SequenceRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.FallbackFloat
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn pops the next queued int modulo n, or returns FallbackInt modulo n
func (s *SequenceRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if len(s.Ints) == 0 {
		return s.FallbackInt % n
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}
