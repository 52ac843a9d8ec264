package breakout

import "fmt"

// RNG is the random source used for power-up spawning and particles.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// It has a single uint64 of state so snapshots can capture it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits have a much longer period than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float32 returns a random value in [0, 1).
func (r *SimpleRNG) Float32() float32 {
	return float32(r.Next()>>40) / float32(1<<24)
}

// State returns the generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores a state previously returned by State.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}

// assert panics when an internal invariant is broken. These are programmer
// errors, not conditions a caller can recover from.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("breakout: "+format, args...))
	}
}
