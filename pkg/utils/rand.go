package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seedable random number generator. Every random decision in
// the bot goes through an injected RandSource so runs are reproducible.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed falls back to the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// IntnRange returns a random int in [min, max] inclusive
func (r *RandSource) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Int63 returns a non-negative random int64
func (r *RandSource) Int63() int64 {
	return r.rng.Int63()
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}
