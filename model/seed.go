package model

import "math/rand/v2"

// Seeder produces the successive coin flips used to populate the first generation
type Seeder interface {
	Bernoulli() bool
}

// SeederFunc adapts a plain function to the Seeder interface
type SeederFunc func() bool

// Bernoulli calls f
func (f SeederFunc) Bernoulli() bool {
	return f()
}

// RandSeeder draws fair coin flips from a deterministic PCG stream
type RandSeeder struct {
	r *rand.Rand
}

// NewRandSeeder creates a seeder whose stream is fully determined by seed
func NewRandSeeder(seed int64) *RandSeeder {
	return &RandSeeder{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bernoulli returns the next fair coin flip of the stream
func (s *RandSeeder) Bernoulli() bool {
	return s.r.IntN(2) == 1
}
