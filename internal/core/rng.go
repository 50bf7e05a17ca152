package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with deterministic seeding for grid initialization.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint8n returns a random uint8 in [0, n). n == 0 spans the whole byte range.
func (r *RNG) Uint8n(n int) uint8 {
	if n <= 0 || n > 256 {
		n = 256
	}
	return uint8(r.r.IntN(n))
}

// FillUniform fills buf with values drawn uniformly from [0, n).
func (r *RNG) FillUniform(buf []uint8, n int) {
	for i := range buf {
		buf[i] = r.Uint8n(n)
	}
}
