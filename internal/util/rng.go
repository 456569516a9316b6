package util

import "math/rand"

// NewRand returns a deterministic source; seed 0 is treated as 1.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Jitter returns an offset pair with each axis in [-radius, radius].
func Jitter(r *rand.Rand, radius int) (int, int) {
	if radius <= 0 {
		return 0, 0
	}
	span := 2*radius + 1
	return r.Intn(span) - radius, r.Intn(span) - radius
}
