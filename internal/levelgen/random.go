package levelgen

import "math"

// Random is the generator's deterministic number stream. Each draw takes
// the fractional part of sin(seed)*10000 and advances seed by one, so the
// same seed always yields the same sequence on a given platform.
//
// It is not a good PRNG and is only used for level layout; the session
// owns a separate math/rand source for everything else.
type Random struct {
	seed float64
}

// NewRandom returns a stream starting at seed.
func NewRandom(seed float64) *Random {
	return &Random{seed: seed}
}

// Next returns a value in [0, 1).
func (r *Random) Next() float64 {
	x := math.Sin(r.seed) * 10000
	r.seed++
	return x - math.Floor(x)
}

// Range returns a value in [min, max).
func (r *Random) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// Bool returns true with probability p.
func (r *Random) Bool(p float64) bool {
	return r.Next() < p
}
