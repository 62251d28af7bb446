package seqhash

// Modulus bounds the accumulator: 2 << 29 == 1 << 30.
const Modulus int64 = 2 << 29

// Modulus is a power of two, so for non-negative x,
// x % Modulus == x & mask.
const mask = Modulus - 1

// Hash runs the rolling hash over the descending
// sequence value, value-1, ..., 1, starting the
// accumulator at seed. Each step computes
//
//	h = ((h << 5) - h + v) mod Modulus
//
// which is h*31 + v reduced once per step.
//
// The modulus is floored: the result of any step is
// in [0, Modulus) even when seed is negative.
//
// When value <= 0 no step runs and seed comes back as is.
func Hash(value, seed int64) int64 {
	if value <= 0 {
		return seed
	}
	// the step only depends on h mod Modulus, so
	// reducing up front keeps 31*h inside int64.
	// After that every intermediate is non-negative
	// and the mask is the floored modulus.
	h := floorMod(seed)
	for v := value; v > 0; v-- {
		h = (h<<5 - h + v&mask) & mask
	}
	return h
}

// floorMod returns x mod Modulus in [0, Modulus).
func floorMod(x int64) int64 {
	r := x % Modulus
	if r < 0 {
		r += Modulus
	}
	return r
}
