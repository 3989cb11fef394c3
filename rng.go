package dlx

// Rng is the 13/17/5 xorshift generator from Marsaglia's "Xorshift
// RNGs". It is part of the engine's contract, not an implementation
// detail: swapping in math/rand would change the bit sequence and with
// it every seed-determined solution order under OptOrder's Rnd variant
// and the random tie-break policy.
type Rng struct {
	state uint32
}

// NewRng constructs a generator from a nonzero seed.
func NewRng(seed uint32) *Rng {
	if seed == 0 {
		panic("dlx: rng seed must be nonzero")
	}
	return &Rng{state: seed}
}

// Next advances the generator and returns the next raw 32-bit value.
func (r *Rng) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uniform returns a value in [0, max) with no modulo bias, by rejecting
// draws that would fall in the final partial bucket of [0, 2^31).
func (r *Rng) Uniform(max uint32) uint32 {
	t := uint32(0x80000000) - (0x80000000 % max)
	var v uint32
	for {
		v = r.Next()
		if t > v {
			break
		}
	}
	return v % max
}
