package skipnav

import "time"

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is a xorshift generator used for level assignment. It is not safe for
// concurrent use.
type RNG struct {
	seed uint64
}

func newRNG() *RNG {
	return newRNGWithSeed(0)
}

func newRNGWithSeed(seed uint64) *RNG {
	if seed == 0 {
		seed = newRandomSeed()
	}
	return &RNG{seed: seed}
}

func (r *RNG) nextRandom64() uint64 {
	x := r.seed
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.seed = x
	return x * 2685821657736338717
}

// intn returns a uniform value in [0, n). n must be positive.
func (r *RNG) intn(n int) int {
	hi := r.nextRandom64() >> 32
	return int((hi * uint64(n)) >> 32)
}

// UniformLevel returns a height drawn uniformly from [1, maxHeight-1], or 1
// when maxHeight leaves no room for a choice.
func (r *RNG) UniformLevel(maxHeight int) int {
	if maxHeight <= 2 {
		return 1
	}
	return 1 + r.intn(maxHeight-1)
}
