package eval

// Rand is a minimal-standard (Park-Miller) linear congruential generator:
// the same small, deterministic PRNG the evaluator uses to jitter otherwise
// tied scores so repeated self-play games don't collapse into the same
// line every time. It is not cryptographically meaningful and is not
// goroutine-safe.
type Rand struct {
	state uint32
}

const (
	minstdA = 48271
	minstdM = 2147483647 // 2^31 - 1
)

// NewRand seeds the generator. A seed of 0 is remapped to 1, the smallest
// valid minstd state.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed % minstdM}
}

// Next advances the generator and returns the new state, in [1, minstdM-1].
func (r *Rand) Next() uint32 {
	r.state = uint32((uint64(r.state) * minstdA) % minstdM)
	return r.state
}

// Bits advances the generator and returns its top n bits of the 31-bit
// state, in [0, 2^n).
func (r *Rand) Bits(n uint) uint32 {
	return r.Next() >> (31 - n)
}

// jitterBits is the number of bits drawn per evaluation to perturb the
// score; the result is centered by subtracting half the range.
const jitterBits = 5

// Jitter draws jitterBits from the generator and returns a small signed
// value centered on zero, used to perturb a static score so equal-looking
// positions don't always resolve in the same order.
func (r *Rand) Jitter() int {
	const half = 1 << (jitterBits - 1)
	return int(r.Bits(jitterBits)) - half
}
