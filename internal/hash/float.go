package hash

import "math"

const (
	// floatHashBits is the width of the modulus used for numeric hashing.
	floatHashBits = 61
	// floatHashModulus is the Mersenne prime 2^61 - 1.
	floatHashModulus = (uint64(1) << floatHashBits) - 1
	// floatHashInf is the hash of positive infinity.
	floatHashInf = 314159
)

// Float64 returns the numeric hash of v.
//
// The value is reduced modulo 2^61-1 so that a float holding an integral
// value hashes like that integer. NaN hashes to 0 and -1 is reserved, so a
// result of -1 is reported as -2.
func Float64(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return floatHashInf
	case math.IsInf(v, -1):
		return -floatHashInf
	}

	m, e := math.Frexp(v)
	sign := int64(1)
	if m < 0 {
		sign = -1
		m = -m
	}

	// Consume the mantissa 28 bits at a time, rotating the accumulator
	// within the 61-bit modulus.
	var x uint64
	for m != 0 {
		x = ((x << 28) & floatHashModulus) | x>>(floatHashBits-28)
		m *= 268435456.0 // 2**28
		e -= 28
		y := uint64(m)
		m -= float64(y)
		x += y
		if x >= floatHashModulus {
			x -= floatHashModulus
		}
	}

	// Multiplying by 2**e modulo 2^61-1 is a rotation by e mod 61.
	if e >= 0 {
		e %= floatHashBits
	} else {
		e = floatHashBits - 1 - ((-1 - e) % floatHashBits)
	}
	x = ((x << uint(e)) & floatHashModulus) | x>>(floatHashBits-uint(e))

	h := int64(x) * sign
	if h == -1 {
		h = -2
	}
	return h
}
