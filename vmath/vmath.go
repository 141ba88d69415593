package vmath

import (
	"math"
	"math/bits"
	"time"
)

// Q32.32 Fixed Point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(math.Round(f * Scale)) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// FromDuration converts a duration to Q32.32 seconds
func FromDuration(d time.Duration) int64 {
	return MulDiv(int64(d), Scale, int64(time.Second))
}

// ToDuration converts Q32.32 seconds to a duration
func ToDuration(f int64) time.Duration {
	return time.Duration(MulDiv(f, int64(time.Second), Scale))
}

// Floor rounds toward negative infinity, result stays in Q32.32
func Floor(f int64) int64 {
	return f &^ Mask
}

// Frac returns the fractional part in [0, Scale)
func Frac(f int64) int64 {
	return f & Mask
}

func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient does not fit in 64 bits, saturate
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// MulDiv computes (a * b) / c with 128-bit intermediate
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uint64(c))
	r := int64(q)
	if neg {
		return -r
	}
	return r
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sqrt returns Q32.32 square root using Newton-Raphson
// Seed comes from the bit length so the iteration starts within 2x of the root
// and converges in a handful of steps for any input; result is deterministic
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}

	// sqrt(x / 2^32) * 2^32 = sqrt(x) * 2^16, bit length of result ~ (len(x)+32)/2
	n := bits.Len64(uint64(x))
	guess := int64(1) << ((n + Shift + 1) / 2)
	if guess <= 0 {
		guess = math.MaxInt64
	}

	for i := 0; i < 64; i++ {
		next := (guess + Div(x, guess)) >> 1
		if next >= guess {
			break
		}
		guess = next
	}
	return guess
}

// Lerp performs linear interpolation between a and b
// t is in [0, Scale] where 0 returns a, Scale returns b
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}
