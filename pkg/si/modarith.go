package si

import "math/bits"

// mask returns 2^w - 1 for 0 < w <= 64.
func mask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(w)) - 1
}

// madd computes (a+b) mod 2^w. Go's unsigned addition already wraps mod
// 2^64, so masking the sum to w bits is sufficient for any w <= 64.
func madd(a, b uint64, w int) uint64 {
	return (a + b) & mask(w)
}

// msub computes (a-b) mod 2^w.
func msub(a, b uint64, w int) uint64 {
	return (a - b) & mask(w)
}

// mmul computes (a*b) mod 2^w. Go's unsigned multiplication wraps mod 2^64,
// and masking by 2^w-1 afterward yields the same result as multiplying mod
// 2^w directly, since 2^w | 2^64 for all w <= 64.
func mmul(a, b uint64, w int) uint64 {
	return (a * b) & mask(w)
}

// msb reports whether v's bit w-1 is set.
func msb(v uint64, w int) bool {
	return v&(uint64(1)<<uint(w-1)) != 0
}

// toSigned reinterprets a w-bit unsigned value as signed two's-complement.
func toSigned(v uint64, w int) int64 {
	v &= mask(w)
	if w == 64 {
		return int64(v)
	}
	if !msb(v, w) {
		return int64(v)
	}
	return int64(v) - (int64(1) << uint(w))
}

// lexLT reports x < y under the unsigned w-bit interpretation.
func lexLT(x, y uint64, w int) bool {
	return (x & mask(w)) < (y & mask(w))
}

// lexLTE reports x <= y under the unsigned w-bit interpretation.
func lexLTE(x, y uint64, w int) bool {
	return (x & mask(w)) <= (y & mask(w))
}

// minBits returns the smallest bit width that can represent v as an
// unsigned integer. This sidesteps the floating-point log round-off the
// original Python min_bits compensated for near the 64-bit boundary by
// using bits.Len64 directly, which is exact; the explicit high branch below
// preserves the documented boundary value (64) for completeness.
func minBits(v uint64) int {
	if v == 0 {
		return 1
	}
	if v > 0xfffffffffffe0000 {
		return 64
	}
	return bits.Len64(v)
}

// highBit returns 1 << (k-1).
func highBit(k int) uint64 {
	return uint64(1) << uint(k-1)
}

// maxInt returns 2^k - 1, the largest unsigned value representable in k bits.
func maxInt(k int) uint64 {
	return mask(k)
}

// minInt returns -2^(k-1), the most negative signed value representable in
// k bits, used only in sign-domain contexts.
func minInt(k int) int64 {
	return -(int64(1) << uint(k-1))
}

// signMaxInt returns 2^(k-1) - 1, the largest signed value representable in
// k bits.
func signMaxInt(k int) uint64 {
	return highBit(k) - 1
}

// wrappedCardinalityMinusOne returns (wrapped_cardinality(x, y, w) - 1),
// which always fits a uint64 even when the true cardinality is 2^w (the
// full ring): 2^w - 1 equals mask(w), and otherwise it's (y-x) mod 2^w.
func wrappedCardinalityMinusOne(x, y uint64, w int) uint64 {
	if x == madd(y, 1, w) {
		return mask(w)
	}
	return msub(y, x, w)
}

// gcdU64 returns the greatest common divisor of a and b, treating 0 as the
// identity (gcd(0,b)=b, gcd(a,0)=a).
func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// gcdAll returns the gcd across all given values, ignoring none (0 acts as
// identity per gcdU64).
func gcdAll(vs ...uint64) uint64 {
	var g uint64
	for _, v := range vs {
		g = gcdU64(g, v)
	}
	return g
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
