package si

import (
	"math/big"

	"github.com/oisee/strided-interval/pkg/si/diag"
)

func bigFromU64(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

func bigModToUint(v *big.Int, w int) uint64 {
	m := new(big.Int).Lsh(big.NewInt(1), uint(w))
	r := new(big.Int).Mod(v, m)
	return r.Uint64()
}

func topWithUninit(bits int, uninit bool) *SI {
	t := Top(bits)
	t.uninit = uninit
	return t
}

// wrappedOverflow reports whether the sum of a and b's cardinalities
// exceeds the representable range of their (shared) width, per add/sub's
// overflow discipline.
func wrappedOverflow(a, b *SI) bool {
	sum := new(big.Int).Add(a.Cardinality(), b.Cardinality())
	limit := bigFromU64(maxInt(a.bits))
	return sum.Cmp(limit) > 0
}

// Add returns a + b, widening mismatched widths via AgnosticExtend first.
func Add(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	w := a.bits
	if wrappedOverflow(a, b) {
		return topWithUninit(w, combineUninit(a, b))
	}
	stride := gcdAll(a.stride, b.stride)
	if stride == 0 {
		stride = 1
	}
	r := Range(w, madd(a.lb, b.lb, w), madd(a.ub, b.ub, w), stride)
	r.uninit = combineUninit(a, b)
	return r
}

// Sub returns a - b, widening mismatched widths via AgnosticExtend first.
func Sub(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	w := a.bits
	if wrappedOverflow(a, b) {
		return topWithUninit(w, combineUninit(a, b))
	}
	stride := gcdAll(a.stride, b.stride)
	if stride == 0 {
		stride = 1
	}
	r := Range(w, msub(a.lb, b.ub, w), msub(a.ub, b.lb, w), stride)
	r.uninit = combineUninit(a, b)
	return r
}

// Neg returns 0 - x.
func Neg(x *SI) *SI {
	if x.bottom {
		return Empty(x.bits)
	}
	r := Range(x.bits, msub(0, x.ub, x.bits), msub(0, x.lb, x.bits), x.stride)
	r.uninit = x.uninit
	return r
}

// productStride approximates the stride of a product of two pieces: exact
// when one side is a scalar (stride=0), a gcd of the three cross terms
// otherwise (the same cross-term gcd widely used for strided-interval
// multiplication in the wrapped-interval literature).
func productStride(p, q *SI, w int) uint64 {
	switch {
	case p.stride == 0 && q.stride == 0:
		return 0
	case p.stride == 0:
		return mmul(q.stride, p.lb, w)
	case q.stride == 0:
		return mmul(p.stride, q.lb, w)
	default:
		return gcdU64(mmul(p.stride, q.lb, w), gcdU64(mmul(q.stride, p.lb, w), mmul(p.stride, q.stride, w)))
	}
}

// wrappedUnsignedMul computes the unsigned wrapped product of two
// non-wrapping pieces, returning TOP if the true product's span would
// exceed the representable ring.
func wrappedUnsignedMul(p, q *SI, w int) *SI {
	low := new(big.Int).Mul(bigFromU64(p.lb), bigFromU64(q.lb))
	high := new(big.Int).Mul(bigFromU64(p.ub), bigFromU64(q.ub))
	span := new(big.Int).Sub(high, low)
	ring := new(big.Int).Lsh(big.NewInt(1), uint(w))
	if span.Sign() < 0 || span.Cmp(ring) >= 0 {
		return Top(w)
	}
	return Range(w, mmul(p.lb, q.lb, w), mmul(p.ub, q.ub, w), productStride(p, q, w))
}

// wrappedSignedMul computes the signed wrapped product of two
// north-pole-split pieces via the four corner products (equivalent to the
// original's four sign-quadrant case split, since each piece's sign is
// uniform), returning TOP if the true product's span exceeds the ring.
func wrappedSignedMul(p, q *SI, w int) *SI {
	pLo, pHi := big.NewInt(toSigned(p.lb, w)), big.NewInt(toSigned(p.ub, w))
	qLo, qHi := big.NewInt(toSigned(q.lb, w)), big.NewInt(toSigned(q.ub, w))
	corners := []*big.Int{
		new(big.Int).Mul(pLo, qLo),
		new(big.Int).Mul(pLo, qHi),
		new(big.Int).Mul(pHi, qLo),
		new(big.Int).Mul(pHi, qHi),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c.Cmp(lo) < 0 {
			lo = c
		}
		if c.Cmp(hi) > 0 {
			hi = c
		}
	}
	span := new(big.Int).Sub(hi, lo)
	ring := new(big.Int).Lsh(big.NewInt(1), uint(w))
	if span.Cmp(ring) >= 0 {
		return Top(w)
	}
	return Range(w, bigModToUint(lo, w), bigModToUint(hi, w), productStride(p, q, w))
}

// Mul returns a * b. Singletons multiply exactly (mod 2^w); otherwise both
// operands are pole-split, every piece pair contributes the meet of its
// unsigned and signed wrapped products, and the pieces join via LUB. sink
// may be nil; overflow is reported there when non-nil.
func Mul(a, b *SI, sink *diag.Sink) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	w := a.bits
	if a.IsInteger() && b.IsInteger() {
		full := new(big.Int).Mul(bigFromU64(a.lb), bigFromU64(b.lb))
		limit := new(big.Int).Lsh(big.NewInt(1), uint(w))
		if full.Cmp(limit) >= 0 {
			sink.Warn("mul", diag.Overflow, "%s * %s overflows %d bits", a, b, w)
		}
		r := Singleton(w, mmul(a.lb, b.lb, w))
		r.uninit = combineUninit(a, b)
		return r
	}
	piecesA := psplit(a)
	piecesB := psplit(b)
	var acc []*SI
	for _, p := range piecesA {
		for _, q := range piecesB {
			up := wrappedUnsignedMul(p, q, w)
			sp := wrappedSignedMul(p, q, w)
			for _, meet := range Intersection(up, sp) {
				if !meet.IsBottom() {
					acc = append(acc, meet)
				}
			}
		}
	}
	if len(acc) == 0 {
		acc = append(acc, Empty(w))
	}
	result := Union(acc...)
	if result.IsTop() {
		sink.Warn("mul", diag.Overflow, "product of %s and %s collapsed to TOP", a, b)
	}
	result.uninit = combineUninit(a, b)
	return result
}

// Udiv returns the unsigned wrapped quotient a/b. Division by the exact
// singleton zero returns BOTTOM.
func Udiv(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	w := a.bits
	if b.IsInteger() && b.lb == 0 {
		return Empty(w)
	}
	var acc []*SI
	for _, p := range ssplit(a) {
		for _, q := range ssplit(b) {
			lo, hi := q.lb, q.ub
			if lo == 0 {
				lo = 1
			}
			if lo > hi {
				continue
			}
			acc = append(acc, Range(w, p.lb/hi, p.ub/lo, 1))
		}
	}
	if len(acc) == 0 {
		acc = append(acc, Empty(w))
	}
	result := Union(acc...)
	result.uninit = combineUninit(a, b)
	return result
}

// divisorSignedRanges returns b's north-pole-split pieces as signed bound
// pairs, splitting any piece that straddles zero and dropping the exact
// zero value (division's "increment past zero" discipline).
func divisorSignedRanges(b *SI, w int) [][2]int64 {
	var out [][2]int64
	for _, piece := range nsplit(b) {
		lo, hi := toSigned(piece.lb, w), toSigned(piece.ub, w)
		if lo == 0 && hi == 0 {
			continue
		}
		if lo <= 0 && hi >= 0 {
			if lo < 0 {
				out = append(out, [2]int64{lo, -1})
			}
			if hi > 0 {
				out = append(out, [2]int64{1, hi})
			}
		} else {
			out = append(out, [2]int64{lo, hi})
		}
	}
	return out
}

// Sdiv returns the signed wrapped quotient a/b. Division by the exact
// singleton zero returns BOTTOM.
func Sdiv(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	w := a.bits
	if b.IsInteger() && b.lb == 0 {
		return Empty(w)
	}
	var acc []*SI
	for _, p := range psplit(a) {
		pLo, pHi := toSigned(p.lb, w), toSigned(p.ub, w)
		for _, qr := range divisorSignedRanges(b, w) {
			qLo, qHi := qr[0], qr[1]
			corners := [4]int64{pLo / qLo, pLo / qHi, pHi / qLo, pHi / qHi}
			lo, hi := corners[0], corners[0]
			for _, c := range corners[1:] {
				if c < lo {
					lo = c
				}
				if c > hi {
					hi = c
				}
			}
			acc = append(acc, Range(w, uint64(lo)&mask(w), uint64(hi)&mask(w), 1))
		}
	}
	if len(acc) == 0 {
		acc = append(acc, Empty(w))
	}
	result := Union(acc...)
	result.uninit = combineUninit(a, b)
	return result
}

// Mod returns a remainder b. Exact when both operands are singletons;
// otherwise the coarse over-approximation 1[0, ub_b-1].
func Mod(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	w := a.bits
	if b.IsInteger() && b.lb == 0 {
		return Empty(w)
	}
	if a.IsInteger() && b.IsInteger() {
		r := Singleton(w, a.lb%b.lb)
		r.uninit = combineUninit(a, b)
		return r
	}
	result := Range(w, 0, msub(b.ub, 1, w), 1)
	result.uninit = combineUninit(a, b)
	return result
}

// Add returns s + o.
func (s *SI) Add(o *SI) *SI { return Add(s, o) }

// Sub returns s - o.
func (s *SI) Sub(o *SI) *SI { return Sub(s, o) }

// Neg returns 0 - s.
func (s *SI) Neg() *SI { return Neg(s) }

// Mul returns s * o. sink may be nil.
func (s *SI) Mul(o *SI, sink *diag.Sink) *SI { return Mul(s, o, sink) }

// Udiv returns the unsigned quotient s / o.
func (s *SI) Udiv(o *SI) *SI { return Udiv(s, o) }

// Sdiv returns the signed quotient s / o.
func (s *SI) Sdiv(o *SI) *SI { return Sdiv(s, o) }

// Mod returns s % o.
func (s *SI) Mod(o *SI) *SI { return Mod(s, o) }
