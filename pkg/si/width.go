package si

import "github.com/oisee/strided-interval/pkg/si/diag"

// CastLow truncates x to its low t bits.
func CastLow(x *SI, t int) *SI {
	if x.bottom {
		return Empty(t)
	}
	w := x.bits
	if t == w {
		return x.copy()
	}
	if t > w {
		return ZeroExtend(x, t)
	}
	tm := mask(t)
	if x.stride != 0 && x.stride > tm {
		if x.stride&tm == 0 {
			return Singleton(t, x.lb&tm)
		}
		return Empty(t)
	}
	diff := msub(x.ub, x.lb, w)
	switch {
	case x.lb <= tm && x.ub <= tm:
		r := Range(t, x.lb, x.ub, x.stride)
		r.uninit = x.uninit
		return r
	case diff <= tm:
		r := Range(t, x.lb&tm, x.ub&tm, x.stride)
		r.uninit = x.uninit
		return r
	case (x.lb&tm) == (x.ub&tm) && diff%(tm+1) == 0:
		r := Singleton(t, x.lb&tm)
		r.uninit = x.uninit
		return r
	default:
		r := Top(t)
		r.uninit = x.uninit
		return r
	}
}

// Extract returns bits [high:low] of x, inclusive.
func Extract(x *SI, high, low int) *SI {
	if x.bottom {
		return Empty(high - low + 1)
	}
	shifted := Rshift(x, Singleton(x.bits, uint64(low)), false)
	return CastLow(shifted, high-low+1)
}

// ZeroExtend widens x to newW bits: each south-pole-split piece is copied
// verbatim into the wider width (its bounds are already < 2^bits(x) <=
// 2^newW, so no wrap is introduced) and the pieces are rejoined via LUB. The
// result is exact for a non-wrapping x; for a wrapping x the LUB of its two
// pieces also covers the values between them.
func ZeroExtend(x *SI, newW int) *SI {
	if x.bottom {
		return Empty(newW)
	}
	var acc []*SI
	for _, p := range ssplit(x) {
		acc = append(acc, Range(newW, p.lb, p.ub, p.stride))
	}
	result := Union(acc...)
	result.uninit = x.uninit
	return result
}

// SignExtend widens x to newW bits, sign-extending: x is north-pole-split,
// the extension bits are OR'd into both bounds of every piece whose lower
// bound is negative, and the pieces are rejoined via LUB. A piece that does
// not wrap the unsigned pole is uniformly non-negative or uniformly
// negative, so this is exact for it. A piece that wraps only the unsigned
// pole (negative lb, non-negative ub) is not split further; it gets the
// extension bits in both bounds, which over-approximates its non-negative
// part.
func SignExtend(x *SI, newW int) *SI {
	if x.bottom {
		return Empty(newW)
	}
	w := x.bits
	extMask := mask(newW) &^ mask(w)
	var acc []*SI
	for _, p := range nsplit(x) {
		lb, ub := p.lb, p.ub
		if msb(p.lb, w) {
			lb |= extMask
			ub |= extMask
		}
		acc = append(acc, Range(newW, lb, ub, p.stride))
	}
	result := Union(acc...)
	result.uninit = x.uninit
	return result
}

// AgnosticExtend widens x to newW bits without committing to either the
// signed or unsigned interpretation, per the six-case hemisphere table:
// leading 1s are OR'd into whichever bound(s) must move to keep both
// interpretations sound.
func AgnosticExtend(x *SI, newW int) *SI {
	if x.bottom {
		return Empty(newW)
	}
	w := x.bits
	ubRight := msb(x.ub, w)
	lbRight := msb(x.lb, w)
	applyUB, applyLB := false, false
	switch {
	case !ubRight && !lbRight: // left, left
	case ubRight && lbRight: // right, right
		if x.ub > x.lb {
			applyUB = true
		} else {
			applyUB, applyLB = true, true
		}
	case !ubRight && lbRight: // left ub, right lb
	case ubRight && !lbRight: // right ub, left lb
		applyUB = true
	}
	extMask := mask(newW) &^ mask(w)
	newLb, newUb := x.lb, x.ub
	if applyLB {
		newLb |= extMask
	}
	if applyUB {
		newUb |= extMask
	}
	r := Range(newW, newLb, newUb, x.stride)
	r.uninit = x.uninit
	return r
}

// Concat returns a:b, a occupying the high a.bits bits of the result.
func Concat(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits + b.bits)
	}
	newW := a.bits + b.bits
	aWide := ZeroExtend(a, newW)
	shifted := Lshift(aWide, Singleton(newW, uint64(b.bits)))
	bWide := ZeroExtend(b, newW)
	var result *SI
	if shifted.IsInteger() {
		result = Add(shifted, bWide)
	} else {
		result = Or(shifted, bWide)
	}
	result.uninit = combineUninit(a, b)
	return result
}

// Reverse toggles the lazy endianness-flip flag. Cheap and exact; the
// actual byte-order materialization is MaterializeReverse.
func Reverse(x *SI) *SI {
	if x.bottom {
		return Empty(x.bits)
	}
	c := x.copy()
	c.reversed = !c.reversed
	return c.normalize()
}

// MaterializeReverse eagerly byte-swaps x, slicing it into byte-wide
// pieces via Extract and reassembling them in reverse via Concat.
// Precision loss is accepted for non-singleton SIs and reported to sink
// (which may be nil) as a LossyReverse warning.
func MaterializeReverse(x *SI, sink *diag.Sink) *SI {
	if x.bottom {
		return Empty(x.bits)
	}
	if x.bits%8 != 0 || x.bits == 8 {
		c := x.copy()
		c.reversed = false
		return c
	}
	if !x.IsInteger() {
		sink.Warn("reverse", diag.LossyReverse, "reversing a real strided-interval %s is imprecise", x)
	}
	nbytes := x.bits / 8
	pieces := make([]*SI, nbytes)
	for i := 0; i < nbytes; i++ {
		hi := x.bits - 1 - i*8
		lo := hi - 7
		pieces[i] = Extract(x, hi, lo)
	}
	result := pieces[nbytes-1]
	for i := nbytes - 2; i >= 0; i-- {
		result = Concat(result, pieces[i])
	}
	result.reversed = false
	result.uninit = x.uninit
	return result
}

// CastLow returns s truncated to its low t bits.
func (s *SI) CastLow(t int) *SI { return CastLow(s, t) }

// Extract returns bits [high:low] of s.
func (s *SI) Extract(high, low int) *SI { return Extract(s, high, low) }

// ZeroExtend widens s to newW bits, filling with zeros.
func (s *SI) ZeroExtend(newW int) *SI { return ZeroExtend(s, newW) }

// SignExtend widens s to newW bits, sign-extending.
func (s *SI) SignExtend(newW int) *SI { return SignExtend(s, newW) }

// AgnosticExtend widens s to newW bits without committing to a sign.
func (s *SI) AgnosticExtend(newW int) *SI { return AgnosticExtend(s, newW) }

// Concat returns s:o, s occupying the high bits.
func (s *SI) Concat(o *SI) *SI { return Concat(s, o) }

// Reverse toggles the lazy endianness-flip flag.
func (s *SI) Reverse() *SI { return Reverse(s) }

// MaterializeReverse eagerly byte-swaps s.
func (s *SI) MaterializeReverse(sink *diag.Sink) *SI { return MaterializeReverse(s, sink) }
