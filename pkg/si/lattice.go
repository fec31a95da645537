package si

import "sort"

// complement returns the set-complement of s within its width: BOTTOM
// becomes TOP, TOP becomes BOTTOM, otherwise [ub+1, lb-1] with a stride
// chosen to cover the complement's own cardinality.
func complement(s *SI) *SI {
	if s.bottom {
		return Top(s.bits)
	}
	if s.IsTop() {
		return Empty(s.bits)
	}
	newLb := madd(s.ub, 1, s.bits)
	newUb := msub(s.lb, 1, s.bits)
	newStride := gcdU64(s.stride, wrappedCardinalityMinusOne(newLb, newUb, s.bits))
	if newLb == newUb {
		newStride = 0
	} else if s.stride == 0 {
		newStride = 1
	}
	return Range(s.bits, newLb, newUb, newStride)
}

// Complement returns the set-complement of s within its width.
func (s *SI) Complement() *SI { return complement(s) }

// intervalExtend returns the smallest SI (by the case analysis in union's
// pseudo-LUB) that is known to contain both s and t.
func intervalExtend(s, t *SI) *SI {
	if s.bottom {
		return t.copy()
	}
	if t.bottom {
		return s.copy()
	}
	if wrappedLTE(s, t) {
		return t.copy()
	}
	if wrappedLTE(t, s) {
		return s.copy()
	}
	if wrappedLTE(complement(s), t) {
		return Top(s.bits)
	}
	card1 := wrappedCardinalityMinusOne(s.lb, t.lb, s.bits)
	newStride := gcdAll(s.stride, t.stride, card1)
	return Range(s.bits, s.lb, t.ub, newStride)
}

// gap returns the SI occupying the space strictly between s and t (sorted
// by lb, s before t) if one exists and isn't already covered by either
// operand, else BOTTOM.
func gap(s, t *SI) *SI {
	if s.bottom || t.bottom {
		return Empty(s.bits)
	}
	b := s.ub
	c := t.lb
	if !wrappedMember(t, b) && !wrappedMember(s, c) {
		return complement(Range(s.bits, c, b, 1))
	}
	return Empty(s.bits)
}

// bigger returns the SI with the greater cardinality; ties favor a.
func bigger(a, b *SI) *SI {
	if a.bottom {
		return b
	}
	if b.bottom {
		return a
	}
	if a.Cardinality().Cmp(b.Cardinality()) >= 0 {
		return a
	}
	return b
}

func anyUninit(sis []*SI) bool {
	for _, s := range sis {
		if s.uninit {
			return true
		}
	}
	return false
}

// Union computes the pseudo-least-upper-bound of one or more equal-width
// SIs: sort by lb, accumulate wrap-heavy pieces first, then sweep computing
// gaps and extending, and finally complement twice to pick up any trailing
// gap against the accumulator's own complement.
func Union(sis ...*SI) *SI {
	if len(sis) == 0 {
		panic("si: Union requires at least one operand")
	}
	if len(sis) == 1 {
		return sis[0].copy()
	}
	bits := sis[0].bits
	for _, s := range sis {
		if s.bits != bits {
			panic("si: Union operands must share a width")
		}
	}
	sorted := make([]*SI, len(sis))
	copy(sorted, sis)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].lb < sorted[j].lb })

	f := Empty(bits)
	for _, s := range sorted {
		if s.IsTop() || lexLTE(s.ub, s.lb, bits) {
			f = intervalExtend(f, s)
		}
	}
	g := Empty(bits)
	for _, s := range sorted {
		g = bigger(g, gap(f, s))
		f = intervalExtend(f, s)
	}
	merged := complement(bigger(g, complement(f)))

	var result *SI
	switch {
	case merged.IsBottom():
		result = Empty(bits)
	case merged.lb == 0 && merged.ub == mask(bits):
		result = Top(bits)
	case merged.IsInteger():
		result = Singleton(bits, merged.lb)
	default:
		strides := make([]uint64, len(sorted))
		for i, s := range sorted {
			strides[i] = s.stride
		}
		st := gcdAll(strides...)
		if st == 0 {
			st = 1
		}
		result = Range(bits, merged.lb, merged.ub, st)
	}
	result.uninit = anyUninit(sorted)
	return result
}

// Union returns the pseudo-LUB of s with others.
func (s *SI) Union(others ...*SI) *SI {
	return Union(append([]*SI{s}, others...)...)
}

func intersectSingleton(single, other *SI) []*SI {
	v := single.lb
	if !wrappedMember(other, v) {
		return []*SI{Empty(single.bits)}
	}
	if other.stride != 0 {
		if msub(v, other.lb, other.bits)%other.stride != 0 {
			return []*SI{Empty(single.bits)}
		}
	} else if v != other.lb {
		return []*SI{Empty(single.bits)}
	}
	return []*SI{Singleton(single.bits, v)}
}

// Intersection computes s ∩ t via wrapped-membership case analysis: each
// operand is south-pole-split into non-wrapping pieces, every piece pair is
// intersected as a plain range, and non-empty results are returned (BOTTOM
// alone if disjoint). Singleton operands take a stride-congruence fast
// path instead.
func Intersection(s, t *SI) []*SI {
	if s.bits != t.bits {
		panic("si: Intersection operands must share a width")
	}
	if s.bottom || t.bottom {
		return []*SI{Empty(s.bits)}
	}
	if s.IsInteger() {
		return intersectSingleton(s, t)
	}
	if t.IsInteger() {
		return intersectSingleton(t, s)
	}
	newStride := gcdAll(s.stride, t.stride)
	if newStride == 0 {
		newStride = 1
	}
	var out []*SI
	for _, p := range ssplit(s) {
		for _, q := range ssplit(t) {
			lo := maxU64(p.lb, q.lb)
			hi := minU64(p.ub, q.ub)
			if lo <= hi {
				out = append(out, Range(s.bits, lo, hi, newStride))
			}
		}
	}
	if len(out) == 0 {
		return []*SI{Empty(s.bits)}
	}
	return out
}

// Intersection returns s ∩ t.
func (s *SI) Intersection(t *SI) []*SI { return Intersection(s, t) }

// lowerBoundWiden rounds v down toward the signed minimum of the width
// while preserving its residue class mod stride, the widening jump used
// when the new iterate's lower bound fell below the accumulator's.
func lowerBoundWiden(bits int, v, stride uint64) uint64 {
	if stride == 0 {
		return v
	}
	base := highBit(bits) // unsigned encoding of min_int(bits)
	rem := v % stride
	baseRem := uint64(((minInt(bits)%int64(stride))+int64(stride)) % int64(stride))
	var delta uint64
	if baseRem <= rem {
		delta = rem - baseRem
	} else {
		delta = stride - (baseRem - rem)
	}
	return madd(base, delta, bits)
}

// upperBoundWiden rounds v up toward the unsigned maximum of the width
// (2^bits - 1) while preserving its residue class mod stride.
func upperBoundWiden(bits int, v, stride uint64) uint64 {
	if stride == 0 {
		return v
	}
	base := maxInt(bits) // max_int(bits) = 2^bits - 1, per spec's widening rule
	rem := v % stride
	baseRem := base % stride
	var delta uint64
	if baseRem >= rem {
		delta = baseRem - rem
	} else {
		delta = baseRem + stride - rem
	}
	return msub(base, delta, bits)
}

// Widen computes an accelerated join of s (the running fixpoint
// accumulator) against t (the new iterate), snapping a lower bound that
// shrank toward the signed minimum of the width and an upper bound that grew
// toward the unsigned maximum (2^bits - 1) to force termination. A BOTTOM
// accumulator widened by a non-empty iterate gives TOP.
func Widen(s, t *SI) *SI {
	if s.bits != t.bits {
		panic("si: Widen operands must share a width")
	}
	if s.bottom && t.bottom {
		return Empty(s.bits)
	}
	if s.bottom {
		return Top(s.bits)
	}
	if t.bottom {
		return s.copy()
	}
	newStride := gcdAll(s.stride, t.stride)
	if newStride == 0 {
		newStride = 1
	}
	lb := s.lb
	if toSigned(t.lb, s.bits) < toSigned(s.lb, s.bits) {
		lb = lowerBoundWiden(s.bits, s.lb, newStride)
	}
	ub := s.ub
	if toSigned(t.ub, s.bits) > toSigned(s.ub, s.bits) {
		ub = upperBoundWiden(s.bits, s.ub, newStride)
	}
	return Range(s.bits, lb, ub, newStride)
}

// Widen returns the accelerated join of s against t.
func (s *SI) Widen(t *SI) *SI { return Widen(s, t) }
