package si

// ssplit cuts a wrapped SI around the south (unsigned) pole, between
// 2^bits-1 and 0, into at most two non-wrapping pieces. Returns []{s} if s
// doesn't wrap (or is a singleton); nil for bottom.
func ssplit(s *SI) []*SI {
	if s.bottom {
		return nil
	}
	if s.stride == 0 || lexLTE(s.lb, s.ub, s.bits) {
		return []*SI{s.copy()}
	}
	southPole := mask(s.bits)
	d := msub(southPole, s.lb, s.bits)
	rem := d % s.stride
	aUB := southPole - rem
	bLB := madd(aUB, s.stride, s.bits)
	return []*SI{
		Range(s.bits, s.lb, aUB, s.stride),
		Range(s.bits, bLB, s.ub, s.stride),
	}
}

// nsplit cuts a wrapped SI around the north (signed) pole, between
// 2^(bits-1)-1 and 2^(bits-1), into at most two pieces that are each safe
// under the signed interpretation. Implemented by rotating the coordinate
// system so the north pole lands on the south pole, reusing ssplit's
// wrap-detection and snapping, then rotating the pieces back; this is
// equivalent to special-casing the north pole directly since both poles are
// symmetric discontinuities of the same modular ring.
func nsplit(s *SI) []*SI {
	if s.bottom {
		return nil
	}
	if s.stride == 0 {
		return []*SI{s.copy()}
	}
	shift := highBit(s.bits)
	rlb := msub(s.lb, shift, s.bits)
	rub := msub(s.ub, shift, s.bits)
	if lexLTE(rlb, rub, s.bits) {
		return []*SI{s.copy()}
	}
	rotated := Range(s.bits, rlb, rub, s.stride)
	parts := ssplit(rotated)
	out := make([]*SI, len(parts))
	for i, p := range parts {
		out[i] = Range(s.bits, madd(p.lb, shift, s.bits), madd(p.ub, shift, s.bits), p.stride)
	}
	return out
}

// psplit applies nsplit to each ssplit piece, yielding 1-4 pieces each safe
// under both the signed and unsigned interpretation.
func psplit(s *SI) []*SI {
	if s.bottom {
		return nil
	}
	var out []*SI
	for _, p := range ssplit(s) {
		out = append(out, nsplit(p)...)
	}
	return out
}

// unsignedBounds returns the (lb,ub) pairs of each non-wrapping
// (south-pole-split) piece.
func (s *SI) unsignedBounds() [][2]uint64 {
	var out [][2]uint64
	for _, p := range ssplit(s) {
		out = append(out, [2]uint64{p.lb, p.ub})
	}
	return out
}

// signedBounds returns the (lo,hi) signed bound pairs of each
// north-pole-split piece, lo <= hi under the signed interpretation.
func (s *SI) signedBounds() [][2]int64 {
	var out [][2]int64
	for _, p := range nsplit(s) {
		out = append(out, [2]int64{toSigned(p.lb, p.bits), toSigned(p.ub, p.bits)})
	}
	return out
}

// Min returns the smallest value in the unsigned concretization. Returns 0
// for bottom (callers should check IsBottom first).
func (s *SI) Min() uint64 {
	if s.bottom {
		return 0
	}
	pieces := ssplit(s)
	m := pieces[0].lb
	for _, p := range pieces[1:] {
		if p.lb < m {
			m = p.lb
		}
	}
	return m
}

// Max returns the largest value in the unsigned concretization. Returns 0
// for bottom (callers should check IsBottom first).
func (s *SI) Max() uint64 {
	if s.bottom {
		return 0
	}
	pieces := ssplit(s)
	m := pieces[0].ub
	for _, p := range pieces[1:] {
		if p.ub > m {
			m = p.ub
		}
	}
	return m
}
