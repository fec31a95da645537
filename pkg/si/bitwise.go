package si

type warrenFn func(a, b, c, d uint64, w int) uint64

// bitwiseCombine south-pole-splits both operands, applies the Warren
// min/max bound functions to every non-wrapping piece pair (stride fixed at
// 1, per spec), and joins the pieces via LUB.
func bitwiseCombine(a, b *SI, minFn, maxFn warrenFn) *SI {
	w := a.bits
	var acc []*SI
	for _, p := range ssplit(a) {
		for _, q := range ssplit(b) {
			lo := minFn(p.lb, p.ub, q.lb, q.ub, w)
			hi := maxFn(p.lb, p.ub, q.lb, q.ub, w)
			acc = append(acc, Range(w, lo, hi, 1))
		}
	}
	if len(acc) == 0 {
		acc = append(acc, Empty(w))
	}
	return Union(acc...)
}

// And returns the bitwise AND of a and b.
func And(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	r := bitwiseCombine(a, b, minAND, maxAND)
	r.uninit = combineUninit(a, b)
	return r
}

// Or returns the bitwise OR of a and b.
func Or(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	r := bitwiseCombine(a, b, minOR, maxOR)
	r.uninit = combineUninit(a, b)
	return r
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b *SI) *SI {
	if a.bottom || b.bottom {
		return Empty(a.bits)
	}
	a, b = alignWidths(a, b)
	r := bitwiseCombine(a, b, minXOR, maxXOR)
	r.uninit = combineUninit(a, b)
	return r
}

// Not returns the bitwise complement of x: per piece, new_lb=~ub,
// new_ub=~lb, stride preserved, pieces joined via LUB.
func Not(x *SI) *SI {
	if x.bottom {
		return Empty(x.bits)
	}
	w := x.bits
	var acc []*SI
	for _, p := range ssplit(x) {
		acc = append(acc, Range(w, notW(p.ub, w), notW(p.lb, w), p.stride))
	}
	result := Union(acc...)
	result.uninit = x.uninit
	return result
}

func clampShift(v uint64, w int) int {
	if v > uint64(w) {
		return w
	}
	return int(v)
}

// shiftRange returns the [lo,hi] range of possible shift amounts a shift
// operand k may hold, clamped to [0, w].
func shiftRange(k *SI, w int) (int, int) {
	if k.IsBottom() {
		return 0, 0
	}
	return clampShift(k.Min(), w), clampShift(k.Max(), w)
}

func shl(v uint64, amt, w int) uint64 {
	return (v << uint(amt)) & mask(w)
}

func shr(v uint64, amt int) uint64 {
	return v >> uint(amt)
}

// orSignExtBits ORs the top `amt` bits of width w back into v, the
// arithmetic-right-shift sign-preservation step.
func orSignExtBits(v uint64, amt, w int) uint64 {
	if amt <= 0 {
		return v
	}
	topMask := mask(w) &^ (mask(w) >> uint(amt))
	return v | topMask
}

// Lshift returns x shifted left by the (possibly non-singleton) amount k,
// keeping the extremal resulting bound over every shift amount k may take.
func Lshift(x, k *SI) *SI {
	if x.bottom {
		return Empty(x.bits)
	}
	w := x.bits
	lo, hi := shiftRange(k, w)
	minLb, maxUb := shl(x.lb, lo, w), shl(x.ub, lo, w)
	for amt := lo; amt <= hi; amt++ {
		if v := shl(x.lb, amt, w); v < minLb {
			minLb = v
		}
		if v := shl(x.ub, amt, w); v > maxUb {
			maxUb = v
		}
	}
	newStride := (x.stride << uint(lo)) & mask(w)
	r := Range(w, minLb, maxUb, newStride)
	r.uninit = x.uninit
	return r
}

// Rshift returns x shifted right (logically, unless preserveSign) by the
// (possibly non-singleton) amount k.
func Rshift(x, k *SI, preserveSign bool) *SI {
	if x.bottom {
		return Empty(x.bits)
	}
	w := x.bits
	lo, hi := shiftRange(k, w)
	signLb, signUb := msb(x.lb, w), msb(x.ub, w)
	bound := func(v uint64, amt int, signed bool) uint64 {
		r := shr(v, amt)
		if preserveSign && signed {
			r = orSignExtBits(r, amt, w)
		}
		return r
	}
	minLb, maxUb := bound(x.lb, lo, signLb), bound(x.ub, lo, signUb)
	for amt := lo; amt <= hi; amt++ {
		if v := bound(x.lb, amt, signLb); v < minLb {
			minLb = v
		}
		if v := bound(x.ub, amt, signUb); v > maxUb {
			maxUb = v
		}
	}
	newStride := x.stride >> uint(hi)
	if newStride == 0 {
		newStride = 1
	}
	r := Range(w, minLb, maxUb, newStride)
	r.uninit = x.uninit
	return r
}

// And returns the bitwise AND of s and o.
func (s *SI) And(o *SI) *SI { return And(s, o) }

// Or returns the bitwise OR of s and o.
func (s *SI) Or(o *SI) *SI { return Or(s, o) }

// Xor returns the bitwise XOR of s and o.
func (s *SI) Xor(o *SI) *SI { return Xor(s, o) }

// Not returns the bitwise complement of s.
func (s *SI) Not() *SI { return Not(s) }

// Lshift returns s shifted left by k.
func (s *SI) Lshift(k *SI) *SI { return Lshift(s, k) }

// Rshift returns s shifted right by k.
func (s *SI) Rshift(k *SI, preserveSign bool) *SI { return Rshift(s, k, preserveSign) }
