package si

import "github.com/oisee/strided-interval/pkg/boolresult"

type ordered interface{ ~uint64 | ~int64 }

// classifyLT returns the three-valued verdict for "every value in
// [aLo,aHi] is strictly less than every value in [bLo,bHi]".
func classifyLT[T ordered](aLo, aHi, bLo, bHi T) boolresult.Result {
	switch {
	case aHi < bLo:
		return boolresult.True
	case aLo >= bHi:
		return boolresult.False
	default:
		return boolresult.Maybe
	}
}

// classifyLE returns the three-valued verdict for "every value in
// [aLo,aHi] is less than or equal to every value in [bLo,bHi]".
func classifyLE[T ordered](aLo, aHi, bLo, bHi T) boolresult.Result {
	switch {
	case aHi <= bLo:
		return boolresult.True
	case aLo > bHi:
		return boolresult.False
	default:
		return boolresult.Maybe
	}
}

func unsignedCompare(a, b *SI, strict bool) boolresult.Result {
	var verdicts []boolresult.Result
	for _, pa := range a.unsignedBounds() {
		for _, pb := range b.unsignedBounds() {
			if strict {
				verdicts = append(verdicts, classifyLT(pa[0], pa[1], pb[0], pb[1]))
			} else {
				verdicts = append(verdicts, classifyLE(pa[0], pa[1], pb[0], pb[1]))
			}
		}
	}
	return boolresult.Aggregate(verdicts)
}

func signedCompare(a, b *SI, strict bool) boolresult.Result {
	var verdicts []boolresult.Result
	for _, pa := range a.signedBounds() {
		for _, pb := range b.signedBounds() {
			if strict {
				verdicts = append(verdicts, classifyLT(pa[0], pa[1], pb[0], pb[1]))
			} else {
				verdicts = append(verdicts, classifyLE(pa[0], pa[1], pb[0], pb[1]))
			}
		}
	}
	return boolresult.Aggregate(verdicts)
}

// ULT reports whether a < b under an unsigned interpretation.
func ULT(a, b *SI) boolresult.Result {
	if a.bottom || b.bottom {
		return boolresult.Maybe
	}
	return unsignedCompare(a, b, true)
}

// ULE reports whether a <= b under an unsigned interpretation.
func ULE(a, b *SI) boolresult.Result {
	if a.bottom || b.bottom {
		return boolresult.Maybe
	}
	return unsignedCompare(a, b, false)
}

// UGT reports whether a > b under an unsigned interpretation.
func UGT(a, b *SI) boolresult.Result { return ULT(b, a) }

// UGE reports whether a >= b under an unsigned interpretation.
func UGE(a, b *SI) boolresult.Result { return ULE(b, a) }

// SLT reports whether a < b under a signed interpretation.
func SLT(a, b *SI) boolresult.Result {
	if a.bottom || b.bottom {
		return boolresult.Maybe
	}
	return signedCompare(a, b, true)
}

// SLE reports whether a <= b under a signed interpretation.
func SLE(a, b *SI) boolresult.Result {
	if a.bottom || b.bottom {
		return boolresult.Maybe
	}
	return signedCompare(a, b, false)
}

// SGT reports whether a > b under a signed interpretation.
func SGT(a, b *SI) boolresult.Result { return SLT(b, a) }

// SGE reports whether a >= b under a signed interpretation.
func SGE(a, b *SI) boolresult.Result { return SLE(b, a) }

// Eq reports whether a and b denote the same value: singletons compare
// directly, same-named operands are True by identity, otherwise the
// verdict comes from whether their intersection is empty.
func Eq(a, b *SI) boolresult.Result {
	if a.bottom || b.bottom {
		return boolresult.Maybe
	}
	if a.IsInteger() && b.IsInteger() {
		return boolresult.FromBool(a.lb == b.lb)
	}
	if a.name == b.name {
		return boolresult.True
	}
	for _, piece := range Intersection(a, b) {
		if !piece.IsBottom() {
			return boolresult.Maybe
		}
	}
	return boolresult.False
}

// Ne is the negation of Eq.
func Ne(a, b *SI) boolresult.Result { return Eq(a, b).Not() }

// ULT returns whether s < o under an unsigned interpretation.
func (s *SI) ULT(o *SI) boolresult.Result { return ULT(s, o) }

// ULE returns whether s <= o under an unsigned interpretation.
func (s *SI) ULE(o *SI) boolresult.Result { return ULE(s, o) }

// UGT returns whether s > o under an unsigned interpretation.
func (s *SI) UGT(o *SI) boolresult.Result { return UGT(s, o) }

// UGE returns whether s >= o under an unsigned interpretation.
func (s *SI) UGE(o *SI) boolresult.Result { return UGE(s, o) }

// SLT returns whether s < o under a signed interpretation.
func (s *SI) SLT(o *SI) boolresult.Result { return SLT(s, o) }

// SLE returns whether s <= o under a signed interpretation.
func (s *SI) SLE(o *SI) boolresult.Result { return SLE(s, o) }

// SGT returns whether s > o under a signed interpretation.
func (s *SI) SGT(o *SI) boolresult.Result { return SGT(s, o) }

// SGE returns whether s >= o under a signed interpretation.
func (s *SI) SGE(o *SI) boolresult.Result { return SGE(s, o) }

// Eq returns whether s and o denote the same value.
func (s *SI) Eq(o *SI) boolresult.Result { return Eq(s, o) }

// Ne returns whether s and o denote different values.
func (s *SI) Ne(o *SI) boolresult.Result { return Ne(s, o) }
