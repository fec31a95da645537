package si

// wrappedMember reports whether v belongs to s's wrapped interval envelope
// (ignoring stride — this is envelope membership, not discrete-value
// membership).
func wrappedMember(s *SI, v uint64) bool {
	if s.bottom {
		return false
	}
	return lexLTE(msub(v, s.lb, s.bits), msub(s.ub, s.lb, s.bits), s.bits)
}

// wrappedLTE reports the poset order a ⊑ b: bottom is below everything,
// only TOP is above TOP, and otherwise both of a's endpoints must lie in b,
// with a strictly smaller than b unless they share the same envelope.
func wrappedLTE(a, b *SI) bool {
	if a.bottom {
		return true
	}
	if a.IsTop() {
		return b.IsTop()
	}
	if b.bottom {
		return false
	}
	if !(wrappedMember(b, a.lb) && wrappedMember(b, a.ub)) {
		return false
	}
	if a.lb == b.lb && a.ub == b.ub {
		return true
	}
	return !wrappedMember(a, b.lb) || !wrappedMember(a, b.ub)
}
