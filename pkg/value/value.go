// Package value re-architects claripy's IfProxy decorator stack
// (backend_vsa.go's expand_ifproxy/normalize_arg_order/convert_bvv_args)
// as an explicit tagged-union algebra and three dispatcher functions
// (Unary, Binary, CompareBinary),
// rather than Python-style function decorators. A Value is either a
// concrete *si.SI or an IfProxy(cond, then, else); every operation in this
// package peels proxies before calling into pkg/si and rewraps the result.
package value

import (
	"fmt"

	"github.com/oisee/strided-interval/internal/bvv"
	"github.com/oisee/strided-interval/pkg/boolresult"
	"github.com/oisee/strided-interval/pkg/si"
	"github.com/oisee/strided-interval/pkg/si/diag"
)

// Value is SI | IfProxy. The zero Value is invalid; construct with Of or
// OfProxy.
type Value struct {
	concrete *si.SI
	proxy    *proxy
}

type proxy struct {
	cond  boolresult.Result
	true_ Value
	false_ Value
}

// Of wraps a concrete SI as a Value.
func Of(s *si.SI) Value { return Value{concrete: s} }

// FromBVV wraps a concrete bit-vector value as a singleton Value.
func FromBVV(v bvv.BVV) Value { return Of(si.FromBVV(v)) }

// OfProxy constructs a symbolic if-then-else Value.
func OfProxy(cond boolresult.Result, then, els Value) Value {
	return Value{proxy: &proxy{cond: cond, true_: then, false_: els}}
}

// IsProxy reports whether v is an IfProxy rather than a concrete SI.
func (v Value) IsProxy() bool { return v.proxy != nil }

// SI returns the concrete SI payload; panics if v is a proxy.
func (v Value) SI() *si.SI {
	if v.proxy != nil {
		panic("value: SI() called on an IfProxy Value")
	}
	return v.concrete
}

// Cond returns the proxy's condition; panics if v is not a proxy.
func (v Value) Cond() boolresult.Result { return v.proxy.cond }

// Then returns the proxy's true branch; panics if v is not a proxy.
func (v Value) Then() Value { return v.proxy.true_ }

// Else returns the proxy's false branch; panics if v is not a proxy.
func (v Value) Else() Value { return v.proxy.false_ }

func (v Value) String() string {
	if v.proxy == nil {
		return v.concrete.String()
	}
	return fmt.Sprintf("IfProxy(%s, %s, %s)", v.proxy.cond, v.proxy.true_, v.proxy.false_)
}

// branchOf returns v's corresponding branch if v is itself a proxy
// (positionally, without re-checking its condition against cond — the
// same assumption expand_ifproxy's original documents as unsound in
// general), else v unchanged.
func branchOf(v Value, truth bool) Value {
	if !v.IsProxy() {
		return v
	}
	if truth {
		return v.Then()
	}
	return v.Else()
}

// Unary applies f to a, expanding an IfProxy argument into its two
// branches and rewrapping the result under the same condition.
func Unary(f func(*si.SI) *si.SI, a Value) Value {
	if a.IsProxy() {
		return OfProxy(a.Cond(), Unary(f, a.Then()), Unary(f, a.Else()))
	}
	return Of(f(a.SI()))
}

// Binary applies f to (a, b), expanding whichever argument is (or both
// are) an IfProxy. When both are proxies, the second is split
// positionally under the first's condition, per the original's documented
// assumption that two IfProxy operands share a condition.
func Binary(f func(a, b *si.SI) *si.SI, a, b Value) Value {
	switch {
	case a.IsProxy():
		return OfProxy(a.Cond(),
			Binary(f, a.Then(), branchOf(b, true)),
			Binary(f, a.Else(), branchOf(b, false)))
	case b.IsProxy():
		return OfProxy(b.Cond(),
			Binary(f, a, b.Then()),
			Binary(f, a, b.Else()))
	default:
		return Of(f(a.SI(), b.SI()))
	}
}

// BoolTree is the comparison counterpart of Value: either a definite
// boolresult.Result or an if-then-else tree of them, produced by
// CompareBinary and resolved with Collapse.
type BoolTree struct {
	verdict boolresult.Result
	proxy   *boolProxy
}

type boolProxy struct {
	cond  boolresult.Result
	true_ BoolTree
	false_ BoolTree
}

func leaf(r boolresult.Result) BoolTree { return BoolTree{verdict: r} }

// CompareBinary applies a three-valued comparison f to (a, b), expanding
// IfProxy operands the same way Binary does.
func CompareBinary(f func(a, b *si.SI) boolresult.Result, a, b Value) BoolTree {
	switch {
	case a.IsProxy():
		return BoolTree{proxy: &boolProxy{
			cond:  a.Cond(),
			true_: CompareBinary(f, a.Then(), branchOf(b, true)),
			false_: CompareBinary(f, a.Else(), branchOf(b, false)),
		}}
	case b.IsProxy():
		return BoolTree{proxy: &boolProxy{
			cond:  b.Cond(),
			true_: CompareBinary(f, a, b.Then()),
			false_: CompareBinary(f, a, b.Else()),
		}}
	default:
		return leaf(f(a.SI(), b.SI()))
	}
}

// Collapse folds a BoolTree into a single boolresult.Result: a definite
// cond picks its matching branch outright; otherwise the branches must
// agree to yield anything other than Maybe.
func (t BoolTree) Collapse() boolresult.Result {
	if t.proxy == nil {
		return t.verdict
	}
	tv, fv := t.proxy.true_.Collapse(), t.proxy.false_.Collapse()
	switch t.proxy.cond {
	case boolresult.True:
		return tv
	case boolresult.False:
		return fv
	default:
		if tv == fv {
			return tv
		}
		return boolresult.Maybe
	}
}

// Add returns a + b.
func Add(a, b Value) Value { return Binary(si.Add, a, b) }

// Sub returns a - b.
func Sub(a, b Value) Value { return Binary(si.Sub, a, b) }

// Neg returns -a.
func Neg(a Value) Value { return Unary(si.Neg, a) }

// Mul returns a * b. sink may be nil.
func Mul(a, b Value, sink *diag.Sink) Value {
	return Binary(func(x, y *si.SI) *si.SI { return si.Mul(x, y, sink) }, a, b)
}

// Udiv returns the unsigned quotient a / b.
func Udiv(a, b Value) Value { return Binary(si.Udiv, a, b) }

// Sdiv returns the signed quotient a / b.
func Sdiv(a, b Value) Value { return Binary(si.Sdiv, a, b) }

// Mod returns a % b.
func Mod(a, b Value) Value { return Binary(si.Mod, a, b) }

// And returns the bitwise AND of a and b.
func And(a, b Value) Value { return Binary(si.And, a, b) }

// Or returns the bitwise OR of a and b.
func Or(a, b Value) Value { return Binary(si.Or, a, b) }

// Xor returns the bitwise XOR of a and b.
func Xor(a, b Value) Value { return Binary(si.Xor, a, b) }

// Not returns the bitwise complement of a.
func Not(a Value) Value { return Unary(si.Not, a) }

// Lshift returns a shifted left by k.
func Lshift(a, k Value) Value { return Binary(si.Lshift, a, k) }

// Rshift returns a shifted right by k.
func Rshift(a, k Value, preserveSign bool) Value {
	return Binary(func(x, y *si.SI) *si.SI { return si.Rshift(x, y, preserveSign) }, a, k)
}

// CastLow returns a truncated to its low t bits.
func CastLow(a Value, t int) Value {
	return Unary(func(x *si.SI) *si.SI { return si.CastLow(x, t) }, a)
}

// Extract returns bits [high:low] of a.
func Extract(a Value, high, low int) Value {
	return Unary(func(x *si.SI) *si.SI { return si.Extract(x, high, low) }, a)
}

// ZeroExtend widens a to newW bits, filling with zeros.
func ZeroExtend(a Value, newW int) Value {
	return Unary(func(x *si.SI) *si.SI { return si.ZeroExtend(x, newW) }, a)
}

// SignExtend widens a to newW bits, sign-extending.
func SignExtend(a Value, newW int) Value {
	return Unary(func(x *si.SI) *si.SI { return si.SignExtend(x, newW) }, a)
}

// AgnosticExtend widens a to newW bits without committing to a sign.
func AgnosticExtend(a Value, newW int) Value {
	return Unary(func(x *si.SI) *si.SI { return si.AgnosticExtend(x, newW) }, a)
}

// Concat returns a:b, a occupying the high bits.
func Concat(a, b Value) Value { return Binary(si.Concat, a, b) }

// Reverse toggles the lazy endianness-flip flag of a.
func Reverse(a Value) Value { return Unary(si.Reverse, a) }

// ULT returns whether a < b under an unsigned interpretation.
func ULT(a, b Value) BoolTree { return CompareBinary(si.ULT, a, b) }

// ULE returns whether a <= b under an unsigned interpretation.
func ULE(a, b Value) BoolTree { return CompareBinary(si.ULE, a, b) }

// UGT returns whether a > b under an unsigned interpretation.
func UGT(a, b Value) BoolTree { return CompareBinary(si.UGT, a, b) }

// UGE returns whether a >= b under an unsigned interpretation.
func UGE(a, b Value) BoolTree { return CompareBinary(si.UGE, a, b) }

// SLT returns whether a < b under a signed interpretation.
func SLT(a, b Value) BoolTree { return CompareBinary(si.SLT, a, b) }

// SLE returns whether a <= b under a signed interpretation.
func SLE(a, b Value) BoolTree { return CompareBinary(si.SLE, a, b) }

// SGT returns whether a > b under a signed interpretation.
func SGT(a, b Value) BoolTree { return CompareBinary(si.SGT, a, b) }

// SGE returns whether a >= b under a signed interpretation.
func SGE(a, b Value) BoolTree { return CompareBinary(si.SGE, a, b) }

// Eq returns whether a and b denote the same value.
func Eq(a, b Value) BoolTree { return CompareBinary(si.Eq, a, b) }

// Ne returns whether a and b denote different values.
func Ne(a, b Value) BoolTree { return CompareBinary(si.Ne, a, b) }
