// Package si implements a signedness-agnostic wrapped Strided-Interval
// abstract domain for value-set analysis of fixed-width machine integers.
// Every SI is an immutable value object; every operation returns a freshly
// normalized SI rather than mutating its receiver.
package si

import (
	"fmt"
	"math/big"

	"github.com/oisee/strided-interval/internal/bvv"
)

// SI is a wrapped strided interval (lb, lb+stride, ..., ub) on Z/2^bits.
type SI struct {
	name     string
	bits     int
	stride   uint64
	lb       uint64
	ub       uint64
	reversed bool
	uninit   bool
	bottom   bool
}

// Option configures a constructed SI.
type Option func(*SI)

// WithName overrides the synthesized default name ("SI_<n>").
func WithName(name string) Option {
	return func(s *SI) { s.name = name }
}

// WithStride sets the common difference; 0 means singleton.
func WithStride(stride uint64) Option {
	return func(s *SI) { s.stride = stride }
}

// WithBounds sets the lower and upper bound.
func WithBounds(lb, ub uint64) Option {
	return func(s *SI) { s.lb, s.ub = lb, ub }
}

// WithUninit marks the SI as carrying an uninitialized value.
func WithUninit(uninit bool) Option {
	return func(s *SI) { s.uninit = uninit }
}

// WithReversed marks the SI's lazy endianness-flip flag.
func WithReversed(reversed bool) Option {
	return func(s *SI) { s.reversed = reversed }
}

// New constructs an SI of the given width with defaults stride=1, lb=0,
// ub=2^bits-1 (i.e. TOP) before applying opts, then normalizes. Panics if
// bits < 1: an invalid static width is a programmer error, not a runtime
// condition callers recover from (see Parse for the fallible,
// untrusted-input path).
func New(bits int, opts ...Option) *SI {
	if bits < 1 {
		panic(fmt.Sprintf("si: invalid width %d", bits))
	}
	s := &SI{
		bits:   bits,
		stride: 1,
		lb:     0,
		ub:     mask(bits),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.name == "" {
		s.name = nextName()
	}
	return s.normalize()
}

// Top returns the universal SI of the given width: 1[0, 2^bits-1].
func Top(bits int) *SI {
	return New(bits)
}

// TopNamed returns TOP carrying an explicit name and uninit flag.
func TopNamed(bits int, name string, uninit bool) *SI {
	return New(bits, WithName(name), WithUninit(uninit))
}

// Empty returns BOTTOM (the empty set) of the given width.
func Empty(bits int) *SI {
	if bits < 1 {
		panic(fmt.Sprintf("si: invalid width %d", bits))
	}
	return &SI{bits: bits, bottom: true, name: nextName()}
}

// Singleton returns the one-element SI {value}, value masked to bits.
func Singleton(bits int, value uint64) *SI {
	v := value & mask(bits)
	return New(bits, WithStride(0), WithBounds(v, v))
}

// Range returns the SI [lb, ub] with the given stride.
func Range(bits int, lb, ub, stride uint64) *SI {
	return New(bits, WithStride(stride), WithBounds(lb, ub))
}

// FromBVV returns the singleton SI for a concrete bit-vector value.
func FromBVV(v bvv.BVV) *SI {
	return Singleton(v.Bits, v.Value)
}

// normalize enforces the SI invariants after construction or mutation of a
// freshly copied value; it is never applied to a value already handed to a
// caller.
func (s *SI) normalize() *SI {
	if s.bits == 8 {
		s.reversed = false
	}
	if s.bottom {
		return s
	}
	s.lb &= mask(s.bits)
	s.ub &= mask(s.bits)
	if s.lb == s.ub {
		s.stride = 0
	} else if s.stride == 0 {
		s.stride = 1
	}
	s.normalizeTop()
	return s
}

// normalizeTop rewrites a full-ring interval to the canonical TOP form
// (lb=0, ub=2^bits-1), per invariant 4.
func (s *SI) normalizeTop() {
	if s.stride == 1 && s.lb == madd(s.ub, 1, s.bits) {
		s.lb = 0
		s.ub = mask(s.bits)
	}
}

// copy returns a shallow copy with a fresh default name, used as the base
// for every non-mutating transformation.
func (s *SI) copy() *SI {
	c := *s
	c.name = nextName()
	return &c
}

// Bits returns the bit width.
func (s *SI) Bits() int { return s.bits }

// Stride returns the common difference (0 for a singleton or bottom).
func (s *SI) Stride() uint64 { return s.stride }

// LowerBound returns the stored (unsigned) lower bound.
func (s *SI) LowerBound() uint64 { return s.lb }

// UpperBound returns the stored (unsigned) upper bound.
func (s *SI) UpperBound() uint64 { return s.ub }

// Reversed reports the lazy endianness-flip flag.
func (s *SI) Reversed() bool { return s.reversed }

// Uninit reports whether this SI carries an uninitialized value.
func (s *SI) Uninit() bool { return s.uninit }

// Name returns the SI's identity name (default-synthesized unless WithName
// was used).
func (s *SI) Name() string { return s.name }

// IsBottom reports whether this SI represents the empty set.
func (s *SI) IsBottom() bool { return s.bottom }

// IsEmpty is an alias for IsBottom.
func (s *SI) IsEmpty() bool { return s.bottom }

// IsTop reports whether this SI is the universal set of its width.
func (s *SI) IsTop() bool {
	return !s.bottom && s.stride == 1 && s.lb == 0 && s.ub == mask(s.bits)
}

// IsInteger reports whether this SI denotes exactly one value.
func (s *SI) IsInteger() bool { return !s.bottom && s.lb == s.ub }

// Unique is an alias for IsInteger.
func (s *SI) Unique() bool { return s.IsInteger() }

// Cardinality returns the number of distinct values this SI denotes: 0 for
// bottom, 1 for a singleton, else ((ub-lb) mod 2^bits + stride)/stride
// (2^bits for TOP). Returned as *big.Int since a 64-bit TOP's cardinality
// (2^64) overflows uint64.
func (s *SI) Cardinality() *big.Int {
	if s.bottom {
		return big.NewInt(0)
	}
	if s.IsInteger() {
		return big.NewInt(1)
	}
	diff := msub(s.ub, s.lb, s.bits)
	num := new(big.Int).SetUint64(diff)
	num.Add(num, new(big.Int).SetUint64(s.stride))
	den := new(big.Int).SetUint64(s.stride)
	return num.Div(num, den)
}

// Identical reports exact structural equality on (bits, stride, lb, ub,
// bottom); used only in tests, per spec.
func (s *SI) Identical(o *SI) bool {
	if s.bits != o.bits || s.bottom != o.bottom {
		return false
	}
	if s.bottom {
		return true
	}
	return s.stride == o.stride && s.lb == o.lb && s.ub == o.ub
}

// String renders the textual form "<bits>stride[0xlb, 0xub]R?", with
// "(uninit)" appended when Uninit() and "<bits>[EmptySI]" for bottom.
func (s *SI) String() string {
	suffix := ""
	if s.uninit {
		suffix = " (uninit)"
	}
	if s.bottom {
		return fmt.Sprintf("<%d>[EmptySI]%s", s.bits, suffix)
	}
	r := ""
	if s.reversed {
		r = "R"
	}
	return fmt.Sprintf("<%d>%d[0x%x, 0x%x]%s%s", s.bits, s.stride, s.lb, s.ub, r, suffix)
}

func combineUninit(a, b *SI) bool {
	return a.uninit || b.uninit
}

func checkWidth(op string, a, b *SI) error {
	if a.bits != b.bits {
		return wrapf(ErrWidthMismatch, "%s: %d vs %d bits", op, a.bits, b.bits)
	}
	return nil
}

// alignWidths widens the narrower of a, b to the other's width via
// AgnosticExtend, per the data-flow rule that every binary operation
// (other than Concat, which combines mismatched widths by design) first
// harmonizes operand widths.
func alignWidths(a, b *SI) (*SI, *SI) {
	switch {
	case a.bits == b.bits:
		return a, b
	case a.bits < b.bits:
		return AgnosticExtend(a, b.bits), b
	default:
		return a, AgnosticExtend(b, a.bits)
	}
}
