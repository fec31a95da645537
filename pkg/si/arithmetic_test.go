package si

import (
	"testing"

	"github.com/oisee/strided-interval/pkg/si/diag"
)

func TestAddOverflowCollapsesToTop(t *testing.T) {
	a := Range(8, 0, 200, 1)
	b := Range(8, 0, 200, 1)
	got := Add(a, b)
	if !got.IsTop() {
		t.Errorf("Add(a,b) = %s, want TOP (combined cardinality exceeds the ring)", got)
	}
}

func TestSubBottomOperandIsBottom(t *testing.T) {
	if got := Sub(Empty(8), Range(8, 0, 10, 1)); !got.IsBottom() {
		t.Errorf("Sub(BOTTOM, x) = %s, want BOTTOM", got)
	}
}

func TestNegSingleton(t *testing.T) {
	x := Singleton(8, 1)
	got := Neg(x)
	want := Singleton(8, 0xff) // -1 mod 256
	if !got.Identical(want) {
		t.Errorf("Neg(1) = %s, want %s", got, want)
	}
}

func TestMulSingletonsExact(t *testing.T) {
	a := Singleton(8, 6)
	b := Singleton(8, 7)
	got := Mul(a, b, nil)
	want := Singleton(8, 42)
	if !got.Identical(want) {
		t.Errorf("Mul(6,7) = %s, want %s", got, want)
	}
}

func TestMulOverflowWarns(t *testing.T) {
	a := Singleton(8, 200)
	b := Singleton(8, 200)
	sink := &diag.Sink{}
	got := Mul(a, b, sink)
	want := Singleton(8, mmul(200, 200, 8))
	if !got.Identical(want) {
		t.Errorf("Mul(200,200) = %s, want %s (wraps mod 256)", got, want)
	}
	if len(sink.Warnings()) == 0 {
		t.Error("Mul overflow did not record a warning")
	}
}

func TestUdivByZeroSingletonIsBottom(t *testing.T) {
	x := Range(8, 0, 10, 1)
	zero := Singleton(8, 0)
	if got := Udiv(x, zero); !got.IsBottom() {
		t.Errorf("Udiv(x, 0) = %s, want BOTTOM", got)
	}
}

func TestSdivByZeroSingletonIsBottom(t *testing.T) {
	x := Range(8, 0, 10, 1)
	zero := Singleton(8, 0)
	if got := Sdiv(x, zero); !got.IsBottom() {
		t.Errorf("Sdiv(x, 0) = %s, want BOTTOM", got)
	}
}

func TestModExactSingletons(t *testing.T) {
	a := Singleton(8, 17)
	b := Singleton(8, 5)
	got := Mod(a, b)
	want := Singleton(8, 2)
	if !got.Identical(want) {
		t.Errorf("Mod(17,5) = %s, want %s", got, want)
	}
}

func TestAlignWidthsWidensNarrowerOperand(t *testing.T) {
	a := Singleton(8, 3)
	b := Singleton(16, 3)
	got := Add(a, b)
	if got.Bits() != 16 {
		t.Errorf("Add(8-bit,16-bit).Bits() = %d, want 16", got.Bits())
	}
}
