package si

import "testing"

func TestCastLowExact(t *testing.T) {
	x := Range(16, 0x100, 0x1ff, 16)
	got := x.CastLow(8)
	// the bounds do not both fit unmasked (0x100 > 0xff, so case1 fails);
	// diff=0xff <= tm(0xff), so case2 applies: masked range, stride kept.
	want := Range(8, 0x00, 0xff, 16)
	if !got.Identical(want) {
		t.Errorf("x.cast_low(8) = %s, want %s", got, want)
	}
}

func TestCastLowOfTopIsTop(t *testing.T) {
	if got := Top(8).CastLow(4); !got.Identical(Top(4)) {
		t.Errorf("Top(8).cast_low(4) = %s, want TOP(4)", got)
	}
}

func TestExtractSingleByteFromWord(t *testing.T) {
	x := Singleton(16, 0xABCD)
	got := x.Extract(7, 0)
	want := Singleton(8, 0xCD)
	if !got.Identical(want) {
		t.Errorf("x.extract(7,0) = %s, want %s", got, want)
	}
	got = x.Extract(15, 8)
	want = Singleton(8, 0xAB)
	if !got.Identical(want) {
		t.Errorf("x.extract(15,8) = %s, want %s", got, want)
	}
}

func TestZeroExtendNonWrappingIsExact(t *testing.T) {
	x := Range(8, 0x10, 0x20, 2)
	got := x.ZeroExtend(16)
	want := Range(16, 0x10, 0x20, 2)
	if !got.Identical(want) {
		t.Errorf("x.zero_extend(16) = %s, want %s (exact for a non-wrapping operand)", got, want)
	}
}

func TestZeroExtendWrappingIsSound(t *testing.T) {
	// A naive reinterpretation of lb/ub at the wider width would invent
	// values the 8-bit wrapping set never denoted (e.g. anything in
	// [6,239]); splitting at the south pole before rejoining must not do
	// that, even though rejoining two disjoint pieces as one SI still
	// forces some over-approximation inside each original cluster's span.
	x := Range(8, 0xf0, 0x05, 1) // {0xf0..0xff, 0x00..0x05}
	got := x.ZeroExtend(16)
	if got.Bits() != 16 {
		t.Fatalf("x.zero_extend(16).Bits() = %d, want 16", got.Bits())
	}
	for _, v := range []uint64{0xf0, 0xff, 0x00, 0x05} {
		if !wrappedMember(got, v) {
			t.Errorf("x.zero_extend(16) = %s does not contain %#x", got, v)
		}
	}
	if wrappedMember(got, 0x8000) {
		t.Errorf("x.zero_extend(16) = %s wrongly reaches into the upper 16-bit half", got)
	}
}

func TestSignExtendNonNegativeSingleton(t *testing.T) {
	x := Singleton(8, 0x10)
	got := x.SignExtend(16)
	want := Singleton(16, 0x10)
	if !got.Identical(want) {
		t.Errorf("x.sign_extend(16) = %s, want %s", got, want)
	}
}

func TestAgnosticExtendBothHemispheresLeft(t *testing.T) {
	x := Range(8, 0x10, 0x20, 1) // msb clear on both bounds
	got := x.AgnosticExtend(16)
	want := Range(16, 0x10, 0x20, 1)
	if !got.Identical(want) {
		t.Errorf("x.agnostic_extend(16) = %s, want %s", got, want)
	}
}

func TestAgnosticExtendBothHemispheresRightUbGreater(t *testing.T) {
	x := Range(8, 0x90, 0xA0, 1) // msb set on both, ub > lb
	got := x.AgnosticExtend(16)
	want := Range(16, 0x90, 0xff00|0xA0, 1)
	if !got.Identical(want) {
		t.Errorf("x.agnostic_extend(16) = %s, want %s", got, want)
	}
}

func TestConcatTwoBytes(t *testing.T) {
	a := Singleton(8, 0xAB)
	b := Singleton(8, 0xCD)
	got := a.Concat(b)
	want := Singleton(16, 0xABCD)
	if !got.Identical(want) {
		t.Errorf("a.concat(b) = %s, want %s", got, want)
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	x := Range(16, 0x1000, 0x2000, 1)
	got := x.Reverse().Reverse()
	if !got.Identical(x) {
		t.Errorf("x.reverse().reverse() = %s, want %s", got, x)
	}
}

func TestMaterializeReverseSingleton(t *testing.T) {
	x := Singleton(16, 0xABCD)
	got := x.MaterializeReverse(nil)
	want := Singleton(16, 0xCDAB)
	if !got.Identical(want) {
		t.Errorf("x.materialize_reverse() = %s, want %s", got, want)
	}
}

func TestMaterializeReverseByteWidthIsNoop(t *testing.T) {
	x := Singleton(8, 0x42)
	got := x.MaterializeReverse(nil)
	if !got.Identical(x) {
		t.Errorf("byte-width reverse = %s, want %s unchanged", got, x)
	}
}
