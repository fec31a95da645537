package value

import (
	"testing"

	"github.com/oisee/strided-interval/pkg/boolresult"
	"github.com/oisee/strided-interval/pkg/si"
)

func TestOfIsNotProxy(t *testing.T) {
	v := Of(si.Singleton(8, 5))
	if v.IsProxy() {
		t.Error("Of(...).IsProxy() = true")
	}
	if !v.SI().Identical(si.Singleton(8, 5)) {
		t.Errorf("v.SI() = %s, want singleton 5", v.SI())
	}
}

func TestUnaryOnConcreteValue(t *testing.T) {
	v := Of(si.Singleton(8, 5))
	got := Neg(v)
	if got.IsProxy() {
		t.Fatal("Neg(concrete) produced a proxy")
	}
	want := si.Neg(si.Singleton(8, 5))
	if !got.SI().Identical(want) {
		t.Errorf("Neg(v).SI() = %s, want %s", got.SI(), want)
	}
}

func TestUnaryExpandsProxy(t *testing.T) {
	then := Of(si.Singleton(8, 1))
	els := Of(si.Singleton(8, 2))
	p := OfProxy(boolresult.Maybe, then, els)

	got := Neg(p)
	if !got.IsProxy() {
		t.Fatal("Neg(proxy) did not remain a proxy")
	}
	if !got.Then().SI().Identical(si.Neg(si.Singleton(8, 1))) {
		t.Errorf("Neg(proxy).Then() = %s, want neg(1)", got.Then())
	}
	if !got.Else().SI().Identical(si.Neg(si.Singleton(8, 2))) {
		t.Errorf("Neg(proxy).Else() = %s, want neg(2)", got.Else())
	}
}

func TestBinaryBothConcrete(t *testing.T) {
	a := Of(si.Singleton(8, 3))
	b := Of(si.Singleton(8, 4))
	got := Add(a, b)
	want := si.Add(si.Singleton(8, 3), si.Singleton(8, 4))
	if got.IsProxy() || !got.SI().Identical(want) {
		t.Errorf("Add(a,b) = %s, want concrete %s", got, want)
	}
}

func TestBinaryOneProxyOperand(t *testing.T) {
	a := OfProxy(boolresult.Maybe, Of(si.Singleton(8, 1)), Of(si.Singleton(8, 2)))
	b := Of(si.Singleton(8, 10))
	got := Add(a, b)
	if !got.IsProxy() {
		t.Fatal("Add(proxy, concrete) did not remain a proxy")
	}
	wantThen := si.Add(si.Singleton(8, 1), si.Singleton(8, 10))
	if !got.Then().SI().Identical(wantThen) {
		t.Errorf("Add(proxy,concrete).Then() = %s, want %s", got.Then(), wantThen)
	}
}

func TestCompareBinaryCollapseDefiniteCondition(t *testing.T) {
	a := OfProxy(boolresult.True, Of(si.Singleton(8, 1)), Of(si.Singleton(8, 99)))
	b := Of(si.Singleton(8, 1))
	tree := Eq(a, b)
	if got := tree.Collapse(); got != boolresult.True {
		t.Errorf("Collapse() = %s, want True (definite cond picks the true branch)", got)
	}
}

func TestCompareBinaryCollapseAgreeingBranches(t *testing.T) {
	a := OfProxy(boolresult.Maybe, Of(si.Singleton(8, 5)), Of(si.Singleton(8, 5)))
	b := Of(si.Singleton(8, 5))
	tree := Eq(a, b)
	if got := tree.Collapse(); got != boolresult.True {
		t.Errorf("Collapse() = %s, want True (both branches agree)", got)
	}
}

func TestCompareBinaryCollapseDisagreeingBranchesIsMaybe(t *testing.T) {
	a := OfProxy(boolresult.Maybe, Of(si.Singleton(8, 5)), Of(si.Singleton(8, 6)))
	b := Of(si.Singleton(8, 5))
	tree := Eq(a, b)
	if got := tree.Collapse(); got != boolresult.Maybe {
		t.Errorf("Collapse() = %s, want Maybe (branches disagree under an indefinite cond)", got)
	}
}

func TestStringRendersProxy(t *testing.T) {
	p := OfProxy(boolresult.Maybe, Of(si.Singleton(8, 1)), Of(si.Singleton(8, 2)))
	s := p.String()
	if s == "" {
		t.Error("proxy String() is empty")
	}
}
