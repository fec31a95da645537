package valueset

import (
	"testing"

	"github.com/oisee/strided-interval/pkg/si"
)

func TestRegionMapGetUntrackedRegionIsBottom(t *testing.T) {
	rm := NewRegionMap(32)
	got := rm.Get("heap")
	if !got.IsBottom() {
		t.Errorf("Get(untracked) = %s, want BOTTOM", got)
	}
}

func TestRegionMapSetAndGet(t *testing.T) {
	rm := NewRegionMap(32)
	offsets := si.Range(32, 0x10, 0x20, 4)
	rm.Set("stack", offsets)
	if got := rm.Get("stack"); !got.Identical(offsets) {
		t.Errorf("Get(stack) = %s, want %s", got, offsets)
	}
}

func TestRegionMapAddJoinsExisting(t *testing.T) {
	rm := NewRegionMap(32)
	rm.Add("heap", si.Singleton(32, 0x100))
	rm.Add("heap", si.Singleton(32, 0x200))
	got := rm.Get("heap")
	want := si.Union(si.Singleton(32, 0x100), si.Singleton(32, 0x200))
	if !got.Identical(want) {
		t.Errorf("Get(heap) after two Adds = %s, want %s", got, want)
	}
}

func TestRegionMapMerge(t *testing.T) {
	a := NewRegionMap(32)
	a.Set("heap", si.Singleton(32, 1))
	b := NewRegionMap(32)
	b.Set("heap", si.Singleton(32, 2))
	b.Set("stack", si.Singleton(32, 3))

	merged := a.Merge(b)
	wantHeap := si.Union(si.Singleton(32, 1), si.Singleton(32, 2))
	if got := merged.Get("heap"); !got.Identical(wantHeap) {
		t.Errorf("merged.Get(heap) = %s, want %s", got, wantHeap)
	}
	if got := merged.Get("stack"); !got.Identical(si.Singleton(32, 3)) {
		t.Errorf("merged.Get(stack) = %s, want singleton 3 (absent side treated as BOTTOM)", got)
	}
}

func TestLocationAccessors(t *testing.T) {
	off := si.Singleton(32, 0x40)
	loc := NewLocation("heap", off)
	if loc.Region() != "heap" {
		t.Errorf("loc.Region() = %q, want heap", loc.Region())
	}
	if !loc.Offset().Identical(off) {
		t.Errorf("loc.Offset() = %s, want %s", loc.Offset(), off)
	}
}

func TestRegionMapBitsAndRegions(t *testing.T) {
	rm := NewRegionMap(64)
	if rm.Bits() != 64 {
		t.Errorf("rm.Bits() = %d, want 64", rm.Bits())
	}
	rm.Set("a", si.Singleton(64, 1))
	rm.Set("b", si.Singleton(64, 2))
	regions := rm.Regions()
	if len(regions) != 2 {
		t.Errorf("len(rm.Regions()) = %d, want 2", len(regions))
	}
}
