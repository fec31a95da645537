// Package valueset defines the out-of-scope multi-region collaborators
// named by the strided-interval specification (ValueSet, AbstractLocation):
// a region-keyed map of SIs, plus one minimal concrete implementation
// exercising it. It is deliberately not a reimplementation of claripy's
// base/region address model (backend_vsa.py's ValueSet/AbstractLocation),
// which is out of scope; this package only gives the interface surface a
// shape real callers of pkg/si can build against.
package valueset

import (
	"fmt"

	"github.com/oisee/strided-interval/pkg/si"
)

// AbstractLocation identifies a symbolic memory region plus an offset
// within it, the unit ValueSet entries are keyed by.
type AbstractLocation interface {
	Region() string
	Offset() *si.SI
}

// ValueSet maps memory regions to the strided interval of offsets a
// pointer into that region may hold.
type ValueSet interface {
	Bits() int
	Regions() []string
	Get(region string) *si.SI
	Set(region string, offsets *si.SI)
	Merge(other ValueSet) ValueSet
	String() string
}

// Location is the minimal AbstractLocation implementation.
type Location struct {
	region string
	offset *si.SI
}

// NewLocation returns a Location for the given region and offset.
func NewLocation(region string, offset *si.SI) Location {
	return Location{region: region, offset: offset}
}

// Region returns the location's memory region name.
func (l Location) Region() string { return l.region }

// Offset returns the location's offset SI within its region.
func (l Location) Offset() *si.SI { return l.offset }

// RegionMap is the minimal concrete ValueSet: a plain map from region name
// to the SI of offsets observed in that region.
type RegionMap struct {
	bits    int
	regions map[string]*si.SI
}

// NewRegionMap returns an empty RegionMap of the given pointer width.
func NewRegionMap(bits int) *RegionMap {
	return &RegionMap{bits: bits, regions: make(map[string]*si.SI)}
}

// Bits returns the pointer width every region's offsets share.
func (r *RegionMap) Bits() int { return r.bits }

// Regions returns the set of region names currently tracked, order
// unspecified.
func (r *RegionMap) Regions() []string {
	out := make([]string, 0, len(r.regions))
	for name := range r.regions {
		out = append(out, name)
	}
	return out
}

// Get returns the offset SI for region, or BOTTOM if untracked.
func (r *RegionMap) Get(region string) *si.SI {
	if s, ok := r.regions[region]; ok {
		return s
	}
	return si.Empty(r.bits)
}

// Set replaces the offset SI tracked for region.
func (r *RegionMap) Set(region string, offsets *si.SI) {
	r.regions[region] = offsets
}

// Add joins offsets into whatever is already tracked for region via the
// pseudo-LUB, the same accumulation discipline pkg/si.Union uses for a
// single region's value.
func (r *RegionMap) Add(region string, offsets *si.SI) {
	existing, ok := r.regions[region]
	if !ok {
		r.regions[region] = offsets
		return
	}
	r.regions[region] = si.Union(existing, offsets)
}

// Merge returns the region-wise union of r and other: every region present
// in either operand is joined via pseudo-LUB (treating an absent region as
// BOTTOM, its identity element).
func (r *RegionMap) Merge(other ValueSet) ValueSet {
	out := NewRegionMap(r.bits)
	seen := make(map[string]bool)
	for _, name := range r.Regions() {
		out.Set(name, si.Union(r.Get(name), other.Get(name)))
		seen[name] = true
	}
	for _, name := range other.Regions() {
		if seen[name] {
			continue
		}
		out.Set(name, si.Union(r.Get(name), other.Get(name)))
	}
	return out
}

func (r *RegionMap) String() string {
	return fmt.Sprintf("ValueSet%v", r.regions)
}
