package si

import "math/big"

// MaxCardinalityWithoutCollapsing is the cap above which a DiscreteSet
// collapses its members into a single SI via Union, mirroring the
// original's MAX_CARDINALITY_WITHOUT_COLLAPSING constant.
var MaxCardinalityWithoutCollapsing = big.NewInt(256)

// AllowDiscreteSets gates whether DiscreteSet.Add is permitted to keep a
// disjoint set of SIs at all; when false, every Add immediately collapses
// to a single SI, the same as the original's allow_dsis flag off.
var AllowDiscreteSets = false

// DiscreteSet is an opt-in refinement that tracks a bounded number of
// distinct SIs instead of eagerly joining them, preserving precision for
// small value sets (e.g. jump-table targets) while falling back to the
// ordinary pseudo-LUB once the set grows past MaxCardinalityWithoutCollapsing
// or AllowDiscreteSets is off.
type DiscreteSet struct {
	bits    int
	members []*SI
}

// NewDiscreteSet returns an empty DiscreteSet of the given width.
func NewDiscreteSet(bits int) *DiscreteSet {
	return &DiscreteSet{bits: bits}
}

// Add inserts s into the set, collapsing to a single joined SI once the
// cap is exceeded or discrete sets are disallowed.
func (d *DiscreteSet) Add(s *SI) {
	if s.bits != d.bits {
		panic("si: DiscreteSet.Add width mismatch")
	}
	if s.IsBottom() {
		return
	}
	d.members = append(d.members, s)
	if !AllowDiscreteSets || d.totalCardinality().Cmp(MaxCardinalityWithoutCollapsing) > 0 {
		d.collapse()
	}
}

func (d *DiscreteSet) totalCardinality() *big.Int {
	total := big.NewInt(0)
	for _, m := range d.members {
		total.Add(total, m.Cardinality())
	}
	return total
}

func (d *DiscreteSet) collapse() {
	if len(d.members) <= 1 {
		return
	}
	d.members = []*SI{Union(d.members...)}
}

// Members returns the set's current constituent SIs (a single SI once
// collapsed, possibly several while still discrete).
func (d *DiscreteSet) Members() []*SI {
	out := make([]*SI, len(d.members))
	copy(out, d.members)
	return out
}

// Collapsed reports whether the set has been folded into a single SI.
func (d *DiscreteSet) Collapsed() bool { return len(d.members) <= 1 }

// ToSI returns the pseudo-LUB of every member; BOTTOM if the set is empty.
func (d *DiscreteSet) ToSI() *SI {
	if len(d.members) == 0 {
		return Empty(d.bits)
	}
	return Union(d.members...)
}
