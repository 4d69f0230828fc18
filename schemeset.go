package lipi

import (
	"strings"

	"github.com/willf/bitset"
)

// SchemeSet is a set of schemes, as returned by Candidates.
// The zero value is an empty set.
type SchemeSet struct {
	bits *bitset.BitSet
}

// NewSchemeSet creates a set containing schemes.
func NewSchemeSet(schemes ...Scheme) SchemeSet {
	set := SchemeSet{bits: bitset.New(uint(schemeCount))}
	for _, s := range schemes {
		set.bits.Set(uint(s))
	}
	return set
}

// with returns a copy of set with s added.
func (set SchemeSet) with(s Scheme) SchemeSet {
	if set.bits == nil {
		return NewSchemeSet(s)
	}
	return SchemeSet{bits: set.bits.Clone().Set(uint(s))}
}

// Contains is true if s is a member of set.
func (set SchemeSet) Contains(s Scheme) bool {
	return set.bits != nil && set.bits.Test(uint(s))
}

// Len returns the number of schemes in the set.
func (set SchemeSet) Len() int {
	if set.bits == nil {
		return 0
	}
	return int(set.bits.Count())
}

// Empty is true for a set without members.
func (set SchemeSet) Empty() bool {
	return set.Len() == 0
}

// Schemes lists the members in declaration order.
func (set SchemeSet) Schemes() []Scheme {
	if set.bits == nil {
		return nil
	}
	schemes := make([]Scheme, 0, set.bits.Count())
	for i, ok := set.bits.NextSet(0); ok; i, ok = set.bits.NextSet(i + 1) {
		schemes = append(schemes, Scheme(i))
	}
	return schemes
}

// String renders a set as "{itrans velthuis}".
func (set SchemeSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range set.Schemes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s == None {
			b.WriteString("none")
			continue
		}
		b.WriteString(s.String())
	}
	b.WriteByte('}')
	return b.String()
}
