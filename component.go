package signet

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// Signature is a single-bit tag identifying one component kind.
type Signature uint64

// Mask is the bitwise OR of zero or more signatures. It describes either an
// entity's current composition or the set of kinds a query requires.
type Mask uint64

// Component represents a data attribute/state that can be attached to entities.
// Every instance of a kind reports the same signature.
type Component interface {
	Signature() Signature
}

// Kind is a registered component kind.
type Kind struct {
	Name      string
	Signature Signature
}

// Mask returns the kind's signature as a single-bit mask.
func (k Kind) Mask() Mask {
	return k.Signature.Mask()
}

func (k Kind) String() string {
	return fmt.Sprintf("%s(%d)", k.Name, k.Signature)
}

// Tag carries a kind's signature and satisfies Component when embedded in a
// concrete component type.
type Tag struct {
	sig Signature
}

// NewTag returns the tag for the given kind.
func NewTag(k Kind) Tag {
	return Tag{sig: k.Signature}
}

func (t Tag) Signature() Signature {
	return t.sig
}

// Valid reports whether s has exactly one bit set.
func (s Signature) Valid() bool {
	return s != 0 && s&(s-1) == 0
}

// Mask widens s to a mask.
func (s Signature) Mask() Mask {
	return Mask(s)
}

// index is the bit position of s.
func (s Signature) index() uint32 {
	return uint32(bits.TrailingZeros64(uint64(s)))
}

// MaskOf combines signatures into a query mask.
func MaskOf(sigs ...Signature) Mask {
	var m Mask
	for _, s := range sigs {
		m |= Mask(s)
	}
	return m
}

// Union ORs masks together.
func Union(masks ...Mask) Mask {
	var m Mask
	for _, o := range masks {
		m |= o
	}
	return m
}

// Intersects reports whether m and o share any bit.
func (m Mask) Intersects(o Mask) bool {
	return m&o != 0
}

// ContainsAll reports whether every bit of o is set in m. The empty mask is
// contained in every mask.
func (m Mask) ContainsAll(o Mask) bool {
	return m&o == o
}

// Signatures returns the single-bit signatures making up m, lowest first.
func (m Mask) Signatures() []Signature {
	sigs := make([]Signature, 0, bits.OnesCount64(uint64(m)))
	for rest := uint64(m); rest != 0; rest &= rest - 1 {
		sigs = append(sigs, Signature(rest&-rest))
	}
	return sigs
}

// Count is the number of kinds in m.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// bitset converts m into the bitset representation the query engine evaluates.
func (m Mask) bitset() mask.Mask {
	var b mask.Mask
	for _, s := range m.Signatures() {
		b.Mark(s.index())
	}
	return b
}

func (m Mask) String() string {
	if m == 0 {
		return "{}"
	}
	parts := make([]string, 0, m.Count())
	for _, s := range m.Signatures() {
		parts = append(parts, fmt.Sprintf("%d", s))
	}
	return "{" + strings.Join(parts, "|") + "}"
}
