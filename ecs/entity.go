package ecs

import "fmt"

// EntityID packs an entity index and a version/generation counter into a
// single integer, the way the teacher's Entity type does
// (lzuwei-pecs-go/ecs/entity.go), generalized to the configurable bit
// split installed via Apply (default 20 index bits / 12 version bits).
type EntityID uint32

// Null is the sentinel entity: its index field is the reserved all-ones
// value. Is treats any entity sharing that index field as equal to Null
// regardless of version, per the codec's sentinel rule.
const Null EntityID = EntityID(^uint32(0))

// Index returns the low, index-bearing bitfield of e.
func (e EntityID) Index() uint32 {
	return uint32(e) & indexMask
}

// Version returns the version/generation bitfield of e.
func (e EntityID) Version() uint32 {
	return (uint32(e) >> indexBits) & versionMask
}

// IsNull reports whether e's index field is the reserved all-ones value.
func (e EntityID) IsNull() bool {
	return e.Index() == indexMask
}

// String renders e as "Entity(index.version)", or "Entity(NULL)" for the
// sentinel.
func (e EntityID) String() string {
	if e.IsNull() {
		return "Entity(NULL)"
	}
	return fmt.Sprintf("Entity(%d.%d)", e.Index(), e.Version())
}

// Construct builds an entity id from a raw index and version, masking
// each field to its configured width.
func Construct(index, version uint32) EntityID {
	return EntityID((index & indexMask) | (version&versionMask)<<indexBits)
}

// Combine keeps lhs's index field and rhs's version field, the same
// recombination the source library uses when an entity's index is known
// but its live version must be looked up elsewhere.
func Combine(lhs, rhs EntityID) EntityID {
	return Construct(lhs.Index(), rhs.Version())
}

// Next returns e with its version incremented, skipping the reserved
// all-ones version so a freshly recycled slot is never confused with the
// sentinel.
func Next(e EntityID) EntityID {
	v := (e.Version() + 1) & versionMask
	if v == versionMask {
		v = (v + 1) & versionMask
	}
	return Construct(e.Index(), v)
}

// Is reports whether a and b denote the same entity. If either side's
// index field is the reserved all-ones value, only indices are compared;
// otherwise both fields must match exactly.
func Is(a, b EntityID) bool {
	if a.IsNull() || b.IsNull() {
		return a.Index() == b.Index()
	}
	return a == b
}
