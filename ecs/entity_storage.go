package ecs

// EntityStorage is the specialized sparse-set-like structure that owns
// entity identifiers themselves, recycling freed indices with a bumped
// version instead of handing out fresh ones forever (§4.4). It reuses
// SparseSet purely for the index->position lookup; the packed array's
// layout has extra meaning SparseSet itself does not know about: the
// prefix [0, length) holds live entities and the suffix [length, len)
// holds freed slots whose version has already been bumped, ready to be
// reissued.
type EntityStorage struct {
	set    *SparseSet
	length int
}

// NewEntityStorage returns an empty entity storage.
func NewEntityStorage() *EntityStorage {
	return &EntityStorage{set: NewSparseSet()}
}

// Alive reports whether e is a currently live entity: present in the
// live prefix with a version matching the stored one.
func (s *EntityStorage) Alive(e EntityID) bool {
	if !s.set.Contains(e) {
		return false
	}
	pos := s.set.Index(e)
	return pos < uint32(s.length) && s.set.At(pos).Version() == e.Version()
}

// Emplace returns a fresh or recycled live entity. If the free tail is
// non-empty it reissues the slot at position length (which already
// carries its bumped version from Remove); otherwise it appends a brand
// new index at version 0.
func (s *EntityStorage) Emplace() EntityID {
	if s.length < s.set.Len() {
		e := s.set.At(uint32(s.length))
		s.length++
		return e
	}

	e := Construct(uint32(s.set.Len()), 0)
	s.set.Insert(e)
	s.length++
	return e
}

// Remove retires a live entity: it is swapped to the boundary position
// length-1, its stored version is bumped in place, and the live region
// shrinks by one. The slot now sits at the head of the free tail, ready
// for the next Emplace. Panics if e is not alive.
func (s *EntityStorage) Remove(e EntityID) {
	invariant(s.Alive(e), "ecs: entity %v is not alive", e)

	pos := s.set.Index(e)
	last := uint32(s.length - 1)
	if pos != last {
		s.set.Swap(pos, last)
	}

	bumped := Next(s.set.At(last))
	s.setAt(last, bumped)
	s.length--
}

// setAt overwrites the packed slot at pos without touching the sparse
// side, used only to rewrite an entity's version in place after Swap has
// already made pos the correct sparse target.
func (s *EntityStorage) setAt(pos uint32, e EntityID) {
	s.set.packed[pos] = e
}

// Contains reports whether index has ever been issued, live or freed.
func (s *EntityStorage) Contains(e EntityID) bool {
	return s.set.Contains(e)
}

// Len returns the number of currently live entities.
func (s *EntityStorage) Len() int {
	return s.length
}

// BaseSize returns the total number of index slots ever allocated,
// live or freed-but-recycled.
func (s *EntityStorage) BaseSize() int {
	return s.set.Len()
}

// Each visits every live entity, most-recently-created first.
func (s *EntityStorage) Each(fn func(EntityID)) {
	for i := s.length - 1; i >= 0; i-- {
		fn(s.set.At(uint32(i)))
	}
}

// Clear drops every entity, live and recycled, back to empty.
func (s *EntityStorage) Clear() {
	s.set.Clear()
	s.length = 0
}
