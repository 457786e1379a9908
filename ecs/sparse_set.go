package ecs

// npos marks an empty sparse slot, the same sentinel role
// std::numeric_limits<size_type>::max() plays in the source library.
const npos = ^uint32(0)

// sparsePage is one page of the paged sparse array. Pages are allocated
// lazily so an entity population concentrated in a narrow index range
// never forces allocation of the full address space, the same tradeoff
// the teacher's flat ensureCapacity (lzuwei-pecs-go/ecs/sparse_set.go)
// makes eagerly and §4.2 asks to make lazily instead.
type sparsePage []uint32

// SparseSet is the dense-packed / sparse-paged membership structure
// underlying every component pool and the entity storage itself (§4.2).
// Membership is tested by entity index only: the packed slot is not
// required to carry the same version as the probe, which is safe
// because Registry.Destroy always removes an entity from every pool
// that holds it before recycling its index.
type SparseSet struct {
	packed []EntityID
	sparse []sparsePage
}

// NewSparseSet returns an empty sparse set.
func NewSparseSet() *SparseSet {
	return &SparseSet{}
}

func pageIndex(index uint32) (page, offset uint32) {
	return index / sparsePageSize, index % sparsePageSize
}

// sparseRef returns a pointer into the sparse page holding index, or nil
// if that page has never been allocated.
func (s *SparseSet) sparseRef(index uint32) *uint32 {
	page, offset := pageIndex(index)
	if int(page) >= len(s.sparse) || s.sparse[page] == nil {
		return nil
	}
	return &s.sparse[page][offset]
}

// ensureRef returns a pointer into the sparse page holding index,
// allocating the page (filled with npos) if necessary.
func (s *SparseSet) ensureRef(index uint32) *uint32 {
	page, offset := pageIndex(index)
	for uint32(len(s.sparse)) <= page {
		s.sparse = append(s.sparse, nil)
	}
	if s.sparse[page] == nil {
		p := make(sparsePage, sparsePageSize)
		for i := range p {
			p[i] = npos
		}
		s.sparse[page] = p
	}
	return &s.sparse[page][offset]
}

// Contains reports whether e's index is a member of the set.
func (s *SparseSet) Contains(e EntityID) bool {
	ref := s.sparseRef(e.Index())
	if ref == nil || *ref == npos {
		return false
	}
	return s.packed[*ref].Index() == e.Index()
}

// Index returns the dense position of e. Panics if e is not a member.
func (s *SparseSet) Index(e EntityID) uint32 {
	invariant(s.Contains(e), "ecs: sparse set does not contain %v", e)
	return *s.sparseRef(e.Index())
}

// Insert adds e to the set. Panics if e is the null entity or already
// present — both are programming errors per §7.
func (s *SparseSet) Insert(e EntityID) {
	invariant(!e.IsNull(), "ecs: cannot insert the null entity")
	invariant(!s.Contains(e), "ecs: entity %v already present", e)

	ref := s.ensureRef(e.Index())
	*ref = uint32(len(s.packed))
	s.packed = append(s.packed, e)
}

// Remove drops e from the set using swap-and-pop: the last packed
// element moves into e's slot so the dense array stays contiguous.
// Panics if e is not a member.
func (s *SparseSet) Remove(e EntityID) {
	invariant(s.Contains(e), "ecs: entity %v not present", e)

	ref := s.sparseRef(e.Index())
	pos := *ref
	last := uint32(len(s.packed) - 1)

	if pos != last {
		moved := s.packed[last]
		s.packed[pos] = moved
		*s.ensureRef(moved.Index()) = pos
	}

	s.packed = s.packed[:last]
	*ref = npos
}

// Swap exchanges the packed positions of two member entities, keeping
// both sparse pages consistent. Used by EntityStorage.Remove to move a
// retired entity to the boundary between its live and free regions.
func (s *SparseSet) Swap(i, j uint32) {
	s.packed[i], s.packed[j] = s.packed[j], s.packed[i]
	*s.ensureRef(s.packed[i].Index()) = i
	*s.ensureRef(s.packed[j].Index()) = j
}

// Len returns the number of members.
func (s *SparseSet) Len() int {
	return len(s.packed)
}

// Empty reports whether the set has no members.
func (s *SparseSet) Empty() bool {
	return len(s.packed) == 0
}

// Clear removes every member. Allocated sparse pages are kept and reset
// to npos rather than released, the same tradeoff the source library
// makes (§9 Open Questions): this package never shrinks a sparse page
// once it exists.
func (s *SparseSet) Clear() {
	for _, page := range s.sparse {
		for i := range page {
			page[i] = npos
		}
	}
	s.packed = s.packed[:0]
}

// At returns the entity at dense position i.
func (s *SparseSet) At(i uint32) EntityID {
	return s.packed[i]
}

// Data returns the packed dense array in dense-position order, which is
// insertion order until a Remove swaps the last member into the vacated
// slot. Callers must not mutate it.
func (s *SparseSet) Data() []EntityID {
	return s.packed
}

// Each visits every member once, most-recently-inserted first — the
// reverse-iteration order §4.2 and §8 require so that removing the
// current element during iteration never skips or revisits another.
func (s *SparseSet) Each(fn func(EntityID)) {
	for i := len(s.packed) - 1; i >= 0; i-- {
		fn(s.packed[i])
	}
}
