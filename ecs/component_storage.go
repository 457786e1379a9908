package ecs

// componentPage is one paged block of component payloads, mirroring the
// sparse set's own paging so a pool's payload allocation grows in the
// same fixed-size steps as its index space instead of with one
// contiguous slice per pool (§4.3). Unlike the source library's C++
// ComponentTraits::page_size, which drops to 0 for empty/tag types to
// avoid paying for a payload array that holds no data, Go slices of a
// zero-sized element type already cost nothing per element, so every
// pool here uses the same default page size regardless of T.
type componentPage[T any] []T

// ComponentStorage is a sparse set of entities paired with a paged array
// of T payloads kept aligned with the set's packed dense array — the
// generalization of the teacher's ComponentPool[T]
// (lzuwei-pecs-go/ecs/component_storage.go) onto the paged SparseSet.
type ComponentStorage[T any] struct {
	set      *SparseSet
	pages    []componentPage[T]
	pageSize uint32
}

// NewComponentStorage returns an empty storage for component type T,
// using the process-wide default page size. Use SetPageSize to override
// it for a single large or small component before first use.
func NewComponentStorage[T any]() *ComponentStorage[T] {
	return &ComponentStorage[T]{
		set:      NewSparseSet(),
		pageSize: sparsePageSize,
	}
}

// SetPageSize overrides the payload page size for this storage. Callers
// that want a single oversized component padded into its own page (or a
// tiny page for a rarely-populated tag-like component) call this before
// the first Emplace; changing it afterwards is undefined.
func (s *ComponentStorage[T]) SetPageSize(n uint32) {
	invariant(n > 0, "ecs: component page size must be positive")
	s.pageSize = n
}

func (s *ComponentStorage[T]) payloadRef(pos uint32) *T {
	page, offset := pos/s.pageSize, pos%s.pageSize
	for uint32(len(s.pages)) <= page {
		s.pages = append(s.pages, make(componentPage[T], s.pageSize))
	}
	return &s.pages[page][offset]
}

// Contains reports whether e carries this component.
func (s *ComponentStorage[T]) Contains(e EntityID) bool {
	return s.set.Contains(e)
}

// Emplace inserts component for e. Panics if e already carries one —
// use Replace or Patch to update an existing component.
func (s *ComponentStorage[T]) Emplace(e EntityID, component T) *T {
	s.set.Insert(e)
	ref := s.payloadRef(uint32(s.set.Len() - 1))
	*ref = component
	return ref
}

// Get returns a pointer to e's component. Panics if e does not carry
// one.
func (s *ComponentStorage[T]) Get(e EntityID) *T {
	return s.payloadRef(s.set.Index(e))
}

// TryGet returns a pointer to e's component and true, or nil and false
// if e does not carry one.
func (s *ComponentStorage[T]) TryGet(e EntityID) (*T, bool) {
	if !s.set.Contains(e) {
		return nil, false
	}
	return s.payloadRef(s.set.Index(e)), true
}

// Replace overwrites e's existing component value. Panics if e does not
// carry one.
func (s *ComponentStorage[T]) Replace(e EntityID, component T) {
	*s.Get(e) = component
}

// Patch applies fn to e's component in place and returns the pointer
// passed to fn, letting a caller mutate a field without a full Replace.
func (s *ComponentStorage[T]) Patch(e EntityID, fn func(*T)) *T {
	ref := s.Get(e)
	fn(ref)
	return ref
}

// Remove drops e's component, swapping the last payload into its slot
// the same way the backing sparse set swaps entities.
func (s *ComponentStorage[T]) Remove(e EntityID) {
	last := uint32(s.set.Len() - 1)
	pos := s.set.Index(e)
	if pos != last {
		*s.payloadRef(pos) = *s.payloadRef(last)
	}
	s.set.Remove(e)
}

// Len returns the number of entities carrying this component.
func (s *ComponentStorage[T]) Len() int {
	return s.set.Len()
}

// Empty reports whether no entity carries this component.
func (s *ComponentStorage[T]) Empty() bool {
	return s.set.Empty()
}

// Clear drops every component.
func (s *ComponentStorage[T]) Clear() {
	s.set.Clear()
}

// Entities exposes the backing sparse set, letting a view intersect
// against membership without going through the typed payload.
func (s *ComponentStorage[T]) Entities() *SparseSet {
	return s.set
}

// Each visits every (entity, component) pair, most-recently-inserted
// first, matching SparseSet.Each's iteration order.
func (s *ComponentStorage[T]) Each(fn func(EntityID, *T)) {
	for i := s.set.Len() - 1; i >= 0; i-- {
		fn(s.set.At(uint32(i)), s.payloadRef(uint32(i)))
	}
}

// Data returns every live component payload in packed dense order,
// mirrored with Entities().Data(), for callers that want to bypass the
// per-entity facade for bulk processing.
func (s *ComponentStorage[T]) Data() []T {
	out := make([]T, s.set.Len())
	for i := range out {
		out[i] = *s.payloadRef(uint32(i))
	}
	return out
}

