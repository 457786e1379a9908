package ecs

// mixin decorates a ComponentStorage[T] with construct/update/
// destruction notifications, the Go counterpart of wecs/entity/mixin.hpp
// wrapping a storage so a Registry never has to fire signals itself.
// Ordering follows the source exactly: on_construct fires after the
// payload is visible in storage, on_destruction fires while it is still
// visible (listeners may read it one last time), and on_update fires
// after the mutation has already happened.
type mixin[T any] struct {
	storage     *ComponentStorage[T]
	onConstruct Sigh2[EntityID, *T]
	onUpdate    Sigh2[EntityID, *T]
	onDestroy   Sigh2[EntityID, *T]
}

func newMixin[T any]() *mixin[T] {
	return &mixin[T]{storage: NewComponentStorage[T]()}
}

func (m *mixin[T]) emplace(e EntityID, component T) *T {
	ref := m.storage.Emplace(e, component)
	m.onConstruct.Trigger(e, ref)
	return ref
}

func (m *mixin[T]) patch(e EntityID, fn func(*T)) *T {
	ref := m.storage.Patch(e, fn)
	m.onUpdate.Trigger(e, ref)
	return ref
}

func (m *mixin[T]) replace(e EntityID, component T) *T {
	ref := m.storage.Get(e)
	*ref = component
	m.onUpdate.Trigger(e, ref)
	return ref
}

func (m *mixin[T]) remove(e EntityID) {
	ref := m.storage.Get(e)
	m.onDestroy.Trigger(e, ref)
	m.storage.Remove(e)
}

func (m *mixin[T]) Contains(e EntityID) bool      { return m.storage.Contains(e) }
func (m *mixin[T]) Len() int                      { return m.storage.Len() }
func (m *mixin[T]) Empty() bool                   { return m.storage.Empty() }
func (m *mixin[T]) entities() *SparseSet          { return m.storage.Entities() }

func (m *mixin[T]) clear() {
	for _, e := range append([]EntityID(nil), m.storage.Entities().Data()...) {
		m.remove(e)
	}
}

// anyMixin is what the registry keeps type-erased per component kind.
type anyMixin interface {
	Contains(EntityID) bool
	remove(EntityID)
	Len() int
	Empty() bool
	clear()
	entities() *SparseSet
}
