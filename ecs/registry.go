package ecs

// Registry is the facade that owns entity lifecycle and every component
// pool, the generalization of the teacher's World
// (lzuwei-pecs-go/ecs/world.go) onto the paged sparse-set storages and
// the mixin-based signal layer above. Go's lack of generic methods is
// why the component-typed operations below are package-level free
// functions over *Registry instead of methods — the same shape the
// teacher already uses for AddComponent[T]/GetComponent[T].
type Registry struct {
	entities *EntityStorage
	onCreate Sigh[EntityID]
	onDestroy Sigh[EntityID]
	pools    map[componentKind]anyMixin
	metrics  *Metrics
}

// New returns an empty registry. It takes no capacity hint:
// Config.Registry.InitialPoolCapacity is not consulted.
func New() *Registry {
	return &Registry{
		entities: NewEntityStorage(),
		pools:    make(map[componentKind]anyMixin),
	}
}

// WithMetrics attaches a Prometheus collector to r, returning r for
// chaining. Passing nil detaches the collector.
func (r *Registry) WithMetrics(m *Metrics) *Registry {
	r.metrics = m
	return r
}

// Create returns a fresh or recycled live entity.
func (r *Registry) Create() EntityID {
	e := r.entities.create()
	r.onCreate.Trigger(e)
	if r.metrics != nil {
		r.metrics.entitiesCreated.Inc()
	}
	return e
}

// Alive reports whether e currently denotes a live entity.
func (r *Registry) Alive(e EntityID) bool {
	return r.entities.Alive(e)
}

// Destroy removes e from every pool that holds it and retires its
// index for recycling. Panics if e is not alive.
func (r *Registry) Destroy(e EntityID) {
	invariant(r.Alive(e), "ecs: destroy of entity %v which is not alive", e)

	r.onDestroy.Trigger(e)
	for _, pool := range r.pools {
		if pool.Contains(e) {
			pool.remove(e)
		}
	}
	r.entities.Remove(e)
	if r.metrics != nil {
		r.metrics.entitiesDestroyed.Inc()
	}
}

// Size returns the number of live entities.
func (r *Registry) Size() int {
	return r.entities.Len()
}

// OnConstructEntity returns a sink for entity-creation notifications.
func (r *Registry) OnConstructEntity() Sink[EntityID] {
	return NewSink(&r.onCreate)
}

// OnDestroyEntity returns a sink for entity-destruction notifications,
// fired while the entity is still alive and still present in every pool
// that held it.
func (r *Registry) OnDestroyEntity() Sink[EntityID] {
	return NewSink(&r.onDestroy)
}

// Clear destroys every live entity, draining every pool.
func (r *Registry) Clear() {
	for _, pool := range r.pools {
		pool.clear()
	}
	r.entities.Clear()
}

func assure[C any](r *Registry) *mixin[C] {
	kind := kindOf[C]()
	pool, ok := r.pools[kind]
	if !ok {
		m := newMixin[C]()
		r.pools[kind] = m
		logger.Debug("ecs: pool created")
		return m
	}
	return pool.(*mixin[C])
}

// Emplace attaches a C component to e. Panics if e already carries one
// or is not alive.
func Emplace[C any](r *Registry, e EntityID, component C) *C {
	invariant(r.Alive(e), "ecs: emplace onto entity %v which is not alive", e)
	ref := assure[C](r).emplace(e, component)
	if r.metrics != nil {
		r.metrics.componentsEmplaced.Inc()
	}
	return ref
}

// Patch mutates e's C component in place via fn and fires an update
// notification. Panics if e does not carry a C.
func Patch[C any](r *Registry, e EntityID, fn func(*C)) *C {
	return assure[C](r).patch(e, fn)
}

// Replace overwrites e's C component and fires an update notification.
// Panics if e does not carry one.
func Replace[C any](r *Registry, e EntityID, component C) *C {
	return assure[C](r).replace(e, component)
}

// Remove detaches e's C component, firing a destruction notification
// first. Panics if e does not carry one.
func Remove[C any](r *Registry, e EntityID) {
	assure[C](r).remove(e)
	if r.metrics != nil {
		r.metrics.componentsRemoved.Inc()
	}
}

// Has reports whether e carries a C component.
func Has[C any](r *Registry, e EntityID) bool {
	return assure[C](r).Contains(e)
}

// Get returns a pointer to e's C component. Panics if e does not carry
// one.
func Get[C any](r *Registry, e EntityID) *C {
	return assure[C](r).storage.Get(e)
}

// TryGet returns a pointer to e's C component and true, or nil and
// false if e does not carry one.
func TryGet[C any](r *Registry, e EntityID) (*C, bool) {
	return assure[C](r).storage.TryGet(e)
}

// Size returns the number of entities carrying a C component.
func Size[C any](r *Registry) int {
	return assure[C](r).Len()
}

// Empty reports whether no entity carries a C component.
func Empty[C any](r *Registry) bool {
	return assure[C](r).Empty()
}

// Storage returns the raw ComponentStorage[C] backing this registry's C
// pool, letting advanced callers bypass the Emplace/Get/Patch facade for
// bulk access (e.g. an iteration-heavy system that wants Data()
// directly).
func Storage[C any](r *Registry) *ComponentStorage[C] {
	return assure[C](r).storage
}

// OnConstruct returns a sink fired after a C component is emplaced.
func OnConstruct[C any](r *Registry) Sink2[EntityID, *C] {
	return NewSink2(&assure[C](r).onConstruct)
}

// OnUpdate returns a sink fired after a C component is patched or
// replaced.
func OnUpdate[C any](r *Registry) Sink2[EntityID, *C] {
	return NewSink2(&assure[C](r).onUpdate)
}

// OnDestruction returns a sink fired just before a C component is
// removed, while it is still readable.
func OnDestruction[C any](r *Registry) Sink2[EntityID, *C] {
	return NewSink2(&assure[C](r).onDestroy)
}

// create is a thin forwarding method kept private so EntityStorage's own
// exported Emplace name (shared with ComponentStorage) doesn't leak onto
// Registry's public surface as something that sounds component-related.
func (s *EntityStorage) create() EntityID {
	return s.Emplace()
}
