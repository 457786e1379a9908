package ecs

// smallestPool picks the pool most likely to be the fewest iterations,
// the same "drive iteration off the smallest candidate set, filter
// against the rest" strategy the teacher's Query.Build uses
// (lzuwei-pecs-go/ecs/query.go) and §4.5 requires. Ties keep the first
// pool encountered.
func smallestPool(pools ...*SparseSet) int {
	best := 0
	for i := 1; i < len(pools); i++ {
		if pools[i].Len() < pools[best].Len() {
			best = i
		}
	}
	return best
}

// View1 is a snapshot of every entity carrying a single component type.
type View1[A any] struct {
	entities []EntityID
	a        *ComponentStorage[A]
}

// NewView1 builds a view over every entity carrying an A component.
func NewView1[A any](r *Registry) *View1[A] {
	a := Storage[A](r)
	return &View1[A]{entities: append([]EntityID(nil), a.Entities().Data()...), a: a}
}

// SizeHint returns the number of entities this view will visit, an
// upper bound sized off the driving pool.
func (v *View1[A]) SizeHint() int { return len(v.entities) }

// Each visits every (entity, *A) pair, most-recently-inserted first.
func (v *View1[A]) Each(fn func(EntityID, *A)) {
	for i := len(v.entities) - 1; i >= 0; i-- {
		e := v.entities[i]
		if ref, ok := v.a.TryGet(e); ok {
			fn(e, ref)
		}
	}
}

// View2 is a snapshot of every entity carrying both an A and a B.
type View2[A, B any] struct {
	entities []EntityID
	a        *ComponentStorage[A]
	b        *ComponentStorage[B]
}

// NewView2 builds a view over every entity carrying both component
// types, driven by whichever pool is smaller.
func NewView2[A, B any](r *Registry) *View2[A, B] {
	a, b := Storage[A](r), Storage[B](r)
	driving := a.Entities()
	other := b.Entities()
	if smallestPool(a.Entities(), b.Entities()) == 1 {
		driving, other = other, driving
	}

	entities := make([]EntityID, 0, driving.Len())
	for _, e := range driving.Data() {
		if other.Contains(e) {
			entities = append(entities, e)
		}
	}
	return &View2[A, B]{entities: entities, a: a, b: b}
}

// SizeHint returns the number of entities this view will visit.
func (v *View2[A, B]) SizeHint() int { return len(v.entities) }

// Each visits every (entity, *A, *B) triple, most-recently-inserted
// first.
func (v *View2[A, B]) Each(fn func(EntityID, *A, *B)) {
	for i := len(v.entities) - 1; i >= 0; i-- {
		e := v.entities[i]
		refA, okA := v.a.TryGet(e)
		refB, okB := v.b.TryGet(e)
		if okA && okB {
			fn(e, refA, refB)
		}
	}
}

// View3 is a snapshot of every entity carrying an A, a B and a C.
type View3[A, B, C any] struct {
	entities []EntityID
	a        *ComponentStorage[A]
	b        *ComponentStorage[B]
	c        *ComponentStorage[C]
}

// NewView3 builds a view over every entity carrying all three component
// types, driven by whichever pool is smallest.
func NewView3[A, B, C any](r *Registry) *View3[A, B, C] {
	a, b, c := Storage[A](r), Storage[B](r), Storage[C](r)
	pools := []*SparseSet{a.Entities(), b.Entities(), c.Entities()}
	idx := smallestPool(pools...)
	driving := pools[idx]

	entities := make([]EntityID, 0, driving.Len())
	for _, e := range driving.Data() {
		matches := true
		for i, p := range pools {
			if i == idx {
				continue
			}
			if !p.Contains(e) {
				matches = false
				break
			}
		}
		if matches {
			entities = append(entities, e)
		}
	}
	return &View3[A, B, C]{entities: entities, a: a, b: b, c: c}
}

// SizeHint returns the number of entities this view will visit.
func (v *View3[A, B, C]) SizeHint() int { return len(v.entities) }

// Each visits every (entity, *A, *B, *C) tuple, most-recently-inserted
// first.
func (v *View3[A, B, C]) Each(fn func(EntityID, *A, *B, *C)) {
	for i := len(v.entities) - 1; i >= 0; i-- {
		e := v.entities[i]
		refA, okA := v.a.TryGet(e)
		refB, okB := v.b.TryGet(e)
		refC, okC := v.c.TryGet(e)
		if okA && okB && okC {
			fn(e, refA, refB, refC)
		}
	}
}

// View4 is a snapshot of every entity carrying an A, a B, a C and a D.
type View4[A, B, C, D any] struct {
	entities []EntityID
	a        *ComponentStorage[A]
	b        *ComponentStorage[B]
	c        *ComponentStorage[C]
	d        *ComponentStorage[D]
}

// NewView4 builds a view over every entity carrying all four component
// types, driven by whichever pool is smallest.
func NewView4[A, B, C, D any](r *Registry) *View4[A, B, C, D] {
	a, b, c, d := Storage[A](r), Storage[B](r), Storage[C](r), Storage[D](r)
	pools := []*SparseSet{a.Entities(), b.Entities(), c.Entities(), d.Entities()}
	idx := smallestPool(pools...)
	driving := pools[idx]

	entities := make([]EntityID, 0, driving.Len())
	for _, e := range driving.Data() {
		matches := true
		for i, p := range pools {
			if i == idx {
				continue
			}
			if !p.Contains(e) {
				matches = false
				break
			}
		}
		if matches {
			entities = append(entities, e)
		}
	}
	return &View4[A, B, C, D]{entities: entities, a: a, b: b, c: c, d: d}
}

// SizeHint returns the number of entities this view will visit.
func (v *View4[A, B, C, D]) SizeHint() int { return len(v.entities) }

// Each visits every (entity, *A, *B, *C, *D) tuple, most-recently-
// inserted first.
func (v *View4[A, B, C, D]) Each(fn func(EntityID, *A, *B, *C, *D)) {
	for i := len(v.entities) - 1; i >= 0; i-- {
		e := v.entities[i]
		refA, okA := v.a.TryGet(e)
		refB, okB := v.b.TryGet(e)
		refC, okC := v.c.TryGet(e)
		refD, okD := v.d.TryGet(e)
		if okA && okB && okC && okD {
			fn(e, refA, refB, refC, refD)
		}
	}
}
