package ecs

import (
	"reflect"
	"sync"
)

// componentKind is the process-wide per-type integer identity the
// registry keys its pool slice by, the generalization of the teacher's
// ComponentRegistry.typeToID (lzuwei-pecs-go/ecs/component_storage.go)
// into the external capability §6 calls "a stable integer per type",
// modeled after wecs/core/ident.hpp's family_type counter.
type componentKind uint32

var (
	identityMu   sync.Mutex
	identityNext componentKind
	identityOf   = make(map[reflect.Type]componentKind)
)

// kindOf returns the stable identity for T, assigning one on first use.
// The assignment order depends on which type is first touched at
// runtime, exactly like the source library's monotonically increasing
// family counter — it is not guaranteed to match declaration order and
// must never be persisted across runs.
func kindOf[T any]() componentKind {
	identityMu.Lock()
	defer identityMu.Unlock()

	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := identityOf[t]; ok {
		return id
	}

	id := identityNext
	identityNext++
	identityOf[t] = id
	return id
}
