package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct {
	Current int
}

func Test_Registry_CreateAndDestroy(t *testing.T) {
	// Arrange
	r := New()

	// Act
	e := r.Create()

	// Assert
	require.True(t, r.Alive(e))
	r.Destroy(e)
	assert.False(t, r.Alive(e))
}

func Test_Registry_DestroyRemovesFromEveryPool(t *testing.T) {
	// Arrange
	r := New()
	e := r.Create()
	Emplace(r, e, position{X: 1})
	Emplace(r, e, health{Current: 10})

	// Act
	r.Destroy(e)

	// Assert
	assert.Equal(t, 0, Size[position](r))
	assert.Equal(t, 0, Size[health](r))
}

func Test_Registry_EmplaceOnDeadEntityPanics(t *testing.T) {
	// Arrange
	r := New()
	e := r.Create()
	r.Destroy(e)

	// Act / Assert
	assert.Panics(t, func() { Emplace(r, e, position{}) })
}

func Test_Registry_PatchFiresOnUpdateSignal(t *testing.T) {
	// Arrange
	r := New()
	e := r.Create()
	Emplace(r, e, health{Current: 10})
	fired := 0
	OnUpdate[health](r).Connect(func(_ EntityID, h *health) { fired++; assert.Equal(t, 5, h.Current) })

	// Act
	Patch(r, e, func(h *health) { h.Current = 5 })

	// Assert
	assert.Equal(t, 1, fired)
}

func Test_Registry_OnConstructFiresAfterPayloadVisible(t *testing.T) {
	// Arrange
	r := New()
	e := r.Create()
	var seenDuringConstruct int
	OnConstruct[health](r).Connect(func(_ EntityID, h *health) { seenDuringConstruct = h.Current })

	// Act
	Emplace(r, e, health{Current: 42})

	// Assert
	assert.Equal(t, 42, seenDuringConstruct)
}

func Test_Registry_OnDestructionFiresWhileComponentStillReadable(t *testing.T) {
	// Arrange
	r := New()
	e := r.Create()
	Emplace(r, e, health{Current: 3})
	var seen int
	OnDestruction[health](r).Connect(func(_ EntityID, h *health) { seen = h.Current })

	// Act
	Remove[health](r, e)

	// Assert
	assert.Equal(t, 3, seen)
	assert.False(t, Has[health](r, e))
}

func Test_Registry_StorageExposesBulkData(t *testing.T) {
	// Arrange
	r := New()
	e1, e2 := r.Create(), r.Create()
	Emplace(r, e1, position{X: 1})
	Emplace(r, e2, position{X: 2})

	// Act
	data := Storage[position](r).Data()

	// Assert
	require.Len(t, data, 2)
}
