package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tick struct {
	N int
}

func Test_Dispatcher_TriggerDeliversSynchronously(t *testing.T) {
	// Arrange
	d := NewDispatcher()
	var got int
	DispatcherSink[tick](d).Connect(func(ev tick) { got = ev.N })

	// Act
	Trigger(d, tick{N: 5})

	// Assert
	assert.Equal(t, 5, got)
}

func Test_Dispatcher_EnqueueDefersUntilUpdate(t *testing.T) {
	// Arrange
	d := NewDispatcher()
	var got []int
	DispatcherSink[tick](d).Connect(func(ev tick) { got = append(got, ev.N) })

	// Act
	Enqueue(d, tick{N: 1})
	Enqueue(d, tick{N: 2})
	require.Empty(t, got)
	Update[tick](d)

	// Assert
	assert.Equal(t, []int{1, 2}, got)
}

func Test_Dispatcher_UpdateAllDrainsEveryKind(t *testing.T) {
	// Arrange
	d := NewDispatcher()
	var ticks, names []any
	DispatcherSink[tick](d).Connect(func(ev tick) { ticks = append(ticks, ev) })
	DispatcherSink[string](d).Connect(func(s string) { names = append(names, s) })

	// Act
	Enqueue(d, tick{N: 1})
	Enqueue(d, "hello")
	d.UpdateAll()

	// Assert
	assert.Len(t, ticks, 1)
	assert.Len(t, names, 1)
}

func Test_Dispatcher_ClearKindDropsPendingAndListeners(t *testing.T) {
	// Arrange
	d := NewDispatcher()
	calls := 0
	DispatcherSink[tick](d).Connect(func(tick) { calls++ })
	Enqueue(d, tick{N: 1})

	// Act
	ClearKind[tick](d)
	Update[tick](d)

	// Assert
	assert.Equal(t, 0, calls)
}
