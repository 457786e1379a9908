package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sink_ConnectReturnsWorkingConnection(t *testing.T) {
	// Arrange
	sigh := NewSigh[int]()
	sink := NewSink(sigh)
	var got int

	// Act
	conn, isNew := sink.Connect(func(v int) { got = v })
	sigh.Trigger(7)

	// Assert
	assert.True(t, isNew)
	assert.Equal(t, 7, got)
	assert.True(t, conn.Connected())
}

func Test_Sink_ReleaseDisconnectsAndIsIdempotent(t *testing.T) {
	// Arrange
	sigh := NewSigh[int]()
	sink := NewSink(sigh)
	calls := 0
	conn, _ := sink.Connect(func(int) { calls++ })

	// Act
	conn.Release()
	conn.Release()
	sigh.Trigger(0)

	// Assert
	assert.Equal(t, 0, calls)
	assert.False(t, conn.Connected())
}

func Test_Sink_ConnectSameFunctionTwiceReportsNotNew(t *testing.T) {
	// Arrange
	sigh := NewSigh[int]()
	sink := NewSink(sigh)
	fn := func(int) {}

	// Act
	_, firstNew := sink.Connect(fn)
	_, secondNew := sink.Connect(fn)

	// Assert
	require.True(t, firstNew)
	assert.False(t, secondNew)
}

func Test_Sink_DisconnectInstanceRemovesBoundListener(t *testing.T) {
	// Arrange
	sigh := NewSigh2[EntityID, *position]()
	sink := NewSink2(sigh)
	target := &position{}
	calls := 0
	ConnectBound2(sink, target, func(p *position, _ EntityID, _ *position) { calls++ })

	// Act
	sink.DisconnectInstance(target)
	sigh.Trigger(Construct(1, 0), &position{})

	// Assert
	assert.Equal(t, 0, calls)
}
