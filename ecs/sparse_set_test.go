package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SparseSet_InsertAndContains(t *testing.T) {
	// Arrange
	s := NewSparseSet()
	e := Construct(3, 0)

	// Act
	s.Insert(e)

	// Assert
	assert.True(t, s.Contains(e))
	assert.Equal(t, 1, s.Len())
}

func Test_SparseSet_InsertDuplicatePanics(t *testing.T) {
	// Arrange
	s := NewSparseSet()
	e := Construct(1, 0)
	s.Insert(e)

	// Act / Assert
	assert.Panics(t, func() { s.Insert(e) })
}

func Test_SparseSet_RemoveSwapsLastIntoHole(t *testing.T) {
	// Arrange
	s := NewSparseSet()
	a, b, c := Construct(1, 0), Construct(2, 0), Construct(3, 0)
	s.Insert(a)
	s.Insert(b)
	s.Insert(c)

	// Act
	s.Remove(a)

	// Assert
	require.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(a))
	assert.True(t, s.Contains(b))
	assert.True(t, s.Contains(c))
	assert.Equal(t, c, s.At(0))
}

func Test_SparseSet_RemoveMissingPanics(t *testing.T) {
	// Arrange
	s := NewSparseSet()

	// Act / Assert
	assert.Panics(t, func() { s.Remove(Construct(1, 0)) })
}

func Test_SparseSet_EachVisitsMostRecentFirst(t *testing.T) {
	// Arrange
	s := NewSparseSet()
	var inserted []EntityID
	for i := uint32(0); i < 5; i++ {
		e := Construct(i, 0)
		inserted = append(inserted, e)
		s.Insert(e)
	}

	// Act
	var visited []EntityID
	s.Each(func(e EntityID) { visited = append(visited, e) })

	// Assert
	require.Len(t, visited, len(inserted))
	for i, e := range visited {
		assert.Equal(t, inserted[len(inserted)-1-i], e)
	}
}

func Test_SparseSet_LazyPageAllocationAcrossPages(t *testing.T) {
	// Arrange
	s := NewSparseSet()
	farIndex := sparsePageSize*3 + 5

	// Act
	e := Construct(farIndex, 0)
	s.Insert(e)

	// Assert
	assert.True(t, s.Contains(e))
	assert.False(t, s.Contains(Construct(farIndex-1, 0)))
}

func Test_SparseSet_ClearResetsMembershipButKeepsPages(t *testing.T) {
	// Arrange
	s := NewSparseSet()
	e := Construct(10, 0)
	s.Insert(e)

	// Act
	s.Clear()

	// Assert
	assert.True(t, s.Empty())
	assert.False(t, s.Contains(e))
	require.Len(t, s.sparse, 1)
	assert.Equal(t, npos, s.sparse[0][10])
}
