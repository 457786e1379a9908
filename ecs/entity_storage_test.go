package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EntityStorage_EmplaceIssuesFreshEntities(t *testing.T) {
	// Arrange
	s := NewEntityStorage()

	// Act
	a := s.Emplace()
	b := s.Emplace()

	// Assert
	assert.NotEqual(t, a.Index(), b.Index())
	assert.True(t, s.Alive(a))
	assert.True(t, s.Alive(b))
	assert.Equal(t, 2, s.Len())
}

func Test_EntityStorage_RemoveThenEmplaceRecyclesIndexWithBumpedVersion(t *testing.T) {
	// Arrange
	s := NewEntityStorage()
	e := s.Emplace()
	originalVersion := e.Version()

	// Act
	s.Remove(e)
	recycled := s.Emplace()

	// Assert
	require.Equal(t, e.Index(), recycled.Index())
	assert.NotEqual(t, originalVersion, recycled.Version())
	assert.True(t, s.Alive(recycled))
	assert.False(t, s.Alive(e))
}

func Test_EntityStorage_RemoveOfStaleVersionPanics(t *testing.T) {
	// Arrange
	s := NewEntityStorage()
	e := s.Emplace()
	s.Remove(e)

	// Act / Assert
	assert.Panics(t, func() { s.Remove(e) })
}

func Test_EntityStorage_BaseSizeCountsRecycledSlots(t *testing.T) {
	// Arrange
	s := NewEntityStorage()
	e := s.Emplace()
	s.Remove(e)

	// Act / Assert
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.BaseSize())
}

func Test_EntityStorage_EachVisitsOnlyLiveEntities(t *testing.T) {
	// Arrange
	s := NewEntityStorage()
	a := s.Emplace()
	b := s.Emplace()
	s.Remove(a)

	// Act
	var visited []EntityID
	s.Each(func(e EntityID) { visited = append(visited, e) })

	// Assert
	require.Len(t, visited, 1)
	assert.True(t, Is(visited[0], b))
}
