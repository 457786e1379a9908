package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EntityID_ConstructIndexAndVersion(t *testing.T) {
	// Arrange
	index := uint32(42)
	version := uint32(7)

	// Act
	e := Construct(index, version)

	// Assert
	assert.Equal(t, index, e.Index())
	assert.Equal(t, version, e.Version())
}

func Test_EntityID_NullIsSentinelRegardlessOfVersion(t *testing.T) {
	// Arrange
	withVersion := Construct(indexMask, 3)

	// Act / Assert
	assert.True(t, withVersion.IsNull())
	assert.True(t, Null.IsNull())
	assert.True(t, Is(withVersion, Null))
}

func Test_EntityID_IsComparesFullIdentityWhenNeitherIsNull(t *testing.T) {
	// Arrange
	a := Construct(1, 0)
	b := Construct(1, 1)

	// Act / Assert
	assert.False(t, Is(a, b))
	assert.True(t, Is(a, a))
}

func Test_Next_SkipsReservedAllOnesVersion(t *testing.T) {
	// Arrange
	e := Construct(5, versionMask-1)

	// Act
	next := Next(e)

	// Assert
	assert.NotEqual(t, versionMask, next.Version())
}

func Test_Combine_KeepsIndexFromLeftAndVersionFromRight(t *testing.T) {
	// Arrange
	lhs := Construct(9, 1)
	rhs := Construct(2, 5)

	// Act
	combined := Combine(lhs, rhs)

	// Assert
	assert.Equal(t, uint32(9), combined.Index())
	assert.Equal(t, uint32(5), combined.Version())
}
