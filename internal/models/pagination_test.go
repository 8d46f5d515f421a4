package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationHasMore(t *testing.T) {
	p := NewPagination(100, 20, 0, 20)
	assert.True(t, p.HasMore)
	assert.Equal(t, "20", p.NextCursor)
}

func TestNewPaginationLastPage(t *testing.T) {
	p := NewPagination(25, 20, 20, 5)
	assert.False(t, p.HasMore)
	assert.Empty(t, p.NextCursor)
}

func TestNewPaginationExactBoundary(t *testing.T) {
	// offset + returned == total means no more pages.
	p := NewPagination(40, 20, 20, 20)
	assert.False(t, p.HasMore)
	assert.Empty(t, p.NextCursor)
}

func TestNewPaginationOffsetBeyondTotal(t *testing.T) {
	// Out-of-range offsets yield an empty page, never an error.
	p := NewPagination(10, 20, 500, 0)
	assert.False(t, p.HasMore)
	assert.Equal(t, int64(10), p.Total)
	assert.Equal(t, int64(500), p.Offset)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, int64(DefaultLimit), ClampLimit(0))
	assert.Equal(t, int64(DefaultLimit), ClampLimit(-5))
	assert.Equal(t, int64(50), ClampLimit(50))
	assert.Equal(t, int64(MaxLimit), ClampLimit(100))
	// Clamping is idempotent: 500 and 100 behave identically.
	assert.Equal(t, ClampLimit(100), ClampLimit(500))
}
