package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicates(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Duplicates([]string{"a", "b", "a", "b", "a", "c"}))
	assert.Empty(t, Duplicates([]int{1, 2, 3}))
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []string{"b", "c"}, Intersect([]string{"a", "b", "c", "b"}, []string{"c", "b"}))
	assert.Empty(t, Intersect([]string{"a"}, nil))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsSingle([]int{1}))
}
