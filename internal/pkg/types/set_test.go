package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("new set with initial elements", func(t *testing.T) {
		s := NewSet("a", "b", "a")

		assert.Len(t, s, 2)
		assert.True(t, s.Contains("a"))
		assert.True(t, s.Contains("b"))
		assert.False(t, s.Contains("c"))
	})

	t.Run("add and delete", func(t *testing.T) {
		s := NewSet[string]()
		s.Add("x", "y")
		assert.True(t, s.Contains("x"))

		s.Delete("x")
		assert.False(t, s.Contains("x"))
		assert.True(t, s.Contains("y"))
	})

	t.Run("to slice contains every element", func(t *testing.T) {
		s := NewSet(1, 2, 3)

		got := s.ToSlice()
		assert.ElementsMatch(t, []int{1, 2, 3}, got)
	})

	t.Run("empty set yields nil slice", func(t *testing.T) {
		s := NewSet[int]()
		assert.Empty(t, s.ToSlice())
	})
}
