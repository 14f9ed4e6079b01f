package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Run("ZeroValueIsEmpty", func(t *testing.T) {
		var l List[int]
		assert.Equal(t, 0, l.Len())
		assert.Empty(t, items[int](l))
		assert.Panics(t, func() { l.Get(0) })
	})
	t.Run("AppendIsPersistent", func(t *testing.T) {
		a := ListOf(1, 2)
		b := a.Append(3)
		assert.Equal(t, []int{1, 2}, a.Items())
		assert.Equal(t, []int{1, 2, 3}, b.Items())
	})
	t.Run("Concat", func(t *testing.T) {
		r := NewRepeatedField[int]()
		r.Add(3, 4)
		l := ListOf(1, 2).Concat(r)
		assert.Equal(t, []int{1, 2, 3, 4}, l.Items())
		assert.Equal(t, []int{3, 4}, List[int]{}.Concat(r).Items())
		assert.Equal(t, []int{1}, ListOf(1).Concat(nil).Items())
	})
	t.Run("FromCopiesMutableInput", func(t *testing.T) {
		r := NewRepeatedField[string]()
		r.Add("a")
		l := ListFrom[string](r)
		r.Add("b")
		assert.Equal(t, []string{"a"}, l.Items())
	})
	t.Run("FromListIsIdentity", func(t *testing.T) {
		l := ListOf("x")
		got := ListFrom[string](l)
		require.Equal(t, 1, got.Len())
		assert.Same(t, l.l, got.l)
	})
	t.Run("EarlyBreak", func(t *testing.T) {
		seen := 0
		for range ListOf(1, 2, 3).All() {
			seen++
			break
		}
		assert.Equal(t, 1, seen)
	})
}

func TestMap(t *testing.T) {
	t.Run("ZeroValueIsEmpty", func(t *testing.T) {
		var m Map[string, int]
		assert.Equal(t, 0, m.Len())
		_, ok := m.Get("a")
		assert.False(t, ok)
	})
	t.Run("SetIsPersistent", func(t *testing.T) {
		a := MapOf(map[string]int{"a": 1})
		b := a.Set("b", 2).Delete("a")
		assert.Equal(t, 1, a.Len())
		v, ok := b.Get("b")
		require.True(t, ok)
		assert.Equal(t, 2, v)
		_, ok = b.Get("a")
		assert.False(t, ok)
	})
	t.Run("BoolKeys", func(t *testing.T) {
		m := Map[bool, string]{}.Set(true, "yes").Set(false, "no")
		v, _ := m.Get(false)
		assert.Equal(t, "no", v)
		assert.Equal(t, 2, m.Len())
	})
	t.Run("KeysIterateInOrder", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, keys[string, int](MapOf(map[string]int{"c": 3, "a": 1, "b": 2})))
		assert.Equal(t, []int32{-7, 0, 5}, keys[int32, bool](MapOf(map[int32]bool{5: true, -7: true, 0: false})))
		assert.Equal(t, []uint64{1, 1 << 40}, keys[uint64, int](Map[uint64, int]{}.Set(1<<40, 1).Set(1, 2)))
		assert.Equal(t, []bool{false, true}, keys[bool, string](Map[bool, string]{}.Set(true, "yes").Set(false, "no")))
		assert.Equal(t, []color{1, 2}, keys[color, int](Map[color, int]{}.Set(2, 0).Set(1, 0)))
	})
	t.Run("FromMapField", func(t *testing.T) {
		f := NewMapField[int32, string]()
		f.Set(1, "a")
		m := MapFrom[int32, string](f)
		f.Set(2, "b")
		assert.Equal(t, 1, m.Len())
	})
}
