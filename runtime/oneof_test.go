package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shapeCase int32

const (
	shapeCaseNone   shapeCase = 0
	shapeCaseCircle shapeCase = 1
	shapeCaseLabel  shapeCase = 2
)

func TestOneof(t *testing.T) {
	var o Oneof[shapeCase]
	assert.Equal(t, shapeCaseNone, o.Case())

	o.Set(shapeCaseCircle, newPoint(3))
	p, ok := OneofGet[*point](&o, shapeCaseCircle)
	require.True(t, ok)
	assert.Equal(t, int32(3), p.x)

	_, ok = OneofGet[string](&o, shapeCaseLabel)
	assert.False(t, ok)

	o.Set(shapeCaseLabel, "hi")
	s, ok := OneofGet[string](&o, shapeCaseLabel)
	require.True(t, ok)
	assert.Equal(t, "hi", s)
	p, ok = OneofGet[*point](&o, shapeCaseCircle)
	assert.False(t, ok)
	assert.Nil(t, p)

	o.Clear()
	assert.Equal(t, shapeCaseNone, o.Case())
	assert.Nil(t, o.Value())

	o.Set(shapeCaseLabel, "hi")
	o.Set(shapeCaseCircle, nil)
	assert.Equal(t, shapeCaseNone, o.Case())
}

func TestCopyOnWrite(t *testing.T) {
	t.Run("CopyOfNil", func(t *testing.T) {
		cp := CopyOf[point](nil)
		require.NotNil(t, cp)
		assert.Equal(t, 0, cp.WireSize())
	})
	t.Run("MergeCopyLeavesInputs", func(t *testing.T) {
		cur := newPoint(1, "a")
		other := newPoint(0, "b")
		out := MergeCopy(cur, other)
		assert.NotSame(t, cur, out)
		assert.Equal(t, []string{"a"}, items(cur.tags.Get()))
		assert.Equal(t, []string{"b"}, items(other.tags.Get()))
		assert.Equal(t, []string{"a", "b"}, items(out.tags.Get()))
		assert.Equal(t, int32(1), out.x)
	})
}

func TestSingleFieldAccessor(t *testing.T) {
	a := NewSingleFieldAccessor(1, "x", func(p *point) int32 { return p.x }, nil)
	p := newPoint(4)

	assert.Equal(t, "x", a.Name())
	assert.EqualValues(t, 1, a.Number())
	assert.Equal(t, int32(4), a.Get(p))
	assert.True(t, a.Has(p))
	assert.Nil(t, a.Get("not a point"))
	assert.False(t, a.Has(42))
	require.ErrorIs(t, a.Set(p, int32(1)), ErrReadOnlyAccessor)
	require.ErrorIs(t, a.Clear(p), ErrReadOnlyAccessor)

	withHas := NewSingleFieldAccessor(1, "x", func(p *point) int32 { return p.x }, func(p *point) bool { return p.x != 0 })
	assert.False(t, withHas.Has(&point{}))
}
