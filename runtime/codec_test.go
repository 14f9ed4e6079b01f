package runtime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

type color int32

func roundTrip[T any](t *testing.T, c FieldCodec[T], v T) []byte {
	t.Helper()
	b := c.Append(nil, v)
	require.Equal(t, c.Size(v), len(b))
	got, n, err := c.Read(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.True(t, c.Equal(v, got), "decoded %v, want %v", got, v)
	return b
}

func TestScalarCodecs(t *testing.T) {
	t.Run("NegativeInt32TakesTenBytes", func(t *testing.T) {
		b := roundTrip(t, ForInt32(1), -1)
		assert.Len(t, b, 11)
	})
	t.Run("Sint32ZigZag", func(t *testing.T) {
		b := roundTrip(t, ForSint32(1), -1)
		assert.Len(t, b, 2)
		roundTrip(t, ForSint32(1), math.MinInt32)
		roundTrip(t, ForSint32(1), math.MaxInt32)
	})
	t.Run("Sint64", func(t *testing.T) {
		roundTrip(t, ForSint64(1), int64(math.MinInt64))
	})
	t.Run("Unsigned", func(t *testing.T) {
		roundTrip(t, ForUint32(1), uint32(math.MaxUint32))
		roundTrip(t, ForUint64(1), uint64(math.MaxUint64))
	})
	t.Run("Fixed", func(t *testing.T) {
		assert.Len(t, roundTrip(t, ForFixed32(1), 7), 5)
		assert.Len(t, roundTrip(t, ForFixed64(1), 7), 9)
		roundTrip(t, ForSfixed32(1), -7)
		roundTrip(t, ForSfixed64(1), -7)
	})
	t.Run("Floating", func(t *testing.T) {
		roundTrip(t, ForFloat(1), 3.5)
		roundTrip(t, ForDouble(1), -0.25)
	})
	t.Run("Bool", func(t *testing.T) {
		roundTrip(t, ForBool(1), true)
	})
	t.Run("Enum", func(t *testing.T) {
		roundTrip(t, ForEnum[color](1), color(-3))
	})
	t.Run("String", func(t *testing.T) {
		roundTrip(t, ForString(15), "héllo")
	})
	t.Run("BytesAreCopied", func(t *testing.T) {
		c := ForBytes(2)
		b := c.Append(nil, []byte("abc"))
		got, _, err := c.Read(b)
		require.NoError(t, err)
		b[len(b)-1] = 'z'
		assert.Equal(t, []byte("abc"), got)
	})
}

func TestFloatHash(t *testing.T) {
	double, float := ForDouble(1), ForFloat(1)
	nan := math.NaN()
	assert.Equal(t, double.Hash(nan), double.Hash(nan))
	assert.Equal(t, float.Hash(float32(nan)), float.Hash(float32(nan)))
	assert.Equal(t, double.Hash(0), double.Hash(math.Copysign(0, -1)))
	assert.Equal(t, float.Hash(0), float.Hash(float32(math.Copysign(0, -1))))
	assert.NotEqual(t, double.Hash(1), double.Hash(2))
}

func TestCodecReadErrors(t *testing.T) {
	t.Run("WireTypeMismatch", func(t *testing.T) {
		b := ForString(1).Append(nil, "x")
		_, _, err := ForInt32(1).Read(b)
		require.ErrorIs(t, err, ErrWireType)
	})
	t.Run("Truncated", func(t *testing.T) {
		b := ForString(1).Append(nil, "hello")
		_, _, err := ForString(1).Read(b[:3])
		require.ErrorIs(t, err, ErrTruncated)
	})
}

func TestAsPacked(t *testing.T) {
	assert.False(t, ForString(1).AsPacked().Packed())
	assert.False(t, ForMessage[point](1).AsPacked().Packed())
	assert.True(t, ForInt32(1).AsPacked().Packed())
}

func TestRepeatedFieldPackedEncodings(t *testing.T) {
	packed := ForInt32(4).AsPacked()
	plain := ForInt32(4)

	r := NewRepeatedField[int32]()
	r.Add(1, 2, 300)

	b := r.AppendTo(nil, packed)
	require.Equal(t, r.Size(packed), len(b))
	assert.Equal(t, byte(4<<3|2), b[0])

	t.Run("PackedReadByUnpackedCodec", func(t *testing.T) {
		out := NewRepeatedField[int32]()
		n, err := out.AddEntriesFrom(b, plain)
		require.NoError(t, err)
		assert.Equal(t, len(b), n)
		assert.Equal(t, []int32{1, 2, 300}, out.Items())
	})
	t.Run("UnpackedReadByPackedCodec", func(t *testing.T) {
		ub := r.AppendTo(nil, plain)
		require.Equal(t, r.Size(plain), len(ub))
		out := NewRepeatedField[int32]()
		n, err := out.AddEntriesFrom(ub, packed)
		require.NoError(t, err)
		assert.Equal(t, len(ub), n)
		assert.Equal(t, []int32{1, 2, 300}, out.Items())
	})
}

func TestAddEntriesFromStopsAtOtherField(t *testing.T) {
	c := ForString(1)
	b := c.Append(nil, "a")
	b = c.Append(b, "b")
	run := len(b)
	b = ForInt32(2).Append(b, 9)

	r := NewRepeatedField[string]()
	n, err := r.AddEntriesFrom(b, c)
	require.NoError(t, err)
	assert.Equal(t, run, n)
	assert.Equal(t, []string{"a", "b"}, r.Items())
}

func TestMessageCodecs(t *testing.T) {
	p := newPoint(5, "a", "b")

	t.Run("LengthDelimited", func(t *testing.T) {
		c := ForMessage[point](3)
		b := roundTrip(t, c, p)
		assert.Equal(t, byte(3<<3|2), b[0])
	})
	t.Run("Group", func(t *testing.T) {
		c := ForGroup[point](3)
		b := roundTrip(t, c, p)
		assert.Equal(t, byte(3<<3|3), b[0])
		assert.Equal(t, byte(3<<3|4), b[len(b)-1])
	})
	t.Run("NilIsWrittenEmpty", func(t *testing.T) {
		c := ForMessage[point](3)
		var empty *point
		assert.Equal(t, []byte{3<<3 | 2, 0}, c.Append(nil, empty))
	})
	t.Run("CloneIsDeep", func(t *testing.T) {
		c := ForMessage[point](3)
		cp := c.Clone(p)
		require.True(t, c.Equal(p, cp))
		cp.tags.ForMutation().Add("c")
		assert.Equal(t, []string{"a", "b"}, items(p.tags.Get()))
	})
}

func TestReadMessageMergesIntoDestination(t *testing.T) {
	b := ForMessage[point](3).Append(nil, newPoint(0, "b"))
	dst := newPoint(1, "a")
	n, err := ReadMessage(b, 3, dst)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, int32(1), dst.x)
	assert.Equal(t, []string{"a", "b"}, items(dst.tags.Get()))

	_, err = ReadMessage(b, 4, newPoint(0))
	require.ErrorIs(t, err, ErrWireType)
}

func TestReadGroup(t *testing.T) {
	b := ForGroup[point](6).Append(nil, newPoint(2))
	dst := &point{}
	n, err := ReadGroup(b, 6, dst)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, int32(2), dst.x)
}

func TestUnknownFieldsAreSkippedByFixture(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)
	b = pointXCodec.Append(b, 4)
	p := &point{}
	require.NoError(t, p.UnmarshalWire(b))
	assert.Equal(t, int32(4), p.x)
}
