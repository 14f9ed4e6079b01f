package runtime

import (
	"math"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
)

type shade int32

func (s shade) String() string {
	if s == 1 {
		return "SHADE_DARK"
	}
	return "SHADE_LIGHT"
}

func encodeJX(fn func(e *jx.Encoder)) string {
	var e jx.Encoder
	fn(&e)
	return string(e.Bytes())
}

func TestEncodeJX(t *testing.T) {
	tests := []struct {
		name     string
		encode   func(e *jx.Encoder)
		expected string
	}{
		{"Int32", func(e *jx.Encoder) { ForInt32(1).EncodeJX(e, -7) }, `-7`},
		{"Uint64", func(e *jx.Encoder) { ForUint64(1).EncodeJX(e, 7) }, `7`},
		{"Bool", func(e *jx.Encoder) { ForBool(1).EncodeJX(e, true) }, `true`},
		{"String", func(e *jx.Encoder) { ForString(1).EncodeJX(e, `a"b`) }, `"a\"b"`},
		{"Bytes", func(e *jx.Encoder) { ForBytes(1).EncodeJX(e, []byte("hi")) }, `"aGk="`},
		{"NaN", func(e *jx.Encoder) { ForDouble(1).EncodeJX(e, math.NaN()) }, `"NaN"`},
		{"Infinity", func(e *jx.Encoder) { ForFloat(1).EncodeJX(e, float32(math.Inf(-1))) }, `"-Infinity"`},
		{"EnumByName", func(e *jx.Encoder) { ForEnum[shade](1).EncodeJX(e, 1) }, `"SHADE_DARK"`},
		{"Message", func(e *jx.Encoder) { ForMessage[point](1).EncodeJX(e, newPoint(3, "x")) }, `{"x":3,"tags":["x"]}`},
		{"NilMessage", func(e *jx.Encoder) { ForMessage[point](1).EncodeJX(e, nil) }, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodeJX(tt.encode))
		})
	}
}

func TestCollectionsJX(t *testing.T) {
	c := NewMapCodec(ForInt32(1), ForString(2), 3)
	got := encodeJX(func(e *jx.Encoder) {
		e.ObjStart()
		ListJX[int32](e, "empty", List[int32]{}, ForInt32(2))
		ListJX[int32](e, "codes", ListOf[int32](1, 2), ForInt32(2))
		MapJX[int32, string](e, "names", MapOf(map[int32]string{10: "b", -1: "a"}), c)
		MapJX[int32, string](e, "none", nil, c)
		e.ObjEnd()
	})
	assert.Equal(t, `{"codes":[1,2],"names":{"-1":"a","10":"b"}}`, got)
}
