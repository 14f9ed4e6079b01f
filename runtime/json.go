package runtime

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-faster/jx"
)

// encodeValueJX writes a scalar, enum or bytes value. Enums are written by
// name through their String method.
func encodeValueJX[T any](e *jx.Encoder, v T) {
	switch x := any(v).(type) {
	case bool:
		e.Bool(x)
	case int32:
		e.Int32(x)
	case int64:
		e.Int64(x)
	case uint32:
		e.UInt32(x)
	case uint64:
		e.UInt64(x)
	case float32:
		if !encodeSpecialFloatJX(e, float64(x)) {
			e.Float32(x)
		}
	case float64:
		if !encodeSpecialFloatJX(e, x) {
			e.Float64(x)
		}
	case string:
		e.Str(x)
	case []byte:
		e.Base64(x)
	case fmt.Stringer:
		e.Str(x.String())
	default:
		e.Str(fmt.Sprint(x))
	}
}

// encodeSpecialFloatJX writes NaN and the infinities the way protojson does.
func encodeSpecialFloatJX(e *jx.Encoder, v float64) bool {
	switch {
	case math.IsNaN(v):
		e.Str("NaN")
	case math.IsInf(v, 1):
		e.Str("Infinity")
	case math.IsInf(v, -1):
		e.Str("-Infinity")
	default:
		return false
	}
	return true
}

// ListJX writes name and the elements of v as an array. An empty list is
// omitted.
func ListJX[T any](e *jx.Encoder, name string, v ListView[T], c FieldCodec[T]) {
	if v == nil || v.Len() == 0 {
		return
	}
	e.FieldStart(name)
	e.ArrStart()
	for _, x := range v.All() {
		c.EncodeJX(e, x)
	}
	e.ArrEnd()
}

// MapJX writes name and the entries of v as an object keyed in ascending key
// order. An empty map is omitted.
func MapJX[K comparable, V any](e *jx.Encoder, name string, v MapView[K, V], c MapCodec[K, V]) {
	if v == nil || v.Len() == 0 {
		return
	}
	e.FieldStart(name)
	e.ObjStart()
	for k, x := range sortedEntries(v) {
		e.FieldStart(mapKeyString(k))
		c.value.EncodeJX(e, x)
	}
	e.ObjEnd()
}

func mapKeyString[K comparable](k K) string {
	switch x := any(k).(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	return fmt.Sprint(k)
}
