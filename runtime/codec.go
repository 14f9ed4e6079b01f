package runtime

import (
	"bytes"
	"hash/maphash"
	"math"

	"github.com/go-faster/jx"
	"google.golang.org/protobuf/encoding/protowire"
)

// hashSeed is fixed per process: Hash values are stable within a run but
// never decide wire order.
var hashSeed = maphash.MakeSeed()

// FieldCodec encodes, decodes, sizes, compares, hashes and clones the values
// of one field. Generated code keeps one codec per field in a package-level
// variable and passes it to the collection types.
type FieldCodec[T any] struct {
	num      protowire.Number
	typ      protowire.Type
	packable bool
	packed   bool

	// appendValue, consumeValue and sizeValue work on the bytes that follow
	// the tag (for groups: including the end tag).
	appendValue  func(b []byte, v T) []byte
	consumeValue func(b []byte) (T, int, error)
	sizeValue    func(v T) int

	equal func(a, b T) bool
	hash  func(v T) uint64
	clone func(v T) T
	zero  func() T
	json  func(e *jx.Encoder, v T)
}

func (c FieldCodec[T]) Number() protowire.Number { return c.num }

func (c FieldCodec[T]) WireType() protowire.Type { return c.typ }

// Tag returns the encoded tag, (number << 3) | wire type.
func (c FieldCodec[T]) Tag() uint64 { return protowire.EncodeTag(c.num, c.typ) }

func (c FieldCodec[T]) Packed() bool { return c.packed }

// AsPacked returns a copy of the codec that writes repeated values in packed
// form. Codecs of length-delimited or group values are returned unchanged.
func (c FieldCodec[T]) AsPacked() FieldCodec[T] {
	if c.packable {
		c.packed = true
	}
	return c
}

// Append writes the tag followed by v.
func (c FieldCodec[T]) Append(b []byte, v T) []byte {
	b = protowire.AppendTag(b, c.num, c.typ)
	return c.appendValue(b, v)
}

// Size is the number of bytes Append writes for v.
func (c FieldCodec[T]) Size(v T) int {
	return protowire.SizeTag(c.num) + c.sizeValue(v)
}

// Read consumes one tag-prefixed value from b.
func (c FieldCodec[T]) Read(b []byte) (T, int, error) {
	var zero T
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return zero, 0, parseError(c.num, n)
	}
	if num != c.num || typ != c.typ {
		return zero, 0, wireTypeError(c.num, typ)
	}
	v, m, err := c.consumeValue(b[n:])
	if err != nil {
		return zero, 0, err
	}
	return v, n + m, nil
}

func (c FieldCodec[T]) Equal(a, b T) bool { return c.equal(a, b) }

func (c FieldCodec[T]) Hash(v T) uint64 { return c.hash(v) }

// Clone returns a deep copy of v. Scalars are returned as is.
func (c FieldCodec[T]) Clone(v T) T { return c.clone(v) }

// Zero returns the value a missing map entry key or value decodes to.
func (c FieldCodec[T]) Zero() T { return c.zero() }

// EncodeJX writes v as a JSON value.
func (c FieldCodec[T]) EncodeJX(e *jx.Encoder, v T) { c.json(e, v) }

func comparableCodec[T comparable](num protowire.Number, typ protowire.Type) FieldCodec[T] {
	return FieldCodec[T]{
		num:      num,
		typ:      typ,
		packable: typ != protowire.BytesType,
		equal:    func(a, b T) bool { return a == b },
		hash:     func(v T) uint64 { return maphash.Comparable(hashSeed, v) },
		clone:    func(v T) T { return v },
		zero:     func() T { var z T; return z },
		json:     encodeValueJX[T],
	}
}

func varintCodec[T comparable](num protowire.Number, enc func(T) uint64, dec func(uint64) T) FieldCodec[T] {
	c := comparableCodec[T](num, protowire.VarintType)
	c.appendValue = func(b []byte, v T) []byte { return protowire.AppendVarint(b, enc(v)) }
	c.sizeValue = func(v T) int { return protowire.SizeVarint(enc(v)) }
	c.consumeValue = func(b []byte) (T, int, error) {
		x, n := protowire.ConsumeVarint(b)
		if n < 0 {
			var zero T
			return zero, 0, parseError(num, n)
		}
		return dec(x), n, nil
	}
	return c
}

func fixed32Codec[T comparable](num protowire.Number, enc func(T) uint32, dec func(uint32) T) FieldCodec[T] {
	c := comparableCodec[T](num, protowire.Fixed32Type)
	c.appendValue = func(b []byte, v T) []byte { return protowire.AppendFixed32(b, enc(v)) }
	c.sizeValue = func(T) int { return protowire.SizeFixed32() }
	c.consumeValue = func(b []byte) (T, int, error) {
		x, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			var zero T
			return zero, 0, parseError(num, n)
		}
		return dec(x), n, nil
	}
	return c
}

func fixed64Codec[T comparable](num protowire.Number, enc func(T) uint64, dec func(uint64) T) FieldCodec[T] {
	c := comparableCodec[T](num, protowire.Fixed64Type)
	c.appendValue = func(b []byte, v T) []byte { return protowire.AppendFixed64(b, enc(v)) }
	c.sizeValue = func(T) int { return protowire.SizeFixed64() }
	c.consumeValue = func(b []byte) (T, int, error) {
		x, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			var zero T
			return zero, 0, parseError(num, n)
		}
		return dec(x), n, nil
	}
	return c
}

func ForInt32(num protowire.Number) FieldCodec[int32] {
	return varintCodec(num, func(v int32) uint64 { return uint64(v) }, func(x uint64) int32 { return int32(x) })
}

func ForInt64(num protowire.Number) FieldCodec[int64] {
	return varintCodec(num, func(v int64) uint64 { return uint64(v) }, func(x uint64) int64 { return int64(x) })
}

func ForUint32(num protowire.Number) FieldCodec[uint32] {
	return varintCodec(num, func(v uint32) uint64 { return uint64(v) }, func(x uint64) uint32 { return uint32(x) })
}

func ForUint64(num protowire.Number) FieldCodec[uint64] {
	return varintCodec(num, func(v uint64) uint64 { return v }, func(x uint64) uint64 { return x })
}

func ForSint32(num protowire.Number) FieldCodec[int32] {
	return varintCodec(num,
		func(v int32) uint64 { return protowire.EncodeZigZag(int64(v)) },
		func(x uint64) int32 { return int32(protowire.DecodeZigZag(x & math.MaxUint32)) })
}

func ForSint64(num protowire.Number) FieldCodec[int64] {
	return varintCodec(num, protowire.EncodeZigZag, protowire.DecodeZigZag)
}

func ForBool(num protowire.Number) FieldCodec[bool] {
	return varintCodec(num, protowire.EncodeBool, protowire.DecodeBool)
}

// ForEnum returns a codec for an enum whose Go type is based on int32.
func ForEnum[E ~int32](num protowire.Number) FieldCodec[E] {
	return varintCodec(num, func(v E) uint64 { return uint64(int64(v)) }, func(x uint64) E { return E(int32(x)) })
}

func ForFixed32(num protowire.Number) FieldCodec[uint32] {
	return fixed32Codec(num, func(v uint32) uint32 { return v }, func(x uint32) uint32 { return x })
}

func ForSfixed32(num protowire.Number) FieldCodec[int32] {
	return fixed32Codec(num, func(v int32) uint32 { return uint32(v) }, func(x uint32) int32 { return int32(x) })
}

func ForFloat(num protowire.Number) FieldCodec[float32] {
	c := fixed32Codec(num, math.Float32bits, math.Float32frombits)
	c.hash = func(v float32) uint64 { return hashFloat(float64(v)) }
	return c
}

func ForFixed64(num protowire.Number) FieldCodec[uint64] {
	return fixed64Codec(num, func(v uint64) uint64 { return v }, func(x uint64) uint64 { return x })
}

func ForSfixed64(num protowire.Number) FieldCodec[int64] {
	return fixed64Codec(num, func(v int64) uint64 { return uint64(v) }, func(x uint64) int64 { return int64(x) })
}

func ForDouble(num protowire.Number) FieldCodec[float64] {
	c := fixed64Codec(num, math.Float64bits, math.Float64frombits)
	c.hash = hashFloat
	return c
}

// hashFloat hashes the bit pattern of v so a NaN hashes the same every time.
// Both zeros compare equal and hash alike.
func hashFloat(v float64) uint64 {
	if v == 0 {
		v = 0
	}
	return maphash.Comparable(hashSeed, math.Float64bits(v))
}

func ForString(num protowire.Number) FieldCodec[string] {
	c := comparableCodec[string](num, protowire.BytesType)
	c.appendValue = protowire.AppendString
	c.sizeValue = func(v string) int { return protowire.SizeBytes(len(v)) }
	c.consumeValue = func(b []byte) (string, int, error) {
		v, n := protowire.ConsumeString(b)
		if n < 0 {
			return "", 0, parseError(num, n)
		}
		return v, n, nil
	}
	return c
}

func ForBytes(num protowire.Number) FieldCodec[[]byte] {
	return FieldCodec[[]byte]{
		num:         num,
		typ:         protowire.BytesType,
		appendValue: protowire.AppendBytes,
		sizeValue:   func(v []byte) int { return protowire.SizeBytes(len(v)) },
		consumeValue: func(b []byte) ([]byte, int, error) {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, 0, parseError(num, n)
			}
			return bytes.Clone(v), n, nil
		},
		equal: bytes.Equal,
		hash:  func(v []byte) uint64 { return maphash.Bytes(hashSeed, v) },
		clone: bytes.Clone,
		zero:  func() []byte { return nil },
		json:  encodeValueJX[[]byte],
	}
}

// ForMessage returns a length-delimited codec for the generated message
// type T. A nil message is written as an empty one.
func ForMessage[T any, PT interface {
	*T
	Message[PT]
}](num protowire.Number) FieldCodec[PT] {
	c := messageCodec[T, PT](num, protowire.BytesType)
	c.appendValue = func(b []byte, v PT) []byte {
		b = protowire.AppendVarint(b, uint64(v.WireSize()))
		return v.AppendWire(b)
	}
	c.sizeValue = func(v PT) int { return protowire.SizeBytes(v.WireSize()) }
	c.consumeValue = func(b []byte) (PT, int, error) {
		payload, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, 0, parseError(num, n)
		}
		v := PT(new(T))
		if err := v.UnmarshalWire(payload); err != nil {
			return nil, 0, fieldError(num, err)
		}
		return v, n, nil
	}
	return c
}

// ForGroup returns a codec for the generated message type T encoded with
// start and end group tags.
func ForGroup[T any, PT interface {
	*T
	Message[PT]
}](num protowire.Number) FieldCodec[PT] {
	c := messageCodec[T, PT](num, protowire.StartGroupType)
	c.appendValue = func(b []byte, v PT) []byte {
		b = v.AppendWire(b)
		return protowire.AppendTag(b, num, protowire.EndGroupType)
	}
	c.sizeValue = func(v PT) int { return v.WireSize() + protowire.SizeTag(num) }
	c.consumeValue = func(b []byte) (PT, int, error) {
		payload, n := protowire.ConsumeGroup(num, b)
		if n < 0 {
			return nil, 0, parseError(num, n)
		}
		v := PT(new(T))
		if err := v.UnmarshalWire(payload); err != nil {
			return nil, 0, fieldError(num, err)
		}
		return v, n, nil
	}
	return c
}

func messageCodec[T any, PT interface {
	*T
	Message[PT]
}](num protowire.Number, typ protowire.Type) FieldCodec[PT] {
	return FieldCodec[PT]{
		num:   num,
		typ:   typ,
		equal: func(a, b PT) bool { return a.Equal(b) },
		hash:  func(v PT) uint64 { return v.Hash() },
		clone: func(v PT) PT { return v.DeepClone() },
		zero:  func() PT { return PT(new(T)) },
		json:  func(e *jx.Encoder, v PT) { v.MarshalJX(e) },
	}
}
