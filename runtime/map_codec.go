package runtime

import "google.golang.org/protobuf/encoding/protowire"

// MapCodec describes a map field: the field number of its entries and the
// codecs of the entry key (number 1) and value (number 2).
type MapCodec[K comparable, V any] struct {
	num   protowire.Number
	key   FieldCodec[K]
	value FieldCodec[V]
}

func NewMapCodec[K comparable, V any](key FieldCodec[K], value FieldCodec[V], num protowire.Number) MapCodec[K, V] {
	return MapCodec[K, V]{num: num, key: key, value: value}
}

func (c MapCodec[K, V]) Number() protowire.Number { return c.num }

func (c MapCodec[K, V]) entrySize(k K, v V) int {
	return c.key.Size(k) + c.value.Size(v)
}

func (c MapCodec[K, V]) appendEntry(b []byte, k K, v V) []byte {
	b = protowire.AppendTag(b, c.num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(c.entrySize(k, v)))
	b = c.key.Append(b, k)
	return c.value.Append(b, v)
}

func (c MapCodec[K, V]) consumeEntry(b []byte) (K, V, error) {
	k, v := c.key.Zero(), c.value.Zero()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return k, v, parseError(c.num, n)
		}
		var m int
		var err error
		switch {
		case num == 1 && typ == c.key.typ:
			k, m, err = c.key.consumeValue(b[n:])
		case num == 2 && typ == c.value.typ:
			v, m, err = c.value.consumeValue(b[n:])
		default:
			m = protowire.ConsumeFieldValue(num, typ, b[n:])
			if m < 0 {
				err = parseError(c.num, m)
			}
		}
		if err != nil {
			return k, v, err
		}
		b = b[n+m:]
	}
	return k, v, nil
}
