package runtime

import (
	"iter"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// RepeatedField is the mutable, wire-compatible form of a repeated field.
type RepeatedField[T any] struct {
	items []T
}

func NewRepeatedField[T any]() *RepeatedField[T] {
	return &RepeatedField[T]{}
}

// RepeatedFieldFrom copies the elements of v into a new RepeatedField.
func RepeatedFieldFrom[T any](v ListView[T]) *RepeatedField[T] {
	r := &RepeatedField[T]{}
	r.AddAll(v)
	return r
}

func (r *RepeatedField[T]) Len() int { return len(r.items) }

func (r *RepeatedField[T]) Get(i int) T { return r.items[i] }

func (r *RepeatedField[T]) All() iter.Seq2[int, T] { return slices.All(r.items) }

func (r *RepeatedField[T]) Set(i int, v T) { r.items[i] = v }

func (r *RepeatedField[T]) Add(items ...T) { r.items = append(r.items, items...) }

// AddAll appends every element of v.
func (r *RepeatedField[T]) AddAll(v ListView[T]) {
	if v == nil || v.Len() == 0 {
		return
	}
	r.items = slices.Grow(r.items, v.Len())
	for _, x := range v.All() {
		r.items = append(r.items, x)
	}
}

func (r *RepeatedField[T]) Clear() { r.items = r.items[:0] }

// Items returns the backing slice. Callers must not keep it across mutations.
func (r *RepeatedField[T]) Items() []T { return r.items }

// AddEntriesFrom decodes the run of consecutive entries of the codec's field
// that starts at b and appends them. Packed and unpacked encodings are both
// accepted. It returns the number of bytes consumed.
func (r *RepeatedField[T]) AddEntriesFrom(b []byte, c FieldCodec[T]) (int, error) {
	total := 0
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return total, parseError(c.num, n)
		}
		if num != c.num {
			break
		}
		var adv int
		switch {
		case typ == c.typ:
			v, m, err := c.consumeValue(b[n:])
			if err != nil {
				return total, err
			}
			r.items = append(r.items, v)
			adv = n + m
		case typ == protowire.BytesType && c.packable:
			payload, m := protowire.ConsumeBytes(b[n:])
			if m < 0 {
				return total, parseError(c.num, m)
			}
			for len(payload) > 0 {
				v, k, err := c.consumeValue(payload)
				if err != nil {
					return total, err
				}
				r.items = append(r.items, v)
				payload = payload[k:]
			}
			adv = n + m
		default:
			return total, wireTypeError(c.num, typ)
		}
		total += adv
		b = b[adv:]
	}
	return total, nil
}

func (r *RepeatedField[T]) AppendTo(b []byte, c FieldCodec[T]) []byte {
	return AppendList[T](b, r, c)
}

func (r *RepeatedField[T]) Size(c FieldCodec[T]) int {
	return ListSize[T](r, c)
}

// Clone returns a copy whose elements are deep copies of r's.
func (r *RepeatedField[T]) Clone(c FieldCodec[T]) *RepeatedField[T] {
	return CloneList[T](r, c)
}

// AppendList writes every element of v. Packed codecs write a single
// length-delimited record.
func AppendList[T any](b []byte, v ListView[T], c FieldCodec[T]) []byte {
	if v == nil || v.Len() == 0 {
		return b
	}
	if c.packed {
		payload := 0
		for _, x := range v.All() {
			payload += c.sizeValue(x)
		}
		b = protowire.AppendTag(b, c.num, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(payload))
		for _, x := range v.All() {
			b = c.appendValue(b, x)
		}
		return b
	}
	for _, x := range v.All() {
		b = c.Append(b, x)
	}
	return b
}

// ListSize is the number of bytes AppendList writes for v.
func ListSize[T any](v ListView[T], c FieldCodec[T]) int {
	if v == nil || v.Len() == 0 {
		return 0
	}
	if c.packed {
		payload := 0
		for _, x := range v.All() {
			payload += c.sizeValue(x)
		}
		return protowire.SizeTag(c.num) + protowire.SizeBytes(payload)
	}
	size := 0
	for _, x := range v.All() {
		size += c.Size(x)
	}
	return size
}

// ListHash combines element hashes without regard to order.
func ListHash[T any](v ListView[T], c FieldCodec[T]) uint64 {
	if v == nil {
		return 0
	}
	var h uint64
	for _, x := range v.All() {
		h += mix(c.hash(x))
	}
	return h
}

// ListEqual reports whether a and b hold equal elements in the same order.
func ListEqual[T any](a, b ListView[T], c FieldCodec[T]) bool {
	if lenOf(a) != lenOf(b) {
		return false
	}
	if lenOf(a) == 0 {
		return true
	}
	for i, x := range a.All() {
		if !c.equal(x, b.Get(i)) {
			return false
		}
	}
	return true
}

// CloneList deep copies v into a new RepeatedField.
func CloneList[T any](v ListView[T], c FieldCodec[T]) *RepeatedField[T] {
	r := &RepeatedField[T]{}
	if v == nil || v.Len() == 0 {
		return r
	}
	r.items = make([]T, 0, v.Len())
	for _, x := range v.All() {
		r.items = append(r.items, c.clone(x))
	}
	return r
}

func lenOf[T any](v ListView[T]) int {
	if v == nil {
		return 0
	}
	return v.Len()
}

// mix spreads the bits of an element hash so that summing them does not
// cancel out equal elements the way a plain XOR would.
func mix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}
