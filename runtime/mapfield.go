package runtime

import (
	"iter"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// MapField is the mutable, wire-compatible form of a map field. It keeps
// keys in insertion order.
type MapField[K comparable, V any] struct {
	keys  []K
	vals  []V
	index map[K]int
}

func NewMapField[K comparable, V any]() *MapField[K, V] {
	return &MapField[K, V]{}
}

// MapFieldFrom copies the entries of v into a new MapField.
func MapFieldFrom[K comparable, V any](v MapView[K, V]) *MapField[K, V] {
	f := &MapField[K, V]{}
	f.MergeFrom(v)
	return f
}

func (f *MapField[K, V]) Len() int { return len(f.keys) }

func (f *MapField[K, V]) Get(k K) (V, bool) {
	if i, ok := f.index[k]; ok {
		return f.vals[i], true
	}
	var zero V
	return zero, false
}

func (f *MapField[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range f.keys {
			if !yield(k, f.vals[i]) {
				return
			}
		}
	}
}

// Set binds k to v. A new key goes to the end, an existing one keeps its
// position.
func (f *MapField[K, V]) Set(k K, v V) {
	if i, ok := f.index[k]; ok {
		f.vals[i] = v
		return
	}
	if f.index == nil {
		f.index = make(map[K]int)
	}
	f.index[k] = len(f.keys)
	f.keys = append(f.keys, k)
	f.vals = append(f.vals, v)
}

func (f *MapField[K, V]) Delete(k K) {
	i, ok := f.index[k]
	if !ok {
		return
	}
	delete(f.index, k)
	f.keys = append(f.keys[:i], f.keys[i+1:]...)
	f.vals = append(f.vals[:i], f.vals[i+1:]...)
	for j := i; j < len(f.keys); j++ {
		f.index[f.keys[j]] = j
	}
}

// MergeFrom copies every entry of v into f, overwriting existing keys.
func (f *MapField[K, V]) MergeFrom(v MapView[K, V]) {
	if v == nil {
		return
	}
	for k, x := range v.All() {
		f.Set(k, x)
	}
}

// AddEntriesFrom decodes the run of consecutive entries of the map field
// that starts at b. It returns the number of bytes consumed.
func (f *MapField[K, V]) AddEntriesFrom(b []byte, c MapCodec[K, V]) (int, error) {
	total := 0
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return total, parseError(c.num, n)
		}
		if num != c.num {
			break
		}
		if typ != protowire.BytesType {
			return total, wireTypeError(c.num, typ)
		}
		entry, m := protowire.ConsumeBytes(b[n:])
		if m < 0 {
			return total, parseError(c.num, m)
		}
		k, v, err := c.consumeEntry(entry)
		if err != nil {
			return total, err
		}
		f.Set(k, v)
		total += n + m
		b = b[n+m:]
	}
	return total, nil
}

func (f *MapField[K, V]) AppendTo(b []byte, c MapCodec[K, V]) []byte {
	return AppendMap[K, V](b, f, c)
}

func (f *MapField[K, V]) Size(c MapCodec[K, V]) int {
	return MapSize[K, V](f, c)
}

// Clone returns a copy whose values are deep copies of f's.
func (f *MapField[K, V]) Clone(c MapCodec[K, V]) *MapField[K, V] {
	return CloneMap[K, V](f, c)
}

// AppendMap writes one entry record per key of v in ascending key order, so
// equal maps encode to equal bytes whatever form or insertion order they
// have.
func AppendMap[K comparable, V any](b []byte, v MapView[K, V], c MapCodec[K, V]) []byte {
	if v == nil {
		return b
	}
	for k, x := range sortedEntries(v) {
		b = c.appendEntry(b, k, x)
	}
	return b
}

func sortedEntries[K comparable, V any](v MapView[K, V]) iter.Seq2[K, V] {
	if m, ok := v.(Map[K, V]); ok {
		return m.All()
	}
	ks := make([]K, 0, v.Len())
	for k := range v.All() {
		ks = append(ks, k)
	}
	slices.SortFunc(ks, compareKeys[K])
	return func(yield func(K, V) bool) {
		for _, k := range ks {
			x, _ := v.Get(k)
			if !yield(k, x) {
				return
			}
		}
	}
}

// MapSize is the number of bytes AppendMap writes for v.
func MapSize[K comparable, V any](v MapView[K, V], c MapCodec[K, V]) int {
	if v == nil {
		return 0
	}
	tag := protowire.SizeTag(c.num)
	size := 0
	for k, x := range v.All() {
		size += tag + protowire.SizeBytes(c.entrySize(k, x))
	}
	return size
}

// MapHash combines entry hashes without regard to order.
func MapHash[K comparable, V any](v MapView[K, V], c MapCodec[K, V]) uint64 {
	if v == nil {
		return 0
	}
	var h uint64
	for k, x := range v.All() {
		h += mix(c.key.hash(k)*31 + c.value.hash(x))
	}
	return h
}

// MapEqual reports whether a and b hold the same keys bound to equal values.
func MapEqual[K comparable, V any](a, b MapView[K, V], c MapCodec[K, V]) bool {
	if mapLen(a) != mapLen(b) {
		return false
	}
	if mapLen(a) == 0 {
		return true
	}
	for k, x := range a.All() {
		y, ok := b.Get(k)
		if !ok || !c.value.equal(x, y) {
			return false
		}
	}
	return true
}

// CloneMap deep copies v into a new MapField.
func CloneMap[K comparable, V any](v MapView[K, V], c MapCodec[K, V]) *MapField[K, V] {
	f := &MapField[K, V]{}
	if v == nil {
		return f
	}
	for k, x := range v.All() {
		f.Set(k, c.value.clone(x))
	}
	return f
}

func mapLen[K comparable, V any](v MapView[K, V]) int {
	if v == nil {
		return 0
	}
	return v.Len()
}
