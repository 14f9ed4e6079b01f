package runtime

import (
	"cmp"
	"iter"
	"reflect"

	"github.com/benbjohnson/immutable"
	"github.com/go-faster/errors"
)

// MapView is the read-only contract every map field value satisfies.
type MapView[K comparable, V any] interface {
	Len() int
	Get(k K) (V, bool)
	All() iter.Seq2[K, V]
}

// Map is the canonical immutable map value. Entries iterate in ascending key
// order. The zero value is an empty map.
type Map[K comparable, V any] struct {
	m *immutable.SortedMap[K, V]
}

// keyComparer orders map keys: numbers by value, false before true and
// strings bytewise.
type keyComparer[K comparable] struct{}

func (keyComparer[K]) Compare(a, b K) int { return compareKeys(a, b) }

func compareKeys[K comparable](a, b K) int {
	switch x := any(a).(type) {
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case uint32:
		return cmp.Compare(x, any(b).(uint32))
	case uint64:
		return cmp.Compare(x, any(b).(uint64))
	case string:
		return cmp.Compare(x, any(b).(string))
	case bool:
		return compareBools(x, any(b).(bool))
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case reflect.Bool:
		return compareBools(va.Bool(), vb.Bool())
	}
	panic(errors.Errorf("map key type %T has no order", a))
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func newMapBuilder[K comparable, V any]() *immutable.SortedMapBuilder[K, V] {
	return immutable.NewSortedMapBuilder[K, V](keyComparer[K]{})
}

// MapOf builds a map holding the entries of m.
func MapOf[K comparable, V any](m map[K]V) Map[K, V] {
	if len(m) == 0 {
		return Map[K, V]{}
	}
	b := newMapBuilder[K, V]()
	for k, v := range m {
		b.Set(k, v)
	}
	return Map[K, V]{m: b.Map()}
}

// MapFrom converts any view into a Map. A Map is returned unchanged.
func MapFrom[K comparable, V any](v MapView[K, V]) Map[K, V] {
	if m, ok := v.(Map[K, V]); ok {
		return m
	}
	if v == nil || v.Len() == 0 {
		return Map[K, V]{}
	}
	b := newMapBuilder[K, V]()
	for k, x := range v.All() {
		b.Set(k, x)
	}
	return Map[K, V]{m: b.Map()}
}

func (m Map[K, V]) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

func (m Map[K, V]) Get(k K) (V, bool) {
	if m.m == nil {
		var zero V
		return zero, false
	}
	return m.m.Get(k)
}

func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.m == nil {
			return
		}
		itr := m.m.Iterator()
		for !itr.Done() {
			k, v, _ := itr.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Set returns a map with k bound to v.
func (m Map[K, V]) Set(k K, v V) Map[K, V] {
	inner := m.m
	if inner == nil {
		inner = immutable.NewSortedMap[K, V](keyComparer[K]{})
	}
	return Map[K, V]{m: inner.Set(k, v)}
}

// Delete returns a map without k.
func (m Map[K, V]) Delete(k K) Map[K, V] {
	if m.m == nil {
		return m
	}
	return Map[K, V]{m: m.m.Delete(k)}
}
