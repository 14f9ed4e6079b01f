package runtime

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// ListView is the read-only contract every repeated field value satisfies,
// whether it is backed by the immutable List or the mutable RepeatedField.
type ListView[T any] interface {
	Len() int
	Get(i int) T
	All() iter.Seq2[int, T]
}

// List is the canonical immutable repeated value. The zero value is an empty
// list and all methods that "modify" the list return a new one.
type List[T any] struct {
	l *immutable.List[T]
}

// ListOf builds a list holding items.
func ListOf[T any](items ...T) List[T] {
	if len(items) == 0 {
		return List[T]{}
	}
	return List[T]{l: immutable.NewList(items...)}
}

// ListFrom converts any view into a List. A List is returned unchanged.
func ListFrom[T any](v ListView[T]) List[T] {
	if l, ok := v.(List[T]); ok {
		return l
	}
	if v == nil || v.Len() == 0 {
		return List[T]{}
	}
	b := immutable.NewListBuilder[T]()
	for _, x := range v.All() {
		b.Append(x)
	}
	return List[T]{l: b.List()}
}

func (l List[T]) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

// Get returns the element at index i. It panics if i is out of range.
func (l List[T]) Get(i int) T {
	if l.l == nil {
		panic("runtime: list index out of range")
	}
	return l.l.Get(i)
}

func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.l == nil {
			return
		}
		itr := l.l.Iterator()
		for !itr.Done() {
			i, v := itr.Next()
			if !yield(i, v) {
				return
			}
		}
	}
}

// Append returns a list with items added at the end.
func (l List[T]) Append(items ...T) List[T] {
	if len(items) == 0 {
		return l
	}
	out := l.l
	if out == nil {
		return ListOf(items...)
	}
	for _, v := range items {
		out = out.Append(v)
	}
	return List[T]{l: out}
}

// Concat returns a list holding the elements of l followed by those of other.
func (l List[T]) Concat(other ListView[T]) List[T] {
	if other == nil || other.Len() == 0 {
		return l
	}
	if l.Len() == 0 {
		return ListFrom[T](other)
	}
	out := l.l
	for _, v := range other.All() {
		out = out.Append(v)
	}
	return List[T]{l: out}
}

// Items copies the elements into a new slice.
func (l List[T]) Items() []T {
	out := make([]T, 0, l.Len())
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}
