package runtime

import "google.golang.org/protobuf/encoding/protowire"

// FieldAccessor gives reflective read access to one field of a generated
// message. Generated code builds one per field that has a static getter.
type FieldAccessor interface {
	Number() protowire.Number
	Name() string
	Has(m any) bool
	Get(m any) any
	Set(m, v any) error
	Clear(m any) error
}

// SingleFieldAccessor is a read-only FieldAccessor over a static getter and
// an optional presence function.
type SingleFieldAccessor[M, V any] struct {
	num  protowire.Number
	name string
	get  func(M) V
	has  func(M) bool
}

// NewSingleFieldAccessor builds an accessor for field num. has may be nil,
// in which case every message reports the field as present.
func NewSingleFieldAccessor[M, V any](num protowire.Number, name string, get func(M) V, has func(M) bool) *SingleFieldAccessor[M, V] {
	return &SingleFieldAccessor[M, V]{num: num, name: name, get: get, has: has}
}

func (a *SingleFieldAccessor[M, V]) Number() protowire.Number { return a.num }

func (a *SingleFieldAccessor[M, V]) Name() string { return a.name }

// Has reports whether the field is set on m. It returns false when m is not
// of the accessor's message type.
func (a *SingleFieldAccessor[M, V]) Has(m any) bool {
	msg, ok := m.(M)
	if !ok {
		return false
	}
	if a.has == nil {
		return true
	}
	return a.has(msg)
}

// Get returns the field value of m, or nil when m is not of the accessor's
// message type.
func (a *SingleFieldAccessor[M, V]) Get(m any) any {
	msg, ok := m.(M)
	if !ok {
		return nil
	}
	return a.get(msg)
}

func (a *SingleFieldAccessor[M, V]) Set(any, any) error {
	return fieldError(a.num, ErrReadOnlyAccessor)
}

func (a *SingleFieldAccessor[M, V]) Clear(any) error {
	return fieldError(a.num, ErrReadOnlyAccessor)
}
