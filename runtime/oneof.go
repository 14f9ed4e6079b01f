package runtime

// Oneof stores the active member of a oneof group together with its case.
// The zero value has no active member.
type Oneof[C ~int32] struct {
	c C
	v any
}

// Case returns the active member's case, 0 when none is set.
func (o *Oneof[C]) Case() C { return o.c }

func (o *Oneof[C]) Value() any { return o.v }

// Set makes the member identified by c active with value v. A nil v
// clears the oneof.
func (o *Oneof[C]) Set(c C, v any) {
	if v == nil {
		o.Clear()
		return
	}
	o.c, o.v = c, v
}

func (o *Oneof[C]) Clear() {
	var none C
	o.c, o.v = none, nil
}

// OneofGet returns the value of member c, or the zero T when another member
// (or none) is active.
func OneofGet[T any, C ~int32](o *Oneof[C], c C) (T, bool) {
	if o.c != c || o.v == nil {
		var zero T
		return zero, false
	}
	v, ok := o.v.(T)
	return v, ok
}
