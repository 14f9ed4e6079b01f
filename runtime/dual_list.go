package runtime

// DualList holds a repeated field in whichever of two forms it was last
// used in: the immutable List handed out by getters and setters, or the
// mutable RepeatedField used while decoding. Exactly one form is held at a
// time. The zero value is an empty list.
type DualList[T any] struct {
	// nil, List[T] or *RepeatedField[T]
	form ListView[T]
}

// Get returns the current value. A mutable form is handed out as is, so
// callers may observe later in-place decoding of the same message.
func (d *DualList[T]) Get() ListView[T] {
	if d.form == nil {
		return List[T]{}
	}
	return d.form
}

// Set stores v, converting it to the immutable form, and drops any mutable
// form.
func (d *DualList[T]) Set(v ListView[T]) {
	l := ListFrom[T](v)
	if l.Len() == 0 {
		d.form = nil
		return
	}
	d.form = l
}

// ForSerialization returns the mutable form if there is one and otherwise a
// fresh RepeatedField built from the immutable form. The stored state is
// left unchanged.
func (d *DualList[T]) ForSerialization() *RepeatedField[T] {
	if r, ok := d.form.(*RepeatedField[T]); ok {
		return r
	}
	return RepeatedFieldFrom[T](d.Get())
}

// ForMutation promotes the value to the mutable form and returns it.
func (d *DualList[T]) ForMutation() *RepeatedField[T] {
	switch f := d.form.(type) {
	case *RepeatedField[T]:
		return f
	case List[T]:
		r := RepeatedFieldFrom[T](f)
		d.form = r
		return r
	}
	r := NewRepeatedField[T]()
	d.form = r
	return r
}

// MergeFrom appends the elements of other. The result is always a new
// RepeatedField so neither side's previous form is modified.
func (d *DualList[T]) MergeFrom(other *DualList[T]) {
	ov := other.Get()
	if ov.Len() == 0 {
		return
	}
	r := RepeatedFieldFrom[T](d.Get())
	r.AddAll(ov)
	d.form = r
}

func (d *DualList[T]) AddEntriesFrom(b []byte, c FieldCodec[T]) (int, error) {
	return d.ForMutation().AddEntriesFrom(b, c)
}

// AppendTo writes the value without promoting it.
func (d *DualList[T]) AppendTo(b []byte, c FieldCodec[T]) []byte {
	return AppendList[T](b, d.Get(), c)
}

func (d *DualList[T]) Size(c FieldCodec[T]) int {
	return ListSize[T](d.Get(), c)
}

func (d *DualList[T]) Hash(c FieldCodec[T]) uint64 {
	return ListHash[T](d.Get(), c)
}

// Equal compares the values held by d and other regardless of their forms.
func (d *DualList[T]) Equal(other *DualList[T], c FieldCodec[T]) bool {
	return ListEqual[T](d.Get(), other.Get(), c)
}

// CloneFrom copies other's state into d. A shallow clone shares other's
// immutable form, or takes an immutable snapshot of a mutable one so that
// decoding into either side never shows through the other. A deep clone
// always produces a mutable form with cloned elements.
func (d *DualList[T]) CloneFrom(other *DualList[T], deep bool, c FieldCodec[T]) {
	if deep {
		d.form = CloneList[T](other.Get(), c)
		return
	}
	if _, ok := other.form.(*RepeatedField[T]); ok {
		d.Set(other.form)
		return
	}
	d.form = other.form
}

func (d *DualList[T]) Reset() { d.form = nil }
