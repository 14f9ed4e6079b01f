package runtime

// DualMap is the map counterpart of DualList. The zero value is an empty map.
type DualMap[K comparable, V any] struct {
	// nil, Map[K, V] or *MapField[K, V]
	form MapView[K, V]
}

func (d *DualMap[K, V]) Get() MapView[K, V] {
	if d.form == nil {
		return Map[K, V]{}
	}
	return d.form
}

func (d *DualMap[K, V]) Set(v MapView[K, V]) {
	m := MapFrom[K, V](v)
	if m.Len() == 0 {
		d.form = nil
		return
	}
	d.form = m
}

func (d *DualMap[K, V]) ForSerialization() *MapField[K, V] {
	if f, ok := d.form.(*MapField[K, V]); ok {
		return f
	}
	return MapFieldFrom[K, V](d.Get())
}

func (d *DualMap[K, V]) ForMutation() *MapField[K, V] {
	switch f := d.form.(type) {
	case *MapField[K, V]:
		return f
	case Map[K, V]:
		mf := MapFieldFrom[K, V](f)
		d.form = mf
		return mf
	}
	mf := NewMapField[K, V]()
	d.form = mf
	return mf
}

// MergeFrom copies other's entries over d's into a new MapField.
func (d *DualMap[K, V]) MergeFrom(other *DualMap[K, V]) {
	ov := other.Get()
	if ov.Len() == 0 {
		return
	}
	mf := MapFieldFrom[K, V](d.Get())
	mf.MergeFrom(ov)
	d.form = mf
}

func (d *DualMap[K, V]) AddEntriesFrom(b []byte, c MapCodec[K, V]) (int, error) {
	return d.ForMutation().AddEntriesFrom(b, c)
}

func (d *DualMap[K, V]) AppendTo(b []byte, c MapCodec[K, V]) []byte {
	return AppendMap[K, V](b, d.Get(), c)
}

func (d *DualMap[K, V]) Size(c MapCodec[K, V]) int {
	return MapSize[K, V](d.Get(), c)
}

func (d *DualMap[K, V]) Hash(c MapCodec[K, V]) uint64 {
	return MapHash[K, V](d.Get(), c)
}

func (d *DualMap[K, V]) Equal(other *DualMap[K, V], c MapCodec[K, V]) bool {
	return MapEqual[K, V](d.Get(), other.Get(), c)
}

// CloneFrom follows DualList.CloneFrom: a shallow clone never shares a
// mutable form.
func (d *DualMap[K, V]) CloneFrom(other *DualMap[K, V], deep bool, c MapCodec[K, V]) {
	if deep {
		d.form = CloneMap[K, V](other.Get(), c)
		return
	}
	if _, ok := other.form.(*MapField[K, V]); ok {
		d.Set(other.form)
		return
	}
	d.form = other.form
}

func (d *DualMap[K, V]) Reset() { d.form = nil }
