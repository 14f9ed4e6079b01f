package generator

// dualListField stores a repeated enum or message field in a
// runtime.DualList: an immutable snapshot for readers and writers, promoted
// to a mutable RepeatedField only while decoding.
type dualListField struct {
	fieldBase
}

func newDualListField(base fieldBase) *dualListField {
	f := &dualListField{fieldBase: base}
	elem := f.fg.elemGoType(f.field)
	f.vars = f.vars.With(
		"type_name", elem,
		"codec_expr", f.fg.codecExpr(f.field, f.field.Desc.Number()),
		"view_type", f.vars["rt"]+"ListView["+elem+"]",
		"dual_type", f.vars["rt"]+"DualList["+elem+"]",
	)
	return f
}

func (f *dualListField) GenerateSlots(p Printer) {
	pv(p, f.vars, "$name$_ $dual_type$")
}

func (f *dualListField) GenerateMembers(p Printer) {
	generateDualMembers(&f.fieldBase, p)
}

func (f *dualListField) GenerateMergingCode(p Printer) {
	pv(p, f.vars, "m.$name$_.MergeFrom(&other.$name$_)")
}

func (f *dualListField) GenerateParsingCode(p Printer) {
	pv(p, f.vars, "n, err = m.$name$_.AddEntriesFrom(b, $codec$)")
}

func (f *dualListField) GenerateSerializationCode(p Printer) {
	pv(p, f.vars, "b = m.$name$_.AppendTo(b, $codec$)")
}

func (f *dualListField) GenerateSerializedSizeCode(p Printer) {
	pv(p, f.vars, "size += m.$name$_.Size($codec$)")
}

func (f *dualListField) WriteHash(p Printer) {
	pv(p, f.vars, "h ^= m.$name$_.Hash($codec$)")
}

func (f *dualListField) WriteJSON(p Printer) {
	pv(p, f.vars, "$rt$ListJX[$type_name$](e, \"$field_name$\", m.$name$_.Get(), $codec$)")
}

func (f *dualListField) WriteEquals(p Printer) {
	pv(p, f.vars,
		"if !m.$name$_.Equal(&other.$name$_, $codec$) {",
		"\treturn false",
		"}")
}

func (f *dualListField) GenerateCloningCode(p Printer) {
	pv(p, f.vars, "m.$name$_.CloneFrom(&other.$name$_, deep, $codec$)")
}

func (f *dualListField) GenerateStructInitCode(p Printer) {
	pv(p, f.vars, "m.$name$_.Reset()")
}

// dualMapField is the map counterpart of dualListField. Maps always use the
// dual cache.
type dualMapField struct {
	fieldBase
}

func newDualMapField(base fieldBase) *dualMapField {
	f := &dualMapField{fieldBase: base}
	key := f.fg.elemGoType(f.field.Message.Fields[0])
	value := f.fg.elemGoType(f.field.Message.Fields[1])
	f.vars = f.vars.With(
		"key_type", key,
		"value_type", value,
		"codec_expr", f.fg.mapCodecExpr(f.field),
		"view_type", f.vars["rt"]+"MapView["+key+", "+value+"]",
		"dual_type", f.vars["rt"]+"DualMap["+key+", "+value+"]",
	)
	return f
}

func (f *dualMapField) GenerateSlots(p Printer) {
	pv(p, f.vars, "$name$_ $dual_type$")
}

func (f *dualMapField) GenerateMembers(p Printer) {
	generateDualMembers(&f.fieldBase, p)
}

func (f *dualMapField) GenerateMergingCode(p Printer) {
	pv(p, f.vars, "m.$name$_.MergeFrom(&other.$name$_)")
}

func (f *dualMapField) GenerateParsingCode(p Printer) {
	pv(p, f.vars, "n, err = m.$name$_.AddEntriesFrom(b, $codec$)")
}

func (f *dualMapField) GenerateSerializationCode(p Printer) {
	pv(p, f.vars, "b = m.$name$_.AppendTo(b, $codec$)")
}

func (f *dualMapField) GenerateSerializedSizeCode(p Printer) {
	pv(p, f.vars, "size += m.$name$_.Size($codec$)")
}

func (f *dualMapField) WriteHash(p Printer) {
	pv(p, f.vars, "h ^= m.$name$_.Hash($codec$)")
}

func (f *dualMapField) WriteJSON(p Printer) {
	pv(p, f.vars, "$rt$MapJX[$key_type$, $value_type$](e, \"$field_name$\", m.$name$_.Get(), $codec$)")
}

func (f *dualMapField) WriteEquals(p Printer) {
	pv(p, f.vars,
		"if !m.$name$_.Equal(&other.$name$_, $codec$) {",
		"\treturn false",
		"}")
}

func (f *dualMapField) GenerateCloningCode(p Printer) {
	pv(p, f.vars, "m.$name$_.CloneFrom(&other.$name$_, deep, $codec$)")
}

func (f *dualMapField) GenerateStructInitCode(p Printer) {
	pv(p, f.vars, "m.$name$_.Reset()")
}

// generateDualMembers emits the codec, getter, setter and static getter of
// a dual cache field.
func generateDualMembers(b *fieldBase, p Printer) {
	b.generateCodec(p)
	pv(p, b.vars,
		"// $prop$ returns the $field_name$ field. The view must not be modified.",
		"func (m *$msg$) $prop$() $view_type$ {",
		"\treturn m.$name$_.Get()",
		"}",
		"")
	b.generateSetter(p, b.vars["view_type"], "\tm.$name$_.Set(v)")
	b.generateStaticGetter(p, b.vars["view_type"], "m.$prop$()")
}
