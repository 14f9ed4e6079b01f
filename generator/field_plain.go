package generator

import (
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// plainListField stores a repeated field directly in its immutable
// collection type. Every write replaces the slot; decoding goes through a
// temporary RepeatedField converted once at the end of the run.
type plainListField struct {
	fieldBase
	// elements are mutable, so deep clones copy them
	deepElems bool
}

func newPlainListField(base fieldBase, collection protogen.GoIdent) *plainListField {
	f := &plainListField{fieldBase: base}
	elem := f.fg.elemGoType(f.field)
	coll := f.fg.ident(collection)
	fromFn := f.fg.ident(protogen.GoIdent{
		GoName:       f.fg.g.modes.RepeatedCollectionElementTypeName(f.field) + "From",
		GoImportPath: collection.GoImportPath,
	})
	f.vars = f.vars.With(
		"type_name", elem,
		"codec_expr", f.fg.codecExpr(f.field, f.field.Desc.Number()),
		"coll_type", coll+"["+elem+"]",
		"from", fromFn+"["+elem+"]",
	)
	switch f.field.Desc.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind, protoreflect.BytesKind:
		f.deepElems = true
	}
	return f
}

func (f *plainListField) GenerateSlots(p Printer) {
	pv(p, f.vars, "$name$_ $coll_type$")
}

func (f *plainListField) GenerateMembers(p Printer) {
	f.generateCodec(p)
	pv(p, f.vars,
		"// $prop$ returns the $field_name$ field.",
		"func (m *$msg$) $prop$() $coll_type$ {",
		"\treturn m.$name$_",
		"}",
		"")
	f.generateSetter(p, f.vars["coll_type"], "\tm.$name$_ = v")
	f.generateStaticGetter(p, f.vars["coll_type"], "m.$prop$()")
}

func (f *plainListField) GenerateMergingCode(p Printer) {
	pv(p, f.vars,
		"if other.$name$_.Len() > 0 {",
		"\tm.$name$_ = m.$name$_.Concat(other.$name$_)",
		"}")
}

// GenerateParsingCode converts once per run of entries. A field whose
// entries are split across the input appends to what earlier runs stored.
func (f *plainListField) GenerateParsingCode(p Printer) {
	pv(p, f.vars,
		"$name$Mutation := $rt$NewRepeatedField[$type_name$]()",
		"n, err = $name$Mutation.AddEntriesFrom(b, $codec$)",
		"if m.$name$_.Len() == 0 {",
		"\tm.$name$_ = $from$($name$Mutation)",
		"} else {",
		"\tm.$name$_ = m.$name$_.Concat($name$Mutation)",
		"}")
}

func (f *plainListField) GenerateSerializationCode(p Printer) {
	pv(p, f.vars, "b = $rt$AppendList[$type_name$](b, m.$name$_, $codec$)")
}

func (f *plainListField) GenerateSerializedSizeCode(p Printer) {
	pv(p, f.vars, "size += $rt$ListSize[$type_name$](m.$name$_, $codec$)")
}

func (f *plainListField) WriteHash(p Printer) {
	pv(p, f.vars, "h ^= $rt$ListHash[$type_name$](m.$name$_, $codec$)")
}

func (f *plainListField) WriteJSON(p Printer) {
	pv(p, f.vars, "$rt$ListJX[$type_name$](e, \"$field_name$\", m.$name$_, $codec$)")
}

func (f *plainListField) WriteEquals(p Printer) {
	pv(p, f.vars,
		"if !$rt$ListEqual[$type_name$](m.$name$_, other.$name$_, $codec$) {",
		"\treturn false",
		"}")
}

func (f *plainListField) GenerateCloningCode(p Printer) {
	if !f.deepElems {
		pv(p, f.vars, "m.$name$_ = other.$name$_")
		return
	}
	pv(p, f.vars,
		"if deep {",
		"\tm.$name$_ = $from$($rt$CloneList[$type_name$](other.$name$_, $codec$))",
		"} else {",
		"\tm.$name$_ = other.$name$_",
		"}")
}

func (f *plainListField) GenerateStructInitCode(p Printer) {
	pv(p, f.vars, "m.$name$_ = $coll_type${}")
}
