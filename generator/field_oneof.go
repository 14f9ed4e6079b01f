package generator

import "google.golang.org/protobuf/reflect/protoreflect"

// oneofField is one member of a real oneof. The members of a oneof share a
// runtime.Oneof slot owned by the message; a member's value is visible only
// while the slot's case is the member's case.
type oneofField struct {
	fieldBase
	message     bool
	presenceAPI bool
}

func newOneofField(base fieldBase, presenceAPI bool) *oneofField {
	f := &oneofField{fieldBase: base, presenceAPI: presenceAPI}
	f.message = isMessageKind(f.field.Desc)
	oneof := f.field.Oneof
	msgName := f.vars["msg"]
	f.vars = f.vars.With(
		"value_type", f.fg.elemGoType(f.field),
		"codec_expr", f.fg.codecExpr(f.field, f.field.Desc.Number()),
		"oneof", oneofSlotName(oneof)+"_",
		"case_const", oneofCaseConst(msgName, oneof, f.field.GoName),
		"read_fn", readFunc(f.field),
	)
	return f
}

func (f *oneofField) StaticAccessor() (string, string, bool) { return "", "", false }

// GenerateSlots emits nothing: the message driver declares the shared slot.
func (f *oneofField) GenerateSlots(Printer) {}

func (f *oneofField) GenerateMembers(p Printer) {
	f.generateCodec(p)
	pv(p, f.vars,
		"// $prop$ returns the $field_name$ member, the zero value unless it is the active one.",
		"func (m *$msg$) $prop$() $value_type$ {",
		"\tv, _ := $rt$OneofGet[$value_type$](&m.$oneof$, $case_const$)",
		"\treturn v",
		"}",
		"")
	if f.message {
		pv(p, f.vars,
			"func (m *$msg$) set$prop$Value(v $value_type$) {",
			"\tif v == nil {",
			"\t\tm.$oneof$.Clear()",
			"\t\treturn",
			"\t}",
			"\tm.$oneof$.Set($case_const$, v)",
			"}",
			"")
	} else {
		pv(p, f.vars,
			"func (m *$msg$) set$prop$Value(v $value_type$) {",
			"\tm.$oneof$.Set($case_const$, v)",
			"}",
			"")
	}
	f.generateSetter(p, f.vars["value_type"], "\tm.set$prop$Value(v)")
	if !f.presenceAPI {
		return
	}
	pv(p, f.vars,
		"// Has$prop$ reports whether $field_name$ is the active member.",
		"func (m *$msg$) Has$prop$() bool {",
		"\treturn m.$oneof$.Case() == $case_const$",
		"}",
		"")
	if f.vars["clear"] != "" {
		pv(p, f.vars,
			"// $clear$ unsets the oneof if $field_name$ is the active member.",
			"func (m *$msg$) $clear$() {",
			"\tif m.$oneof$.Case() == $case_const$ {",
			"\t\tm.$oneof$.Clear()",
			"\t}",
			"}",
			"")
	}
}

// GenerateMergingCode runs inside the case of other's active member.
func (f *oneofField) GenerateMergingCode(p Printer) {
	if f.message {
		pv(p, f.vars, "m.set$prop$Value($rt$MergeCopy(m.$prop$(), other.$prop$()))")
		return
	}
	pv(p, f.vars, "m.set$prop$Value(other.$prop$())")
}

func (f *oneofField) GenerateParsingCode(p Printer) {
	if f.message {
		pv(p, f.vars,
			"$name$Scratch := $rt$CopyOf(m.$prop$())",
			"n, err = $rt$$read_fn$(b, $number$, $name$Scratch)",
			"m.set$prop$Value($name$Scratch)")
		return
	}
	pv(p, f.vars,
		"var $name$Value $value_type$",
		"$name$Value, n, err = $codec$.Read(b)",
		"m.set$prop$Value($name$Value)")
}

// GenerateSerializationCode runs inside the case of m's active member.
func (f *oneofField) GenerateSerializationCode(p Printer) {
	pv(p, f.vars, "b = $codec$.Append(b, m.$prop$())")
}

func (f *oneofField) GenerateSerializedSizeCode(p Printer) {
	pv(p, f.vars, "size += $codec$.Size(m.$prop$())")
}

func (f *oneofField) WriteHash(p Printer) {
	pv(p, f.vars, "h ^= $codec$.Hash(m.$prop$())")
}

func (f *oneofField) WriteJSON(p Printer) {
	pv(p, f.vars,
		"e.FieldStart(\"$field_name$\")",
		"$codec$.EncodeJX(e, m.$prop$())")
}

// WriteEquals runs inside the case of m's active member, after the driver
// checked both cases match.
func (f *oneofField) WriteEquals(p Printer) {
	pv(p, f.vars,
		"if !$codec$.Equal(m.$prop$(), other.$prop$()) {",
		"\treturn false",
		"}")
}

// GenerateCloningCode runs inside the case of other's active member.
func (f *oneofField) GenerateCloningCode(p Printer) {
	if f.message || f.field.Desc.Kind() == protoreflect.BytesKind {
		pv(p, f.vars,
			"if deep {",
			"\tm.set$prop$Value($codec$.Clone(other.$prop$()))",
			"} else {",
			"\tm.set$prop$Value(other.$prop$())",
			"}")
		return
	}
	pv(p, f.vars, "m.set$prop$Value(other.$prop$())")
}

// GenerateStructInitCode emits nothing: the driver clears the shared slot.
func (f *oneofField) GenerateStructInitCode(Printer) {}
