package generator

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

// messageGen holds the strategies of one message, split into regular
// fields in declaration order and oneof groups.
type messageGen struct {
	msg     *protogen.Message
	name    string
	mode    RepresentationMode
	unknown bool
	fields  []FieldGenerator
	oneofs  []*oneofGroup
	vars    Vars
}

type oneofGroup struct {
	oneof   *protogen.Oneof
	vars    Vars
	members []FieldGenerator
}

func (fg *FileGen) genMessage(msg *protogen.Message) {
	if msg.Desc.IsMapEntry() {
		return
	}
	for _, enum := range msg.Enums {
		fg.genEnum(enum)
	}

	mg := fg.newMessageGen(msg)
	fg.log.Debug("message",
		zap.String("message", string(msg.Desc.FullName())),
		zap.Stringer("mode", mg.mode),
		zap.Bool("unknown_fields", mg.unknown),
		zap.Int("fields", len(mg.fields)),
		zap.Int("oneofs", len(mg.oneofs)))
	fg.recordPlan(mg)

	mg.genStruct(fg)
	mg.genConstructor(fg)
	mg.genOneofCases(fg)
	for _, gen := range mg.all() {
		gen.GenerateMembers(fg)
	}
	mg.genReset(fg)
	mg.genMerge(fg)
	mg.genUnmarshal(fg)
	mg.genMarshal(fg)
	mg.genEqual(fg)
	mg.genHash(fg)
	mg.genJSON(fg)
	mg.genClone(fg)
	mg.genAccessors(fg)

	for _, child := range msg.Messages {
		fg.genMessage(child)
	}
}

func (fg *FileGen) newMessageGen(msg *protogen.Message) *messageGen {
	modes := fg.g.modes
	mg := &messageGen{
		msg:     msg,
		name:    msg.GoIdent.GoName,
		mode:    modes.MessageMode(msg),
		unknown: modes.MessageIncludesUndefinedFields(msg),
	}
	mg.vars = Vars{
		"msg":     mg.name,
		"rt":      fg.rt(),
		"wire":    fg.wire(),
		"encoder": fg.ident(jxPackage.Ident("Encoder")),
	}

	regular := lo.Filter(msg.Fields, func(f *protogen.Field, _ int) bool {
		return !isRealOneof(f.Desc)
	})
	mg.fields = lo.Map(regular, func(f *protogen.Field, _ int) FieldGenerator {
		return fg.newFieldGenerator(msg, f)
	})

	oneofs := lo.Filter(msg.Oneofs, func(o *protogen.Oneof, _ int) bool {
		return !o.Desc.IsSynthetic()
	})
	for _, oneof := range oneofs {
		group := &oneofGroup{
			oneof: oneof,
			vars: mg.vars.With(
				"oneof", oneofSlotName(oneof)+"_",
				"oneof_name", string(oneof.Desc.Name()),
				"oneof_go", oneof.GoName,
				"case_type", oneofCaseType(mg.name, oneof),
			),
		}
		for _, field := range oneof.Fields {
			group.members = append(group.members, fg.newFieldGenerator(msg, field))
		}
		mg.oneofs = append(mg.oneofs, group)
	}
	return mg
}

func (mg *messageGen) all() []FieldGenerator {
	out := append([]FieldGenerator(nil), mg.fields...)
	for _, group := range mg.oneofs {
		out = append(out, group.members...)
	}
	return out
}

func (mg *messageGen) genStruct(p Printer) {
	if mg.mode == ModeValue {
		pv(p, mg.vars, "// $msg$ is a mutable message. Collections and nested messages it returns",
			"// may be shared with other messages and must not be modified.")
	} else {
		pv(p, mg.vars, "// $msg$ is an immutable message. Build it with New$msg$; a change is a",
			"// new message sharing the untouched fields.")
	}
	pv(p, mg.vars, "type $msg$ struct {")
	for _, gen := range mg.fields {
		gen.GenerateSlots(p)
	}
	for _, group := range mg.oneofs {
		pv(p, group.vars, "$oneof$ $rt$Oneof[$case_type$]")
	}
	if mg.unknown {
		p.P("unknownFields []byte")
	}
	p.P("}")
	p.P()
}

func (mg *messageGen) genConstructor(p Printer) {
	pv(p, mg.vars,
		"// $msg$Option configures the message New$msg$ builds.",
		"type $msg$Option func(*$msg$)",
		"",
		"func New$msg$(opts ...$msg$Option) *$msg$ {",
		"\tm := &$msg${}",
		"\tfor _, opt := range opts {",
		"\t\tif opt == nil {",
		"\t\t\tcontinue",
		"\t\t}",
		"\t\topt(m)",
		"\t}",
		"\treturn m",
		"}",
		"")
}

func (mg *messageGen) genOneofCases(p Printer) {
	for _, group := range mg.oneofs {
		pv(p, group.vars,
			"// $case_type$ identifies the active member of the $oneof_name$ oneof.",
			"type $case_type$ int32",
			"",
			"const (",
			"\t$case_type$_None $case_type$ = 0")
		for _, member := range group.members {
			pv(p, member.Vars().With("case_type", group.vars["case_type"]),
				"\t$case_const$ $case_type$ = $number$")
		}
		pv(p, group.vars,
			")",
			"",
			"func (m *$msg$) $oneof_go$Case() $case_type$ {",
			"\treturn m.$oneof$.Case()",
			"}",
			"")
		if mg.mode == ModeValue {
			pv(p, group.vars,
				"// Clear$oneof_go$ unsets every member of the $oneof_name$ oneof.",
				"func (m *$msg$) Clear$oneof_go$() {",
				"\tm.$oneof$.Clear()",
				"}",
				"")
		}
	}
}

func (mg *messageGen) genReset(p Printer) {
	pv(p, mg.vars,
		"// Reset clears every field of m.",
		"func (m *$msg$) Reset() {",
		"\tif m == nil {",
		"\t\treturn",
		"\t}")
	for _, gen := range mg.fields {
		gen.GenerateStructInitCode(p)
	}
	for _, group := range mg.oneofs {
		pv(p, group.vars, "m.$oneof$.Clear()")
	}
	if mg.unknown {
		p.P("m.unknownFields = nil")
	}
	p.P("}")
	p.P()
}

// oneofSwitch emits a switch over the active case of recv's oneof with one
// case per member.
func oneofSwitch(p Printer, group *oneofGroup, recv string, body func(FieldGenerator)) {
	pv(p, group.vars.With("recv", recv), "switch $recv$.$oneof$.Case() {")
	for _, member := range group.members {
		pv(p, member.Vars(), "case $case_const$:")
		body(member)
	}
	p.P("}")
}

func (mg *messageGen) genMerge(p Printer) {
	pv(p, mg.vars,
		"// MergeFrom merges other into m. Set scalars and the active oneof member of",
		"// other overwrite m, collections are appended and messages merged.",
		"func (m *$msg$) MergeFrom(other *$msg$) {",
		"\tif other == nil {",
		"\t\treturn",
		"\t}")
	for _, gen := range mg.fields {
		gen.GenerateMergingCode(p)
	}
	for _, group := range mg.oneofs {
		oneofSwitch(p, group, "other", func(gen FieldGenerator) { gen.GenerateMergingCode(p) })
	}
	if mg.unknown {
		p.P("m.unknownFields = append(m.unknownFields, other.unknownFields...)")
	}
	p.P("}")
	p.P()
}

func (mg *messageGen) genUnmarshal(p Printer) {
	pv(p, mg.vars,
		"// UnmarshalWire merges the wire encoded message in b into m.",
		"func (m *$msg$) UnmarshalWire(b []byte) error {",
		"\tfor len(b) > 0 {",
		"\t\tnum, typ, tagLen := $wire$ConsumeTag(b)",
		"\t\tif tagLen < 0 {",
		"\t\t\treturn $rt$ParseError(0, tagLen)",
		"\t\t}",
		"\t\tvar n int",
		"\t\tvar err error",
		"\t\tswitch num {")
	for _, gen := range mg.all() {
		pv(p, gen.Vars(), "case $number$:")
		gen.GenerateParsingCode(p)
	}
	pv(p, mg.vars,
		"default:",
		"\tvalLen := $wire$ConsumeFieldValue(num, typ, b[tagLen:])",
		"\tif valLen < 0 {",
		"\t\treturn $rt$ParseError(num, valLen)",
		"\t}",
		"\tn = tagLen + valLen")
	if mg.unknown {
		p.P("m.unknownFields = append(m.unknownFields, b[:n]...)")
	}
	pv(p, mg.vars,
		"}",
		"if err != nil {",
		"\treturn $rt$FieldError(num, err)",
		"}",
		"b = b[n:]",
		"}",
		"return nil",
		"}",
		"",
		"// Unmarshal replaces the contents of m with the wire encoded message in b.",
		"func (m *$msg$) Unmarshal(b []byte) error {",
		"\tm.Reset()",
		"\treturn m.UnmarshalWire(b)",
		"}",
		"")
}

func (mg *messageGen) genMarshal(p Printer) {
	pv(p, mg.vars,
		"// AppendWire appends the wire encoding of m to b.",
		"func (m *$msg$) AppendWire(b []byte) []byte {",
		"\tif m == nil {",
		"\t\treturn b",
		"\t}")
	for _, gen := range mg.fields {
		gen.GenerateSerializationCode(p)
	}
	for _, group := range mg.oneofs {
		oneofSwitch(p, group, "m", func(gen FieldGenerator) { gen.GenerateSerializationCode(p) })
	}
	if mg.unknown {
		p.P("b = append(b, m.unknownFields...)")
	}
	pv(p, mg.vars,
		"return b",
		"}",
		"",
		"// WireSize is the length of the wire encoding of m.",
		"func (m *$msg$) WireSize() int {",
		"\tif m == nil {",
		"\t\treturn 0",
		"\t}",
		"\tsize := 0")
	for _, gen := range mg.fields {
		gen.GenerateSerializedSizeCode(p)
	}
	for _, group := range mg.oneofs {
		oneofSwitch(p, group, "m", func(gen FieldGenerator) { gen.GenerateSerializedSizeCode(p) })
	}
	if mg.unknown {
		p.P("size += len(m.unknownFields)")
	}
	pv(p, mg.vars,
		"return size",
		"}",
		"",
		"func (m *$msg$) Marshal() []byte {",
		"\treturn m.AppendWire(make([]byte, 0, m.WireSize()))",
		"}",
		"")
}

func (mg *messageGen) genEqual(p Printer) {
	pv(p, mg.vars,
		"// Equal reports whether m and other hold the same fields.",
		"func (m *$msg$) Equal(other *$msg$) bool {",
		"\tif m == other {",
		"\t\treturn true",
		"\t}",
		"\tif m == nil || other == nil {",
		"\t\treturn false",
		"\t}")
	for _, gen := range mg.fields {
		gen.WriteEquals(p)
	}
	for _, group := range mg.oneofs {
		pv(p, group.vars,
			"if m.$oneof$.Case() != other.$oneof$.Case() {",
			"\treturn false",
			"}")
		oneofSwitch(p, group, "m", func(gen FieldGenerator) { gen.WriteEquals(p) })
	}
	if mg.unknown {
		p.P("return string(m.unknownFields) == string(other.unknownFields)")
	} else {
		p.P("return true")
	}
	p.P("}")
	p.P()
}

func (mg *messageGen) genHash(p Printer) {
	pv(p, mg.vars,
		"// Hash is consistent with Equal.",
		"func (m *$msg$) Hash() uint64 {",
		"\tif m == nil {",
		"\t\treturn 0",
		"\t}",
		"\th := uint64(1)")
	for _, gen := range mg.fields {
		gen.WriteHash(p)
	}
	for _, group := range mg.oneofs {
		oneofSwitch(p, group, "m", func(gen FieldGenerator) { gen.WriteHash(p) })
	}
	p.P("return h")
	p.P("}")
	p.P()
}

// genJSON emits MarshalJX and a String method rendering it. Unset fields
// and unknown fields are left out.
func (mg *messageGen) genJSON(p Printer) {
	pv(p, mg.vars,
		"// MarshalJX writes the set fields of m as a JSON object.",
		"func (m *$msg$) MarshalJX(e *$encoder$) {",
		"\tif m == nil {",
		"\t\te.Null()",
		"\t\treturn",
		"\t}",
		"\te.ObjStart()")
	for _, gen := range mg.fields {
		gen.WriteJSON(p)
	}
	for _, group := range mg.oneofs {
		oneofSwitch(p, group, "m", func(gen FieldGenerator) { gen.WriteJSON(p) })
	}
	pv(p, mg.vars,
		"e.ObjEnd()",
		"}",
		"",
		"// String renders m as JSON for diagnostics.",
		"func (m *$msg$) String() string {",
		"\tvar e $encoder$",
		"\tm.MarshalJX(&e)",
		"\treturn string(e.Bytes())",
		"}",
		"")
}

func (mg *messageGen) genClone(p Printer) {
	pv(p, mg.vars,
		"// Clone returns a copy of m sharing its immutable collections and nested",
		"// messages.",
		"func (m *$msg$) Clone() *$msg$ {",
		"\tif m == nil {",
		"\t\treturn nil",
		"\t}",
		"\tcp := &$msg${}",
		"\tcp.cloneFrom(m, false)",
		"\treturn cp",
		"}",
		"",
		"// DeepClone returns a copy of m that shares nothing mutable with it.",
		"func (m *$msg$) DeepClone() *$msg$ {",
		"\tif m == nil {",
		"\t\treturn nil",
		"\t}",
		"\tcp := &$msg${}",
		"\tcp.cloneFrom(m, true)",
		"\treturn cp",
		"}",
		"",
		"func (m *$msg$) cloneFrom(other *$msg$, deep bool) {")
	for _, gen := range mg.fields {
		gen.GenerateCloningCode(p)
	}
	for _, group := range mg.oneofs {
		pv(p, group.vars, "m.$oneof$.Clear()")
		oneofSwitch(p, group, "other", func(gen FieldGenerator) { gen.GenerateCloningCode(p) })
	}
	if mg.unknown {
		p.P("m.unknownFields = append([]byte(nil), other.unknownFields...)")
	}
	p.P("}")
	p.P()
}

func (mg *messageGen) genAccessors(p Printer) {
	pv(p, mg.vars,
		"// $msg$_FieldAccessors reads the fields of $msg$ that have a static getter.",
		"var $msg$_FieldAccessors = []$rt$FieldAccessor{")
	for _, gen := range mg.fields {
		getter, has, ok := gen.StaticAccessor()
		if !ok {
			continue
		}
		if has == "" {
			has = "nil"
		}
		pv(p, gen.Vars().With("getter", getter, "has", has),
			"\t$rt$NewSingleFieldAccessor($number$, \"$field_name$\", $getter$, $has$),")
	}
	p.P("}")
	p.P()
}
