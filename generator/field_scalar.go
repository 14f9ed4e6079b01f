package generator

import "google.golang.org/protobuf/reflect/protoreflect"

// scalarField is a singular scalar or enum field. Fields with explicit
// presence (proto2 optional, proto3 optional) keep a has flag next to the
// value; the others are present when non-zero.
type scalarField struct {
	fieldBase
	explicit    bool
	presenceAPI bool
}

func newScalarField(base fieldBase, presenceAPI bool) *scalarField {
	f := &scalarField{
		fieldBase:   base,
		explicit:    base.field.Desc.HasPresence(),
		presenceAPI: presenceAPI,
	}
	f.vars = f.vars.With(
		"type_name", f.fg.elemGoType(f.field),
		"codec_expr", f.fg.codecExpr(f.field, f.field.Desc.Number()),
		"zero", zeroLiteral(f.field),
		"present", f.presentExpr("m"),
		"other_present", f.presentExpr("other"),
	)
	return f
}

func (f *scalarField) presentExpr(recv string) string {
	if f.explicit {
		return recv + ".has" + f.vars["prop"] + "_"
	}
	return f.fg.nonZeroExpr(f.field, recv+"."+f.vars["name"]+"_")
}

func (f *scalarField) StaticAccessor() (string, string, bool) {
	if f.explicit {
		return f.vars["static"], f.vars["static"] + "_HasValue", true
	}
	return f.vars["static"], "", true
}

func (f *scalarField) GenerateSlots(p Printer) {
	pv(p, f.vars, "$name$_ $type_name$")
	if f.explicit {
		pv(p, f.vars, "has$prop$_ bool")
	}
}

func (f *scalarField) GenerateMembers(p Printer) {
	f.generateCodec(p)
	pv(p, f.vars,
		"// $prop$ returns the $field_name$ field.",
		"func (m *$msg$) $prop$() $type_name$ {",
		"\treturn m.$name$_",
		"}",
		"")
	body := []string{"\tm.$name$_ = v"}
	if f.explicit {
		body = append(body, "\tm.has$prop$_ = true")
	}
	f.generateSetter(p, f.vars["type_name"], body...)
	if f.explicit && f.presenceAPI {
		pv(p, f.vars,
			"// Has$prop$ reports whether the $field_name$ field is set.",
			"func (m *$msg$) Has$prop$() bool {",
			"\treturn m.has$prop$_",
			"}",
			"")
		if f.vars["clear"] != "" {
			pv(p, f.vars,
				"// $clear$ unsets the $field_name$ field.",
				"func (m *$msg$) $clear$() {",
				"\tm.$name$_ = $zero$",
				"\tm.has$prop$_ = false",
				"}",
				"")
		}
	}
	f.generateStaticGetter(p, f.vars["type_name"], "m.$prop$()")
	if f.explicit {
		pv(p, f.vars,
			"// $static$_HasValue reports whether the $field_name$ field of m is set.",
			"func $static$_HasValue(m *$msg$) bool {",
			"\treturn m.has$prop$_",
			"}",
			"")
	}
}

func (f *scalarField) GenerateMergingCode(p Printer) {
	pv(p, f.vars,
		"if $other_present$ {",
		"\tm.$name$_ = other.$name$_")
	if f.explicit {
		pv(p, f.vars, "\tm.has$prop$_ = true")
	}
	pv(p, f.vars, "}")
}

func (f *scalarField) GenerateParsingCode(p Printer) {
	pv(p, f.vars, "m.$name$_, n, err = $codec$.Read(b)")
	if f.explicit {
		pv(p, f.vars, "m.has$prop$_ = true")
	}
}

func (f *scalarField) GenerateSerializationCode(p Printer) {
	pv(p, f.vars,
		"if $present$ {",
		"\tb = $codec$.Append(b, m.$name$_)",
		"}")
}

func (f *scalarField) GenerateSerializedSizeCode(p Printer) {
	pv(p, f.vars,
		"if $present$ {",
		"\tsize += $codec$.Size(m.$name$_)",
		"}")
}

// WriteHash ignores presence: Equal compares the values only.
func (f *scalarField) WriteHash(p Printer) {
	pv(p, f.vars, "h ^= $codec$.Hash(m.$name$_)")
}

func (f *scalarField) WriteJSON(p Printer) {
	pv(p, f.vars,
		"if $present$ {",
		"\te.FieldStart(\"$field_name$\")",
		"\t$codec$.EncodeJX(e, m.$name$_)",
		"}")
}

func (f *scalarField) WriteEquals(p Printer) {
	if f.explicit {
		pv(p, f.vars,
			"if m.has$prop$_ != other.has$prop$_ {",
			"\treturn false",
			"}")
	}
	pv(p, f.vars,
		"if !$codec$.Equal(m.$name$_, other.$name$_) {",
		"\treturn false",
		"}")
}

func (f *scalarField) GenerateCloningCode(p Printer) {
	if f.field.Desc.Kind() == protoreflect.BytesKind {
		pv(p, f.vars,
			"if deep {",
			"\tm.$name$_ = $codec$.Clone(other.$name$_)",
			"} else {",
			"\tm.$name$_ = other.$name$_",
			"}")
	} else {
		pv(p, f.vars, "m.$name$_ = other.$name$_")
	}
	if f.explicit {
		pv(p, f.vars, "m.has$prop$_ = other.has$prop$_")
	}
}

func (f *scalarField) GenerateStructInitCode(p Printer) {
	pv(p, f.vars, "m.$name$_ = $zero$")
	if f.explicit {
		pv(p, f.vars, "m.has$prop$_ = false")
	}
}
