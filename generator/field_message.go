package generator

// messageField is a singular message field. Storage depends on the
// embedding:
//
//	bare          exported field, Elem or *Elem
//	read-only ref unexported slot written once through the New option
//	nullable      unexported *Elem slot with getter and setter
//
// Nested instances that may be shared are never changed in place: merge and
// parse build a fresh instance and store it back.
type messageField struct {
	fieldBase
	embedding Embedding
	nullable  bool
	presence  bool
}

func newMessageField(base fieldBase, embedding Embedding, nullable bool) *messageField {
	f := &messageField{fieldBase: base, embedding: embedding, nullable: nullable}
	f.presence = f.fg.presenceAPI()
	elem := f.fg.ident(f.field.Message.GoIdent)
	slotType := elem
	if nullable {
		slotType = "*" + elem
	}
	slot := f.vars["name"] + "_"
	if embedding == EmbedBare {
		slot = f.vars["prop"]
	}
	ref := "m." + slot
	if !nullable {
		ref = "&m." + slot
	}
	f.vars = f.vars.With(
		"elem", elem,
		"slot_type", slotType,
		"slot", slot,
		"ref", ref,
		"read_fn", readFunc(f.field),
		"codec_expr", f.fg.codecExpr(f.field, f.field.Desc.Number()),
	)
	return f
}

func (f *messageField) StaticAccessor() (string, string, bool) {
	switch {
	case f.embedding == EmbedReadOnlyRef:
		return "", "", false
	case f.embedding == EmbedBare && f.nullable:
		return f.vars["static"], f.vars["static"] + "_HasValue", true
	}
	return f.vars["static"], "", true
}

func (f *messageField) GenerateSlots(p Printer) {
	pv(p, f.vars, "$slot$ $slot_type$")
}

func (f *messageField) GenerateMembers(p Printer) {
	f.generateCodec(p)
	switch f.embedding {
	case EmbedBare:
		f.generateStaticGetter(p, f.vars["slot_type"], "m.$slot$")
		if f.nullable {
			pv(p, f.vars,
				"// $static$_HasValue reports whether the $field_name$ field of m is set.",
				"func $static$_HasValue(m *$msg$) bool {",
				"\treturn m.$slot$ != nil",
				"}",
				"")
		}
	case EmbedReadOnlyRef:
		pv(p, f.vars,
			"// $prop$ returns the $field_name$ field. It is set once through With$msg$_$prop$.",
			"func (m *$msg$) $prop$() *$elem$ {",
			"\treturn $ref$",
			"}",
			"",
			"// With$msg$_$prop$ sets the $field_name$ field while New$msg$ builds the message.",
			"func With$msg$_$prop$(v $slot_type$) $msg$Option {",
			"\treturn func(m *$msg$) {",
			"\t\tm.$slot$ = v",
			"\t}",
			"}",
			"")
	case EmbedNullable:
		pv(p, f.vars,
			"// $prop$ returns the $field_name$ field, nil when unset.",
			"func (m *$msg$) $prop$() *$elem$ {",
			"\treturn m.$slot$",
			"}",
			"")
		f.generateSetter(p, f.vars["slot_type"], "\tm.$slot$ = v")
		if f.presence {
			pv(p, f.vars,
				"// Has$prop$ reports whether the $field_name$ field is set.",
				"func (m *$msg$) Has$prop$() bool {",
				"\treturn m.$slot$ != nil",
				"}",
				"")
			if f.vars["clear"] != "" {
				pv(p, f.vars,
					"// $clear$ unsets the $field_name$ field.",
					"func (m *$msg$) $clear$() {",
					"\tm.$slot$ = nil",
					"}",
					"")
			}
		}
		f.generateStaticGetter(p, f.vars["slot_type"], "m.$prop$()")
	}
}

func (f *messageField) GenerateMergingCode(p Printer) {
	switch {
	case f.nullable:
		pv(p, f.vars,
			"if other.$slot$ != nil {",
			"\tm.$slot$ = $rt$MergeCopy(m.$slot$, other.$slot$)",
			"}")
	case f.embedding == EmbedBare:
		pv(p, f.vars, "m.$slot$.MergeFrom(&other.$slot$)")
	default:
		pv(p, f.vars, "m.$slot$ = *$rt$MergeCopy(&m.$slot$, &other.$slot$)")
	}
}

func (f *messageField) GenerateParsingCode(p Printer) {
	switch {
	case f.nullable:
		pv(p, f.vars,
			"$name$Scratch := $rt$CopyOf(m.$slot$)",
			"n, err = $rt$$read_fn$(b, $number$, $name$Scratch)",
			"m.$slot$ = $name$Scratch")
	case f.embedding == EmbedBare:
		pv(p, f.vars, "n, err = $rt$$read_fn$(b, $number$, &m.$slot$)")
	default:
		pv(p, f.vars,
			"$name$Scratch := $rt$CopyOf(&m.$slot$)",
			"n, err = $rt$$read_fn$(b, $number$, $name$Scratch)",
			"m.$slot$ = *$name$Scratch")
	}
}

func (f *messageField) GenerateSerializationCode(p Printer) {
	if f.nullable {
		pv(p, f.vars,
			"if m.$slot$ != nil {",
			"\tb = $codec$.Append(b, m.$slot$)",
			"}")
		return
	}
	pv(p, f.vars, "b = $codec$.Append(b, &m.$slot$)")
}

func (f *messageField) GenerateSerializedSizeCode(p Printer) {
	if f.nullable {
		pv(p, f.vars,
			"if m.$slot$ != nil {",
			"\tsize += $codec$.Size(m.$slot$)",
			"}")
		return
	}
	pv(p, f.vars, "size += $codec$.Size(&m.$slot$)")
}

func (f *messageField) WriteHash(p Printer) {
	if f.nullable {
		pv(p, f.vars,
			"if m.$slot$ != nil {",
			"\th ^= m.$slot$.Hash()",
			"}")
		return
	}
	pv(p, f.vars, "h ^= m.$slot$.Hash()")
}

func (f *messageField) WriteJSON(p Printer) {
	if f.nullable {
		pv(p, f.vars,
			"if m.$slot$ != nil {",
			"\te.FieldStart(\"$field_name$\")",
			"\tm.$slot$.MarshalJX(e)",
			"}")
		return
	}
	pv(p, f.vars,
		"e.FieldStart(\"$field_name$\")",
		"m.$slot$.MarshalJX(e)")
}

func (f *messageField) WriteEquals(p Printer) {
	other := "other.$slot$"
	if !f.nullable {
		other = "&other.$slot$"
	}
	pv(p, f.vars,
		"if !m.$slot$.Equal("+other+") {",
		"\treturn false",
		"}")
}

func (f *messageField) GenerateCloningCode(p Printer) {
	if f.nullable {
		pv(p, f.vars,
			"if deep {",
			"\tm.$slot$ = other.$slot$.DeepClone()",
			"} else {",
			"\tm.$slot$ = other.$slot$",
			"}")
		return
	}
	// a struct copy would share the nested unknown fields and mutable forms
	pv(p, f.vars,
		"if deep {",
		"\tm.$slot$ = *other.$slot$.DeepClone()",
		"} else {",
		"\tm.$slot$ = *other.$slot$.Clone()",
		"}")
}

func (f *messageField) GenerateStructInitCode(p Printer) {
	if f.nullable {
		pv(p, f.vars, "m.$slot$ = nil")
		return
	}
	pv(p, f.vars, "m.$slot$ = $elem${}")
}
