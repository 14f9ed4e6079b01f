package generator

import (
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

// FieldGenerator emits the code of one field. The message driver calls
// GenerateSlots inside the struct declaration and every other method inside
// the body of the matching generated method, with these names in scope:
//
//	m      receiver
//	other  peer message (merge, equal, clone), never nil
//	b      input (parse, positioned at the field tag) or output buffer
//	n, err bytes consumed and decode error (parse)
//	size   byte count (size)
//	h      hash accumulator (hash)
//	e      *jx.Encoder positioned inside the message object (json)
//	deep   deep or shallow copy (clone)
type FieldGenerator interface {
	Field() *protogen.Field
	Shape() FieldShape
	Vars() Vars

	GenerateSlots(p Printer)
	GenerateMembers(p Printer)
	GenerateMergingCode(p Printer)
	GenerateParsingCode(p Printer)
	GenerateSerializationCode(p Printer)
	GenerateSerializedSizeCode(p Printer)
	WriteHash(p Printer)
	WriteEquals(p Printer)
	WriteJSON(p Printer)
	GenerateCloningCode(p Printer)
	GenerateStructInitCode(p Printer)

	// StaticAccessor returns the static getter and presence function names
	// used in the field accessor table. ok is false for fields without one.
	StaticAccessor() (getter, has string, ok bool)
}

// fieldBase carries what every strategy shares.
type fieldBase struct {
	fg    *FileGen
	field *protogen.Field
	shape FieldShape
	mode  RepresentationMode
	vars  Vars
}

func (b *fieldBase) Field() *protogen.Field { return b.field }

func (b *fieldBase) Shape() FieldShape { return b.shape }

func (b *fieldBase) Vars() Vars { return b.vars }

func (b *fieldBase) StaticAccessor() (string, string, bool) {
	return b.vars["static"], "", true
}

func (b *fieldBase) generateCodec(p Printer) {
	pv(p, b.vars, "var $codec$ = $codec_expr$", "")
}

// generateSetter emits Set<Prop> for Value-mode messages and the init-once
// With<Msg>_<Prop> option for Reference-mode ones. body assigns v.
func (b *fieldBase) generateSetter(p Printer, paramType string, body ...string) {
	vars := b.vars.With("param_type", paramType)
	if b.vars["setter"] == setterSet {
		pv(p, vars,
			"// Set$prop$ replaces the $field_name$ field.",
			"func (m *$msg$) Set$prop$(v $param_type$) {")
		pv(p, vars, body...)
		pv(p, vars, "}", "")
		return
	}
	pv(p, vars,
		"// With$msg$_$prop$ sets the $field_name$ field while New$msg$ builds the message.",
		"func With$msg$_$prop$(v $param_type$) $msg$Option {",
		"\treturn func(m *$msg$) {")
	pv(p, vars, body...)
	pv(p, vars, "\t}", "}", "")
}

func (b *fieldBase) generateStaticGetter(p Printer, retType, expr string) {
	pv(p, b.vars.With("ret_type", retType, "expr", b.vars.Expand(expr)),
		"// $static$ returns the $field_name$ field of m.",
		"func $static$(m *$msg$) $ret_type$ {",
		"\treturn $expr$",
		"}",
		"")
}

// newFieldGenerator builds the strategy for a field of msg.
func (fg *FileGen) newFieldGenerator(msg *protogen.Message, field *protogen.Field) FieldGenerator {
	r := fg.g.modes
	shape := ClassifyField(field.Desc)
	msgName := msg.GoIdent.GoName
	prop := propertyName(field)
	mode := r.FieldMode(field)
	base := fieldBase{
		fg:    fg,
		field: field,
		shape: shape,
		mode:  mode,
		vars: Vars{
			"msg":        msgName,
			"prop":       prop,
			"name":       slotName(field),
			"number":     fmt.Sprint(field.Desc.Number()),
			"field_name": string(field.Desc.Name()),
			"codec":      codecVarName(msgName, field),
			"static":     staticAccessorName(msgName, field),
			"setter":     r.Setter(field),
			"clear":      clearMethod(mode, prop),
			"rt":         fg.rt(),
		},
	}

	log := fg.log.With(
		zap.String("message", string(msg.Desc.FullName())),
		zap.String("field", string(field.Desc.Name())),
		zap.Stringer("shape", shape),
		zap.Stringer("mode", mode),
	)

	var gen FieldGenerator
	switch shape {
	case ShapeMap:
		gen = newDualMapField(base)
	case ShapeRepeatedScalar, ShapeRepeatedEnum, ShapeRepeatedMessage:
		if r.CollectionMode(field) == CollectionOptimized {
			gen = newDualListField(base)
		} else {
			gen = newPlainListField(base, r.RepeatedCollectionType(field))
		}
		log = log.With(zap.Stringer("collection", r.CollectionMode(field)))
	case ShapeSingularMessage:
		gen = newMessageField(base, r.Embedding(field), r.ElementNullable(field))
		log = log.With(zap.Stringer("embedding", r.Embedding(field)))
	case ShapeOneofMember:
		gen = newOneofField(base, fg.presenceAPI())
	default:
		gen = newScalarField(base, fg.presenceAPI())
	}
	log.Debug("field strategy")
	return gen
}
