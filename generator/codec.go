package generator

import (
	"fmt"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type scalarKind struct {
	goType string
	codec  string
	zero   string
}

var scalarKinds = map[protoreflect.Kind]scalarKind{
	protoreflect.BoolKind:     {goType: "bool", codec: "ForBool", zero: "false"},
	protoreflect.Int32Kind:    {goType: "int32", codec: "ForInt32", zero: "0"},
	protoreflect.Sint32Kind:   {goType: "int32", codec: "ForSint32", zero: "0"},
	protoreflect.Sfixed32Kind: {goType: "int32", codec: "ForSfixed32", zero: "0"},
	protoreflect.Uint32Kind:   {goType: "uint32", codec: "ForUint32", zero: "0"},
	protoreflect.Fixed32Kind:  {goType: "uint32", codec: "ForFixed32", zero: "0"},
	protoreflect.Int64Kind:    {goType: "int64", codec: "ForInt64", zero: "0"},
	protoreflect.Sint64Kind:   {goType: "int64", codec: "ForSint64", zero: "0"},
	protoreflect.Sfixed64Kind: {goType: "int64", codec: "ForSfixed64", zero: "0"},
	protoreflect.Uint64Kind:   {goType: "uint64", codec: "ForUint64", zero: "0"},
	protoreflect.Fixed64Kind:  {goType: "uint64", codec: "ForFixed64", zero: "0"},
	protoreflect.FloatKind:    {goType: "float32", codec: "ForFloat", zero: "0"},
	protoreflect.DoubleKind:   {goType: "float64", codec: "ForDouble", zero: "0"},
	protoreflect.StringKind:   {goType: "string", codec: "ForString", zero: `""`},
	protoreflect.BytesKind:    {goType: "[]byte", codec: "ForBytes", zero: "nil"},
}

// elemGoType is the Go type of one value of the field: the element type for
// collections, *Msg for messages.
func (fg *FileGen) elemGoType(field *protogen.Field) string {
	switch field.Desc.Kind() {
	case protoreflect.EnumKind:
		return fg.ident(field.Enum.GoIdent)
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return "*" + fg.ident(field.Message.GoIdent)
	}
	return scalarKinds[field.Desc.Kind()].goType
}

// zeroLiteral is the literal a scalar or enum slot is reset to.
func zeroLiteral(field *protogen.Field) string {
	if field.Desc.Kind() == protoreflect.EnumKind {
		return "0"
	}
	return scalarKinds[field.Desc.Kind()].zero
}

// nonZeroExpr is the implicit presence check of a scalar stored in expr.
// Floats compare their bits so that -0 counts as set.
func (fg *FileGen) nonZeroExpr(field *protogen.Field, expr string) string {
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return expr
	case protoreflect.StringKind:
		return expr + ` != ""`
	case protoreflect.BytesKind:
		return "len(" + expr + ") != 0"
	case protoreflect.FloatKind:
		return fg.ident(mathPackage.Ident("Float32bits")) + "(" + expr + ") != 0"
	case protoreflect.DoubleKind:
		return fg.ident(mathPackage.Ident("Float64bits")) + "(" + expr + ") != 0"
	}
	return expr + " != 0"
}

// codecExpr is the runtime codec constructor call for values of field
// written under number num.
func (fg *FileGen) codecExpr(field *protogen.Field, num protoreflect.FieldNumber) string {
	rt := fg.rt()
	var expr string
	switch field.Desc.Kind() {
	case protoreflect.EnumKind:
		expr = fmt.Sprintf("%sForEnum[%s](%d)", rt, fg.ident(field.Enum.GoIdent), num)
	case protoreflect.MessageKind:
		expr = fmt.Sprintf("%sForMessage[%s](%d)", rt, fg.ident(field.Message.GoIdent), num)
	case protoreflect.GroupKind:
		expr = fmt.Sprintf("%sForGroup[%s](%d)", rt, fg.ident(field.Message.GoIdent), num)
	default:
		expr = fmt.Sprintf("%s%s(%d)", rt, scalarKinds[field.Desc.Kind()].codec, num)
	}
	if field.Desc.IsList() && field.Desc.IsPacked() {
		expr += ".AsPacked()"
	}
	return expr
}

// mapCodecExpr is the runtime map codec constructor call for a map field.
func (fg *FileGen) mapCodecExpr(field *protogen.Field) string {
	key, value := field.Message.Fields[0], field.Message.Fields[1]
	return fmt.Sprintf("%sNewMapCodec(%s, %s, %d)",
		fg.rt(), fg.codecExpr(key, 1), fg.codecExpr(value, 2), field.Desc.Number())
}

func readFunc(field *protogen.Field) string {
	if field.Desc.Kind() == protoreflect.GroupKind {
		return "ReadGroup"
	}
	return "ReadMessage"
}
