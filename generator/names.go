package generator

import (
	"github.com/iancoleman/strcase"
	"google.golang.org/protobuf/compiler/protogen"
)

// reservedMethods are the methods every generated message has; a field
// whose accessor would collide gets a trailing underscore.
var reservedMethods = map[string]bool{
	"Reset":         true,
	"MergeFrom":     true,
	"UnmarshalWire": true,
	"Unmarshal":     true,
	"AppendWire":    true,
	"WireSize":      true,
	"Marshal":       true,
	"Equal":         true,
	"Hash":          true,
	"Clone":         true,
	"DeepClone":     true,
	"String":        true,
	"MarshalJX":     true,
}

func propertyName(field *protogen.Field) string {
	name := field.GoName
	if reservedMethods[name] {
		return name + "_"
	}
	return name
}

// slotName is the base of the unexported storage field: items for Items.
func slotName(field *protogen.Field) string {
	return strcase.ToLowerCamel(field.GoName)
}

func oneofSlotName(oneof *protogen.Oneof) string {
	return strcase.ToLowerCamel(oneof.GoName)
}

func oneofCaseType(msgName string, oneof *protogen.Oneof) string {
	return msgName + "_" + oneof.GoName + "Case"
}

func oneofCaseConst(msgName string, oneof *protogen.Oneof, member string) string {
	return oneofCaseType(msgName, oneof) + "_" + member
}

func codecVarName(msgName string, field *protogen.Field) string {
	return "codec_" + msgName + "_" + field.GoName
}

func staticAccessorName(msgName string, field *protogen.Field) string {
	return "XXX_" + msgName + "_" + field.GoName
}

// clearMethod is the clear accessor name, or "" when the message mode gets
// none.
func clearMethod(mode RepresentationMode, prop string) string {
	if mode == ModeValue {
		return "Clear" + prop
	}
	return ""
}
