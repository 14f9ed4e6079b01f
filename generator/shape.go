package generator

import "google.golang.org/protobuf/reflect/protoreflect"

// FieldShape is the strategy a field is generated with.
type FieldShape int

const (
	ShapeSingularScalar FieldShape = iota
	ShapeSingularMessage
	ShapeMap
	ShapeRepeatedScalar
	ShapeRepeatedEnum
	ShapeRepeatedMessage
	ShapeOneofMember
)

var shapeNames = map[FieldShape]string{
	ShapeSingularScalar:  "singular_scalar",
	ShapeSingularMessage: "singular_message",
	ShapeMap:             "map",
	ShapeRepeatedScalar:  "repeated_scalar",
	ShapeRepeatedEnum:    "repeated_enum",
	ShapeRepeatedMessage: "repeated_message",
	ShapeOneofMember:     "oneof_member",
}

func (s FieldShape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ClassifyField maps a field to exactly one shape. Precedence: map, member
// of a real oneof, repeated (by element kind), singular message, scalar.
func ClassifyField(fd protoreflect.FieldDescriptor) FieldShape {
	switch {
	case fd.IsMap():
		return ShapeMap
	case isRealOneof(fd):
		return ShapeOneofMember
	case fd.IsList():
		switch fd.Kind() {
		case protoreflect.MessageKind, protoreflect.GroupKind:
			return ShapeRepeatedMessage
		case protoreflect.EnumKind:
			return ShapeRepeatedEnum
		default:
			return ShapeRepeatedScalar
		}
	case isMessageKind(fd):
		return ShapeSingularMessage
	default:
		return ShapeSingularScalar
	}
}

func isRealOneof(fd protoreflect.FieldDescriptor) bool {
	od := fd.ContainingOneof()
	return od != nil && !od.IsSynthetic()
}

func isMessageKind(fd protoreflect.FieldDescriptor) bool {
	return fd.Kind() == protoreflect.MessageKind || fd.Kind() == protoreflect.GroupKind
}
