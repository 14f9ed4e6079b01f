package generator

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Custom option numbers. They live on MessageOptions (K1, K2) and
// FieldOptions (K3, K4). New options must take new numbers.
const (
	OptionUseStruct             protowire.Number = 50001
	OptionIgnoreUndefinedFields protowire.Number = 50002
	OptionUseRef                protowire.Number = 50003
	OptionCollectionType        protowire.Number = 50004
)

// optionSet holds the custom options found on one options message. Lookups
// of missing or malformed options return the zero value.
type optionSet struct {
	varints map[protowire.Number]uint64
	strs    map[protowire.Number]string
}

func (s optionSet) Bool(num protowire.Number) bool { return s.varints[num] != 0 }

func (s optionSet) String(num protowire.Number) string { return s.strs[num] }

// readOptions collects the custom options of opts. They normally arrive as
// unknown fields since the plugin does not register the extensions; when a
// binary does register them they are read from the populated extensions.
func readOptions(opts protoreflect.ProtoMessage) optionSet {
	s := optionSet{
		varints: map[protowire.Number]uint64{},
		strs:    map[protowire.Number]string{},
	}
	if opts == nil {
		return s
	}
	m := opts.ProtoReflect()
	if !m.IsValid() {
		return s
	}
	m.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		if !fd.IsExtension() || fd.Cardinality() == protoreflect.Repeated {
			return true
		}
		switch fd.Kind() {
		case protoreflect.BoolKind:
			s.varints[fd.Number()] = protowire.EncodeBool(v.Bool())
		case protoreflect.StringKind:
			s.strs[fd.Number()] = v.String()
		}
		return true
	})

	b := m.GetUnknown()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return s
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return s
			}
			s.varints[num] = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return s
			}
			s.strs[num] = string(v)
			b = b[n:]
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return s
			}
			b = b[n:]
		}
	}
	return s
}

// UseStruct reports K1 on a message: the message is Value-mode.
func UseStruct(msg protoreflect.MessageDescriptor) bool {
	return readOptions(msg.Options()).Bool(OptionUseStruct)
}

// IgnoreUndefinedFields reports K2 on a message: unknown fields are dropped
// while decoding.
func IgnoreUndefinedFields(msg protoreflect.MessageDescriptor) bool {
	return readOptions(msg.Options()).Bool(OptionIgnoreUndefinedFields)
}

// UseRef reports K3 on a field: the field is embedded as a read-only
// reference.
func UseRef(field protoreflect.FieldDescriptor) bool {
	return readOptions(field.Options()).Bool(OptionUseRef)
}

// CollectionType returns K4 on a field, the explicit collection type name.
func CollectionType(field protoreflect.FieldDescriptor) string {
	return readOptions(field.Options()).String(OptionCollectionType)
}
