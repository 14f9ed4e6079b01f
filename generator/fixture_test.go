package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

const orderProto = "shop/order.proto"

func boolOption(num protowire.Number) []byte {
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func stringOption(num protowire.Number, v string) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func messageOptions(raw ...[]byte) *descriptorpb.MessageOptions {
	opts := &descriptorpb.MessageOptions{}
	opts.ProtoReflect().SetUnknown(bytes.Join(raw, nil))
	return opts
}

func fieldOptions(raw ...[]byte) *descriptorpb.FieldOptions {
	opts := &descriptorpb.FieldOptions{}
	opts.ProtoReflect().SetUnknown(bytes.Join(raw, nil))
	return opts
}

type fieldSpec struct {
	name     string
	number   int32
	typ      descriptorpb.FieldDescriptorProto_Type
	typeName string
	repeated bool
	oneof    *int32
	optional bool
	opts     *descriptorpb.FieldOptions
}

func (s fieldSpec) proto() *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if s.repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	f := &descriptorpb.FieldDescriptorProto{
		Name:       proto.String(s.name),
		Number:     proto.Int32(s.number),
		Label:      label.Enum(),
		Type:       s.typ.Enum(),
		OneofIndex: s.oneof,
		Options:    s.opts,
	}
	if s.typeName != "" {
		f.TypeName = proto.String(s.typeName)
	}
	if s.optional {
		f.Proto3Optional = proto.Bool(true)
	}
	return f
}

func fields(specs ...fieldSpec) []*descriptorpb.FieldDescriptorProto {
	out := make([]*descriptorpb.FieldDescriptorProto, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.proto())
	}
	return out
}

const (
	tInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	tInt64   = descriptorpb.FieldDescriptorProto_TYPE_INT64
	tString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	tBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	tEnum    = descriptorpb.FieldDescriptorProto_TYPE_ENUM
)

// orderFile covers every field shape:
//
//	Item    reference mode, unknown fields dropped
//	Money   value mode
//	Node    value mode, embeds itself
//	Order   value mode with collections, oneof, refs and presence
func orderFile() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(orderProto),
		Package: proto.String("shop"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{GoPackage: proto.String("example.com/shop;shop")},
		EnumType: []*descriptorpb.EnumDescriptorProto{{
			Name: proto.String("Status"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				{Name: proto.String("STATUS_UNKNOWN"), Number: proto.Int32(0)},
				{Name: proto.String("STATUS_PAID"), Number: proto.Int32(1)},
			},
		}},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:    proto.String("Item"),
				Options: messageOptions(boolOption(OptionIgnoreUndefinedFields)),
				Field:   fields(fieldSpec{name: "sku", number: 1, typ: tString}),
			},
			{
				Name:    proto.String("Money"),
				Options: messageOptions(boolOption(OptionUseStruct)),
				Field:   fields(fieldSpec{name: "units", number: 1, typ: tInt64}),
			},
			{
				Name:    proto.String("Node"),
				Options: messageOptions(boolOption(OptionUseStruct)),
				Field: fields(
					fieldSpec{name: "value", number: 1, typ: tInt32},
					fieldSpec{name: "next", number: 2, typ: tMessage, typeName: ".shop.Node"},
				),
			},
			{
				Name:    proto.String("Order"),
				Options: messageOptions(boolOption(OptionUseStruct)),
				Field: fields(
					fieldSpec{name: "id", number: 1, typ: tInt64},
					fieldSpec{name: "items", number: 2, typ: tMessage, typeName: ".shop.Item", repeated: true},
					fieldSpec{name: "labels", number: 3, typ: tMessage, typeName: ".shop.Order.LabelsEntry", repeated: true},
					fieldSpec{name: "statuses", number: 4, typ: tEnum, typeName: ".shop.Status", repeated: true},
					fieldSpec{name: "codes", number: 5, typ: tInt32, repeated: true},
					fieldSpec{name: "customer", number: 6, typ: tMessage, typeName: ".shop.Item"},
					fieldSpec{name: "note", number: 7, typ: tString, oneof: proto.Int32(0)},
					fieldSpec{name: "gift", number: 8, typ: tMessage, typeName: ".shop.Item", oneof: proto.Int32(0)},
					fieldSpec{name: "parent", number: 9, typ: tMessage, typeName: ".shop.Item",
						opts: fieldOptions(boolOption(OptionUseRef))},
					fieldSpec{name: "tags", number: 10, typ: tMessage, typeName: ".shop.Item", repeated: true,
						opts: fieldOptions(stringOption(OptionCollectionType, "example.com/coll.Vector"))},
					fieldSpec{name: "total", number: 11, typ: tMessage, typeName: ".shop.Money"},
					fieldSpec{name: "discount", number: 12, typ: tInt32, oneof: proto.Int32(1), optional: true},
					fieldSpec{name: "reset", number: 13, typ: tBool},
				),
				NestedType: []*descriptorpb.DescriptorProto{{
					Name:    proto.String("LabelsEntry"),
					Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
					Field: fields(
						fieldSpec{name: "key", number: 1, typ: tString},
						fieldSpec{name: "value", number: 2, typ: tInt32},
					),
				}},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{
					{Name: proto.String("payment")},
					{Name: proto.String("_discount")},
				},
			},
		},
	}
}

func newTestPlugin(t *testing.T, param string, files ...*descriptorpb.FileDescriptorProto) *protogen.Plugin {
	t.Helper()
	req := &pluginpb.CodeGeneratorRequest{
		Parameter: proto.String(param),
		ProtoFile: files,
	}
	for _, f := range files {
		req.FileToGenerate = append(req.FileToGenerate, f.GetName())
	}
	plugin, err := protogen.Options{}.New(req)
	require.NoError(t, err)
	return plugin
}

// runPlugin generates files and returns their contents by name.
func runPlugin(t *testing.T, param string, files ...*descriptorpb.FileDescriptorProto) map[string]string {
	t.Helper()
	plugin := newTestPlugin(t, param, files...)
	settings, err := NewPluginSettingsFromPlugin(plugin)
	require.NoError(t, err)
	g, err := NewGenerator(plugin, settings, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	require.NoError(t, g.Generate())

	resp := plugin.Response()
	require.Empty(t, resp.GetError())
	out := map[string]string{}
	for _, f := range resp.GetFile() {
		out[f.GetName()] = f.GetContent()
	}
	return out
}

func fileWithSuffix(t *testing.T, files map[string]string, suffix string) string {
	t.Helper()
	for name, content := range files {
		if strings.HasSuffix(name, suffix) {
			return content
		}
	}
	require.Failf(t, "file not generated", "no file ending in %s among %d", suffix, len(files))
	return ""
}

func testMessage(t *testing.T, plugin *protogen.Plugin, name string) *protogen.Message {
	t.Helper()
	for _, msg := range plugin.FilesByPath[orderProto].Messages {
		if msg.GoIdent.GoName == name {
			return msg
		}
	}
	require.Failf(t, "message not found", "%s", name)
	return nil
}

func testField(t *testing.T, msg *protogen.Message, name string) *protogen.Field {
	t.Helper()
	for _, f := range msg.Fields {
		if string(f.Desc.Name()) == name {
			return f
		}
	}
	require.Failf(t, "field not found", "%s.%s", msg.Desc.Name(), name)
	return nil
}
