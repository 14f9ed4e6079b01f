package generator

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "reference", ModeReference.String())
	assert.Equal(t, "value", ModeValue.String())
	assert.Equal(t, "optimized", CollectionOptimized.String())
	assert.Equal(t, "plain", CollectionPlain.String())
	assert.Equal(t, "bare", EmbedBare.String())
	assert.Equal(t, "read_only_ref", EmbedReadOnlyRef.String())
	assert.Equal(t, "nullable", EmbedNullable.String())
}

func TestClassifyField(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	order := testMessage(t, plugin, "Order")

	tests := []struct {
		field    string
		expected FieldShape
	}{
		{"id", ShapeSingularScalar},
		{"items", ShapeRepeatedMessage},
		{"labels", ShapeMap},
		{"statuses", ShapeRepeatedEnum},
		{"codes", ShapeRepeatedScalar},
		{"customer", ShapeSingularMessage},
		{"note", ShapeOneofMember},
		{"gift", ShapeOneofMember},
		{"discount", ShapeSingularScalar},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyField(testField(t, order, tt.field).Desc))
		})
	}
	assert.Equal(t, "unknown", FieldShape(99).String())
	assert.Equal(t, "repeated_enum", ShapeRepeatedEnum.String())
}

func TestModeResolver_Messages(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	r := NewModeResolver(&PluginSettings{Collections: CollectionsAuto}, zap.NewNop())
	order := testMessage(t, plugin, "Order")
	item := testMessage(t, plugin, "Item")

	assert.Equal(t, ModeValue, r.MessageMode(order))
	assert.Equal(t, ModeReference, r.MessageMode(item))
	assert.True(t, r.MessageIncludesUndefinedFields(order))
	assert.False(t, r.MessageIncludesUndefinedFields(item))

	assert.Equal(t, ModeValue, r.FieldMode(testField(t, order, "id")))
	assert.Equal(t, setterSet, r.Setter(testField(t, order, "id")))
	assert.Equal(t, setterInit, r.Setter(testField(t, item, "sku")))
}

func TestModeResolver_FieldWithoutParent(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	r := NewModeResolver(&PluginSettings{}, zap.NewNop())
	orphan := &protogen.Field{Desc: testField(t, testMessage(t, plugin, "Order"), "id").Desc}

	assert.PanicsWithError(t, "field shop.Order.id: field has no containing message", func() {
		r.FieldMode(orphan)
	})
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNoContainingType))
	}()
	r.Setter(orphan)
}

func TestModeResolver_CollectionMode(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	order := testMessage(t, plugin, "Order")

	tests := []struct {
		policy   CollectionPolicy
		field    string
		expected CollectionMode
	}{
		{CollectionsAuto, "items", CollectionOptimized},
		{CollectionsAuto, "statuses", CollectionOptimized},
		{CollectionsAuto, "codes", CollectionPlain},
		{CollectionsAuto, "labels", CollectionOptimized},
		{CollectionsAuto, "tags", CollectionPlain},
		{CollectionsPlain, "items", CollectionPlain},
		{CollectionsPlain, "labels", CollectionOptimized},
		{CollectionsDual, "codes", CollectionPlain},
		{CollectionsDual, "tags", CollectionPlain},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy)+"/"+tt.field, func(t *testing.T) {
			r := NewModeResolver(&PluginSettings{Collections: tt.policy}, zap.NewNop())
			assert.Equal(t, tt.expected, r.CollectionMode(testField(t, order, tt.field)))
		})
	}
}

func TestModeResolver_AutoPolicyReferenceMessage(t *testing.T) {
	file := orderFile()
	file.MessageType = append(file.MessageType, &descriptorpb.DescriptorProto{
		Name: proto.String("Cart"),
		Field: fields(fieldSpec{name: "items", number: 1, typ: tMessage,
			typeName: ".shop.Item", repeated: true}),
	})
	plugin := newTestPlugin(t, "", file)
	r := NewModeResolver(&PluginSettings{Collections: CollectionsAuto}, zap.NewNop())
	cart := testMessage(t, plugin, "Cart")

	assert.Equal(t, CollectionPlain, r.CollectionMode(testField(t, cart, "items")))
}

func TestModeResolver_RepeatedCollectionType(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	r := NewModeResolver(&PluginSettings{}, zap.NewNop())
	order := testMessage(t, plugin, "Order")

	tags := r.RepeatedCollectionType(testField(t, order, "tags"))
	assert.Equal(t, protogen.GoIdent{GoName: "Vector", GoImportPath: "example.com/coll"}, tags)
	assert.Equal(t, "Vector", r.RepeatedCollectionElementTypeName(testField(t, order, "tags")))

	assert.Equal(t, runtimePackage.Ident("List"), r.RepeatedCollectionType(testField(t, order, "items")))
	assert.Equal(t, runtimePackage.Ident("Map"), r.RepeatedCollectionType(testField(t, order, "labels")))
}

func TestModeResolver_MalformedCollectionType(t *testing.T) {
	file := orderFile()
	order := file.MessageType[3]
	order.Field[9].Options = fieldOptions(stringOption(OptionCollectionType, "example.com/coll."))
	plugin := newTestPlugin(t, "", file)
	r := NewModeResolver(&PluginSettings{Collections: CollectionsAuto}, zap.NewNop())
	tags := testField(t, testMessage(t, plugin, "Order"), "tags")

	assert.Equal(t, runtimePackage.Ident("List"), r.RepeatedCollectionType(tags))
	assert.Equal(t, CollectionOptimized, r.CollectionMode(tags))
}

func TestGenerator_ResolverUsesInjectedLogger(t *testing.T) {
	file := orderFile()
	file.MessageType[3].Field[9].Options = fieldOptions(stringOption(OptionCollectionType, "example.com/coll."))
	plugin := newTestPlugin(t, "", file)
	settings, err := NewPluginSettingsFromPlugin(plugin)
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	g, err := NewGenerator(plugin, settings, WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, g.Generate())

	warnings := logs.FilterMessage("ignoring malformed collection_type").All()
	require.NotEmpty(t, warnings)
	assert.Equal(t, "modes", warnings[0].LoggerName)
	assert.Equal(t, "example.com/coll.", warnings[0].ContextMap()["collection_type"])
}

func TestModeResolver_Embedding(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	r := NewModeResolver(&PluginSettings{}, zap.NewNop())
	order := testMessage(t, plugin, "Order")
	node := testMessage(t, plugin, "Node")

	tests := []struct {
		field     *protogen.Field
		embedding Embedding
		nullable  bool
	}{
		{testField(t, order, "customer"), EmbedBare, true},
		{testField(t, order, "parent"), EmbedReadOnlyRef, true},
		{testField(t, order, "total"), EmbedBare, false},
		{testField(t, node, "next"), EmbedBare, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.field.Desc.Name()), func(t *testing.T) {
			assert.Equal(t, tt.embedding, r.Embedding(tt.field))
			assert.Equal(t, tt.nullable, r.ElementNullable(tt.field))
		})
	}
}

func TestModeResolver_ReferenceMessageIsNullable(t *testing.T) {
	file := orderFile()
	file.MessageType = append(file.MessageType, &descriptorpb.DescriptorProto{
		Name:  proto.String("Invoice"),
		Field: fields(fieldSpec{name: "total", number: 1, typ: tMessage, typeName: ".shop.Money"}),
	})
	plugin := newTestPlugin(t, "", file)
	r := NewModeResolver(&PluginSettings{}, zap.NewNop())
	total := testField(t, testMessage(t, plugin, "Invoice"), "total")

	assert.Equal(t, EmbedNullable, r.Embedding(total))
	assert.True(t, r.ElementNullable(total))
}

func TestNames(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	order := testMessage(t, plugin, "Order")

	assert.Equal(t, "Reset_", propertyName(testField(t, order, "reset")))
	assert.Equal(t, "Items", propertyName(testField(t, order, "items")))
	assert.Equal(t, "items", slotName(testField(t, order, "items")))
	assert.Equal(t, "codec_Order_Items", codecVarName("Order", testField(t, order, "items")))
	assert.Equal(t, "XXX_Order_Items", staticAccessorName("Order", testField(t, order, "items")))

	payment := order.Oneofs[0]
	assert.Equal(t, "payment", oneofSlotName(payment))
	assert.Equal(t, "Order_PaymentCase", oneofCaseType("Order", payment))
	assert.Equal(t, "Order_PaymentCase_Gift", oneofCaseConst("Order", payment, "Gift"))

	assert.Equal(t, "ClearItems", clearMethod(ModeValue, "Items"))
	assert.Empty(t, clearMethod(ModeReference, "Items"))
}
