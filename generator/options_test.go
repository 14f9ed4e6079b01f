package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/descriptorpb"
)

func TestReadOptions(t *testing.T) {
	opts := messageOptions(
		boolOption(OptionUseStruct),
		stringOption(OptionCollectionType, "example.com/coll.Vector"),
	)
	s := readOptions(opts)
	assert.True(t, s.Bool(OptionUseStruct))
	assert.False(t, s.Bool(OptionIgnoreUndefinedFields))
	assert.Equal(t, "example.com/coll.Vector", s.String(OptionCollectionType))
	assert.Empty(t, s.String(OptionUseRef))
}

func TestReadOptions_LastOccurrenceWins(t *testing.T) {
	off := protowire.AppendVarint(protowire.AppendTag(nil, OptionUseStruct, protowire.VarintType), 0)
	s := readOptions(messageOptions(boolOption(OptionUseStruct), off))
	assert.False(t, s.Bool(OptionUseStruct))
}

func TestReadOptions_WrongWireTypeIgnored(t *testing.T) {
	b := protowire.AppendTag(nil, OptionUseStruct, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 1)
	s := readOptions(messageOptions(b, boolOption(OptionUseRef)))
	assert.False(t, s.Bool(OptionUseStruct))
	assert.True(t, s.Bool(OptionUseRef))
}

func TestReadOptions_Truncated(t *testing.T) {
	b := append(boolOption(OptionUseStruct), protowire.AppendTag(nil, OptionUseRef, protowire.BytesType)...)
	b = protowire.AppendVarint(b, 10)
	s := readOptions(messageOptions(b))
	assert.True(t, s.Bool(OptionUseStruct))
	assert.Empty(t, s.String(OptionUseRef))
}

func TestReadOptions_Empty(t *testing.T) {
	var nilOpts *descriptorpb.MessageOptions
	assert.False(t, readOptions(nilOpts).Bool(OptionUseStruct))
	assert.False(t, readOptions(&descriptorpb.FieldOptions{}).Bool(OptionUseRef))
	assert.False(t, readOptions(nil).Bool(OptionUseRef))
}

func TestOptionAccessors(t *testing.T) {
	plugin := newTestPlugin(t, "", orderFile())
	order := testMessage(t, plugin, "Order")
	item := testMessage(t, plugin, "Item")

	assert.True(t, UseStruct(order.Desc))
	assert.False(t, UseStruct(item.Desc))
	assert.True(t, IgnoreUndefinedFields(item.Desc))
	assert.False(t, IgnoreUndefinedFields(order.Desc))
	assert.True(t, UseRef(testField(t, order, "parent").Desc))
	assert.False(t, UseRef(testField(t, order, "customer").Desc))
	assert.Equal(t, "example.com/coll.Vector", CollectionType(testField(t, order, "tags").Desc))
	assert.Empty(t, CollectionType(testField(t, order, "items").Desc))
}
