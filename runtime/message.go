// Package runtime holds the types generated copy-on-write messages are built
// from: field codecs, immutable and mutable collections, the dual
// representation cache for collection fields and oneof storage.
package runtime

import (
	"github.com/go-faster/jx"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every generated message through its pointer
// type. M is the pointer type itself.
type Message[M any] interface {
	AppendWire(b []byte) []byte
	// MarshalJX writes the set fields as a JSON object, null for a nil
	// message.
	MarshalJX(e *jx.Encoder)
	WireSize() int
	UnmarshalWire(b []byte) error
	MergeFrom(other M)
	Equal(other M) bool
	Hash() uint64
	DeepClone() M
}

// CopyOf returns a fresh message holding a merge of cur, or an empty message
// when cur is nil. cur itself is never modified.
func CopyOf[T any, PT interface {
	*T
	Message[PT]
}](cur PT) PT {
	cp := PT(new(T))
	if cur != nil {
		cp.MergeFrom(cur)
	}
	return cp
}

// MergeCopy merges other into a copy of cur and returns the copy. Instances
// that may be shared are never merged in place.
func MergeCopy[T any, PT interface {
	*T
	Message[PT]
}](cur, other PT) PT {
	cp := CopyOf[T, PT](cur)
	cp.MergeFrom(other)
	return cp
}

// ReadMessage decodes one tag-prefixed, length-delimited occurrence of field
// num from b and merges it into dst.
func ReadMessage[M Message[M]](b []byte, num protowire.Number, dst M) (int, error) {
	n := tagLen(b, num, protowire.BytesType)
	if n < 0 {
		return 0, tagError(b, num)
	}
	payload, m := protowire.ConsumeBytes(b[n:])
	if m < 0 {
		return 0, parseError(num, m)
	}
	if err := dst.UnmarshalWire(payload); err != nil {
		return 0, fieldError(num, err)
	}
	return n + m, nil
}

// ReadGroup is ReadMessage for group encoded fields.
func ReadGroup[M Message[M]](b []byte, num protowire.Number, dst M) (int, error) {
	n := tagLen(b, num, protowire.StartGroupType)
	if n < 0 {
		return 0, tagError(b, num)
	}
	payload, m := protowire.ConsumeGroup(num, b[n:])
	if m < 0 {
		return 0, parseError(num, m)
	}
	if err := dst.UnmarshalWire(payload); err != nil {
		return 0, fieldError(num, err)
	}
	return n + m, nil
}

func tagLen(b []byte, num protowire.Number, typ protowire.Type) int {
	gotNum, gotTyp, n := protowire.ConsumeTag(b)
	if n < 0 || gotNum != num || gotTyp != typ {
		return -1
	}
	return n
}

func tagError(b []byte, num protowire.Number) error {
	_, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return parseError(num, n)
	}
	return wireTypeError(num, typ)
}
