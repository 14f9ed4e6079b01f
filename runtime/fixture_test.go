package runtime

import (
	"github.com/go-faster/jx"
	"google.golang.org/protobuf/encoding/protowire"
)

// point is a hand-written message with the same method set generated code
// produces. It has a scalar and a dual repeated field.
type point struct {
	x    int32
	tags DualList[string]
}

var (
	pointXCodec    = ForInt32(1)
	pointTagsCodec = ForString(2)
)

func newPoint(x int32, tags ...string) *point {
	p := &point{x: x}
	p.tags.Set(ListOf(tags...))
	return p
}

func (p *point) AppendWire(b []byte) []byte {
	if p == nil {
		return b
	}
	if p.x != 0 {
		b = pointXCodec.Append(b, p.x)
	}
	return p.tags.AppendTo(b, pointTagsCodec)
}

func (p *point) WireSize() int {
	if p == nil {
		return 0
	}
	size := 0
	if p.x != 0 {
		size += pointXCodec.Size(p.x)
	}
	return size + p.tags.Size(pointTagsCodec)
}

func (p *point) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return ParseError(num, tagLen)
		}
		var n int
		var err error
		switch num {
		case 1:
			p.x, n, err = pointXCodec.Read(b)
		case 2:
			n, err = p.tags.AddEntriesFrom(b, pointTagsCodec)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b[tagLen:])
			if n < 0 {
				return ParseError(num, n)
			}
			n += tagLen
		}
		if err != nil {
			return FieldError(num, err)
		}
		b = b[n:]
	}
	return nil
}

func (p *point) MergeFrom(other *point) {
	if other == nil {
		return
	}
	if other.x != 0 {
		p.x = other.x
	}
	p.tags.MergeFrom(&other.tags)
}

func (p *point) Equal(other *point) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.x == other.x && p.tags.Equal(&other.tags, pointTagsCodec)
}

func (p *point) Hash() uint64 {
	if p == nil {
		return 0
	}
	h := uint64(1)
	h ^= pointXCodec.Hash(p.x)
	h ^= p.tags.Hash(pointTagsCodec)
	return h
}

func (p *point) MarshalJX(e *jx.Encoder) {
	if p == nil {
		e.Null()
		return
	}
	e.ObjStart()
	if p.x != 0 {
		e.FieldStart("x")
		pointXCodec.EncodeJX(e, p.x)
	}
	ListJX[string](e, "tags", p.tags.Get(), pointTagsCodec)
	e.ObjEnd()
}

func (p *point) DeepClone() *point {
	if p == nil {
		return nil
	}
	out := &point{x: p.x}
	out.tags.CloneFrom(&p.tags, true, pointTagsCodec)
	return out
}

func items[T any](v ListView[T]) []T {
	out := []T{}
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}
