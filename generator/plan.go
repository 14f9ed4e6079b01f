package generator

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"google.golang.org/protobuf/compiler/protogen"
)

// filePlan records the strategy decisions taken for one file. It is written
// as <name>.cow.plan.json when the plan parameter is set.
type filePlan struct {
	File     string
	Messages []messagePlan
}

type messagePlan struct {
	Name          string
	Mode          RepresentationMode
	UnknownFields bool
	Fields        []fieldPlan
}

type fieldPlan struct {
	Name       string
	Number     int
	Shape      FieldShape
	Setter     string
	Oneof      string
	Collection string
	Embedding  string
}

func (fg *FileGen) recordPlan(mg *messageGen) {
	modes := fg.g.modes
	mp := messagePlan{
		Name:          string(mg.msg.Desc.FullName()),
		Mode:          mg.mode,
		UnknownFields: mg.unknown,
	}
	for _, gen := range mg.all() {
		field := gen.Field()
		fp := fieldPlan{
			Name:   string(field.Desc.Name()),
			Number: int(field.Desc.Number()),
			Shape:  gen.Shape(),
			Setter: modes.Setter(field),
		}
		switch gen.Shape() {
		case ShapeMap, ShapeRepeatedScalar, ShapeRepeatedEnum, ShapeRepeatedMessage:
			fp.Collection = modes.CollectionMode(field).String()
		case ShapeSingularMessage:
			fp.Embedding = modes.Embedding(field).String()
		case ShapeOneofMember:
			fp.Oneof = string(field.Oneof.Desc.Name())
		}
		mp.Fields = append(mp.Fields, fp)
	}
	fg.plan.Messages = append(fg.plan.Messages, mp)
}

// Encode writes the plan as indented JSON.
func (p filePlan) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("file")
	e.Str(p.File)
	e.FieldStart("messages")
	e.ArrStart()
	for _, m := range p.Messages {
		m.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func (m messagePlan) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(m.Name)
	e.FieldStart("mode")
	e.Str(m.Mode.String())
	e.FieldStart("unknown_fields")
	e.Bool(m.UnknownFields)
	e.FieldStart("fields")
	e.ArrStart()
	for _, f := range m.Fields {
		f.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func (f fieldPlan) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(f.Name)
	e.FieldStart("number")
	e.Int(f.Number)
	e.FieldStart("shape")
	e.Str(f.Shape.String())
	e.FieldStart("setter")
	e.Str(f.Setter)
	if f.Oneof != "" {
		e.FieldStart("oneof")
		e.Str(f.Oneof)
	}
	if f.Collection != "" {
		e.FieldStart("collection")
		e.Str(f.Collection)
	}
	if f.Embedding != "" {
		e.FieldStart("embedding")
		e.Str(f.Embedding)
	}
	e.ObjEnd()
}

func (fg *FileGen) writePlan() error {
	var e jx.Encoder
	e.SetIdent(2)
	fg.plan.Encode(&e)
	out := fg.g.Plugin.NewGeneratedFile(fg.file.GeneratedFilenamePrefix+".cow.plan.json", protogen.GoImportPath(""))
	if _, err := out.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "write plan")
	}
	return nil
}
