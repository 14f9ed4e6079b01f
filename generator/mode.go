package generator

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/yaroher/protoc-gen-go-cow/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

// ErrNoContainingType is raised when a field without a containing message
// reaches mode resolution. protoc never produces such a field for the
// messages handed to the plugin, so it is treated as a programming error.
var ErrNoContainingType = errors.New("field has no containing message")

// RepresentationMode is the per-message choice between init-once
// (Reference) and in-place mutable (Value) generated types.
type RepresentationMode int

const (
	ModeReference RepresentationMode = iota
	ModeValue
)

func (m RepresentationMode) String() string {
	if m == ModeValue {
		return "value"
	}
	return "reference"
}

// CollectionMode is the per-field choice between the dual cache and the
// plain immutable slot.
type CollectionMode int

const (
	CollectionOptimized CollectionMode = iota
	CollectionPlain
)

func (m CollectionMode) String() string {
	if m == CollectionPlain {
		return "plain"
	}
	return "optimized"
}

// Embedding is how a singular message field is stored in its container.
type Embedding int

const (
	EmbedBare Embedding = iota
	EmbedReadOnlyRef
	EmbedNullable
)

func (e Embedding) String() string {
	switch e {
	case EmbedReadOnlyRef:
		return "read_only_ref"
	case EmbedNullable:
		return "nullable"
	default:
		return "bare"
	}
}

const (
	setterInit = "init"
	setterSet  = "set"
)

var (
	runtimePackage = protogen.GoImportPath("github.com/yaroher/protoc-gen-go-cow/runtime")
	wirePackage    = protogen.GoImportPath("google.golang.org/protobuf/encoding/protowire")
	strconvPackage = protogen.GoImportPath("strconv")
	mathPackage    = protogen.GoImportPath("math")
	jxPackage      = protogen.GoImportPath("github.com/go-faster/jx")
)

// ModeResolver answers the representation questions the strategies ask
// about messages and fields.
type ModeResolver struct {
	settings *PluginSettings
	log      *zap.Logger
}

// NewModeResolver returns a resolver reporting ignored options to log. A nil
// log falls back to the package logger.
func NewModeResolver(settings *PluginSettings, log *zap.Logger) *ModeResolver {
	if log == nil {
		log = logger.Logger.Named("modes")
	}
	return &ModeResolver{settings: settings, log: log}
}

func (r *ModeResolver) MessageMode(msg *protogen.Message) RepresentationMode {
	if UseStruct(msg.Desc) {
		return ModeValue
	}
	return ModeReference
}

// MessageIncludesUndefinedFields reports whether unknown fields are kept.
func (r *ModeResolver) MessageIncludesUndefinedFields(msg *protogen.Message) bool {
	return !IgnoreUndefinedFields(msg.Desc)
}

// FieldMode is the mode of the field's containing message. It panics with
// ErrNoContainingType for fields without one.
func (r *ModeResolver) FieldMode(field *protogen.Field) RepresentationMode {
	if field.Parent == nil {
		panic(errors.Wrapf(ErrNoContainingType, "field %s", field.Desc.FullName()))
	}
	return r.MessageMode(field.Parent)
}

func (r *ModeResolver) Setter(field *protogen.Field) string {
	if r.FieldMode(field) == ModeValue {
		return setterSet
	}
	return setterInit
}

// RepeatedCollectionType is the Go type used for a plain collection slot:
// the K4 override when present and valid, runtime.List otherwise (runtime.Map
// for maps).
func (r *ModeResolver) RepeatedCollectionType(field *protogen.Field) protogen.GoIdent {
	if field.Desc.IsMap() {
		return runtimePackage.Ident("Map")
	}
	if ident, ok := r.explicitCollectionType(field); ok {
		return ident
	}
	return runtimePackage.Ident("List")
}

// RepeatedCollectionElementTypeName is the collection type name without its
// package, used to derive the <Name>From conversion function.
func (r *ModeResolver) RepeatedCollectionElementTypeName(field *protogen.Field) string {
	return r.RepeatedCollectionType(field).GoName
}

func (r *ModeResolver) explicitCollectionType(field *protogen.Field) (protogen.GoIdent, bool) {
	raw := strings.TrimSpace(CollectionType(field.Desc))
	if raw == "" {
		return protogen.GoIdent{}, false
	}
	idx := strings.LastIndex(raw, ".")
	if idx < 0 {
		return protogen.GoIdent{GoName: raw, GoImportPath: field.Parent.GoIdent.GoImportPath}, true
	}
	path, name := raw[:idx], raw[idx+1:]
	if name == "" || strings.Contains(name, "/") {
		r.log.Warn("ignoring malformed collection_type",
			zap.String("field", string(field.Desc.FullName())),
			zap.String("collection_type", raw))
		return protogen.GoIdent{}, false
	}
	return protogen.GoIdent{GoName: name, GoImportPath: protogen.GoImportPath(path)}, true
}

// CollectionMode picks the dual cache or the plain slot for a collection
// field. Maps are always dual, repeated scalars always plain and an
// explicit collection type forces plain; otherwise the plugin policy
// decides.
func (r *ModeResolver) CollectionMode(field *protogen.Field) CollectionMode {
	switch ClassifyField(field.Desc) {
	case ShapeMap:
		return CollectionOptimized
	case ShapeRepeatedScalar:
		return CollectionPlain
	}
	if _, ok := r.explicitCollectionType(field); ok {
		return CollectionPlain
	}
	switch r.settings.Collections {
	case CollectionsDual:
		return CollectionOptimized
	case CollectionsPlain:
		return CollectionPlain
	}
	if r.FieldMode(field) == ModeValue {
		return CollectionOptimized
	}
	return CollectionPlain
}

// Embedding picks the storage of a singular message field.
func (r *ModeResolver) Embedding(field *protogen.Field) Embedding {
	switch {
	case UseRef(field.Desc):
		return EmbedReadOnlyRef
	case r.FieldMode(field) == ModeValue:
		return EmbedBare
	default:
		return EmbedNullable
	}
}

// ElementNullable reports whether a singular message field is stored as a
// pointer. Value-mode elements are stored by value unless the field is
// Nullable or storing by value would make the struct contain itself.
func (r *ModeResolver) ElementNullable(field *protogen.Field) bool {
	if r.Embedding(field) == EmbedNullable {
		return true
	}
	if r.MessageMode(field.Message) == ModeReference {
		return true
	}
	if r.embedsByValue(field.Message, field.Parent, map[*protogen.Message]bool{}) {
		r.log.Warn("storing recursive field by pointer", zap.String("field", string(field.Desc.FullName())))
		return true
	}
	return false
}

// embedsByValue reports whether from contains target through a chain of
// by-value singular message fields.
func (r *ModeResolver) embedsByValue(from, target *protogen.Message, seen map[*protogen.Message]bool) bool {
	if from == target {
		return true
	}
	if seen[from] {
		return false
	}
	seen[from] = true
	for _, f := range from.Fields {
		if ClassifyField(f.Desc) != ShapeSingularMessage {
			continue
		}
		byValue := (UseRef(f.Desc) || r.MessageMode(from) == ModeValue) && r.MessageMode(f.Message) == ModeValue
		if !byValue {
			continue
		}
		if r.embedsByValue(f.Message, target, seen) {
			return true
		}
	}
	return false
}
