package generator

import (
	"strings"

	"github.com/yaroher/protoc-gen-go-cow/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

type Generator struct {
	Settings *PluginSettings
	Plugin   *protogen.Plugin

	modes *ModeResolver
	log   *zap.Logger
}

type Option func(*Generator) error

// WithLogger replaces the generator logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) error {
		g.log = log
		return nil
	}
}

func NewGenerator(p *protogen.Plugin, settings *PluginSettings, opts ...Option) (*Generator, error) {
	g := &Generator{
		Settings: settings,
		Plugin:   p,
		log:      logger.Logger.Named("generator"),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.modes = NewModeResolver(settings, g.log.Named("modes"))
	return g, nil
}

// Generate writes one <name>.cow.go file per requested proto file that
// declares messages or enums, and its plan when plan=true.
func (g *Generator) Generate() error {
	for _, file := range g.Plugin.Files {
		if !file.Generate {
			continue
		}
		g.log.Debug("file", zap.String("path", file.Desc.Path()))
		fg := g.NewFileGen(file)
		fg.GenFile()
		if g.Settings.Plan && len(fg.plan.Messages) > 0 {
			if err := fg.writePlan(); err != nil {
				return err
			}
		}
	}
	return nil
}

type FileGen struct {
	g    *Generator
	file *protogen.File
	out  *protogen.GeneratedFile
	log  *zap.Logger

	rtPrefix   string
	wirePrefix string

	plan filePlan
}

func (g *Generator) NewFileGen(f *protogen.File) *FileGen {
	out := g.Plugin.NewGeneratedFile(f.GeneratedFilenamePrefix+".cow.go", f.GoImportPath)
	return &FileGen{
		g:    g,
		file: f,
		out:  out,
		log:  g.log.Named("fields").With(zap.String("file", f.Desc.Path())),
		plan: filePlan{File: f.Desc.Path()},
	}
}

func (fg *FileGen) P(v ...any) {
	fg.out.P(v...)
}

func (fg *FileGen) ident(id protogen.GoIdent) string {
	return fg.out.QualifiedGoIdent(id)
}

// qualifier returns the "pkg." prefix the output file uses for path. The
// import is only recorded on first use.
func qualifier(out *protogen.GeneratedFile, path protogen.GoImportPath, cache *string) string {
	if *cache == "" {
		*cache = strings.TrimSuffix(out.QualifiedGoIdent(path.Ident("X")), "X")
	}
	return *cache
}

// rt is the qualifier of the runtime package, e.g. "runtime.".
func (fg *FileGen) rt() string {
	return qualifier(fg.out, runtimePackage, &fg.rtPrefix)
}

func (fg *FileGen) wire() string {
	return qualifier(fg.out, wirePackage, &fg.wirePrefix)
}

func (fg *FileGen) presenceAPI() bool {
	return fg.g.Settings.PresenceAPI
}

func (fg *FileGen) GenFile() {
	if len(fg.file.Messages) == 0 && len(fg.file.Enums) == 0 {
		fg.out.Skip()
		return
	}

	fg.P("// Code generated by protoc-gen-go-cow. DO NOT EDIT.")
	fg.P("// source: ", fg.file.Desc.Path())
	fg.P()
	fg.P("package ", fg.file.GoPackageName)
	fg.P()

	for _, enum := range fg.file.Enums {
		fg.genEnum(enum)
	}
	for _, msg := range fg.file.Messages {
		fg.genMessage(msg)
	}
}
