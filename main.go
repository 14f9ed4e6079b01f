package main

import (
	"github.com/yaroher/protoc-gen-go-cow/generator"
	"github.com/yaroher/protoc-gen-go-cow/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"
)

func Generate(p *protogen.Plugin) error {
	settings, err := generator.NewPluginSettingsFromPlugin(p)
	if err != nil {
		return err
	}
	logger.Debug("settings",
		zap.String("collections", string(settings.Collections)),
		zap.Bool("presence_api", settings.PresenceAPI),
		zap.Bool("plan", settings.Plan))
	g, err := generator.NewGenerator(p, settings)
	if err != nil {
		return err
	}
	return g.Generate()
}

func main() {
	defer func() { _ = logger.Logger.Sync() }()
	protogen.Options{}.Run(func(plugin *protogen.Plugin) error {
		plugin.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)
		return Generate(plugin)
	})
}
