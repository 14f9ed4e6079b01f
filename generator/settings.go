package generator

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/samber/lo"
	"github.com/yaroher/protoc-gen-go-cow/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

// CollectionPolicy selects how repeated enum and message fields are stored.
type CollectionPolicy string

const (
	// CollectionsAuto stores them in the dual form for Value-mode messages
	// and in the plain immutable form otherwise.
	CollectionsAuto  CollectionPolicy = "auto"
	CollectionsDual  CollectionPolicy = "dual"
	CollectionsPlain CollectionPolicy = "plain"
)

type PluginSettings struct {
	Collections CollectionPolicy
	PresenceAPI bool
	Plan        bool
}

func mapGetOrDefault(paramsMap map[string]string, key string, defaultValue string) string {
	if val, ok := paramsMap[key]; ok {
		return val
	}
	return defaultValue
}

func NewPluginSettingsFromPlugin(p *protogen.Plugin) (*PluginSettings, error) {
	return ParsePluginSettings(p.Request.GetParameter())
}

// ParsePluginSettings parses the comma separated key=value plugin parameter.
// Values from a config= file are applied first, explicit keys win.
func ParsePluginSettings(parameter string) (*PluginSettings, error) {
	paramsMap := make(map[string]string)
	logger.Debug("plugin parameter", zap.String("parameter", parameter))
	for _, param := range strings.Split(parameter, ",") {
		paramSplit := strings.Split(param, "=")
		if len(paramSplit) != 2 {
			continue
		}
		paramsMap[strings.TrimSpace(paramSplit[0])] = strings.TrimSpace(paramSplit[1])
	}

	settings := &PluginSettings{
		Collections: CollectionsAuto,
		PresenceAPI: true,
	}
	if path, ok := paramsMap["config"]; ok {
		if err := settings.loadConfig(path); err != nil {
			return nil, err
		}
	}
	settings.Collections = CollectionPolicy(mapGetOrDefault(paramsMap, "collections", string(settings.Collections)))
	settings.PresenceAPI = mapGetOrDefault(paramsMap, "presence_api", boolParam(settings.PresenceAPI)) == "true"
	settings.Plan = mapGetOrDefault(paramsMap, "plan", boolParam(settings.Plan)) == "true"

	if !lo.Contains([]CollectionPolicy{CollectionsAuto, CollectionsDual, CollectionsPlain}, settings.Collections) {
		return nil, errors.Errorf("collections must be one of auto, dual, plain: got %q", settings.Collections)
	}
	return settings, nil
}

func boolParam(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
