package generator

import (
	"os"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of the plugin parameters:
//
//	collections: dual
//	presence_api: false
//	plan: true
type fileConfig struct {
	Collections *string `yaml:"collections"`
	PresenceAPI *bool   `yaml:"presence_api"`
	Plan        *bool   `yaml:"plan"`
}

func (s *PluginSettings) loadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Collections != nil {
		s.Collections = CollectionPolicy(*cfg.Collections)
	}
	if cfg.PresenceAPI != nil {
		s.PresenceAPI = *cfg.PresenceAPI
	}
	if cfg.Plan != nil {
		s.Plan = *cfg.Plan
	}
	return nil
}
