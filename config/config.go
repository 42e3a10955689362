package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/scenariolp/core/metrics"
)

// EnvPrefix marks environment overrides: K_MODEL__TIME__LAST=48 sets
// model.time.last.
const EnvPrefix = "K_"

// Config is the service configuration.
type Config struct {
	Model   ModelConfig    `json:"model" yaml:"model"`
	Log     LogConfig      `json:"log" yaml:"log"`
	Metrics metrics.Config `json:"metrics" yaml:"metrics"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns the configuration of the 24×4 scenario model with logging
// at info and no metrics sinks.
func Default() Config {
	return Config{
		Model: DefaultModel(),
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads path (YAML or JSON by extension) over the defaults and applies
// environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks the model section and the log level.
func (c Config) Validate() error {
	if _, err := c.Model.Spec(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	return nil
}
