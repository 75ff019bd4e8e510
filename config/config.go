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

	"github.com/kilianp07/langlog/core/metrics"
	"github.com/kilianp07/langlog/core/transport"
)

// EnvPrefix marks environment variables overriding file settings.
// LANGLOG_DEV=true sets dev, LANGLOG_METRICS__RECORDERS would set
// metrics.recorders.
const EnvPrefix = "LANGLOG_"

type Config struct {
	// Dev turns on the facade diagnostics.
	Dev bool `json:"dev"`
	// Transports is handed untouched to transport.Normalize.
	Transports any            `json:"transports"`
	Color      ColorConfig    `json:"color"`
	Metrics    metrics.Config `json:"metrics"`
}

// Load reads the YAML or JSON file at path, applies environment overrides
// and validates the result. An empty path loads the environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
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
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(transport.DefaultEnvironment); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies sane defaults. Absent transports stay nil, which
// normalizes to the default console.
func (c *Config) SetDefaults() {
	c.Color.SetDefaults()
}

// Validate checks the color mode and runs the transport validation for env.
func (c Config) Validate(env transport.Environment) error {
	if err := c.Color.Validate(); err != nil {
		return err
	}
	if _, err := transport.Normalize(c.Transports, env); err != nil {
		return fmt.Errorf("transports: %w", err)
	}
	return nil
}
