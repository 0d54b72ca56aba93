package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

// Config is the whole of the program's ambient configuration. The scoring
// algorithm itself takes no configuration: its constants are compile-time
// constants in package model and are never exposed here.
type Config struct {
	Version   int            `yaml:"version"`
	Logging   LoggingConfig  `yaml:"logging"`
	Reporting ReporterConfig `yaml:"reporting"`
}

func unmarshalConfig(data []byte, cfg *Config) error {
	// We want to use only fields we defined, so plain yaml.Unmarshal (which
	// silently ignores the rest) is not good enough here.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

// validate checks the handful of invariants the YAML shape does not enforce
// on its own. There is no separate sanitize pass: none of these fields
// derive a value from another.
func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	for _, l := range []struct {
		name string
		lc   LoggerConfig
	}{{"logging.console", cfg.Logging.Console}, {"logging.file", cfg.Logging.File}} {
		switch l.lc.Level {
		case "none", "normal", "debug":
		default:
			return fmt.Errorf("%s.level must be one of none, normal, debug, got %q", l.name, l.lc.Level)
		}
	}
	switch cfg.Logging.File.Mode {
	case "", "append", "overwrite":
	default:
		return fmt.Errorf("logging.file.mode must be append or overwrite, got %q", cfg.Logging.File.Mode)
	}
	return nil
}

// LoadConfiguration reads the configuration from the file at the given
// path, superimposing its values on top of the embedded default template.
// An empty path returns the defaults unmodified.
func LoadConfiguration(path string) (*Config, error) {
	cfg := &Config{}
	if err := unmarshalConfig(ConfigTmpl, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if len(path) == 0 {
		if err := validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := unmarshalConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Prepare returns the embedded default configuration, verbatim, for the
// dumpconfig command.
func Prepare() ([]byte, error) {
	return ConfigTmpl, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
