// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration for the adoc command line tool
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	adocerror "github.com/msto63/adoc/foundation/core/error"
	adoclog "github.com/msto63/adoc/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "ADOC_CONFIG"

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"tree", "json", "yaml", "pp"}

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds the markup parser limits
type ParserConfig struct {
	MaxInputLength  int `toml:"max_input_length" yaml:"max_input_length"`
	MaxNestingDepth int `toml:"max_nesting_depth" yaml:"max_nesting_depth"`
}

// OutputConfig holds dump settings
type OutputConfig struct {
	Format  string `toml:"format" yaml:"format"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
}

// WatchConfig holds settings for re-parsing on file changes
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, adocerror.Newf("config file not found: %s", path).
				WithCode(adocerror.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, adocerror.Wrap(err, "failed to read config").
			WithCode(adocerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, adocerror.Wrap(err, "failed to parse config").
			WithCode(adocerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the ADOC_CONFIG environment variable
// or the first existing default location
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, adocerror.New("no config file found, set ADOC_CONFIG or create configs/config.toml").
			WithCode(adocerror.CodeMissingConfig)
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv
func DefaultPaths() []string {
	return []string{
		"./configs/config.toml",
		"./adoc.toml",
		"./adoc.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/adoc/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 1 << 20
	}
	if c.Parser.MaxNestingDepth == 0 {
		c.Parser.MaxNestingDepth = 64
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return adocerror.Newf("invalid config value for %s: %s", field, reason).
			WithCode(adocerror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := adoclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := adoclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "unknown log format")
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength, "must not be negative")
	}
	if c.Parser.MaxNestingDepth < 0 {
		return invalid("parser.max_nesting_depth", c.Parser.MaxNestingDepth, "must not be negative")
	}
	if !IsOutputFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format,
			"must be one of "+strings.Join(OutputFormats, ", "))
	}
	if c.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce", c.Watch.Debounce.String(), "must not be negative")
	}
	return nil
}

// IsOutputFormat reports whether name is an accepted output format
func IsOutputFormat(name string) bool {
	for _, f := range OutputFormats {
		if f == name {
			return true
		}
	}
	return false
}
