package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	adocerror "github.com/msto63/adoc/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"milliseconds", "250ms", 250 * time.Millisecond, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxInputLength != 1<<20 {
		t.Errorf("Parser.MaxInputLength = %v, want 1 MiB", cfg.Parser.MaxInputLength)
	}
	if cfg.Parser.MaxNestingDepth != 64 {
		t.Errorf("Parser.MaxNestingDepth = %v, want 64", cfg.Parser.MaxNestingDepth)
	}
	if cfg.Output.Format != "tree" {
		t.Errorf("Output.Format = %v, want tree", cfg.Output.Format)
	}
	if cfg.Watch.Debounce.Duration != 200*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 200ms", cfg.Watch.Debounce.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		field  string
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"input length", func(c *Config) { c.Parser.MaxInputLength = -1 }, "parser.max_input_length"},
		{"nesting depth", func(c *Config) { c.Parser.MaxNestingDepth = -5 }, "parser.max_nesting_depth"},
		{"output format", func(c *Config) { c.Output.Format = "html" }, "output.format"},
		{"debounce", func(c *Config) { c.Watch.Debounce.Duration = -time.Second }, "watch.debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !adocerror.HasCode(err, adocerror.CodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
			}
			field, _ := err.(*adocerror.Error).Detail("field")
			if field != tt.field {
				t.Errorf("field detail = %v, want %v", field, tt.field)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if !adocerror.HasCode(err, adocerror.CodeMissingConfig) {
		t.Errorf("Load() error = %v, want MISSING_CONFIG", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
log_level = "debug"

[parser]
max_nesting_depth = 16

[output]
format = "json"
no_color = true

[watch]
debounce = "1s"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Parser.MaxNestingDepth != 16 {
		t.Errorf("Parser.MaxNestingDepth = %v, want 16", cfg.Parser.MaxNestingDepth)
	}
	if cfg.Output.Format != "json" || !cfg.Output.NoColor {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Watch.Debounce.Duration != time.Second {
		t.Errorf("Watch.Debounce = %v, want 1s", cfg.Watch.Debounce.Duration)
	}

	// Check defaults were applied for missing values
	if cfg.Parser.MaxInputLength != 1<<20 {
		t.Errorf("Parser.MaxInputLength = %v, want default", cfg.Parser.MaxInputLength)
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "adoc.yaml")

	configContent := `
general:
  log_format: json
parser:
  max_input_length: 4096
output:
  format: yaml
watch:
  debounce: 50ms
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxInputLength != 4096 {
		t.Errorf("Parser.MaxInputLength = %v, want 4096", cfg.Parser.MaxInputLength)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
	if cfg.Watch.Debounce.Duration != 50*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 50ms", cfg.Watch.Debounce.Duration)
	}
}

func TestLoad_InvalidContent(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"broken.toml": "[general\nlog_level = ",
		"broken.yaml": "watch:\n  debounce: [1, 2]\n",
		"bad.toml":    "[output]\nformat = \"html\"\n",
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}
			if _, err := Load(path); !adocerror.HasCode(err, adocerror.CodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nformat = \"pp\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv(EnvConfigPath, configPath)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Output.Format != "pp" {
		t.Errorf("Output.Format = %v, want pp", cfg.Output.Format)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	_, err := LoadFromEnv()
	if !adocerror.HasCode(err, adocerror.CodeMissingConfig) {
		t.Errorf("LoadFromEnv() error = %v, want MISSING_CONFIG", err)
	}
}
