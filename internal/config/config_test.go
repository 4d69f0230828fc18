package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/lipi"
)

func TestDefault(t *testing.T) {
	config := Default()

	if config.Detect.Default != "" {
		t.Errorf("expected empty default scheme, got '%s'", config.Detect.Default)
	}
	if config.Detect.SkipSGML {
		t.Error("expected SkipSGML to be false by default")
	}
	if config.Input.Encoding != "utf-8" {
		t.Errorf("expected Encoding 'utf-8', got '%s'", config.Input.Encoding)
	}
	if config.Input.NFC {
		t.Error("expected NFC to be false by default")
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
detect:
  default: iast
  skip_sgml: true

input:
  encoding: utf-16le
  nfc: true

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if config.Detect.Default != "iast" {
		t.Errorf("expected default 'iast', got '%s'", config.Detect.Default)
	}
	if !config.Detect.SkipSGML {
		t.Error("expected SkipSGML to be true")
	}
	if config.Input.Encoding != "utf-16le" {
		t.Errorf("expected Encoding 'utf-16le', got '%s'", config.Input.Encoding)
	}
	if !config.Input.NFC {
		t.Error("expected NFC to be true")
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
	scheme, err := config.DefaultScheme()
	if err != nil || scheme != lipi.IAST {
		t.Errorf("expected default scheme IAST, got %q (%v)", scheme, err)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("detect:\n  skip_sgml: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if config.Input.Encoding != "utf-8" || config.Logging.Level != "info" {
		t.Errorf("unset fields should keep defaults, got %+v", config)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	tmpDir := t.TempDir()
	if _, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	invalid := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("detect: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadFromFile(invalid); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("LIPI_DEFAULT_SCHEME", "")
	t.Setenv("LIPI_SKIP_SGML", "")
	t.Setenv("LIPI_LOG_LEVEL", "")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load without config file failed: %v", err)
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected defaults without config file, got %+v", config)
	}

	configPath, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte("detect:\n  default: hk\n"), 0644); err != nil {
		t.Fatal(err)
	}
	config, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Detect.Default != "hk" {
		t.Errorf("expected default 'hk' from config file, got '%s'", config.Detect.Default)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIPI_DEFAULT_SCHEME", "slp1")
	t.Setenv("LIPI_SKIP_SGML", "1")
	t.Setenv("LIPI_LOG_LEVEL", "debug")

	config := Default()
	applyEnvOverrides(config)

	if config.Detect.Default != "slp1" {
		t.Errorf("expected default 'slp1', got '%s'", config.Detect.Default)
	}
	if !config.Detect.SkipSGML {
		t.Error("expected SkipSGML to be true")
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"scheme alias", func(c *Config) { c.Detect.Default = "Harvard-Kyoto" }, false},
		{"explicit none", func(c *Config) { c.Detect.Default = "none" }, false},
		{"unknown scheme", func(c *Config) { c.Detect.Default = "wx" }, true},
		{"debug level", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	config := Default()
	config.Detect.Default = "wx"
	if err := config.Validate(); !errors.Is(err, lipi.ErrSchemeNotSupported) {
		t.Errorf("expected wrapped ErrSchemeNotSupported, got %v", err)
	}
}
