// Package config provides configuration loading for the lipi command.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/lipi"
	"gopkg.in/yaml.v3"
)

// Config contains all lipi command settings.
type Config struct {
	// Detect contains settings for scheme detection.
	Detect DetectConfig `json:"detect" yaml:"detect"`

	// Input contains settings for reading input texts.
	Input InputConfig `json:"input" yaml:"input"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// DetectConfig configures the detector.
type DetectConfig struct {
	// Default is the scheme name reported when nothing matches.
	// Empty means "none".
	Default string `json:"default" yaml:"default"`

	// SkipSGML removes SGML/XML tags before detection.
	SkipSGML bool `json:"skip_sgml" yaml:"skip_sgml"`
}

// InputConfig configures input decoding.
type InputConfig struct {
	// Encoding is a WHATWG encoding label, e.g. "utf-8" or "utf-16le".
	Encoding string `json:"encoding" yaml:"encoding"`

	// NFC normalizes input to Unicode NFC before detection.
	NFC bool `json:"nfc" yaml:"nfc"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default) or "debug".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Detect: DetectConfig{
			Default:  "",
			SkipSGML: false,
		},
		Input: InputConfig{
			Encoding: "utf-8",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the default location of the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lipi", "config.yaml"), nil
}

// Load loads configuration from the default location and environment variables.
// Order: defaults -> ~/.config/lipi/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	if configPath, err := Path(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Environment
// overrides are not applied.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.DefaultScheme(); err != nil {
		return fmt.Errorf("invalid default scheme: %w", err)
	}

	validLevels := map[string]bool{"info": true, "debug": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, or empty for default)", c.Logging.Level)
	}

	return nil
}

// DefaultScheme returns the configured fallback scheme.
func (c *Config) DefaultScheme() (lipi.Scheme, error) {
	return lipi.ParseScheme(c.Detect.Default)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("LIPI_DEFAULT_SCHEME"); v != "" {
		config.Detect.Default = v
	}

	if v := os.Getenv("LIPI_SKIP_SGML"); v != "" {
		config.Detect.SkipSGML = v == "true" || v == "1"
	}

	if v := os.Getenv("LIPI_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// LoadPath is like Load, but reads the config file at path instead of the
// default location. An empty path behaves like Load.
func LoadPath(path string) (*Config, error) {
	if path == "" {
		return Load()
	}
	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(config)
	return config, nil
}
