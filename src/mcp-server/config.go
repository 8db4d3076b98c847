// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
)

// ConfigEnv names the environment variable consulted when no --config flag is given.
const ConfigEnv = "MCP_X509_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// --config flag or the MCP_X509_CONFIG_FILE environment variable, with
// defaults applied for any missing or non-positive values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: settings applied to every tool call
	Defaults struct {
		// Format: output format used when parse_certificate is called without one
		Format string `json:"format" yaml:"format"`
		// MaxDepth: maximum ASN.1 nesting depth accepted by the decoder
		MaxDepth int `json:"maxDepth" yaml:"maxDepth"`
		// MaxInputSize: maximum input size in bytes
		MaxInputSize int `json:"maxInputSize" yaml:"maxInputSize"`
	} `json:"defaults" yaml:"defaults"`

	// Log: server log settings
	Log struct {
		// Level: minimum level written to stderr ("debug", "info", "warn", "error")
		Level string `json:"level,omitempty" yaml:"level,omitempty"`
	} `json:"log" yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	config := &Config{}
	config.Defaults.Format = string(x509viewer.FormatText)
	config.Defaults.MaxDepth = x509viewer.DefaultMaxDepth
	config.Defaults.MaxInputSize = x509viewer.DefaultMaxInputSize
	config.Log.Level = "info"
	return config
}

// ParserOptions converts the configured limits into parser options.
func (c *Config) ParserOptions() []x509viewer.Option {
	return []x509viewer.Option{
		x509viewer.WithMaxDepth(c.Defaults.MaxDepth),
		x509viewer.WithMaxInputSize(c.Defaults.MaxInputSize),
	}
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; unknown extensions are read as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return errors.Wrap(err, "failed to parse YAML config file")
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return errors.Wrap(err, "failed to parse JSON config file")
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the file cannot be read or parsed, or names an unknown output format
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_X509_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if a path was found)
//  4. Non-positive limits and an empty format fall back to the defaults
func loadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if config.Defaults.MaxDepth <= 0 {
		config.Defaults.MaxDepth = defaults.Defaults.MaxDepth
	}
	if config.Defaults.MaxInputSize <= 0 {
		config.Defaults.MaxInputSize = defaults.Defaults.MaxInputSize
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = defaults.Defaults.Format
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	format, err := x509viewer.ParseFormat(config.Defaults.Format)
	if err != nil {
		return nil, errors.Wrap(err, "invalid defaults.format")
	}
	config.Defaults.Format = string(format)

	return config, nil
}
