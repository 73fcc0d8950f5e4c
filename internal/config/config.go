// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default settings
	Defaults struct {
		Format    string  `yaml:"format"`
		Checks    string  `yaml:"checks"`
		Threshold float64 `yaml:"threshold"`
		Workers   int     `yaml:"workers"`
		Verbose   bool    `yaml:"verbose"`
		Debug     bool    `yaml:"debug"`
		NoColor   bool    `yaml:"no_color"`
	} `yaml:"defaults"`

	// Verification backend settings
	Verifier struct {
		Enabled bool    `yaml:"enabled"`
		Mode    string  `yaml:"mode"`
		APIKey  string  `yaml:"api_key"`
		BaseURL string  `yaml:"base_url"`
		Model   string  `yaml:"model"`
		Cutoff  float64 `yaml:"cutoff"`

		// Mock backend overrides; nil keeps the mock's defaults.
		MockIsSensitive *bool    `yaml:"mock_is_sensitive"`
		MockConfidence  *float64 `yaml:"mock_confidence"`
	} `yaml:"verifier"`

	// Rules file holding custom recognizer definitions
	RulesPath string `yaml:"rules_path"`

	// Masking settings
	Masking struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"masking"`
}

// LoadConfig loads configuration from the given path. An empty path returns
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"
	config.Defaults.Threshold = 0.5
	config.Defaults.Workers = 4
	config.Verifier.Mode = "mock"
	config.Verifier.Cutoff = 0.5

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Environment wins for the API key so secrets stay out of config files.
	if key := os.Getenv("MINGJING_API_KEY"); key != "" {
		config.Verifier.APIKey = key
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	candidates := []string{
		"config.yaml",
		"mingjing.yaml",
		"mingjing.yml",
		".mingjing-scan.yaml",
		".mingjing-scan.yml",
	}
	for _, name := range candidates {
		if fileExists(name) {
			return name
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".mingjing-scan", "config.yaml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// ValidateConfig checks value ranges.
func ValidateConfig(config *Config) error {
	if config.Defaults.Threshold < 0 || config.Defaults.Threshold > 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %v", config.Defaults.Threshold)
	}
	if config.Verifier.Cutoff < 0 || config.Verifier.Cutoff > 1 {
		return fmt.Errorf("verifier cutoff must be between 0 and 1, got %v", config.Verifier.Cutoff)
	}
	if config.Defaults.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", config.Defaults.Workers)
	}
	switch config.Defaults.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", config.Defaults.Format)
	}
	switch config.Verifier.Mode {
	case "", "api", "local", "mock":
	default:
		return fmt.Errorf("unknown verifier mode %q", config.Verifier.Mode)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
