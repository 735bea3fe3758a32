/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the statsdump configuration
type Config struct {
	Server  Server  `yaml:"server"`
	Archive Archive `yaml:"archive"`
	Decoder Decoder `yaml:"decoder"`
	Logging Logging `yaml:"logging"`
}

// Server contains HTTP collector configuration
type Server struct {
	Bind           string   `yaml:"bind"`
	Port           int      `yaml:"port"`
	APIKey         string   `yaml:"api_key"`
	MaxDumpSize    int64    `yaml:"max_dump_size"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Archive contains dump archive configuration
type Archive struct {
	Dir string `yaml:"dir"`
}

// Decoder contains stats dump decoder options
type Decoder struct {
	Strict bool `yaml:"strict"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultMaxDumpSize bounds uploaded dumps. Real dumps are a few kilobytes.
const DefaultMaxDumpSize = 1 << 20

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: Server{
			Bind:           "127.0.0.1",
			Port:           8080,
			MaxDumpSize:    DefaultMaxDumpSize,
			AllowedOrigins: []string{"*"},
		},
		Archive: Archive{
			Dir: "./data",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.MaxDumpSize <= 0 {
		return fmt.Errorf("invalid max dump size: %d", c.Server.MaxDumpSize)
	}
	if c.Archive.Dir == "" {
		return fmt.Errorf("archive directory is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Keys missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the API key
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig writes a new configuration with a generated API key
func BootstrapConfig(configPath string, archiveDir string) (*Config, error) {
	config := DefaultConfig()
	if archiveDir != "" {
		config.Archive.Dir = archiveDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Server.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./statsdump.yaml"
	}

	// ~/.config/statsdump/config.yaml
	configDir := filepath.Join(homeDir, ".config", "statsdump")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
