// Package daemon manages the Study Quest daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all daemon configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Storage   StorageConfig   `toml:"storage"`
	Web       WebConfig       `toml:"web"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StorageConfig controls where the SQLite database lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// WebConfig controls static hosting of the dashboard SPA.
type WebConfig struct {
	Dir string `toml:"dir"`
}

// TelemetryConfig controls metrics exposure.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := studyQuestHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        3001,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Dir: homeDir,
		},
		Web: WebConfig{
			Dir: "web",
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
	}
}

// LoadConfig reads config from $STUDYQUEST_HOME/config.toml, falling back to
// defaults. A .env file in the working directory is loaded first so that
// STUDYQUEST_HOME itself can come from the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // Missing .env is fine

	cfg := DefaultConfig()
	path := filepath.Join(studyQuestHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to $STUDYQUEST_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(studyQuestHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// studyQuestHome returns the Study Quest data directory.
func studyQuestHome() string {
	if env := os.Getenv("STUDYQUEST_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".studyquest")
}

// Home is exported for use by other packages.
func Home() string {
	return studyQuestHome()
}
