// Package config loads the binary's configuration from a YAML file
// merged with HELPBOARD_* environment variables. Explicit flags win
// over both (handled by the caller).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the main configuration struct.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StorageConfig holds the durable store settings.
type StorageConfig struct {
	// DBPath is the Pebble directory. Empty means in-memory only: the
	// text-size preference then does not survive a restart.
	DBPath string `yaml:"db_path"`
}

// LoggingConfig mirrors the HELPBOARD_LOG_* env vars; values here are
// applied only when the env vars are unset.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Sink  string `yaml:"sink"`
}

// MetricsConfig controls the optional prometheus listener.
type MetricsConfig struct {
	// Addr like "127.0.0.1:9201"; empty disables the listener.
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage: StorageConfig{DBPath: "helpboard.db"},
	}
}

// Load reads the YAML file at path (missing file is not an error) and
// then applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("HELPBOARD_DB_PATH"); ok {
		cfg.Storage.DBPath = v
	}
	if v, ok := os.LookupEnv("HELPBOARD_METRICS_ADDR"); ok {
		cfg.Metrics.Addr = v
	}
	if v, ok := os.LookupEnv("HELPBOARD_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv("HELPBOARD_LOG_SINK"); ok {
		cfg.Logging.Sink = v
	}
}
