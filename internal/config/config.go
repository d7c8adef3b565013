// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Feed configures where signal samples come from.
type Feed struct {
	Provider   string  `yaml:"provider"`
	URL        string  `yaml:"url"`
	IntervalMs int     `yaml:"interval_ms"`
	SelfDrift  float64 `yaml:"self_drift"`
	EnvDrift   float64 `yaml:"env_drift"`
}

// Trend selects the delta estimator and its lookback.
type Trend struct {
	Mode   string `yaml:"mode"`
	Window int    `yaml:"window"`
}

// Policy holds the dead-band thresholds and the switch guard depth.
type Policy struct {
	TauPos           float64 `yaml:"tau_pos"`
	TauNeg           float64 `yaml:"tau_neg"`
	MinConfirmations int     `yaml:"min_confirmations"`
}

// Journal configures decision capture for later inspection.
type Journal struct {
	Path     string `yaml:"path"`
	Capacity int    `yaml:"capacity"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App     App     `yaml:"app"`
	Feed    Feed    `yaml:"feed"`
	Trend   Trend   `yaml:"trend"`
	Policy  Policy  `yaml:"policy"`
	Journal Journal `yaml:"journal"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
// A .env file next to the process, if present, may override log level
// and metrics address via AIFUNNY_LOG_LEVEL / AIFUNNY_METRICS_ADDR.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // best-effort

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if v := os.Getenv("AIFUNNY_LOG_LEVEL"); v != "" {
		config.App.LogLevel = v
	}
	if v := os.Getenv("AIFUNNY_METRICS_ADDR"); v != "" {
		config.App.MetricsAddr = v
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
