package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Discovery DiscoveryConfig `yaml:"discovery"`
}

type DiscoveryConfig struct {
	TimeoutSeconds        int     `yaml:"timeout_seconds"`
	MaxRedirects          int     `yaml:"max_redirects"`
	MaxRetries            int     `yaml:"max_retries"`
	RequestsPerSecond     float64 `yaml:"requests_per_second"`
	BaseRetryDelaySeconds float64 `yaml:"base_retry_delay_seconds"`
	UserAgent             string  `yaml:"user_agent"`
	Concurrency           int     `yaml:"concurrency"`
}

func Default() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			TimeoutSeconds:        10,
			MaxRedirects:          5,
			MaxRetries:            3,
			RequestsPerSecond:     2.0,
			BaseRetryDelaySeconds: 1.0,
			UserAgent:             "feedscout/0.1",
			Concurrency:           0,
		},
	}
}

func Dir() string {
	if dir := os.Getenv("FEEDSCOUT_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".feedscout")
}

func DBPath() string {
	return filepath.Join(Dir(), "feedscout.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
