package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration for the host application.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Profile ProfileConfig `yaml:"profile"`
}

// DataConfig locates the weight log.
type DataConfig struct {
	Path string `yaml:"path"`
}

// ProfileConfig locates the user's plan.
type ProfileConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATA_PATH"); v != "" {
		cfg.Data.Path = v
	}
	if v := os.Getenv("PROFILE_PATH"); v != "" {
		cfg.Profile.Path = v
	}
}

func defaultConfig() *Config {
	return &Config{
		Data:    DataConfig{Path: "weightlog.csv"},
		Profile: ProfileConfig{Path: "profile.yaml"},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return errors.New("data.path cannot be empty")
	}
	if c.Profile.Path == "" {
		return errors.New("profile.path cannot be empty")
	}
	return nil
}
