// Package config keeps user-tunable planner settings in a small YAML
// file. A missing file or missing fields fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultReflectionHour is when the evening reflection prompt starts.
const DefaultReflectionHour = 20

type Config struct {
	ReflectionHour int    `yaml:"reflection_hour"`
	Theme          string `yaml:"theme"`
	QuotesEnabled  bool   `yaml:"quotes_enabled"`
	HapticsEnabled bool   `yaml:"haptics_enabled"`
}

func Default() Config {
	return Config{
		ReflectionHour: DefaultReflectionHour,
		Theme:          "forest",
		QuotesEnabled:  true,
		HapticsEnabled: true,
	}
}

// ResolvePath returns the config file location. ZENPLAN_CONFIG
// overrides the default ~/.zenplan/config.yml.
func ResolvePath() (string, error) {
	if p := os.Getenv("ZENPLAN_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".zenplan", "config.yml"), nil
}

// Load reads the config at path. A missing file yields the defaults
// without error; present fields override them.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if cfg.ReflectionHour < 0 || cfg.ReflectionHour > 23 {
		cfg.ReflectionHour = DefaultReflectionHour
	}
	if cfg.Theme == "" {
		cfg.Theme = "forest"
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
