// Package config holds defaults, yaml file loading, and the built-in
// pathogen presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/allelesim/internal/genetics"
)

const (
	DefaultGenerations = 200
	DefaultSeed        = 0 // 0 means time-seeded
)

// Config is the yaml-facing shape of a simulation setup: the seven
// force/population fields plus batch-run settings.
type Config struct {
	Forces      genetics.ForceParams `yaml:"forces"`
	Generations int                  `yaml:"generations"`
	Seed        int64                `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Forces:      genetics.DefaultParams(),
		Generations: DefaultGenerations,
		Seed:        DefaultSeed,
	}
}

// Load reads a yaml config, layering the file over defaults. Force
// values are clamped into range rather than rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Forces = cfg.Forces.Clamped()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
