package app

import (
	"errors"

	"github.com/vk/mendgrid/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPaths []string       // hcl/yaml files or directories
	Steps     []*config.Step // inline steps built from CLI arguments

	LogFormat string
	LogLevel  string
	DryRun    bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.PlanPaths) == 0 && len(cfg.Steps) == 0 {
		return nil, errors.New("either plan paths or inline steps are required")
	}
	if len(cfg.PlanPaths) > 0 && len(cfg.Steps) > 0 {
		return nil, errors.New("plan paths and inline steps are mutually exclusive")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return &cfg, nil
}
