package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"evogambit/internal/cost"
)

// loadCostConfig reads an optional YAML pricing override. An empty path
// yields the zero config, which the calculator fills with defaults.
func loadCostConfig(path string) (cost.Config, error) {
	if path == "" {
		return cost.Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cost.Config{}, err
	}
	var cfg cost.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cost.Config{}, fmt.Errorf("parse pricing config %s: %w", path, err)
	}
	return cfg, nil
}
