package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// SeedData is the YAML-described bootstrap state: the expense categories
// and the fallback "General" budget a fresh deployment starts with.
type SeedData struct {
	Categories []string `yaml:"categories"`
	Budgets    []struct {
		Name       string  `yaml:"name"`
		Category   string  `yaml:"category"`
		Amount     float64 `yaml:"amount"`
		PeriodDays int     `yaml:"period_days"`
	} `yaml:"budgets"`
}

func LoadSeedData(path string) (*SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}
