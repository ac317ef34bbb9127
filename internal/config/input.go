// Package config parses and validates projection run configuration files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/demosim/demographic-projector/internal/calculation"
	"github.com/demosim/demographic-projector/internal/domain"
)

// RunConfig describes one projection run: the year span, the scenario
// (preset or custom parameters), an optional reference-data file and the
// desired output.
type RunConfig struct {
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`

	// Preset names a built-in scenario (low/medium/high) or "custom".
	Preset string `yaml:"preset"`
	// Parameters is required when Preset is "custom" and ignored otherwise.
	Parameters *domain.SimulationParameters `yaml:"parameters,omitempty"`

	// ReferenceData optionally points at a YAML dataset; empty means the
	// built-in dataset.
	ReferenceData string `yaml:"reference_data,omitempty"`

	Output OutputConfig `yaml:"output"`
}

// OutputConfig selects how the result series is written.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path,omitempty"`
}

// InputParser handles parsing of run configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a run configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*RunConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRunConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateRunConfig validates the loaded configuration.
func (ip *InputParser) ValidateRunConfig(cfg *RunConfig) error {
	if cfg.StartYear <= 0 {
		return fmt.Errorf("start year is required")
	}
	if cfg.EndYear < cfg.StartYear {
		return fmt.Errorf("end year %d cannot precede start year %d", cfg.EndYear, cfg.StartYear)
	}
	if span := cfg.EndYear - cfg.StartYear + 1; span > calculation.MaxProjectionYears {
		return fmt.Errorf("projection span of %d years exceeds the %d-year limit", span, calculation.MaxProjectionYears)
	}

	if _, err := ip.ResolveParameters(cfg); err != nil {
		return err
	}

	if cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "console", "csv", "json":
		default:
			return fmt.Errorf("output format must be 'console', 'csv' or 'json', got %q", cfg.Output.Format)
		}
	}

	return nil
}

// ResolveParameters returns the effective simulation parameters: the preset
// bundle for a named preset, or the validated custom parameter block.
func (ip *InputParser) ResolveParameters(cfg *RunConfig) (domain.SimulationParameters, error) {
	name := cfg.Preset
	if name == "" {
		name = domain.PresetMedium.String()
	}
	preset, err := domain.ParseScenarioPreset(name)
	if err != nil {
		return domain.SimulationParameters{}, err
	}

	if params, ok := preset.Parameters(); ok {
		return params, nil
	}

	if cfg.Parameters == nil {
		return domain.SimulationParameters{}, fmt.Errorf("custom scenario requires a parameters block")
	}
	if err := calculation.ValidateParameters(*cfg.Parameters); err != nil {
		return domain.SimulationParameters{}, err
	}
	return *cfg.Parameters, nil
}
