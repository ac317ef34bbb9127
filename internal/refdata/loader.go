package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a dataset from a YAML file and builds the tables.
func LoadFromFile(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var dataset Dataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	tables, err := dataset.Build()
	if err != nil {
		return nil, fmt.Errorf("reference data validation failed: %w", err)
	}
	return tables, nil
}
