package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWorkload loads a demo workload from a YAML file.
//
// Returns the parsed Workload or an error if reading or parsing fails.
func LoadWorkload(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload file: %w", err)
	}

	return ParseWorkload(data)
}

// ParseWorkload parses workload data as YAML.
func ParseWorkload(data []byte) (*Workload, error) {
	var workload Workload
	if err := yaml.Unmarshal(data, &workload); err != nil {
		return nil, fmt.Errorf("failed to parse workload: %w", err)
	}
	return &workload, nil
}
