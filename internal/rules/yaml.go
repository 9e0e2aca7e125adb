// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// WriteFile saves a ruleset to a YAML file so reviewers can extend the
// tables without rebuilding the binary.
func WriteFile(path string, rs *Ruleset) error {
	data, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshaling ruleset: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a ruleset from a YAML file. The result is not compiled;
// callers run Compile before handing it to the pipeline.
func ReadFile(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ruleset file: %w", err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing ruleset file %s: %w", path, err)
	}
	return &rs, nil
}
