package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"accelbench/internal/benchmark"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type scenarioFile struct {
	Scenarios []benchmark.Scenario `yaml:"scenarios" toml:"scenarios"`
}

// LoadScenarios reads a scenario list from a .yaml/.yml or .toml file.
//
// YAML:
//
//	scenarios:
//	  - kind: prime
//	    arg: 10000
//	    iterations: 3
//
// TOML:
//
//	[[scenarios]]
//	kind = "matrix"
//	arg = 100
func LoadScenarios(path string) ([]benchmark.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file scenarioFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q (want .yaml, .yml or .toml)", ext)
	}

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%s defines no scenarios", path)
	}
	for i := range file.Scenarios {
		if err := file.Scenarios[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: scenario %d: %w", path, i+1, err)
		}
	}
	return file.Scenarios, nil
}
