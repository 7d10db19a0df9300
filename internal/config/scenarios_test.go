package config

import (
	"os"
	"path/filepath"
	"testing"

	"accelbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenarios_YAML(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", `
scenarios:
  - kind: prime
    arg: 10000
    iterations: 3
  - task: Big matrix
    kind: mult
    arg: 120
`)

	got, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, benchmark.Scenario{Task: "Prime Count (n=10K)", Kind: benchmark.KindPrime, Arg: 10000, Iterations: 3}, got[0])
	assert.Equal(t, "Big matrix", got[1].Task)
	assert.Equal(t, benchmark.KindMatrix, got[1].Kind)
	assert.Equal(t, 0, got[1].Iterations)
}

func TestLoadScenarios_TOML(t *testing.T) {
	path := writeFile(t, "scenarios.toml", `
[[scenarios]]
kind = "fib"
arg = 20

[[scenarios]]
kind = "sum"
arg = 1000000
iterations = 2
`)

	got, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, benchmark.KindFibonacci, got[0].Kind)
	assert.Equal(t, "Sum of Squares (n=1M)", got[1].Task)
	assert.Equal(t, 2, got[1].Iterations)
}

func TestLoadScenarios_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "scenarios.json", `{}`},
		{"empty list", "empty.yml", "scenarios: []\n"},
		{"bad yaml", "bad.yaml", "scenarios: [\n"},
		{"bad toml", "bad.toml", "[[scenarios]\n"},
		{"unknown kind", "kind.yaml", "scenarios:\n  - kind: cube\n    arg: 3\n"},
		{"negative arg", "arg.toml", "[[scenarios]]\nkind = \"prime\"\narg = -4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenarios(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadScenarios(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
