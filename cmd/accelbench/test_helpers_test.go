package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"accelbench/internal/algorithms"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (out string, err error) {
	resetFlags(root)
	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()

	b := new(bytes.Buffer)
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				out = b.String()
				err = errors.New(s)
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()
	root.SetArgs(args)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err = root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// withSuites makes resolveSuites return ref and acc for the duration of the test.
// A nil acc behaves like an unavailable accelerated implementation.
func withSuites(t *testing.T, acc algorithms.Suite) {
	t.Helper()
	old := loadAccelerated
	t.Cleanup(func() { loadAccelerated = old })
	loadAccelerated = func() (algorithms.Suite, error) {
		if acc == nil {
			return nil, errors.New("accelerated implementation not available")
		}
		return acc, nil
	}
}

// withAnswers feeds the interactive prompt one answer per call. Once the answers
// run out the prompt reports an interrupt.
func withAnswers(t *testing.T, answers ...string) {
	t.Helper()
	old := askOneFunc
	t.Cleanup(func() { askOneFunc = old })
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		if len(answers) == 0 {
			return terminal.InterruptErr
		}
		*(response.(*string)) = answers[0]
		answers = answers[1:]
		return nil
	}
}

// withHistory points the history file at a temporary directory.
func withHistory(t *testing.T) string {
	t.Helper()
	path := t.TempDir() + "/history.json"
	t.Setenv("ACCELBENCH_HISTORY_FILE", path)
	return path
}

type failingSuite struct{ algorithms.Suite }

func (failingSuite) Name() string { return "failing" }
func (failingSuite) SumOfSquares(int) (int64, error) {
	return 0, errors.New("sum exploded")
}

type panickingSuite struct{ algorithms.Suite }

func (panickingSuite) Name() string { return "panicking" }
func (panickingSuite) SumOfSquares(int) (int64, error) {
	panic("kaboom")
}

type wrongSuite struct{ algorithms.Suite }

func (wrongSuite) Name() string { return "wrong" }
func (wrongSuite) SumOfSquares(n int) (int64, error) {
	v, err := algorithms.SumOfSquares(n)
	return v + 1, err
}
