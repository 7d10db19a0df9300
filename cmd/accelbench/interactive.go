package main

import (
	"errors"
	"fmt"
	"io"

	"accelbench/internal/demo"
	apperrors "accelbench/internal/errors"
	"accelbench/internal/telemetry"
	"accelbench/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

var askOneFunc = survey.AskOne

// runInteractive shows the numbered menu until the user exits.
// A failing demo is reported and the loop continues.
func runInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	h, accelerated := newHarness(out)
	fmt.Fprint(out, ui.RenderBanner(accelerated))

	for {
		fmt.Fprint(out, ui.RenderNumericMenu(demo.Choices()))

		var input string
		err := askOneFunc(&survey.Input{Message: "Select demo (0-5):"}, &input)
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\n\nExiting...")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}

		choice, ok := demo.ParseChoice(input)
		if !ok {
			fmt.Fprintln(out, ui.Warning("Invalid choice. Please select 0-5."))
			continue
		}
		if len(choice.Demos) == 0 {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		if err := runChoice(h, choice); err != nil {
			telemetry.LogError("Demo failed", err, "choice", choice.Label)
			fmt.Fprintln(out, ui.Error(apperrors.Describe(err)))
		}
	}
}

func runChoice(h *demo.Harness, choice demo.Choice) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("demo %q panicked: %v", choice.Label, r)
		}
	}()
	return h.RunAll(choice.Demos)
}
