package main

import (
	"fmt"

	"accelbench/internal/demo"
	"accelbench/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var runMenuProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a demo from a full-screen list",
	RunE: func(cmd *cobra.Command, args []string) error {
		final, err := runMenuProgram(ui.NewMenuModel(ui.DemoMenuItems(demo.Choices())))
		if err != nil {
			return fmt.Errorf("menu failed: %w", err)
		}

		m, ok := final.(ui.MenuModel)
		if !ok || m.Selected == "" {
			return nil
		}
		choice, ok := demo.ParseChoice(m.Selected)
		if !ok {
			return fmt.Errorf("unknown menu entry %q", m.Selected)
		}

		h, _ := newHarness(cmd.OutOrStdout())
		return h.RunAll(choice.Demos)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
