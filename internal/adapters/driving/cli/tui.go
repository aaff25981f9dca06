package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal browser",
	Long: `Launch the interactive terminal browser over the loaded timetable.

Controls:
  ↑/k, ↓/j - Navigate the class and teacher lists
  Enter    - Open the selected grid
  Tab      - Switch between classes and teachers
  w        - Toggle odd/even week
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if err := reloadSnapshot(cmd); err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Timetable: timetableService})
	if err != nil {
		return fmt.Errorf("building TUI: %w", err)
	}
	return app.Run()
}
