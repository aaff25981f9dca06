package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show (class|teacher) NAME",
	Short: "Print one weekly grid on the terminal",
	Long: `Parse the export documents and print the weekly grid of one class
or teacher as a plain-text table.

Examples:
  khuvaari show class Ахлах-10а
  khuvaari show teacher Б.Бат --week even`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("week", "odd", "week variant: odd or even")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := reloadSnapshot(cmd); err != nil {
		return err
	}

	weekFlag, err := cmd.Flags().GetString("week")
	if err != nil {
		return fmt.Errorf("getting week flag: %w", err)
	}
	week, ok := domain.ParseWeek(weekFlag)
	if !ok {
		return fmt.Errorf("%w: unknown week %q", domain.ErrInvalidInput, weekFlag)
	}

	var grid domain.SectionGrid
	switch args[0] {
	case "class":
		grid, err = timetableService.Class(args[1])
	case "teacher":
		grid, err = timetableService.Teacher(args[1])
	default:
		return fmt.Errorf("%w: expected class or teacher, got %q", domain.ErrInvalidInput, args[0])
	}
	if err != nil {
		return fmt.Errorf("looking up %s: %w", args[1], err)
	}

	printGrid(cmd, grid, week)
	return nil
}

func printGrid(cmd *cobra.Command, grid domain.SectionGrid, week domain.Week) {
	matrix := grid.Odd
	if week == domain.WeekEven {
		matrix = grid.Even
	}

	cmd.Printf("%s (%s week)\n\n", grid.Name, week)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\t%s\n", strings.Join(grid.Days, "\t"))
	for r, period := range grid.Periods {
		cells := make([]string, len(matrix[r]))
		for c, e := range matrix[r] {
			cells[c] = entryText(e)
		}
		fmt.Fprintf(w, "%s\t%s\n", period, strings.Join(cells, "\t"))
	}
	w.Flush() //nolint:errcheck
}

func entryText(e domain.Entry) string {
	if e.IsEmpty() {
		return "-"
	}
	parts := []string{e.Subject}
	if e.Secondary != "" {
		parts = append(parts, e.Secondary)
	}
	if e.Tertiary != "" {
		parts = append(parts, e.Tertiary)
	}
	return strings.Join(parts, " / ")
}
