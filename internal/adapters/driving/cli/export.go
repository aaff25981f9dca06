package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driven/storage/sqlite"
	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the normalised timetable to SQLite",
	Long: `Parse the export documents and write the normalised grids to a
SQLite database, one row per non-empty slot per week. Re-running the
export replaces the previous snapshot.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("db", "", "database path (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := reloadSnapshot(cmd); err != nil {
		return err
	}

	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return fmt.Errorf("getting db flag: %w", err)
	}
	if dbPath == "" {
		dbPath = appConfig.DatabasePath
	}

	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	for _, kind := range []domain.DocumentKind{domain.KindClasses, domain.KindTeachers} {
		t, err := timetableService.Timetable(kind)
		if err != nil {
			return fmt.Errorf("reading %s snapshot: %w", kind, err)
		}
		if err := store.SaveTimetable(ctx, t); err != nil {
			return fmt.Errorf("saving %s snapshot: %w", kind, err)
		}
		logger.Debug("exported %d %s sections", len(t.SectionNames), kind)
		cmd.Printf("saved %d %s sections\n", len(t.SectionNames), kind)
	}

	cmd.Printf("database written to %s\n", store.Path())
	return nil
}
