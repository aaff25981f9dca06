// Package cli wires the command line surface: loading the export
// documents, serving them over HTTP, exporting to SQLite and the
// interactive terminal browser.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driven/config/file"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driving"
	"github.com/khangai-labs/khuvaari-cli/internal/core/services"
	"github.com/khangai-labs/khuvaari-cli/internal/edupage"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configPath string
	dataDir    string
	verbose    bool

	// appConfig, documentLoader and timetableService are initialised
	// by the persistent pre-run and shared by all subcommands.
	appConfig        *file.Config
	documentLoader   *edupage.Loader
	timetableService driving.TimetableService
)

var rootCmd = &cobra.Command{
	Use:   "khuvaari",
	Short: "Browse and serve EduPage timetable exports",
	Long: `Khuvaari normalises static EduPage HTML timetable exports into
per-class and per-teacher weekly grids and serves them on the terminal,
over HTTP, and to AI assistants via MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.khuvaari/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the export documents")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initServices loads the configuration and builds the document loader
// and timetable service. The snapshot itself is loaded lazily by the
// commands that need it.
func initServices(cmd *cobra.Command) error {
	// Commands that never touch the data skip the wiring.
	switch cmd.Name() {
	case "version", "help", "completion", "init":
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}

	cfg, err := file.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	appConfig = cfg

	documentLoader = edupage.NewLoader(cfg.DataDir, cfg.ClassesFile, cfg.TeachersFile)
	timetableService = services.NewTimetableService(documentLoader)
	return nil
}

// reloadSnapshot parses both export documents into the service.
func reloadSnapshot(cmd *cobra.Command) error {
	if err := timetableService.Reload(cmd.Context()); err != nil {
		return fmt.Errorf("loading timetable: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
