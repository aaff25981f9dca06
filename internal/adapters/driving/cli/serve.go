package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driving/web"
	"github.com/khangai-labs/khuvaari-cli/internal/core/services"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timetable over HTTP",
	Long: `Parse the export documents and serve the timetable as HTML pages
and a JSON API. With --watch the documents are re-parsed whenever the
files change on disk; the running snapshot is swapped wholesale.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	serveCmd.Flags().Bool("watch", false, "re-parse the documents when they change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := reloadSnapshot(cmd); err != nil {
		return err
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("getting addr flag: %w", err)
	}
	if addr == "" {
		addr = appConfig.ListenAddr
	}

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		watcher, err := services.NewWatcher(timetableService, documentLoader.Paths())
		if err != nil {
			return fmt.Errorf("starting file watcher: %w", err)
		}
		defer watcher.Close()
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Warn("file watcher stopped: %v", err)
			}
		}()
	}

	server, err := web.NewServer(timetableService, appConfig.RateLimit, appConfig.RateBurst)
	if err != nil {
		return fmt.Errorf("building web server: %w", err)
	}
	return server.Run(ctx, addr)
}
