package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to ~/.khuvaari/config.toml (or the
path given with --config). Existing files are not overwritten.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := file.Default().Save(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	cmd.Printf("config written to %s\n", path)
	return nil
}
