package cmd

import (
	"fmt"
	"os"

	"armory/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is the directory searched for the .env file.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "armory",
	Short: "Equipment attachment service",
	Long: `Armory serves an item catalog and per-viewer equipment sessions, and
resolves the bone every equipped item attaches to on arbitrary character rigs.

Configuration comes from the environment and an optional .env file, e.g.
CATALOG_SOURCE=storage STORAGE_BUCKET=assets armory start`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing the .env file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("Command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
