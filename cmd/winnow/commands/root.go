// Package commands implements the winnow CLI.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crimson-sun/winnow/internal/config"
	"github.com/crimson-sun/winnow/internal/logging"
)

// cfg supplies flag defaults from WINNOW_* environment variables.
var cfg = config.Load()

// log is initialized before any subcommand runs.
var log *zap.Logger

// rootCmd is the base winnow command.
var rootCmd = &cobra.Command{
	Use:   "winnow",
	Short: "Normalize mixed JSON/JSONL into dict-only JSONL",
	Long: `Winnow ingests JSON or JSONL input of unknown shape (single document,
array, or newline-delimited values) and separates dictionary-shaped records
from everything else. Records go to the output file; anything that cannot be
treated as a record is logged to a discard file with a reason.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		log = logging.New(logging.ParseLevel(level), jsonLogs)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute runs the CLI. Cobra reports the failing error on stderr; the
// caller maps a non-nil return to a nonzero exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", cfg.Logging.Level, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON instead of console format")
}
