package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/winnow/internal/concat"
)

// concatCmd merges normalized shards from a directory into one file.
var concatCmd = &cobra.Command{
	Use:   "concat [source-dir] [output]",
	Short: "Concatenate normalized_*.jsonl shards into one combined file",
	Long: `Concatenate normalized_*.jsonl files from a directory into a single
multi-line JSONL file, in sorted filename order.

Duplicate detection is per file, not per record: a shard whose whole content
hashes identically to an earlier shard is skipped unless --dedupe=false.

Examples:
  winnow concat
  winnow concat norm_jsonl/ combined.jsonl
  winnow concat norm_jsonl/ combined.jsonl --dedupe=false`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.Concat.SourceDir
		output := cfg.Concat.Output
		if len(args) > 0 {
			dir = args[0]
		}
		if len(args) > 1 {
			output = args[1]
		}
		dedupe, _ := cmd.Flags().GetBool("dedupe")

		stats, err := concat.New(dedupe, log).Run(dir, output)
		if err != nil {
			return err
		}

		if stats.FilesDetected == 0 {
			pterm.Warning.Printfln("No %s found in %s", concat.Pattern, dir)
			return nil
		}
		pterm.Info.Printfln("Files detected: %d", stats.FilesDetected)
		pterm.Info.Printfln("Files written: %d", stats.FilesWritten)
		if dedupe {
			pterm.Info.Printfln("Duplicate shards skipped: %d", stats.DuplicatesSkipped)
		}
		pterm.Info.Printfln("Output: %s", output)
		return nil
	},
}

func init() {
	concatCmd.Flags().Bool("dedupe", cfg.Concat.Dedupe, "skip shards whose whole content duplicates an earlier shard")
	rootCmd.AddCommand(concatCmd)
}
