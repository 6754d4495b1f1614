package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/crimson-sun/winnow/internal/stream"
	"github.com/crimson-sun/winnow/pkg/winnow"
)

// normalizeCmd normalizes one input file into dict-only JSONL.
var normalizeCmd = &cobra.Command{
	Use:   "normalize <input>",
	Short: "Normalize mixed JSON/JSONL into dict-only JSONL",
	Long: `Normalize mixed JSON/JSONL (dicts, lists, scalars) into dict-only JSONL.

The input may be one classic JSON document or newline-delimited JSON; the
mode is detected from the whole input. Dict records are written to --output.
Non-dict values and malformed lines are logged to --discarded with a reason
and never cause a nonzero exit. With --dedupe, records whose canonical
SHA-256 fingerprint was already written are skipped (first occurrence wins).

Use "-" as the input or output path to read stdin or write stdout.

Examples:
  winnow normalize events.jsonl
  winnow normalize export.json --output clean.jsonl --dedupe
  cat mixed.jsonl | winnow normalize - --output - --discarded junk.jsonl
  winnow normalize legacy.jsonl --encoding latin1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		discarded, _ := cmd.Flags().GetString("discarded")
		dedupe, _ := cmd.Flags().GetBool("dedupe")
		encoding, _ := cmd.Flags().GetString("encoding")

		stats, err := winnow.NormalizeFile(args[0], output, discarded,
			winnow.WithDedupe(dedupe),
			winnow.WithEncoding(encoding),
			winnow.WithLogger(log),
		)
		if err != nil {
			return err
		}

		// Keep stdout clean when it carries the normalized stream.
		if output == stream.Stdio {
			return nil
		}
		if dedupe {
			pterm.Info.Printfln("Normalized records seen: %d", stats.NormalizedSeen)
			pterm.Info.Printfln("Unique records written: %d", stats.Written)
			pterm.Info.Printfln("Duplicates skipped: %d", stats.DuplicatesSkipped)
		} else {
			pterm.Info.Printfln("Normalized records written: %d (dedupe disabled)", stats.Written)
		}
		pterm.Info.Printfln("Discarded items logged: %d -> %s", stats.DiscardedCount, discarded)
		return nil
	},
}

func init() {
	normalizeCmd.Flags().String("output", cfg.Normalize.Output, "output JSONL file with dict-only records")
	normalizeCmd.Flags().String("discarded", cfg.Normalize.Discarded, "JSONL file for discarded non-dict/malformed content")
	normalizeCmd.Flags().Bool("dedupe", cfg.Normalize.Dedupe, "enable SHA-256-based deduplication of normalized records")
	normalizeCmd.Flags().String("encoding", cfg.Normalize.Encoding, "character encoding of the input file (IANA name)")
	rootCmd.AddCommand(normalizeCmd)
}
