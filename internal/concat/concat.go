// Package concat merges already-normalized JSONL shards from a directory
// into one combined file. Duplicate detection is per shard, not per record:
// a shard whose whole trimmed content hashes to an already-seen digest is
// skipped.
package concat

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/crimson-sun/winnow/internal/stream"
)

// Pattern matches the shard filenames picked up from the source directory.
const Pattern = "normalized_*.jsonl"

// Stats summarizes one concatenation run.
type Stats struct {
	FilesDetected     int // shards matching Pattern
	FilesRead         int // non-empty shards read
	FilesWritten      int // shards appended to the output
	DuplicatesSkipped int // shards skipped as whole-content duplicates
}

// Concatenator merges normalized shards. Safe to reuse; per-run state lives
// in Run.
type Concatenator struct {
	dedupe bool
	log    *zap.Logger
}

// New creates a Concatenator. When dedupe is true, shards with identical
// content are written only once. A nil logger disables logging.
func New(dedupe bool, log *zap.Logger) *Concatenator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Concatenator{dedupe: dedupe, log: log}
}

// Run merges every shard under dir matching Pattern, in sorted filename
// order, into outPath. Empty shards are skipped. The output file is created
// even when no shard contributes content.
func (c *Concatenator) Run(dir, outPath string) (Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, Pattern))
	if err != nil {
		return Stats{}, errors.Wrapf(err, "concat: glob %s", dir)
	}
	sort.Strings(files)

	var stats Stats
	stats.FilesDetected = len(files)
	if len(files) == 0 {
		c.log.Warn("no shards found", zap.String("dir", dir), zap.String("pattern", Pattern))
	}

	out, err := stream.CreateSink(outPath)
	if err != nil {
		return Stats{}, err
	}

	seen := make(map[string]struct{})
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			out.Close()
			return Stats{}, errors.Wrapf(err, "concat: read %s", path)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}
		stats.FilesRead++

		sum := sha256.Sum256([]byte(text))
		digest := hex.EncodeToString(sum[:])
		if c.dedupe {
			if _, dup := seen[digest]; dup {
				stats.DuplicatesSkipped++
				c.log.Info("skipping duplicate shard", zap.String("file", filepath.Base(path)))
				continue
			}
		}
		seen[digest] = struct{}{}

		if _, err := out.Write([]byte(text + "\n")); err != nil {
			out.Close()
			return Stats{}, errors.Wrapf(err, "concat: write %s", outPath)
		}
		stats.FilesWritten++
		c.log.Debug("appended shard", zap.String("file", filepath.Base(path)))
	}

	if err := out.Close(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
