package winnow

import (
	"io"

	"github.com/crimson-sun/winnow/internal/engine"
	"github.com/crimson-sun/winnow/internal/model"
	"github.com/crimson-sun/winnow/internal/stream"
)

// Stats holds the counters returned by a normalization run.
// NormalizedSeen == Written + DuplicatesSkipped for every completed run.
type Stats = model.RunStats

// Normalize reads mixed JSON/JSONL from r, writes dict-only compact JSONL to
// out, and writes one JSON object per rejected fragment to discarded.
// Malformed lines and non-dict values never fail the run; only I/O errors do,
// in which case the returned Stats are zero.
func Normalize(r io.Reader, out, discarded io.Writer, opts ...Option) (Stats, error) {
	o := buildOptions(opts)
	eng := engine.New(o.dedupe, o.logger)
	return eng.Normalize(r, out, discarded)
}

// NormalizeFile normalizes the file at inputPath into outputPath and
// discardedPath, creating (or truncating) both. Any path may be "-" for
// stdin/stdout. The WithEncoding option applies to inputPath only.
func NormalizeFile(inputPath, outputPath, discardedPath string, opts ...Option) (Stats, error) {
	o := buildOptions(opts)

	src, err := stream.OpenSource(inputPath, o.encoding)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	out, err := stream.CreateSink(outputPath)
	if err != nil {
		return Stats{}, err
	}
	disc, err := stream.CreateSink(discardedPath)
	if err != nil {
		out.Close()
		return Stats{}, err
	}

	eng := engine.New(o.dedupe, o.logger)
	stats, err := eng.Normalize(src, out, disc)

	// Sink close errors are still write failures; surface the first one.
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if cerr := disc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}
