// Package engine drives the single-pass normalization of JSON/JSONL input.
package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/crimson-sun/winnow/internal/engine/classifier"
	"github.com/crimson-sun/winnow/internal/engine/dedup"
	"github.com/crimson-sun/winnow/internal/model"
)

// classicLine is the line number attached to discard entries when the whole
// input parsed as a single classic JSON document.
const classicLine = 1

// Engine normalizes mixed JSON/JSONL input into dict-only JSONL. An Engine
// carries only configuration; all per-run state (fingerprint set, discard
// buffer, stats) is local to Normalize, so one Engine can serve repeated
// independent runs.
type Engine struct {
	dedupe bool
	log    *zap.Logger
}

// New creates an Engine. When dedupe is true, records whose canonical
// fingerprint was already written during the run are skipped. A nil logger
// disables logging.
func New(dedupe bool, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{dedupe: dedupe, log: log}
}

// Normalize reads all of src, classifies every JSON value found, writes
// accepted records to out as compact JSONL and buffered discard entries to
// disc at the end of the pass, and returns the run's counters.
//
// Mode selection is whole-input: if the entire buffer parses as one JSON
// document it is classified once (classic JSON mode); only a whole-document
// parse failure triggers the line-by-line fallback. Malformed lines and
// non-dict values never fail the run — they flow to disc. Only I/O errors
// propagate.
func (e *Engine) Normalize(src io.Reader, out, disc io.Writer) (model.RunStats, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return model.RunStats{}, errors.Wrap(err, "engine: read input")
	}

	var stats model.RunStats
	if len(bytes.TrimSpace(data)) == 0 {
		return stats, nil
	}

	outEnc := json.NewEncoder(out)
	outEnc.SetEscapeHTML(false)

	seen := dedup.NewSet()
	var discards []model.DiscardEntry

	emit := func(records []model.Record) error {
		for _, rec := range records {
			stats.NormalizedSeen++
			if e.dedupe {
				dup, err := seen.Seen(rec)
				if err != nil {
					return err
				}
				if dup {
					stats.DuplicatesSkipped++
					continue
				}
			}
			if err := outEnc.Encode(rec); err != nil {
				return errors.Wrap(err, "engine: write record")
			}
			stats.Written++
		}
		return nil
	}

	if doc, derr := decodeDocument(data); derr == nil {
		// Classic JSON mode: one document, classified once.
		records, rejected := classifier.Classify(doc, classicLine)
		discards = append(discards, rejected...)
		if err := emit(records); err != nil {
			return model.RunStats{}, err
		}
	} else {
		// Line mode: each non-blank physical line is its own JSON value.
		for i, raw := range strings.Split(string(data), "\n") {
			lineno := i + 1
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			v, derr := decodeDocument([]byte(line))
			if derr != nil {
				discards = append(discards, model.NewDecodeDiscard(lineno, line, derr))
				continue
			}
			records, rejected := classifier.Classify(v, lineno)
			discards = append(discards, rejected...)
			if err := emit(records); err != nil {
				return model.RunStats{}, err
			}
		}
	}

	discEnc := json.NewEncoder(disc)
	discEnc.SetEscapeHTML(false)
	for _, d := range discards {
		if err := discEnc.Encode(d); err != nil {
			return model.RunStats{}, errors.Wrap(err, "engine: write discard entry")
		}
	}
	stats.DiscardedCount = len(discards)

	e.log.Debug("normalization pass complete",
		zap.Int("normalized_seen", stats.NormalizedSeen),
		zap.Int("written", stats.Written),
		zap.Int("duplicates_skipped", stats.DuplicatesSkipped),
		zap.Int("discarded", stats.DiscardedCount),
	)
	return stats, nil
}

// decodeDocument decodes data as exactly one JSON value. Numbers decode as
// json.Number so 64-bit integers survive canonical re-serialization intact.
// Content after the first value is an error — that is what routes multi-line
// JSONL input into line mode.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON document")
	}
	return v, nil
}
