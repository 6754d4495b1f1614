// Package classifier decides which parsed JSON values become records.
package classifier

import (
	"github.com/crimson-sun/winnow/internal/model"
)

// Classify maps one decoded JSON value onto zero or more records plus the
// discard entries for everything it rejects:
//
//   - a mapping is itself one record
//   - an array contributes each mapping element as a record, in order, and a
//     discard entry for every non-mapping element
//   - anything else yields a single top-level discard entry
//
// line is the 1-based position attached to discard entries. Classify is pure:
// it performs no I/O and never fails on a well-formed decoded value.
func Classify(v any, line int) ([]model.Record, []model.DiscardEntry) {
	switch val := v.(type) {
	case map[string]any:
		return []model.Record{model.Record(val)}, nil

	case []any:
		var records []model.Record
		var discards []model.DiscardEntry
		for i, item := range val {
			if m, ok := item.(map[string]any); ok {
				records = append(records, model.Record(m))
				continue
			}
			discards = append(discards, model.NewElementDiscard(line, i, item))
		}
		return records, discards

	default:
		return nil, []model.DiscardEntry{model.NewTopLevelDiscard(line, v)}
	}
}
