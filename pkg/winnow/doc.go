// Package winnow normalizes semi-structured JSON/JSONL input of unknown
// shape into a stream of dictionary-only JSONL records, routing everything
// that cannot be treated as a record to a discard sink with a reason.
//
// Quick start:
//
//	in := strings.NewReader(`{"a":1}` + "\n" + `"junk"`)
//	var out, discarded bytes.Buffer
//
//	stats, err := winnow.Normalize(in, &out, &discarded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Written, stats.DiscardedCount) // 1 1
//
// Input is either one classic JSON document or newline-delimited JSON; the
// mode is detected from the whole input. Enable WithDedupe to drop records
// whose canonical SHA-256 fingerprint was already written during the run.
// Each call is an independent pass with its own state.
package winnow
