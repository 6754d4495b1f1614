// Package dedup detects duplicate records via canonical-JSON fingerprints.
package dedup

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/crimson-sun/winnow/internal/model"
)

// Fingerprint returns the lowercase SHA-256 hex digest of the record's
// canonical form: compact JSON with keys sorted at every nesting level and
// non-ASCII text left unescaped. Records with identical content yield
// identical fingerprints regardless of key insertion order.
func Fingerprint(rec model.Record) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return "", errors.Wrap(err, "dedup: canonicalize record")
	}
	// Encode appends a newline; the canonical form excludes it.
	sum := sha256.Sum256(bytes.TrimRight(buf.Bytes(), "\n"))
	return hex.EncodeToString(sum[:]), nil
}

// Set tracks the fingerprints seen during a single normalization run.
// Not safe for concurrent use; each run owns its own Set.
type Set struct {
	seen map[string]struct{}
}

// NewSet creates an empty fingerprint set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Seen fingerprints rec and reports whether an identical record was observed
// earlier in the run. First-seen records are recorded, so ties break toward
// the earliest occurrence.
func (s *Set) Seen(rec model.Record) (bool, error) {
	fp, err := Fingerprint(rec)
	if err != nil {
		return false, err
	}
	if _, ok := s.seen[fp]; ok {
		return true, nil
	}
	s.seen[fp] = struct{}{}
	return false, nil
}

// Len reports the number of distinct fingerprints recorded.
func (s *Set) Len() int {
	return len(s.seen)
}
