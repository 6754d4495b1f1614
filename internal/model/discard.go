package model

// Discard reasons. These strings are part of the discard-sink format and must
// stay stable across releases.
const (
	ReasonNonDictElement  = "non-dict element in list"
	ReasonNonDictTopLevel = "non-dict top-level value"
	ReasonDecodeError     = "json_decode_error"
)

// DiscardEntry records one rejected input fragment with enough metadata for
// forensics. Entries are immutable once created; the driver buffers them for
// the run and flushes them to the discard sink at the end.
//
// Line is 1-based: the physical line in line mode, or the fixed sentinel 1
// when the whole input parsed as a single classic JSON document. Index, Value,
// Raw and Error are populated per reason; pointer fields keep a present-but-
// zero value (index 0, JSON null) distinguishable from an absent one.
type DiscardEntry struct {
	Line   int       `json:"line"`
	Index  *int      `json:"index,omitempty"`
	Type   ValueKind `json:"type,omitempty"`
	Value  *any      `json:"value,omitempty"`
	Raw    string    `json:"raw,omitempty"`
	Error  string    `json:"error,omitempty"`
	Reason string    `json:"reason"`
}

// NewElementDiscard describes a non-mapping element found at index inside a
// classified array.
func NewElementDiscard(line, index int, v any) DiscardEntry {
	return DiscardEntry{
		Line:   line,
		Index:  &index,
		Type:   KindOf(v),
		Value:  &v,
		Reason: ReasonNonDictElement,
	}
}

// NewTopLevelDiscard describes a top-level value that is neither a mapping nor
// an array.
func NewTopLevelDiscard(line int, v any) DiscardEntry {
	return DiscardEntry{
		Line:   line,
		Type:   KindOf(v),
		Value:  &v,
		Reason: ReasonNonDictTopLevel,
	}
}

// NewDecodeDiscard describes a line that failed to decode as JSON. The
// original line text is preserved verbatim in Raw.
func NewDecodeDiscard(line int, raw string, err error) DiscardEntry {
	return DiscardEntry{
		Line:   line,
		Raw:    raw,
		Error:  err.Error(),
		Reason: ReasonDecodeError,
	}
}
