package model

import "encoding/json"

// Record is a dictionary-shaped JSON value accepted into the normalized stream.
// Records are never mutated after classification — they are either forwarded
// as-is to the output sink or dropped.
type Record map[string]any

// ValueKind tags the shape of a decoded JSON value. It is decided by a type
// switch over the decoded variant, not by reflection, and is the label stored
// in discard entries.
type ValueKind string

const (
	KindObject ValueKind = "object"
	KindArray  ValueKind = "array"
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "bool"
	KindNull   ValueKind = "null"
)

// KindOf reports the ValueKind of a decoded JSON value. Numbers may arrive as
// json.Number (decoders here enable UseNumber) or float64.
func KindOf(v any) ValueKind {
	switch v.(type) {
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case string:
		return KindString
	case json.Number, float64:
		return KindNumber
	case bool:
		return KindBool
	default:
		return KindNull
	}
}
