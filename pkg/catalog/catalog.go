package catalog

import (
	"strings"

	"localize/pkg/markup"
)

// Raw is the untrusted message table as fetched or supplied by the host:
// key, then locale, then a value that is either a string or an ordered array
// of string fragments to concatenate with no separator.
type Raw map[string]map[string]any

// Merge copies every key/locale entry of other into r, later entries winning.
func (r Raw) Merge(other Raw) {
	for key, byLocale := range other {
		if r[key] == nil {
			r[key] = make(map[string]any, len(byLocale))
		}
		for loc, v := range byLocale {
			r[key][loc] = v
		}
	}
}

// ValueKind discriminates the Value union.
type ValueKind int

const (
	// ValueString marks a plain string value.
	ValueString ValueKind = iota
	// ValueSegments marks a decomposed markup segment sequence.
	ValueSegments
)

// Value is one normalized localized value: a plain string or a markup segment
// sequence, selected by Kind.
type Value struct {
	Str      string
	Segments []markup.Segment
	Kind     ValueKind
}

// StringValue creates a plain string value.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// SegmentsValue creates a segment sequence value.
func SegmentsValue(segs []markup.Segment) Value {
	return Value{Kind: ValueSegments, Segments: segs}
}

// String renders the value back to its source form. Segment values flatten
// through their markup representation.
func (v Value) String() string {
	if v.Kind == ValueSegments {
		return markup.Flatten(v.Segments)
	}
	return v.Str
}

// Table is the flattened lookup table: key to locale to exactly one Value.
// It is built once per load and must be treated as immutable afterwards.
type Table map[string]map[string]Value

// Build normalizes raw message data into a Table. Array values are joined,
// unusable entries dropped. With decompose set, every string is run through
// markup decomposition; strings without recognizable markup stay plain, which
// also makes decomposition idempotent across rebuilds.
func Build(raw Raw, decompose bool) Table {
	table := make(Table, len(raw))
	for key, byLocale := range raw {
		entry := make(map[string]Value, len(byLocale))
		for loc, v := range byLocale {
			s, ok := normalizeValue(v)
			if !ok {
				continue
			}
			entry[loc] = makeValue(s, decompose)
		}
		if len(entry) > 0 {
			table[key] = entry
		}
	}
	return table
}

// Lookup returns the value for key under the exact locale, then under the
// fallback locale. First match wins; values are never merged across locales.
func (t Table) Lookup(key, locale, fallback string) (Value, bool) {
	byLocale, ok := t[key]
	if !ok {
		return Value{}, false
	}
	if v, ok := byLocale[locale]; ok {
		return v, true
	}
	if v, ok := byLocale[fallback]; ok {
		return v, true
	}
	return Value{}, false
}

// normalizeValue reduces a raw value to a single string: strings pass
// through, arrays of string fragments are concatenated, everything else is
// rejected.
func normalizeValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []string:
		return strings.Join(val, ""), true
	case []any:
		var b strings.Builder
		for _, elem := range val {
			s, ok := elem.(string)
			if !ok {
				return "", false
			}
			b.WriteString(s)
		}
		return b.String(), true
	default:
		return "", false
	}
}

func makeValue(s string, decompose bool) Value {
	if !decompose {
		return StringValue(s)
	}
	segs := markup.Decompose(s)
	if len(segs) == 0 {
		return StringValue("")
	}
	if len(segs) == 1 && segs[0].Kind == markup.SegmentText {
		return StringValue(segs[0].Text)
	}
	return SegmentsValue(segs)
}
