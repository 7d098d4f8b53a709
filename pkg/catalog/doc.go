// Package catalog normalizes raw message data into a flat, two-level lookup
// table keyed by message key and locale.
//
// The raw table arrives from an external source and is untrusted in shape:
// a value may be a single string, an array of string fragments that must be
// concatenated (the long-string-as-array convenience form), or garbage.
// Normalization never fails; entries of unusable shape are dropped so that a
// malformed catalog degrades rather than erroring.
//
//	raw := catalog.Raw{
//		"greet": {"en": "Hi {user}!", "is": []any{"Hæ ", "{user}!"}},
//	}
//	table := catalog.Build(raw, true)
//	v, ok := table.Lookup("greet", "is_IS", "is")
//
// When built with markup decomposition enabled, values containing inline
// <tag>...</tag> markup are stored as segment sequences; values without
// recognizable markup stay plain strings.
package catalog
