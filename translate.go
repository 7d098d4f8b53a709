package localize

import (
	"maps"

	"localize/pkg/catalog"
	"localize/pkg/markup"
)

// Resolve looks up the localized value for key: exact locale first, then the
// derived fallback locale, then the key itself as a human-inspectable
// placeholder. First match wins; values are never merged across locales.
func (l *Localizer) Resolve(key string) catalog.Value {
	snap := l.snap.Load()
	if v, ok := snap.table.Lookup(key, snap.locale, snap.fallback); ok {
		return v
	}
	// Only a loaded catalog makes a missing key noteworthy; before any load
	// every key is missing.
	if snap.loaded && l.onMissing != nil {
		l.onMissing(snap.locale, key)
	}
	return catalog.StringValue(key)
}

// Translate resolves key and substitutes the given parameters into the
// result. For segment values, substitution runs through every text segment
// and node child but never through tag names.
func (l *Localizer) Translate(key string, params ...markup.Params) catalog.Value {
	v := l.Resolve(key)
	p := mergeParams(params)
	if len(p) == 0 {
		return v
	}

	switch v.Kind {
	case catalog.ValueSegments:
		return catalog.SegmentsValue(markup.InterpolateSegments(v.Segments, p))
	default:
		return catalog.StringValue(markup.Interpolate(v.Str, p))
	}
}

// TranslateString resolves key to plain text. Keys whose value contains
// markup yield an empty string: callers of this variant have declared they
// must never receive structured content.
func (l *Localizer) TranslateString(key string, params ...markup.Params) string {
	v := l.Translate(key, params...)
	if v.Kind != catalog.ValueString {
		return ""
	}
	return v.Str
}

// WrapTranslated builds a container node around children. String children are
// treated as translation keys and resolved through l, expanding into one or
// more nodes; children already of the node type pass through untouched. This
// lets call sites mix literal nodes and translation keys in the same child
// list.
func WrapTranslated[N any](l *Localizer, b markup.Builder[N], tag string, children ...any) N {
	nodes := make([]N, 0, len(children))
	for _, child := range children {
		if key, ok := child.(string); ok {
			nodes = append(nodes, translatedNodes(l, b, key)...)
			continue
		}
		if n, ok := child.(N); ok {
			nodes = append(nodes, n)
		}
	}
	return b.Wrap(tag, nodes)
}

func translatedNodes[N any](l *Localizer, b markup.Builder[N], key string) []N {
	v := l.Translate(key)
	if v.Kind == catalog.ValueSegments {
		return b.Nodes(v.Segments)
	}
	return []N{b.Text(v.Str)}
}

func mergeParams(params []markup.Params) markup.Params {
	switch len(params) {
	case 0:
		return nil
	case 1:
		return params[0]
	}
	merged := make(markup.Params)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
