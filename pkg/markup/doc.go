// Package markup decomposes localized strings containing inline
// <tag>...</tag> markup into sequences of text and node segments, and
// substitutes {name} placeholders in both plain strings and segment trees.
//
// The markup dialect is deliberately tiny: only single-level, well-formed,
// attribute-free lowercase tags are recognized. It is not an HTML parser.
//
// # Decomposition
//
// Decompose splits a string into an alternating sequence of segments:
//
//	segs := markup.Decompose("Hello <b>world</b>!")
//	// [Text("Hello "), Node("b", [Text("world")]), Text("!")]
//
// Flatten reverses the split, reconstructing the source form:
//
//	markup.Flatten(segs)
//	// "Hello <b>world</b>!"
//
// An opening tag without a matching closing tag is unparseable markup: the
// tag text is dropped and scanning continues after it. A string without any
// recognizable tag decomposes to a single text segment.
//
// # Interpolation
//
// Placeholders use single braces with optional inner whitespace. Unknown
// placeholder names are left verbatim so a partially supplied parameter map
// never corrupts output:
//
//	markup.Interpolate("Hi {name}, {unknown}!", markup.Params{"name": "Ann"})
//	// "Hi Ann, {unknown}!"
//
// InterpolateSegments applies the same substitution to every text segment of
// a decomposed value, descending into node children but never touching tag
// names.
//
// # Node building
//
// Builder converts segments into host UI nodes through two factory functions,
// keeping the package independent of any UI framework:
//
//	b := markup.Builder[string]{
//		Text:    func(s string) string { return s },
//		Element: func(tag string, kids []string) string { return "<" + tag + ">" + strings.Join(kids, "") + "</" + tag + ">" },
//	}
//	nodes := b.Nodes(segs)
package markup
