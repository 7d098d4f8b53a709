// Package htmlnode renders decomposed markup segments as HTML fragments.
//
// Text content is always entity-escaped. The rendered fragment is then run
// through a bluemonday policy, so only the inline formatting elements the
// policy allows survive:
//
//	segs := markup.Decompose("Hello <b>world</b>!")
//	html := htmlnode.Render(segs)
//	// "Hello <b>world</b>!"
//
// RenderWithPolicy accepts a custom policy for hosts with different allow
// lists; a nil policy skips sanitization entirely (text is still escaped).
package htmlnode
