// Package templnode adapts decomposed markup segments to templ components,
// letting templ-rendered hosts drop localized rich text straight into their
// component tree.
//
//	segs := markup.Decompose("Hello <b>world</b>!")
//	var c templ.Component = templnode.Component(segs)
//
// Text content is escaped during rendering; element tags come from the markup
// scanner and are lowercase-letter-only by construction.
package templnode
