package htmlnode

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"localize/pkg/markup"
)

var (
	inlinePolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// Inline formatting only; localized strings never carry structure or
		// attributes.
		inlinePolicy = bluemonday.NewPolicy()
		inlinePolicy.AllowElements(
			"b", "strong", "i", "em",
			"u", "s", "code", "kbd",
			"sub", "sup", "small", "mark",
			"span", "br",
		)
	})
}

// Builder returns a markup.Builder producing raw HTML fragments: text is
// entity-escaped, node segments become <tag>...</tag> elements. The output is
// not sanitized; use Render for the policy-filtered form.
func Builder() markup.Builder[string] {
	return markup.Builder[string]{
		Text: html.EscapeString,
		Element: func(tag string, children []string) string {
			var b strings.Builder
			b.WriteByte('<')
			b.WriteString(tag)
			b.WriteByte('>')
			for _, c := range children {
				b.WriteString(c)
			}
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')
			return b.String()
		},
	}
}

// Render converts a segment sequence to an HTML fragment filtered through the
// default inline formatting policy.
func Render(segs []markup.Segment) string {
	initPolicy()
	return RenderWithPolicy(segs, inlinePolicy)
}

// RenderWithPolicy converts a segment sequence to an HTML fragment and
// sanitizes it with the given policy. A nil policy skips sanitization; text
// content is escaped either way.
func RenderWithPolicy(segs []markup.Segment, policy *bluemonday.Policy) string {
	fragment := strings.Join(Builder().Nodes(segs), "")
	if policy == nil {
		return fragment
	}
	return policy.Sanitize(fragment)
}
