package markup

import "strings"

// SegmentKind discriminates the Segment union.
type SegmentKind int

const (
	// SegmentText marks a segment holding literal text.
	SegmentText SegmentKind = iota
	// SegmentNode marks a segment holding a named markup node with children.
	SegmentNode
)

// Segment is one element of a decomposed localized string: either literal
// text or a markup node wrapping child segments. Kind selects which fields
// are meaningful: Text for SegmentText, Tag and Children for SegmentNode.
type Segment struct {
	Text     string
	Tag      string
	Children []Segment
	Kind     SegmentKind
}

// TextSegment creates a text segment.
func TextSegment(s string) Segment {
	return Segment{Kind: SegmentText, Text: s}
}

// NodeSegment creates a node segment wrapping the given children.
func NodeSegment(tag string, children ...Segment) Segment {
	return Segment{Kind: SegmentNode, Tag: tag, Children: children}
}

// Flatten reconstructs the source form of a segment sequence: text segments
// concatenate in order and node segments render as <tag>children</tag>.
// Flatten(Decompose(s)) == s for any s whose markup parses completely.
func Flatten(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		flattenInto(&b, s)
	}
	return b.String()
}

func flattenInto(b *strings.Builder, s Segment) {
	switch s.Kind {
	case SegmentText:
		b.WriteString(s.Text)
	case SegmentNode:
		b.WriteByte('<')
		b.WriteString(s.Tag)
		b.WriteByte('>')
		for _, c := range s.Children {
			flattenInto(b, c)
		}
		b.WriteString("</")
		b.WriteString(s.Tag)
		b.WriteByte('>')
	}
}
