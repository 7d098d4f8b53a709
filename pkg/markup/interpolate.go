package markup

import (
	"regexp"
	"strings"
)

// Params maps placeholder names to replacement strings.
type Params map[string]string

// Placeholder grammar: a brace pair around a word-character identifier, with
// optional whitespace inside the braces.
var placeholderRe = regexp.MustCompile(`\{\s*(\w+)\s*\}`)

// Interpolate replaces {name} placeholders in s with values from params.
// Placeholders whose name is absent from params remain unchanged, so a
// partially supplied parameter map never removes or corrupts text.
func Interpolate(s string, params Params) string {
	if len(params) == 0 || !strings.ContainsRune(s, '{') {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.TrimSpace(m[1 : len(m)-1])
		if v, ok := params[name]; ok {
			return v
		}
		return m
	})
}

// InterpolateSegments applies Interpolate to every text segment, descending
// into node children. Tag names are never substituted. The input slice is
// left unmodified.
func InterpolateSegments(segs []Segment, params Params) []Segment {
	if len(params) == 0 {
		return segs
	}
	out := make([]Segment, len(segs))
	for i, s := range segs {
		switch s.Kind {
		case SegmentText:
			out[i] = TextSegment(Interpolate(s.Text, params))
		case SegmentNode:
			out[i] = Segment{
				Kind:     SegmentNode,
				Tag:      s.Tag,
				Children: InterpolateSegments(s.Children, params),
			}
		}
	}
	return out
}
