package markup

import "strings"

// Decompose splits a localized string containing inline <tag>...</tag> markup
// into an alternating sequence of text and node segments.
//
// Only opening tags of the form <[a-z]+> are recognized; the matching closing
// tag is located by a literal substring search, and the content between the
// pair becomes a single node with one text child. Nested markup inside a node
// is not scanned again. An opening tag with no matching closing tag is
// dropped and scanning continues just after it.
func Decompose(s string) []Segment {
	sc := scanner{src: s}
	return sc.run()
}

// scanner walks the source left to right, accumulating pending literal text
// until a complete tag pair is recognized.
type scanner struct {
	src  string
	pos  int
	text strings.Builder
	segs []Segment
}

func (sc *scanner) run() []Segment {
	for sc.pos < len(sc.src) {
		next := strings.IndexByte(sc.src[sc.pos:], '<')
		if next < 0 {
			sc.text.WriteString(sc.src[sc.pos:])
			sc.pos = len(sc.src)
			break
		}
		sc.text.WriteString(sc.src[sc.pos : sc.pos+next])
		sc.pos += next
		sc.scanTag()
	}
	sc.flushText()
	return sc.segs
}

// scanTag is entered with pos at '<'.
func (sc *scanner) scanTag() {
	tag, end, ok := sc.openTagAt(sc.pos)
	if !ok {
		// Not an opening tag; the '<' is literal text.
		sc.text.WriteByte('<')
		sc.pos++
		return
	}

	closing := "</" + tag + ">"
	rel := strings.Index(sc.src[end:], closing)
	if rel < 0 {
		// Unparseable markup: the opening tag is dropped, not preserved.
		sc.pos = end
		return
	}

	sc.flushText()
	sc.segs = append(sc.segs, NodeSegment(tag, TextSegment(sc.src[end:end+rel])))
	sc.pos = end + rel + len(closing)
}

// openTagAt recognizes <[a-z]+> starting at i, returning the tag name and the
// index just past '>'.
func (sc *scanner) openTagAt(i int) (tag string, end int, ok bool) {
	j := i + 1
	for j < len(sc.src) && sc.src[j] >= 'a' && sc.src[j] <= 'z' {
		j++
	}
	if j == i+1 || j >= len(sc.src) || sc.src[j] != '>' {
		return "", 0, false
	}
	return sc.src[i+1 : j], j + 1, true
}

func (sc *scanner) flushText() {
	if sc.text.Len() > 0 {
		sc.segs = append(sc.segs, TextSegment(sc.text.String()))
		sc.text.Reset()
	}
}
