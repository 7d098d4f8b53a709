package markup

// Builder constructs host UI nodes from decomposed segments. The engine never
// creates nodes itself; it only calls these two factories, so any node model
// (templ components, DOM-like trees, test doubles) can consume localized
// markup.
type Builder[N any] struct {
	// Text wraps literal text in a host node.
	Text func(text string) N
	// Element wraps already-built children in a named container node.
	Element func(tag string, children []N) N
}

// Nodes converts a segment sequence into host nodes, preserving order.
func (b Builder[N]) Nodes(segs []Segment) []N {
	nodes := make([]N, 0, len(segs))
	for _, s := range segs {
		nodes = append(nodes, b.Node(s))
	}
	return nodes
}

// Node converts a single segment into a host node.
func (b Builder[N]) Node(s Segment) N {
	if s.Kind == SegmentNode {
		return b.Element(s.Tag, b.Nodes(s.Children))
	}
	return b.Text(s.Text)
}

// Wrap builds a container element holding the given children.
func (b Builder[N]) Wrap(tag string, children []N) N {
	return b.Element(tag, children)
}
