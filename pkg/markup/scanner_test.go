package markup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localize/pkg/markup"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []markup.Segment
	}{
		{
			name:     "plain text stays a single segment",
			input:    "Hello world",
			expected: []markup.Segment{markup.TextSegment("Hello world")},
		},
		{
			name:  "single tag with surrounding text",
			input: "Hello <b>world</b>!",
			expected: []markup.Segment{
				markup.TextSegment("Hello "),
				markup.NodeSegment("b", markup.TextSegment("world")),
				markup.TextSegment("!"),
			},
		},
		{
			name:  "tag at start",
			input: "<em>Note</em> carefully",
			expected: []markup.Segment{
				markup.NodeSegment("em", markup.TextSegment("Note")),
				markup.TextSegment(" carefully"),
			},
		},
		{
			name:  "tag at end",
			input: "Press <kbd>Enter</kbd>",
			expected: []markup.Segment{
				markup.TextSegment("Press "),
				markup.NodeSegment("kbd", markup.TextSegment("Enter")),
			},
		},
		{
			name:  "adjacent tags",
			input: "<b>bold</b><i>italic</i>",
			expected: []markup.Segment{
				markup.NodeSegment("b", markup.TextSegment("bold")),
				markup.NodeSegment("i", markup.TextSegment("italic")),
			},
		},
		{
			name:  "multiple tags with text between",
			input: "a <b>one</b> b <i>two</i> c",
			expected: []markup.Segment{
				markup.TextSegment("a "),
				markup.NodeSegment("b", markup.TextSegment("one")),
				markup.TextSegment(" b "),
				markup.NodeSegment("i", markup.TextSegment("two")),
				markup.TextSegment(" c"),
			},
		},
		{
			name:     "unmatched opening tag is dropped",
			input:    "before <b> after",
			expected: []markup.Segment{markup.TextSegment("before  after")},
		},
		{
			name:  "unmatched tag does not stop later pairs",
			input: "x <b> y <i>z</i>",
			expected: []markup.Segment{
				markup.TextSegment("x  y "),
				markup.NodeSegment("i", markup.TextSegment("z")),
			},
		},
		{
			name:     "uppercase tag is literal text",
			input:    "a <B>b</B> c",
			expected: []markup.Segment{markup.TextSegment("a <B>b</B> c")},
		},
		{
			name:     "angle bracket without tag is literal",
			input:    "1 < 2 and 3 > 2",
			expected: []markup.Segment{markup.TextSegment("1 < 2 and 3 > 2")},
		},
		{
			name:     "tag with attributes is not recognized",
			input:    `<a href="x">link</a>`,
			expected: []markup.Segment{markup.TextSegment(`<a href="x">link</a>`)},
		},
		{
			name:  "empty tag body",
			input: "a<b></b>c",
			expected: []markup.Segment{
				markup.TextSegment("a"),
				markup.NodeSegment("b", markup.TextSegment("")),
				markup.TextSegment("c"),
			},
		},
		{
			name:  "inner markup is not scanned recursively",
			input: "<b>one <i>two</i></b>",
			expected: []markup.Segment{
				markup.NodeSegment("b", markup.TextSegment("one <i>two</i>")),
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:  "multibyte text around tags",
			input: "Hæ <b>þú</b>!",
			expected: []markup.Segment{
				markup.TextSegment("Hæ "),
				markup.NodeSegment("b", markup.TextSegment("þú")),
				markup.TextSegment("!"),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, markup.Decompose(tt.input))
		})
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	t.Parallel()

	// Flatten must reconstruct the original string whenever every tag pair
	// parses completely.
	inputs := []string{
		"Hello <b>world</b>!",
		"<em>Note</em> carefully",
		"plain text only",
		"a <b>one</b> b <i>two</i> c",
		"a<b></b>c",
		"1 < 2 and 3 > 2",
	}

	for _, input := range inputs {
		require.Equal(t, input, markup.Flatten(markup.Decompose(input)))
	}
}

func TestDecomposeIdempotentForPlainResults(t *testing.T) {
	t.Parallel()

	// A decomposition that produced only text flattens back to a string whose
	// re-decomposition is identical.
	once := markup.Decompose("before <b> after")
	require.Equal(t, []markup.Segment{markup.TextSegment("before  after")}, once)

	twice := markup.Decompose(markup.Flatten(once))
	require.Equal(t, once, twice)
}
