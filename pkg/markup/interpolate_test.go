package markup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localize/pkg/markup"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   markup.Params
		expected string
	}{
		{
			name:     "no placeholders",
			template: "Hello, World!",
			params:   markup.Params{"name": "Ann"},
			expected: "Hello, World!",
		},
		{
			name:     "single placeholder",
			template: "Hi {name}!",
			params:   markup.Params{"name": "Ann"},
			expected: "Hi Ann!",
		},
		{
			name:     "unknown placeholder remains unchanged",
			template: "Hi {name}, {unknown}!",
			params:   markup.Params{"name": "Ann"},
			expected: "Hi Ann, {unknown}!",
		},
		{
			name:     "whitespace inside braces",
			template: "Hi { name }!",
			params:   markup.Params{"name": "Ann"},
			expected: "Hi Ann!",
		},
		{
			name:     "repeated placeholder",
			template: "{name} and {name}",
			params:   markup.Params{"name": "Bo"},
			expected: "Bo and Bo",
		},
		{
			name:     "underscore and digits in names",
			template: "{user_name} has {item_2}",
			params:   markup.Params{"user_name": "Dave", "item_2": "socks"},
			expected: "Dave has socks",
		},
		{
			name:     "nil params",
			template: "Hi {name}!",
			params:   nil,
			expected: "Hi {name}!",
		},
		{
			name:     "empty params map",
			template: "Hi {name}!",
			params:   markup.Params{},
			expected: "Hi {name}!",
		},
		{
			name:     "non-identifier braces untouched",
			template: "set {a b} or {}",
			params:   markup.Params{"a": "x"},
			expected: "set {a b} or {}",
		},
		{
			name:     "empty replacement removes placeholder text",
			template: "[{gap}]",
			params:   markup.Params{"gap": ""},
			expected: "[]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, markup.Interpolate(tt.template, tt.params))
		})
	}
}

func TestInterpolateSegments(t *testing.T) {
	t.Parallel()

	t.Run("substitutes in text segments and node children", func(t *testing.T) {
		t.Parallel()
		segs := []markup.Segment{
			markup.TextSegment("Hi {name}, see "),
			markup.NodeSegment("b", markup.TextSegment("{count} items")),
		}

		got := markup.InterpolateSegments(segs, markup.Params{"name": "Ann", "count": "3"})

		require.Equal(t, []markup.Segment{
			markup.TextSegment("Hi Ann, see "),
			markup.NodeSegment("b", markup.TextSegment("3 items")),
		}, got)
	})

	t.Run("never substitutes through tag names", func(t *testing.T) {
		t.Parallel()
		segs := []markup.Segment{markup.NodeSegment("b", markup.TextSegment("x"))}

		got := markup.InterpolateSegments(segs, markup.Params{"b": "bold"})

		require.Equal(t, "b", got[0].Tag)
	})

	t.Run("leaves input slice unmodified", func(t *testing.T) {
		t.Parallel()
		segs := []markup.Segment{markup.TextSegment("Hi {name}")}

		_ = markup.InterpolateSegments(segs, markup.Params{"name": "Ann"})

		require.Equal(t, "Hi {name}", segs[0].Text)
	})

	t.Run("empty params returns input as-is", func(t *testing.T) {
		t.Parallel()
		segs := []markup.Segment{markup.TextSegment("Hi {name}")}

		got := markup.InterpolateSegments(segs, nil)

		require.Equal(t, segs, got)
	})
}
