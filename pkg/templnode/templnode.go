package templnode

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"localize/pkg/markup"
)

// Builder returns a markup.Builder producing templ components. Text segments
// render escaped; node segments render their tag around the children.
func Builder() markup.Builder[templ.Component] {
	return markup.Builder[templ.Component]{
		Text:    textComponent,
		Element: elementComponent,
	}
}

// Component renders a whole segment sequence as a single templ component.
func Component(segs []markup.Segment) templ.Component {
	children := Builder().Nodes(segs)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(text))
		return err
	})
}

func elementComponent(tag string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag+">"); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, c := range children {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
