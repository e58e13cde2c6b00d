package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to templ.Component so handlers render
// every page and fragment the same way.
func Component(nodes ...g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return g.Group(nodes).Render(w)
	})
}
